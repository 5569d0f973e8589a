// Package imageproc implements the built-in image processing function: it
// downloads an image, applies a fixed resize -> grayscale -> blur pipeline
// and returns the result as a base64-encoded JPEG inside a JSON document.
package imageproc

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp"
)

// DefaultImageURL is the sample image fetched when IMAGE_URL is unset.
const DefaultImageURL = "https://plus.unsplash.com/premium_photo-1747135794086-280753a24793?q=80&w=1935&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D"

// DefaultDimension is the fallback for WIDTH and HEIGHT.
const DefaultDimension = "300"

// blurSigma is the fixed Gaussian blur radius of the final pipeline step.
const blurSigma = 2

// maxFetchBytes caps the downloaded image size. Anything larger than 32 MiB
// is rejected before decoding.
const maxFetchBytes = 32 << 20

// Request carries the raw inputs of one invocation. Width and Height stay
// strings here; parse failures surface through Run's error return like every
// other pipeline failure.
type Request struct {
	URL    string
	Width  string
	Height string
}

// RequestFromEnv reads IMAGE_URL, WIDTH and HEIGHT with their defaults.
func RequestFromEnv() Request {
	return Request{
		URL:    envOr("IMAGE_URL", DefaultImageURL),
		Width:  envOr("WIDTH", DefaultDimension),
		Height: envOr("HEIGHT", DefaultDimension),
	}
}

// Result is the success payload.
type Result struct {
	OriginalURL     string     `json:"original_url"`
	ProcessedImage  string     `json:"processed_image"`
	Transformations []string   `json:"transformations"`
	Dimensions      Dimensions `json:"dimensions"`
	Status          string     `json:"status"`
}

// Dimensions echoes the requested output size.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ErrorResult is the failure payload. Every pipeline failure collapses into
// this single shape.
type ErrorResult struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// Processor runs the transformation pipeline.
type Processor struct {
	// Client issues the image fetch. Nil means http.DefaultClient, which
	// carries no timeout.
	Client *http.Client
}

// Run executes the full pipeline: fetch, decode, resize, grayscale, blur,
// JPEG-encode, base64-encode. Any failure aborts the whole run; there is no
// partial result.
func (p *Processor) Run(ctx context.Context, req Request) (*Result, error) {
	width, err := strconv.Atoi(req.Width)
	if err != nil {
		return nil, fmt.Errorf("parse width %q: %w", req.Width, err)
	}
	height, err := strconv.Atoi(req.Height)
	if err != nil {
		return nil, fmt.Errorf("parse height %q: %w", req.Height, err)
	}

	body, err := p.fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img = imaging.Resize(img, width, height, imaging.Lanczos)
	img = imaging.Grayscale(img)
	img = imaging.Blur(img, blurSigma)

	encoded, err := encodeJPEG(img)
	if err != nil {
		return nil, err
	}

	return &Result{
		OriginalURL:     req.URL,
		ProcessedImage:  base64.StdEncoding.EncodeToString(encoded),
		Transformations: []string{"resize", "grayscale", "blur"},
		Dimensions:      Dimensions{Width: width, Height: height},
		Status:          "success",
	}, nil
}

func (p *Processor) fetch(ctx context.Context, url string) ([]byte, error) {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch image: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	if len(body) > maxFetchBytes {
		return nil, fmt.Errorf("fetch image: body exceeds %d byte limit", maxFetchBytes)
	}
	return body, nil
}

// encodeJPEG flattens the grayscaled image into a single luminance channel
// and encodes it, so the JPEG carries one component like the upstream
// implementation's "L" mode output.
func encodeJPEG(img image.Image) ([]byte, error) {
	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, gray, nil); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// envOr falls back only when the variable is unset. An explicitly empty
// IMAGE_URL reaches the "no image URL provided" guard; an empty WIDTH or
// HEIGHT fails integer parsing like any other malformed value.
func envOr(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
