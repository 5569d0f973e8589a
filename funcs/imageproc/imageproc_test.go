package imageproc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

// servePNG returns a test server that serves a small solid-color PNG.
func servePNG(t *testing.T) *httptest.Server {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(4 * x), G: 128, B: uint8(5 * y), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunSuccess(t *testing.T) {
	srv := servePNG(t)
	proc := &Processor{Client: srv.Client()}

	res, err := proc.Run(context.Background(), Request{URL: srv.URL, Width: "100", Height: "150"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if res.Status != "success" {
		t.Fatalf("unexpected status: %q", res.Status)
	}
	if res.OriginalURL != srv.URL {
		t.Fatalf("unexpected original url: %q", res.OriginalURL)
	}
	want := []string{"resize", "grayscale", "blur"}
	if len(res.Transformations) != len(want) {
		t.Fatalf("unexpected transformations: %v", res.Transformations)
	}
	for i, tr := range want {
		if res.Transformations[i] != tr {
			t.Fatalf("transformations[%d] = %q, want %q", i, res.Transformations[i], tr)
		}
	}
	if res.Dimensions.Width != 100 || res.Dimensions.Height != 150 {
		t.Fatalf("unexpected dimensions: %+v", res.Dimensions)
	}

	raw, err := base64.StdEncoding.DecodeString(res.ProcessedImage)
	if err != nil {
		t.Fatalf("processed_image is not valid base64: %v", err)
	}
	decoded, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("processed_image is not a valid JPEG: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 150 {
		t.Fatalf("unexpected output size: %dx%d", bounds.Dx(), bounds.Dy())
	}
	if _, ok := decoded.(*image.Gray); !ok {
		t.Fatalf("expected single-channel grayscale JPEG, got %T", decoded)
	}
}

func TestRunPixelIdempotence(t *testing.T) {
	srv := servePNG(t)
	proc := &Processor{Client: srv.Client()}
	req := Request{URL: srv.URL, Width: "40", Height: "30"}

	first, err := proc.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("first Run error: %v", err)
	}
	second, err := proc.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("second Run error: %v", err)
	}

	a := decodeGray(t, first.ProcessedImage)
	b := decodeGray(t, second.ProcessedImage)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("identical inputs produced different pixels")
	}
}

func decodeGray(t *testing.T, b64 string) *image.Gray {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("expected *image.Gray, got %T", img)
	}
	return gray
}

func TestRunHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	proc := &Processor{Client: srv.Client()}
	_, err := proc.Run(context.Background(), Request{URL: srv.URL, Width: "100", Height: "100"})
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("error should mention the status, got: %v", err)
	}
}

func TestRunMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not an image"))
	}))
	defer srv.Close()

	proc := &Processor{Client: srv.Client()}
	_, err := proc.Run(context.Background(), Request{URL: srv.URL, Width: "100", Height: "100"})
	if err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestRunOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, maxFetchBytes+1))
	}))
	defer srv.Close()

	proc := &Processor{Client: srv.Client()}
	_, err := proc.Run(context.Background(), Request{URL: srv.URL, Width: "100", Height: "100"})
	if err == nil {
		t.Fatalf("expected error for oversized body")
	}
	if !strings.Contains(err.Error(), "byte limit") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunNonIntegerDimensions(t *testing.T) {
	srv := servePNG(t)
	proc := &Processor{Client: srv.Client()}

	if _, err := proc.Run(context.Background(), Request{URL: srv.URL, Width: "abc", Height: "100"}); err == nil {
		t.Fatalf("expected width parse error")
	}
	if _, err := proc.Run(context.Background(), Request{URL: srv.URL, Width: "100", Height: ""}); err == nil {
		t.Fatalf("expected height parse error")
	}
}

func TestRequestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"IMAGE_URL", "WIDTH", "HEIGHT"} {
		t.Setenv(key, "placeholder")
	}
	// t.Setenv restores the originals; clear within the test to exercise the
	// unset path.
	for _, key := range []string{"IMAGE_URL", "WIDTH", "HEIGHT"} {
		unsetenv(t, key)
	}

	req := RequestFromEnv()
	if req.URL != DefaultImageURL {
		t.Fatalf("unexpected default url: %q", req.URL)
	}
	if req.Width != "300" || req.Height != "300" {
		t.Fatalf("unexpected default dimensions: %q x %q", req.Width, req.Height)
	}
}

func TestRequestFromEnvExplicitEmptyURL(t *testing.T) {
	t.Setenv("IMAGE_URL", "")
	if req := RequestFromEnv(); req.URL != "" {
		t.Fatalf("explicitly empty IMAGE_URL must stay empty, got %q", req.URL)
	}
}

func TestResultJSONShape(t *testing.T) {
	res := Result{
		OriginalURL:     "http://example.com/a.png",
		ProcessedImage:  "aGVsbG8=",
		Transformations: []string{"resize", "grayscale", "blur"},
		Dimensions:      Dimensions{Width: 1, Height: 2},
		Status:          "success",
	}
	out, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"original_url"`, `"processed_image"`, `"transformations"`, `"dimensions"`, `"width"`, `"height"`, `"status"`} {
		if !strings.Contains(string(out), key) {
			t.Fatalf("missing key %s in %s", key, out)
		}
	}

	errOut, err := json.Marshal(ErrorResult{Error: "boom", Status: "error"})
	if err != nil {
		t.Fatalf("marshal error result: %v", err)
	}
	if string(errOut) != `{"error":"boom","status":"error"}` {
		t.Fatalf("unexpected error shape: %s", errOut)
	}
}

func unsetenv(t *testing.T, key string) {
	t.Helper()
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
