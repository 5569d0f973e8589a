// The imageprocessor binary fetches an image, applies the fixed
// resize -> grayscale -> blur pipeline and prints one compact JSON document
// on stdout: the success payload, or {error, status} when anything fails.
// It always exits zero; the status field is the only failure signal.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"funcbox/funcs/imageproc"
)

func main() {
	req := imageproc.RequestFromEnv()
	if req.URL == "" {
		emit(imageproc.ErrorResult{Error: "No image URL provided", Status: "error"})
		return
	}

	proc := &imageproc.Processor{Client: &http.Client{Timeout: fetchTimeout()}}

	res, err := proc.Run(context.Background(), req)
	if err != nil {
		emit(imageproc.ErrorResult{Error: err.Error(), Status: "error"})
		return
	}
	emit(res)
}

// fetchTimeout reads the optional HTTP_TIMEOUT override. The default is
// zero: the fetch blocks indefinitely, matching the reference behavior.
func fetchTimeout() time.Duration {
	raw, exists := os.LookupEnv("HTTP_TIMEOUT")
	if !exists {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}

func emit(v any) {
	out, err := json.Marshal(v)
	if err != nil {
		out = []byte(`{"error":"failed to encode response","status":"error"}`)
	}
	fmt.Println(string(out))
}
