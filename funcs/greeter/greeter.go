// Package greeter implements the built-in greeting function. It reads a
// name from the environment and emits a single JSON document on stdout.
package greeter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
)

// Timestamp is the fixed instant stamped on every greeting. Upstream emits
// this literal rather than the wall clock, and callers depend on it.
const Timestamp = "2023-01-16T12:34:56Z"

// DefaultName is used when NAME is unset or empty.
const DefaultName = "World"

// Result is the greeting payload.
type Result struct {
	Message     string      `json:"message"`
	Timestamp   string      `json:"timestamp"`
	Environment Environment `json:"environment"`
}

// Environment describes the runtime the function executed on.
type Environment struct {
	RuntimeVersion string `json:"runtime_version"`
	Platform       string `json:"platform"`
}

// Build constructs the greeting for the given name. An empty name falls
// back to DefaultName.
func Build(name string) Result {
	if name == "" {
		name = DefaultName
	}
	return Result{
		Message:   fmt.Sprintf("Hello, %s!", name),
		Timestamp: Timestamp,
		Environment: Environment{
			RuntimeVersion: runtime.Version(),
			Platform:       runtime.GOOS,
		},
	}
}

// FromEnv builds the greeting from the NAME environment variable.
func FromEnv() Result {
	return Build(os.Getenv("NAME"))
}

// Render writes the result as pretty-printed JSON followed by a newline.
func Render(w io.Writer, res Result) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
