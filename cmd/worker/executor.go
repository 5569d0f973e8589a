package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"funcbox/models"
)

// Executor runs a built-in function binary with the invocation params
// exposed as environment variables.
type Executor struct {
	Timeout time.Duration
}

// Run executes the function and returns a coarse status (SUCCESS, ERROR or
// TIMEOUT), the process stdout and its stderr. The function's own
// success/error discrimination happens later, on the parsed JSON document.
func (e *Executor) Run(fn models.BuiltinFunction, input map[string]string) (status, output, logs string) {
	cmd := exec.Command(fn.Command[0], fn.Command[1:]...)
	cmd.Env = buildEnv(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	done := make(chan error, 1)
	if err := cmd.Start(); err != nil {
		return "ERROR", fmt.Sprintf("failed to start %s: %v", fn.Command[0], err), ""
	}
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case err := <-done:
		logs = stderr.String()
		if err != nil {
			out := stderr.String()
			if out == "" {
				out = fmt.Sprintf("execution failed: %v", err)
			}
			return "ERROR", out, logs
		}
		return "SUCCESS", strings.TrimSpace(stdout.String()), logs
	case <-time.After(e.Timeout):
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		return "TIMEOUT", fmt.Sprintf("execution timed out after %v", e.Timeout), stderr.String()
	}
}

// buildEnv extends the worker's environment with sanitized invocation
// params. Keys are uppercased and stripped of characters that break env
// syntax, so "name" and "NAME" both reach the function as NAME.
func buildEnv(input map[string]string) []string {
	env := os.Environ()
	for key, value := range input {
		env = append(env, fmt.Sprintf("%s=%s", sanitizeEnvKey(key), value))
	}
	return env
}

var envKeyReplacer = strings.NewReplacer(
	" ", "_",
	"-", "_",
	".", "_",
	",", "_",
	":", "_",
	";", "_",
	"!", "_",
	"?", "_",
	"(", "_",
	")", "_",
	"[", "_",
	"]", "_",
	"{", "_",
	"}", "_",
	"\"", "_",
	"'", "_",
	"`", "_",
	"=", "_",
)

func sanitizeEnvKey(name string) string {
	return strings.ToUpper(envKeyReplacer.Replace(name))
}
