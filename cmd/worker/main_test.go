package main

import (
	"strings"
	"testing"
	"time"

	"funcbox/models"
	"funcbox/services"
)

func newTestRegistry(t *testing.T, fns ...models.BuiltinFunction) *services.Registry {
	t.Helper()
	registry := services.NewRegistry()
	for _, fn := range fns {
		if err := registry.Register(fn); err != nil {
			t.Fatalf("register %s: %v", fn.Name, err)
		}
	}
	return registry
}

func TestExecutePromotesErrorStatus(t *testing.T) {
	// Function binaries always exit 0; a failed run announces itself only
	// through the status field of the printed JSON.
	registry := newTestRegistry(t, models.BuiltinFunction{
		Name:    "failing",
		Command: []string{"/bin/sh", "-c", `echo '{"error":"boom","status":"error"}'`},
	})
	executor := &Executor{Timeout: 5 * time.Second}

	result := execute(registry, executor, &models.ExecutionRequest{
		InvocationID: 1,
		FunctionName: "failing",
	})
	if result.Status != "ERROR" {
		t.Fatalf("unexpected status: %s", result.Status)
	}
	if result.ErrorMessage != "boom" {
		t.Fatalf("unexpected error message: %q", result.ErrorMessage)
	}
	if got := result.Output["status"]; got != "error" {
		t.Fatalf("parsed output should keep the status field, got %v", got)
	}
}

func TestExecuteParsesJSONOutput(t *testing.T) {
	registry := newTestRegistry(t, models.BuiltinFunction{
		Name:    "greeting",
		Command: []string{"/bin/echo", `{"message":"Hello, World!"}`},
	})
	executor := &Executor{Timeout: 5 * time.Second}

	result := execute(registry, executor, &models.ExecutionRequest{
		InvocationID: 2,
		FunctionName: "greeting",
	})
	if result.Status != "SUCCESS" {
		t.Fatalf("unexpected status: %s (error %q)", result.Status, result.ErrorMessage)
	}
	if got := result.Output["message"]; got != "Hello, World!" {
		t.Fatalf("unexpected parsed output: %v", result.Output)
	}
}

func TestExecuteNonJSONOutputFallback(t *testing.T) {
	registry := newTestRegistry(t, models.BuiltinFunction{
		Name:    "plain",
		Command: []string{"/bin/echo", "not json"},
	})
	executor := &Executor{Timeout: 5 * time.Second}

	result := execute(registry, executor, &models.ExecutionRequest{
		InvocationID: 3,
		FunctionName: "plain",
	})
	if result.Status != "SUCCESS" {
		t.Fatalf("unexpected status: %s", result.Status)
	}
	if got := result.Output["result"]; got != "not json" {
		t.Fatalf("non-JSON stdout should land under the result key, got %v", result.Output)
	}
	if result.OutputRaw != "not json" {
		t.Fatalf("unexpected raw output: %q", result.OutputRaw)
	}
}

func TestExecuteUnknownFunction(t *testing.T) {
	registry := newTestRegistry(t)
	executor := &Executor{Timeout: time.Second}

	result := execute(registry, executor, &models.ExecutionRequest{
		InvocationID: 4,
		FunctionName: "ghost",
	})
	if result.Status != "ERROR" {
		t.Fatalf("unexpected status: %s", result.Status)
	}
	if !strings.Contains(result.ErrorMessage, "not found") {
		t.Fatalf("unexpected error message: %q", result.ErrorMessage)
	}
}
