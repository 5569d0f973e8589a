package main

import (
	"strings"
	"testing"
	"time"

	"funcbox/models"
)

func TestExecutorRunSuccess(t *testing.T) {
	e := &Executor{Timeout: 5 * time.Second}
	fn := models.BuiltinFunction{
		Name:    "echo",
		Command: []string{"/bin/echo", `{"message":"hi"}`},
	}

	status, output, _ := e.Run(fn, nil)
	if status != "SUCCESS" {
		t.Fatalf("unexpected status: %s (output %q)", status, output)
	}
	if output != `{"message":"hi"}` {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestExecutorPassesEnv(t *testing.T) {
	e := &Executor{Timeout: 5 * time.Second}
	fn := models.BuiltinFunction{
		Name:    "env-echo",
		Command: []string{"/bin/sh", "-c", "echo $NAME"},
	}

	status, output, _ := e.Run(fn, map[string]string{"name": "Ada"})
	if status != "SUCCESS" {
		t.Fatalf("unexpected status: %s", status)
	}
	if output != "Ada" {
		t.Fatalf("sanitized env should uppercase the key, got output %q", output)
	}
}

func TestExecutorTimeout(t *testing.T) {
	e := &Executor{Timeout: 100 * time.Millisecond}
	fn := models.BuiltinFunction{
		Name:    "sleeper",
		Command: []string{"/bin/sleep", "10"},
	}

	status, output, _ := e.Run(fn, nil)
	if status != "TIMEOUT" {
		t.Fatalf("unexpected status: %s", status)
	}
	if !strings.Contains(output, "timed out") {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestExecutorMissingBinary(t *testing.T) {
	e := &Executor{Timeout: time.Second}
	fn := models.BuiltinFunction{
		Name:    "ghost",
		Command: []string{"/nonexistent/binary"},
	}

	status, _, _ := e.Run(fn, nil)
	if status != "ERROR" {
		t.Fatalf("unexpected status: %s", status)
	}
}

func TestSanitizeEnvKey(t *testing.T) {
	cases := map[string]string{
		"name":      "NAME",
		"image url": "IMAGE_URL",
		"a-b.c":     "A_B_C",
		"WIDTH":     "WIDTH",
		`weird="x"`: "WEIRD___X_",
	}
	for in, want := range cases {
		if got := sanitizeEnvKey(in); got != want {
			t.Fatalf("sanitizeEnvKey(%q) = %q, want %q", in, got, want)
		}
	}
}
