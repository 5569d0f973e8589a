package greeter

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Ada", "Hello, Ada!"},
		{"", "Hello, World!"},
		{"World", "Hello, World!"},
		{"a b c", "Hello, a b c!"},
	}
	for _, tc := range cases {
		got := Build(tc.name)
		if got.Message != tc.want {
			t.Fatalf("Build(%q).Message = %q, want %q", tc.name, got.Message, tc.want)
		}
	}
}

func TestBuildFixedTimestamp(t *testing.T) {
	res := Build("Ada")
	if res.Timestamp != "2023-01-16T12:34:56Z" {
		t.Fatalf("timestamp must be the fixed literal, got %q", res.Timestamp)
	}
}

func TestBuildEnvironment(t *testing.T) {
	res := Build("Ada")
	if res.Environment.RuntimeVersion != runtime.Version() {
		t.Fatalf("unexpected runtime version: %q", res.Environment.RuntimeVersion)
	}
	if res.Environment.Platform != runtime.GOOS {
		t.Fatalf("unexpected platform: %q", res.Environment.Platform)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("NAME", "Grace")
	if got := FromEnv().Message; got != "Hello, Grace!" {
		t.Fatalf("FromEnv().Message = %q", got)
	}

	t.Setenv("NAME", "")
	if got := FromEnv().Message; got != "Hello, World!" {
		t.Fatalf("empty NAME should default, got %q", got)
	}
}

func TestRenderPrettyPrints(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Build("Ada")); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("output must end with a newline")
	}
	if !strings.Contains(out, "\n  \"message\": \"Hello, Ada!\"") {
		t.Fatalf("expected 2-space indented message field, got:\n%s", out)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	env, ok := decoded["environment"].(map[string]any)
	if !ok {
		t.Fatalf("missing environment object: %v", decoded)
	}
	for _, key := range []string{"runtime_version", "platform"} {
		if _, ok := env[key]; !ok {
			t.Fatalf("missing environment key %q", key)
		}
	}
}
