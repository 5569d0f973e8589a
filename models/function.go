package models

import (
	"time"
)

// BuiltinFunction describes one of the platform's bundled functions. The
// registry seeds these at startup; there is no user-supplied code.
type BuiltinFunction struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Runtime      string     `json:"runtime"`
	Command      []string   `json:"command"`
	Params       []EnvParam `json:"params,omitempty"`
	RegisteredAt time.Time  `json:"registered_at"`
	LastInvoked  *time.Time `json:"last_invoked,omitempty"`
}

// EnvParam declares an environment variable a built-in function reads.
type EnvParam struct {
	Key         string `json:"key"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
	Default     string `json:"default,omitempty"`
}

// FunctionListItem is the list-view projection of a built-in function.
type FunctionListItem struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Runtime     string     `json:"runtime"`
	Params      int        `json:"params"`
	LastInvoked *time.Time `json:"last_invoked,omitempty"`
}

// InvokeRequest is the request body for invoking a function. Params become
// environment variables of the function process.
type InvokeRequest struct {
	Params map[string]string `json:"params"`
}
