package models

import "time"

// Invocation is one execution of a built-in function, persisted in the
// function_invocations table.
type Invocation struct {
	ID           int64                  `json:"id"`
	FunctionName string                 `json:"function_name"`
	InvokedAt    time.Time              `json:"invoked_at"`
	InvokedBy    string                 `json:"invoked_by,omitempty"`
	InputEvent   map[string]string      `json:"input_event"`
	Status       string                 `json:"status"`
	OutputResult map[string]interface{} `json:"output_result,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Logs         string                 `json:"logs,omitempty"`
	DurationMs   int                    `json:"duration_ms"`
	ArtifactKey  string                 `json:"artifact_key,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// Invocation status constants.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusTimeout = "timeout"
	StatusPending = "pending"
)

// InvokeResponse is returned when polling an invocation.
type InvokeResponse struct {
	Status       string                 `json:"status"`
	FunctionName string                 `json:"function_name"`
	InvocationID int64                  `json:"invocation_id"`
	InputEvent   map[string]string      `json:"input_event"`
	Result       map[string]interface{} `json:"result,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	ArtifactKey  string                 `json:"artifact_key,omitempty"`
	DurationMs   int                    `json:"duration_ms"`
	LoggedAt     time.Time              `json:"logged_at"`
}

// InvocationListItem is the list-view projection of an invocation.
type InvocationListItem struct {
	ID           int64                  `json:"id"`
	FunctionName string                 `json:"function_name"`
	InvokedAt    time.Time              `json:"invoked_at"`
	InputEvent   map[string]string      `json:"input_event"`
	Status       string                 `json:"status"`
	OutputResult map[string]interface{} `json:"output_result,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	ArtifactKey  string                 `json:"artifact_key,omitempty"`
	DurationMs   int                    `json:"duration_ms"`
}
