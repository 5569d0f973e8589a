package models

// ExecutionRequest is the job pushed onto the Redis execution queue. The
// worker resolves the function by name against its own registry; the input
// map is handed to the function process as environment variables.
type ExecutionRequest struct {
	InvocationID int64             `json:"invocationId"`
	FunctionName string            `json:"function"`
	Input        map[string]string `json:"input"`
}

// ExecutionResult is what the worker stores in Redis once a run finishes.
// Status is one of SUCCESS, ERROR or TIMEOUT; Output is the parsed JSON
// document the function printed, OutputRaw the unparsed stdout.
type ExecutionResult struct {
	InvocationID int64                  `json:"invocationId"`
	Status       string                 `json:"status"`
	Output       map[string]interface{} `json:"output,omitempty"`
	OutputRaw    string                 `json:"outputRaw,omitempty"`
	ErrorMessage string                 `json:"errorMessage,omitempty"`
	Logs         string                 `json:"logs,omitempty"`
	DurationMs   int                    `json:"durationMs"`
}
