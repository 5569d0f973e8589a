package models

import "time"

// FunctionSchedule is a one-time scheduled invocation of a built-in
// function.
type FunctionSchedule struct {
	ID           int64             `json:"id"`
	FunctionName string            `json:"function_name"`
	ScheduledAt  time.Time         `json:"scheduled_at"`
	Payload      map[string]string `json:"payload"`
	Executed     bool              `json:"executed"`
	ExecutedAt   *time.Time        `json:"executed_at,omitempty"`
	Status       string            `json:"status,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// CreateScheduleRequest registers a new schedule.
type CreateScheduleRequest struct {
	ScheduledAt time.Time         `json:"scheduled_at"`
	Payload     map[string]string `json:"payload"`
}
