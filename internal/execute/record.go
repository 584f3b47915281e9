// Package execute turns submitted command lines into tracked executions. Each
// submission gets one ExecutionRecord that moves queued -> executing ->
// completed|failed; terminal records are never mutated again.
package execute

import "time"

// Status is the lifecycle position of an ExecutionRecord.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusExecuting Status = "executing"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether a record in this status will never change again.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// ExecutionRecord is one submitted command instance and its lifecycle data.
type ExecutionRecord struct {
	ID            string
	InputText     string
	CommandName   string
	Parameters    map[string]string
	Status        Status
	IssuedAt      time.Time
	CompletedAt   time.Time
	ResultPayload string
	ErrorMessage  string
}
