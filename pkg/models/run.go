package models

import "time"

// RunStatus represents the current state of an orchestration run.
type RunStatus string

const (
	// RunStatusRunning indicates the run is in progress.
	RunStatusRunning RunStatus = "running"
	// RunStatusDone indicates the run completed successfully.
	RunStatusDone RunStatus = "done"
	// RunStatusFailed indicates the run aborted with an error.
	RunStatusFailed RunStatus = "failed"
)

// Valid returns true if the status is a known value.
func (s RunStatus) Valid() bool {
	switch s {
	case RunStatusRunning, RunStatusDone, RunStatusFailed:
		return true
	default:
		return false
	}
}

// RunRecord is the persisted record of a single orchestration run.
type RunRecord struct {
	// ID is the unique identifier for this run.
	ID string `json:"id"`
	// Goal is the high-level objective the run was started with.
	Goal string `json:"goal"`
	// Model is the model identifier used for planning and delegation.
	Model string `json:"model,omitempty"`
	// Status is the current state of the run.
	Status RunStatus `json:"status"`
	// PlanJSON is the validated plan serialized as JSON.
	PlanJSON string `json:"plan_json,omitempty"`
	// ResultJSON is the aggregated result serialized as JSON.
	ResultJSON string `json:"result_json,omitempty"`
	// Error contains the failure message if the run failed.
	Error string `json:"error,omitempty"`
	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`
	// CompletedAt is when the run finished, if it has.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
