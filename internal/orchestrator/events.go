package orchestrator

import "github.com/delega-dev/delega/internal/plan"

// EventSink receives advisory observability events during a run.
// Events never influence control flow; implementations should not block.
type EventSink interface {
	// Transition fires on every state change, including into StateFailed.
	Transition(from, to State)
	// PlanGenerated fires with the raw plan text before validation.
	PlanGenerated(raw string)
	// PlanValidated fires with the parsed plan before delegation begins.
	PlanValidated(p plan.Plan)
	// StepStarted fires before a step is delegated. i is zero-based.
	StepStarted(i int, step plan.Step)
	// StepCompleted fires after a step succeeds.
	StepCompleted(i int, result StepResult)
	// StepFailed fires when a step aborts the run.
	StepFailed(i int, step plan.Step, err error)
	// Completed fires with the final aggregation on success.
	Completed(agg *Aggregate)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Transition(from, to State)                  {}
func (NopSink) PlanGenerated(raw string)                   {}
func (NopSink) PlanValidated(p plan.Plan)                  {}
func (NopSink) StepStarted(i int, step plan.Step)          {}
func (NopSink) StepCompleted(i int, result StepResult)     {}
func (NopSink) StepFailed(i int, step plan.Step, err error) {}
func (NopSink) Completed(agg *Aggregate)                   {}
