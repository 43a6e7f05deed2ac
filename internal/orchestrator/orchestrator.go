// Package orchestrator composes the plan-generate, parse-validate,
// delegate, and aggregate stages into a single run.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/delega-dev/delega/internal/plan"
	"github.com/delega-dev/delega/internal/specialist"
)

// State identifies a phase of an orchestration run.
type State string

const (
	// StateIdle is the state before a run starts.
	StateIdle State = "idle"
	// StatePlanning covers the single plan-generation call.
	StatePlanning State = "planning"
	// StateValidating covers parsing and validating the raw plan.
	StateValidating State = "validating"
	// StateDelegating covers sequential execution of plan steps.
	StateDelegating State = "delegating"
	// StateAggregating covers folding step results into the aggregate.
	StateAggregating State = "aggregating"
	// StateDone is the successful terminal state.
	StateDone State = "done"
	// StateFailed is the failure terminal state, reachable from any state.
	StateFailed State = "failed"
)

// Valid returns true if the state is a known value.
func (s State) Valid() bool {
	switch s {
	case StateIdle, StatePlanning, StateValidating, StateDelegating,
		StateAggregating, StateDone, StateFailed:
		return true
	default:
		return false
	}
}

// Planner produces raw plan text for a goal.
type Planner interface {
	GeneratePlan(ctx context.Context, goal string, specialists []specialist.Description) (string, error)
}

// Config configures an Orchestrator.
type Config struct {
	// Registry defines which specialist names a plan may reference.
	Registry *specialist.Registry
	// Planner generates the raw plan text.
	Planner Planner
	// Events receives advisory observability events; nil discards them.
	Events EventSink
}

// Orchestrator requests a plan for a goal, validates it, delegates each
// step in order, and aggregates the results.
//
// It holds no run-scoped state; the registry and planner are fixed at
// construction, so one instance is reusable across sequential or
// concurrent runs as long as the specialists are reentrant.
type Orchestrator struct {
	registry *specialist.Registry
	planner  Planner
	events   EventSink
}

// New creates an orchestrator over the given registry and planner.
func New(cfg Config) *Orchestrator {
	events := cfg.Events
	if events == nil {
		events = NopSink{}
	}
	return &Orchestrator{
		registry: cfg.Registry,
		planner:  cfg.Planner,
		events:   events,
	}
}

// StepResult records one completed delegation.
type StepResult struct {
	// Specialist is the name of the specialist that performed the step.
	Specialist string `json:"agent"`
	// Subtask is the delegated work description.
	Subtask string `json:"task"`
	// Output is the specialist's text result.
	Output string `json:"output"`
}

// RunResult is the outcome of a completed run.
type RunResult struct {
	// Plan is the validated plan that was executed.
	Plan plan.Plan
	// Steps holds per-step results in execution order.
	Steps []StepResult
	// Aggregate maps specialist names to their outputs.
	Aggregate *Aggregate
}

// PlanJSON returns the executed plan serialized as JSON.
func (r *RunResult) PlanJSON() (string, error) {
	data, err := json.Marshal(r.Plan)
	if err != nil {
		return "", fmt.Errorf("marshal plan: %w", err)
	}
	return string(data), nil
}

// Run executes the full pipeline for a goal.
//
// A planning failure, an invalid plan, or any step failure aborts the run:
// no partial aggregation is ever returned. Duplicate specialist names in
// the plan aggregate as ordered output lists, never overwriting earlier
// results. Cancellation is the caller's concern; wrapping ctx with a
// timeout is the only supported abort mechanism.
func (o *Orchestrator) Run(ctx context.Context, goal string) (*RunResult, error) {
	o.events.Transition(StateIdle, StatePlanning)
	raw, err := o.planner.GeneratePlan(ctx, goal, o.registry.DescribeAll())
	if err != nil {
		return nil, o.fail(StatePlanning, fmt.Errorf("planning: %w", err))
	}
	o.events.PlanGenerated(raw)

	o.events.Transition(StatePlanning, StateValidating)
	p, err := plan.Parse(raw, o.registry)
	if err != nil {
		return nil, o.fail(StateValidating, fmt.Errorf("validating plan: %w", err))
	}
	o.events.PlanValidated(p)

	o.events.Transition(StateValidating, StateDelegating)
	steps := make([]StepResult, 0, len(p))
	for i, step := range p {
		o.events.StepStarted(i, step)

		// Validation already resolved every name; a miss here means the
		// registry and validator disagree.
		sp, err := o.registry.Resolve(step.Specialist)
		if err != nil {
			err = fmt.Errorf("internal: step %d passed validation but failed resolution: %w", i+1, err)
			o.events.StepFailed(i, step, err)
			return nil, o.fail(StateDelegating, err)
		}

		output, err := sp.Perform(ctx, DelegationPrompt(goal, step.Subtask))
		if err != nil {
			err = fmt.Errorf("step %d/%d (%s): %w", i+1, len(p), step.Specialist, err)
			o.events.StepFailed(i, step, err)
			return nil, o.fail(StateDelegating, err)
		}

		result := StepResult{Specialist: step.Specialist, Subtask: step.Subtask, Output: output}
		steps = append(steps, result)
		o.events.StepCompleted(i, result)
	}

	o.events.Transition(StateDelegating, StateAggregating)
	agg := NewAggregate()
	for _, result := range steps {
		agg.Add(result.Specialist, result.Output)
	}

	o.events.Transition(StateAggregating, StateDone)
	o.events.Completed(agg)

	return &RunResult{Plan: p, Steps: steps, Aggregate: agg}, nil
}

// fail emits the transition into the failure state and passes the error through.
func (o *Orchestrator) fail(from State, err error) error {
	o.events.Transition(from, StateFailed)
	return err
}

// DelegationPrompt frames a subtask with the overall goal as context.
func DelegationPrompt(goal, subtask string) string {
	return fmt.Sprintf("Subtask: %s\n\nContext: the overall goal is %q. Perform your role on this specific subtask.", subtask, goal)
}
