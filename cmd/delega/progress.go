package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/delega-dev/delega/internal/orchestrator"
	"github.com/delega-dev/delega/internal/plan"
)

// consoleSink renders orchestration events as colored progress lines.
// It implements orchestrator.EventSink and never affects control flow.
type consoleSink struct {
	w io.Writer
}

func newConsoleSink(w io.Writer) *consoleSink {
	return &consoleSink{w: w}
}

func (s *consoleSink) Transition(from, to orchestrator.State) {
	switch to {
	case orchestrator.StatePlanning:
		fmt.Fprintf(s.w, "%s planning...\n", color.CyanString("→"))
	case orchestrator.StateFailed:
		fmt.Fprintf(s.w, "%s failed during %s\n", color.RedString("✗"), from)
	}
}

func (s *consoleSink) PlanGenerated(raw string) {}

func (s *consoleSink) PlanValidated(p plan.Plan) {
	if p.Empty() {
		fmt.Fprintf(s.w, "%s plan is empty: no delegated work required\n", color.GreenString("✓"))
		return
	}
	fmt.Fprintf(s.w, "%s plan validated: %d steps\n", color.GreenString("✓"), len(p))
	for i, step := range p {
		fmt.Fprintf(s.w, "    %d. %s — %s\n", i+1, color.New(color.Bold).Sprint(step.Specialist), step.Subtask)
	}
}

func (s *consoleSink) StepStarted(i int, step plan.Step) {
	fmt.Fprintf(s.w, "%s step %d: %s working...\n", color.CyanString("→"), i+1, step.Specialist)
}

func (s *consoleSink) StepCompleted(i int, result orchestrator.StepResult) {
	fmt.Fprintf(s.w, "%s step %d: %s done\n", color.GreenString("✓"), i+1, result.Specialist)
}

func (s *consoleSink) StepFailed(i int, step plan.Step, err error) {
	fmt.Fprintf(s.w, "%s step %d: %s failed: %v\n", color.RedString("✗"), i+1, step.Specialist, err)
}

func (s *consoleSink) Completed(agg *orchestrator.Aggregate) {}
