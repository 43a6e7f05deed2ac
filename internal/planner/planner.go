// Package planner generates a delegation plan for a goal with a single
// completion call. Parsing the raw text it returns is the plan package's job.
package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/delega-dev/delega/internal/api"
	"github.com/delega-dev/delega/internal/specialist"
)

// DefaultTemperature is the planning sampling temperature when none is configured.
// Planning wants mostly deterministic output.
const DefaultTemperature = 0.3

// Completer is the completion capability the generator calls exactly once per plan.
type Completer interface {
	Complete(ctx context.Context, req api.CompleteRequest) (string, error)
}

// Config configures a Generator.
type Config struct {
	// Completer performs the planning completion call.
	Completer Completer
	// Model overrides the client default when non-empty.
	Model anthropic.Model
	// Temperature is the planning temperature; nil uses DefaultTemperature.
	Temperature *float64
}

// Generator builds the planning prompt and invokes the completion
// capability once per GeneratePlan call. It performs no retries; retry
// policy belongs to the caller or the completion collaborator.
type Generator struct {
	completer   Completer
	model       anthropic.Model
	temperature float64
}

// New creates a plan generator.
func New(cfg Config) *Generator {
	temp := DefaultTemperature
	if cfg.Temperature != nil {
		temp = *cfg.Temperature
	}
	return &Generator{
		completer:   cfg.Completer,
		model:       cfg.Model,
		temperature: temp,
	}
}

// GeneratePlan produces the raw plan text for a goal given the available
// specialists. The response is expected to contain a JSON array of
// {"agent", "task"} objects but is returned unparsed.
func (g *Generator) GeneratePlan(ctx context.Context, goal string, specialists []specialist.Description) (string, error) {
	temp := g.temperature
	raw, err := g.completer.Complete(ctx, api.CompleteRequest{
		System:      plannerSystemPrompt,
		Prompt:      BuildPrompt(goal, specialists),
		Model:       g.model,
		Temperature: &temp,
	})
	if err != nil {
		return "", fmt.Errorf("generate plan: %w", err)
	}
	return raw, nil
}

// BuildPrompt renders the planning prompt for a goal and specialist set.
func BuildPrompt(goal string, specialists []specialist.Description) string {
	var list strings.Builder
	for _, d := range specialists {
		fmt.Fprintf(&list, "- %s: %s\n", d.Name, d.Description)
	}
	return fmt.Sprintf(planPromptTemplate, goal, strings.TrimRight(list.String(), "\n"))
}
