// Package specialist defines the worker capability the orchestrator
// delegates subtasks to, and the registry of available specialists.
package specialist

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/delega-dev/delega/internal/api"
)

// Specialist is a named capability that produces text output for a subtask.
// Implementations must be stateless per invocation; Perform calls on the
// same instance are independent.
type Specialist interface {
	// Name returns the identifier a plan uses to reference this specialist.
	Name() string
	// Description returns the short capability summary used in the planning prompt.
	Description() string
	// Perform executes the subtask and returns the text result.
	Perform(ctx context.Context, subtask string) (string, error)
}

// Completer is the completion capability specialists call into.
type Completer interface {
	Complete(ctx context.Context, req api.CompleteRequest) (string, error)
}

// RoleConfig configures a Role specialist.
type RoleConfig struct {
	// Name is the unique specialist identifier.
	Name string
	// Description is the one-line capability summary for the planning prompt.
	Description string
	// RolePrompt is the fixed role framing sent as the system prompt.
	RolePrompt string
	// Model overrides the client default when non-empty.
	Model anthropic.Model
	// Temperature is the sampling temperature for this specialist.
	Temperature float64
	// Completer performs the underlying completion calls.
	Completer Completer
}

// Role is a Specialist built from a fixed role-framing prompt.
// The framing is part of the specialist's identity and never changes per call.
type Role struct {
	name        string
	description string
	rolePrompt  string
	model       anthropic.Model
	temperature float64
	completer   Completer
}

// NewRole creates a specialist from a role configuration.
func NewRole(cfg RoleConfig) *Role {
	return &Role{
		name:        cfg.Name,
		description: cfg.Description,
		rolePrompt:  cfg.RolePrompt,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		completer:   cfg.Completer,
	}
}

// Name returns the specialist's identifier.
func (r *Role) Name() string {
	return r.name
}

// Description returns the capability summary.
func (r *Role) Description() string {
	return r.description
}

// RolePrompt returns the fixed role framing.
func (r *Role) RolePrompt() string {
	return r.rolePrompt
}

// Perform executes the subtask with the role framing as the system prompt.
func (r *Role) Perform(ctx context.Context, subtask string) (string, error) {
	temp := r.temperature
	output, err := r.completer.Complete(ctx, api.CompleteRequest{
		System:      r.rolePrompt,
		Prompt:      subtask,
		Model:       r.model,
		Temperature: &temp,
	})
	if err != nil {
		return "", fmt.Errorf("specialist %s: %w", r.name, err)
	}
	return output, nil
}
