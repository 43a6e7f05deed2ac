// Package plan defines the structured delegation plan and the parser that
// extracts it from raw model output.
package plan

// Step assigns one subtask to a named specialist.
type Step struct {
	// Specialist is the registry name the subtask is assigned to.
	Specialist string `json:"agent"`
	// Subtask is the work description delegated to the specialist.
	Subtask string `json:"task"`
}

// Plan is an ordered sequence of steps. The sequence order is the
// execution order; an empty plan is valid and means no delegated work.
type Plan []Step

// Empty reports whether the plan contains no steps.
func (p Plan) Empty() bool {
	return len(p) == 0
}
