package plan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/delega-dev/delega/internal/specialist"
)

// FormatError reports raw planning text that could not be parsed into a plan:
// no JSON array present, or an array element failing schema validation.
type FormatError struct {
	// Reason describes what failed.
	Reason string
	// Raw is a truncated preview of the offending text.
	Raw string
}

func (e *FormatError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("invalid plan: %s", e.Reason)
	}
	return fmt.Sprintf("invalid plan: %s (raw: %q)", e.Reason, e.Raw)
}

// Accepted key spellings for the two required fields, consulted in order.
// Models vary in how they name these; the alias tables keep the accepted
// set declarative and easy to extend.
var (
	specialistKeys = []string{"agent", "agent_name", "specialist"}
	subtaskKeys    = []string{"task", "subtask", "description"}
)

// Resolver reports whether a specialist name is known.
// *specialist.Registry satisfies it.
type Resolver interface {
	Contains(name string) bool
}

// Parse extracts a validated Plan from raw model output.
//
// The first syntactically valid JSON array substring is used; surrounding
// prose and code fences are ignored. Every element must carry a specialist
// name and a non-empty subtask under one of the accepted key spellings, and
// the name must exist in the registry. A single invalid element invalidates
// the whole plan. An empty array parses to an empty Plan.
func Parse(raw string, known Resolver) (Plan, error) {
	elements, err := extractArray(raw)
	if err != nil {
		return nil, err
	}

	steps := make(Plan, 0, len(elements))
	for i, element := range elements {
		var fields map[string]any
		if err := json.Unmarshal(element, &fields); err != nil {
			return nil, &FormatError{
				Reason: fmt.Sprintf("element %d is not a JSON object", i),
				Raw:    truncate(string(element), 200),
			}
		}

		name, ok := lookupString(fields, specialistKeys)
		if !ok {
			return nil, &FormatError{
				Reason: fmt.Sprintf("element %d missing specialist name (accepted keys: %s)", i, strings.Join(specialistKeys, ", ")),
				Raw:    truncate(string(element), 200),
			}
		}

		subtask, ok := lookupString(fields, subtaskKeys)
		if !ok {
			return nil, &FormatError{
				Reason: fmt.Sprintf("element %d missing subtask (accepted keys: %s)", i, strings.Join(subtaskKeys, ", ")),
				Raw:    truncate(string(element), 200),
			}
		}

		if !known.Contains(name) {
			return nil, fmt.Errorf("plan element %d: %w: %q", i, specialist.ErrUnknownSpecialist, name)
		}

		steps = append(steps, Step{Specialist: name, Subtask: subtask})
	}

	return steps, nil
}

// extractArray locates the first syntactically valid JSON array in raw and
// returns its elements. The generator may wrap the array in prose or
// markdown code fences; scanning from each '[' handles both.
func extractArray(raw string) ([]json.RawMessage, error) {
	for i := strings.IndexByte(raw, '['); i >= 0 && i < len(raw); i++ {
		if raw[i] != '[' {
			continue
		}
		var elements []json.RawMessage
		dec := json.NewDecoder(strings.NewReader(raw[i:]))
		if err := dec.Decode(&elements); err == nil {
			return elements, nil
		}
	}
	return nil, &FormatError{
		Reason: "no JSON array found in response",
		Raw:    truncate(raw, 500),
	}
}

// lookupString returns the first non-empty string value found under any of
// the candidate keys, trimmed of surrounding whitespace.
func lookupString(fields map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		value, present := fields[key]
		if !present {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s != "" {
			return s, true
		}
	}
	return "", false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "... (truncated)"
}
