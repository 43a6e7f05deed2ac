package plan

import (
	"errors"
	"strings"
	"testing"

	"github.com/delega-dev/delega/internal/specialist"
)

// nameSet is a test Resolver.
type nameSet map[string]bool

func (s nameSet) Contains(name string) bool { return s[name] }

func TestParse_Valid(t *testing.T) {
	raw := `[
		{"agent": "Research", "task": "find stats"},
		{"agent": "Copywriting", "task": "write headline"}
	]`

	p, err := Parse(raw, nameSet{"Research": true, "Copywriting": true})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(p) != 2 {
		t.Fatalf("Expected 2 steps, got %d", len(p))
	}
	if p[0].Specialist != "Research" || p[0].Subtask != "find stats" {
		t.Errorf("Step 0 = %+v, want Research/find stats", p[0])
	}
	if p[1].Specialist != "Copywriting" || p[1].Subtask != "write headline" {
		t.Errorf("Step 1 = %+v, want Copywriting/write headline", p[1])
	}
}

func TestParse_FencedWithProse(t *testing.T) {
	raw := "Sure, here is the plan:\n```json\n" +
		`[{"agent":"Research","task":"find stats"},{"agent":"Copy","task":"write headline"}]` +
		"\n```"

	p, err := Parse(raw, nameSet{"Research": true, "Copy": true})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(p) != 2 {
		t.Fatalf("Expected 2 steps, got %d", len(p))
	}
	if p[0].Specialist != "Research" || p[0].Subtask != "find stats" {
		t.Errorf("Step 0 = %+v", p[0])
	}
	if p[1].Specialist != "Copy" || p[1].Subtask != "write headline" {
		t.Errorf("Step 1 = %+v", p[1])
	}
}

func TestParse_KeyAliases(t *testing.T) {
	known := nameSet{"Research": true}

	tests := []struct {
		name string
		raw  string
	}{
		{"agent/task", `[{"agent": "Research", "task": "dig"}]`},
		{"agent_name/subtask", `[{"agent_name": "Research", "subtask": "dig"}]`},
		{"specialist/description", `[{"specialist": "Research", "description": "dig"}]`},
		{"mixed", `[{"specialist": "Research", "task": "dig"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.raw, known)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(p) != 1 {
				t.Fatalf("Expected 1 step, got %d", len(p))
			}
			if p[0].Specialist != "Research" || p[0].Subtask != "dig" {
				t.Errorf("Step = %+v, want Research/dig", p[0])
			}
		})
	}
}

func TestParse_EmptyArray(t *testing.T) {
	p, err := Parse("[]", nameSet{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !p.Empty() {
		t.Errorf("Expected empty plan, got %d steps", len(p))
	}
}

func TestParse_NoArray(t *testing.T) {
	_, err := Parse("I could not produce a plan.", nameSet{})
	if err == nil {
		t.Fatal("Expected error for response without JSON array")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Error = %T, want *FormatError", err)
	}
	if !strings.Contains(fe.Reason, "no JSON array") {
		t.Errorf("Reason = %q, should mention missing JSON array", fe.Reason)
	}
}

func TestParse_MissingSubtask(t *testing.T) {
	raw := `[{"agent": "Research", "task": "dig"}, {"agent": "Research"}]`

	_, err := Parse(raw, nameSet{"Research": true})
	if err == nil {
		t.Fatal("Expected error for element missing subtask")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Error = %T, want *FormatError", err)
	}
	if !strings.Contains(fe.Reason, "element 1") {
		t.Errorf("Reason = %q, should name element 1", fe.Reason)
	}
}

func TestParse_MissingName(t *testing.T) {
	_, err := Parse(`[{"task": "dig"}]`, nameSet{"Research": true})
	if err == nil {
		t.Fatal("Expected error for element missing specialist name")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Error = %T, want *FormatError", err)
	}
}

func TestParse_BlankSubtask(t *testing.T) {
	_, err := Parse(`[{"agent": "Research", "task": "   "}]`, nameSet{"Research": true})
	if err == nil {
		t.Fatal("Expected error for whitespace-only subtask")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Error = %T, want *FormatError", err)
	}
}

func TestParse_UnknownSpecialist(t *testing.T) {
	raw := `[{"agent": "Research", "task": "dig"}, {"agent": "Mystery", "task": "vanish"}]`

	_, err := Parse(raw, nameSet{"Research": true})
	if err == nil {
		t.Fatal("Expected error for unknown specialist")
	}
	if !errors.Is(err, specialist.ErrUnknownSpecialist) {
		t.Errorf("Error = %v, want ErrUnknownSpecialist in chain", err)
	}
	if !strings.Contains(err.Error(), "Mystery") {
		t.Errorf("Error = %q, should name the unknown specialist", err.Error())
	}
}

func TestParse_NameIsCaseSensitive(t *testing.T) {
	_, err := Parse(`[{"agent": "research", "task": "dig"}]`, nameSet{"Research": true})
	if !errors.Is(err, specialist.ErrUnknownSpecialist) {
		t.Errorf("Expected ErrUnknownSpecialist for case mismatch, got %v", err)
	}
}

func TestParse_ElementNotObject(t *testing.T) {
	_, err := Parse(`[42]`, nameSet{})
	if err == nil {
		t.Fatal("Expected error for non-object element")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Error = %T, want *FormatError", err)
	}
}

func TestParse_DuplicateNamesAllowed(t *testing.T) {
	raw := `[
		{"agent": "Research", "task": "first pass"},
		{"agent": "Research", "task": "second pass"}
	]`

	p, err := Parse(raw, nameSet{"Research": true})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(p) != 2 {
		t.Fatalf("Expected 2 steps, got %d", len(p))
	}
	if p[0].Subtask != "first pass" || p[1].Subtask != "second pass" {
		t.Errorf("Step order not preserved: %+v", p)
	}
}

func TestParse_TrimsFields(t *testing.T) {
	p, err := Parse(`[{"agent": "  Research  ", "task": "  dig  "}]`, nameSet{"Research": true})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p[0].Specialist != "Research" || p[0].Subtask != "dig" {
		t.Errorf("Fields not trimmed: %+v", p[0])
	}
}

func TestFormatError_Message(t *testing.T) {
	err := &FormatError{Reason: "no JSON array found in response", Raw: "blah"}
	if !strings.Contains(err.Error(), "invalid plan") {
		t.Errorf("Error = %q, should contain 'invalid plan'", err.Error())
	}
	if !strings.Contains(err.Error(), "blah") {
		t.Errorf("Error = %q, should include raw preview", err.Error())
	}
}
