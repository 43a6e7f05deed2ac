package orchestrator

import (
	"encoding/json"
	"testing"
)

func TestAggregate_MarshalSingleCollapses(t *testing.T) {
	agg := NewAggregate()
	agg.Add("Research", "stats")

	data, err := json.Marshal(agg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Research":"stats"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestAggregate_MarshalRepeatedStaysList(t *testing.T) {
	agg := NewAggregate()
	agg.Add("Research", "first")
	agg.Add("Research", "second")

	data, err := json.Marshal(agg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Research":["first","second"]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestAggregate_MarshalKeyOrder(t *testing.T) {
	agg := NewAggregate()
	agg.Add("Zeta", "z")
	agg.Add("Alpha", "a")
	agg.Add("Zeta", "z2")
	agg.Add("Mid", "m")

	data, err := json.Marshal(agg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Zeta":["z","z2"],"Alpha":"a","Mid":"m"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want first-appearance order %s", data, want)
	}
}

func TestAggregate_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewAggregate())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Marshal = %s, want {}", data)
	}
}

func TestAggregate_OutputsReturnsCopy(t *testing.T) {
	agg := NewAggregate()
	agg.Add("Research", "original")

	outs := agg.Outputs("Research")
	outs[0] = "mutated"

	if got := agg.Outputs("Research")[0]; got != "original" {
		t.Errorf("Outputs = %q after caller mutation, want original preserved", got)
	}
}

func TestAggregate_NamesReturnsCopy(t *testing.T) {
	agg := NewAggregate()
	agg.Add("Research", "r")
	agg.Add("Copy", "c")

	names := agg.Names()
	names[0] = "mutated"

	if got := agg.Names()[0]; got != "Research" {
		t.Errorf("Names = %q after caller mutation, want original preserved", got)
	}
}

func TestAggregate_UnknownNameEmpty(t *testing.T) {
	agg := NewAggregate()
	if outs := agg.Outputs("nobody"); len(outs) != 0 {
		t.Errorf("Outputs for unknown name = %v, want empty", outs)
	}
}
