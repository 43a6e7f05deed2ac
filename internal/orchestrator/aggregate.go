package orchestrator

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Aggregate folds step outputs into a mapping keyed by specialist name.
// Key order follows first appearance in the plan. A specialist appearing
// in multiple steps accumulates an ordered list of outputs; earlier
// outputs are never overwritten.
type Aggregate struct {
	order   []string
	outputs map[string][]string
}

// NewAggregate creates an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{outputs: make(map[string][]string)}
}

// Add appends an output under the given specialist name.
func (a *Aggregate) Add(name, output string) {
	if _, seen := a.outputs[name]; !seen {
		a.order = append(a.order, name)
	}
	a.outputs[name] = append(a.outputs[name], output)
}

// Names returns the specialist names in first-appearance order.
func (a *Aggregate) Names() []string {
	names := make([]string, len(a.order))
	copy(names, a.order)
	return names
}

// Outputs returns the ordered outputs recorded under name.
func (a *Aggregate) Outputs(name string) []string {
	outs := a.outputs[name]
	result := make([]string, len(outs))
	copy(result, outs)
	return result
}

// Len returns the number of distinct specialist names.
func (a *Aggregate) Len() int {
	return len(a.order)
}

// MarshalJSON serializes the aggregate as {name: output | [outputs]}:
// a single output collapses to a bare string, repeated outputs stay an
// array. Keys keep first-appearance order.
func (a *Aggregate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range a.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		outs := a.outputs[name]
		var value any = outs
		if len(outs) == 1 {
			value = outs[0]
		}
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal outputs for %q: %w", name, err)
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
