package specialist

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName indicates a name was registered twice.
	ErrDuplicateName = errors.New("specialist name already registered")
	// ErrUnknownSpecialist indicates a name absent from the registry.
	ErrUnknownSpecialist = errors.New("unknown specialist")
)

// Description pairs a specialist name with its capability summary.
type Description struct {
	Name        string
	Description string
}

// Registry is an ordered mapping from specialist name to Specialist.
// Names are case-sensitive exact-match identifiers. The registry is
// populated at construction time and read-only afterwards, so lookups
// need no locking; concurrent runs may share one instance as long as
// the registered specialists are reentrant.
type Registry struct {
	order  []string
	byName map[string]Specialist
}

// NewRegistry creates a registry containing the given specialists in order.
func NewRegistry(specialists ...Specialist) (*Registry, error) {
	r := &Registry{byName: make(map[string]Specialist, len(specialists))}
	for _, s := range specialists {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a specialist under its name.
// It fails with ErrDuplicateName if the name is already present.
func (r *Registry) Register(s Specialist) error {
	name := s.Name()
	if name == "" {
		return fmt.Errorf("specialist has empty name")
	}
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.byName[name] = s
	r.order = append(r.order, name)
	return nil
}

// Resolve returns the specialist registered under name.
// It fails with ErrUnknownSpecialist if the name is absent.
func (r *Registry) Resolve(name string) (Specialist, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecialist, name)
	}
	return s, nil
}

// Contains reports whether name is registered.
func (r *Registry) Contains(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// DescribeAll returns (name, description) pairs in registration order,
// used to render the planning prompt.
func (r *Registry) DescribeAll() []Description {
	descs := make([]Description, 0, len(r.order))
	for _, name := range r.order {
		descs = append(descs, Description{
			Name:        name,
			Description: r.byName[name].Description(),
		})
	}
	return descs
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered specialists.
func (r *Registry) Len() int {
	return len(r.order)
}
