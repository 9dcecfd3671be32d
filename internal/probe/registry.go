package probe

import "fmt"

// Registration binds a probe to its readiness role.
type Registration struct {
	Probe Probe
	// Required probes gate readiness; the rest are informational.
	Required bool
}

// Registry holds probes in declared order. Names are unique.
type Registry struct {
	regs  []Registration
	names map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]int)}
}

// Register appends p. It fails if a probe with the same name exists.
func (r *Registry) Register(p Probe, required bool) error {
	if p == nil {
		return fmt.Errorf("nil probe")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("probe name must not be empty")
	}
	if _, dup := r.names[name]; dup {
		return fmt.Errorf("probe %q already registered", name)
	}
	r.names[name] = len(r.regs)
	r.regs = append(r.regs, Registration{Probe: p, Required: required})
	return nil
}

// MustRegister is Register that panics on error. Used for static registries.
func (r *Registry) MustRegister(p Probe, required bool) {
	if err := r.Register(p, required); err != nil {
		panic(err)
	}
}

// Registrations returns a copy of the registrations in declared order.
func (r *Registry) Registrations() []Registration {
	return append([]Registration(nil), r.regs...)
}

// Lookup finds a registration by probe name.
func (r *Registry) Lookup(name string) (Registration, bool) {
	i, ok := r.names[name]
	if !ok {
		return Registration{}, false
	}
	return r.regs[i], true
}

// Len returns the number of registered probes.
func (r *Registry) Len() int {
	return len(r.regs)
}
