package domain

// Environments is the fixed, ordered allow-list of permitted deployment
// environments. It is immutable after construction and safe for
// unsynchronized concurrent reads.
type Environments struct {
	names     []string
	permitted map[string]struct{}
}

// NewEnvironments builds the registry from the configured names,
// preserving their order.
func NewEnvironments(names []string) Environments {
	permitted := make(map[string]struct{}, len(names))
	ordered := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := permitted[name]; ok {
			continue
		}
		permitted[name] = struct{}{}
		ordered = append(ordered, name)
	}
	return Environments{names: ordered, permitted: permitted}
}

// IsPermitted reports whether name is a known environment.
func (e Environments) IsPermitted(name string) bool {
	_, ok := e.permitted[name]
	return ok
}

// Names returns the permitted environment names in configured order.
func (e Environments) Names() []string {
	names := make([]string, len(e.names))
	copy(names, e.names)
	return names
}
