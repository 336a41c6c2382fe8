package nn

import "fmt"

type specKind int

const (
	specNone specKind = iota
	specName
	specNames
	specModule
)

// ActivationSpec describes which activation to build: one name, a list of
// names, or an already built module. Create it with Name, Names or Prebuilt.
type ActivationSpec struct {
	kind   specKind
	names  []string
	module Module
}

// Name specifies a single activation by registry name.
func Name(name string) ActivationSpec {
	return ActivationSpec{kind: specName, names: []string{name}}
}

// Names specifies one activation per layer.
func Names(names ...string) ActivationSpec {
	return ActivationSpec{kind: specNames, names: names}
}

// Prebuilt passes an existing module through resolution unchanged.
func Prebuilt(m Module) ActivationSpec {
	return ActivationSpec{kind: specModule, module: m}
}

// Activations is the result of resolving an ActivationSpec: a single module
// for Name and Prebuilt, a list for Names.
type Activations struct {
	modules []Module
	list    bool
}

// IsList reports whether a list of names was resolved.
func (a Activations) IsList() bool {
	return a.list
}

// Module returns the single resolved module, or the first one of a list.
func (a Activations) Module() Module {
	if len(a.modules) == 0 {
		return nil
	}
	return a.modules[0]
}

// All returns every resolved module in order.
func (a Activations) All() []Module {
	return a.modules
}

// Len returns the number of resolved modules.
func (a Activations) Len() int {
	return len(a.modules)
}

// Resolve builds the activations described by spec.
//
// A single name takes at most one width. A list of names takes either no
// widths, or exactly one per name (the zero Units meaning no width).
// "prelu" needs a width and gets PReLU(width) with slopes of 0.1.
func (r *Registry) Resolve(spec ActivationSpec, units ...Units) (Activations, error) {
	switch spec.kind {
	case specModule:
		return Activations{modules: []Module{spec.module}}, nil

	case specName:
		if len(units) > 1 {
			return Activations{}, fmt.Errorf("%w: 1 activation, %d widths", ErrLengthMismatch, len(units))
		}
		var u Units
		if len(units) == 1 {
			u = units[0]
		}
		m, err := r.Build(spec.names[0], u)
		if err != nil {
			return Activations{}, err
		}
		return Activations{modules: []Module{m}}, nil

	case specNames:
		if len(units) > 0 && len(units) != len(spec.names) {
			return Activations{}, fmt.Errorf("%w: %d activations, %d widths", ErrLengthMismatch, len(spec.names), len(units))
		}
		modules := make([]Module, len(spec.names))
		for i, name := range spec.names {
			var u Units
			if len(units) > 0 {
				u = units[i]
			}
			m, err := r.Build(name, u)
			if err != nil {
				return Activations{}, fmt.Errorf("activation %d: %w", i, err)
			}
			modules[i] = m
		}
		return Activations{modules: modules, list: true}, nil

	default:
		return Activations{}, fmt.Errorf("%w: empty activation spec", ErrUnsupportedActivation)
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by GetActivation.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// GetActivation resolves spec against the default registry.
//
// Example:
//
//	act, err := nn.GetActivation(nn.Name("relu"))
//	acts, err := nn.GetActivation(nn.Names("relu", "prelu"), nn.Units{}, nn.Width(8))
func GetActivation(spec ActivationSpec, units ...Units) (Activations, error) {
	return defaultRegistry.Resolve(spec, units...)
}
