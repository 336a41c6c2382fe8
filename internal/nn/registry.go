package nn

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Errors returned while resolving activations.
var (
	ErrWidthRequired         = errors.New("activation requires an integer width")
	ErrLengthMismatch        = errors.New("activation and width counts differ")
	ErrUnsupportedActivation = errors.New("unsupported activation")
)

// UnsupportedActivationError reports a name missing from the registry.
// It matches ErrUnsupportedActivation with errors.Is.
type UnsupportedActivationError struct {
	Name string
}

func (e *UnsupportedActivationError) Error() string {
	return fmt.Sprintf("unsupported activation: %s", e.Name)
}

// Is reports whether target is ErrUnsupportedActivation.
func (e *UnsupportedActivationError) Is(target error) bool {
	return target == ErrUnsupportedActivation
}

// Units is an optional layer width handed to activation constructors.
// The zero value means no width.
type Units struct {
	n   int
	set bool
}

// Width returns Units holding n.
func Width(n int) Units {
	return Units{n: n, set: true}
}

// Get returns the width and whether one was given.
func (u Units) Get() (int, bool) {
	return u.n, u.set
}

func (u Units) String() string {
	if !u.set {
		return "none"
	}
	return fmt.Sprint(u.n)
}

// Constructor builds an activation module for an optional width.
type Constructor func(units Units) (Module, error)

// Registry maps lower-case activation names to constructors.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry creates a registry holding the built-in activations.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[string]Constructor)}
	r.registerBuiltins()
	return r
}

func stateless(newModule func() Module) Constructor {
	return func(Units) (Module, error) { return newModule(), nil }
}

func (r *Registry) registerBuiltins() {
	r.Register("relu", stateless(func() Module { return NewReLU() }))
	r.Register("sigmoid", stateless(func() Module { return NewSigmoid() }))
	r.Register("tanh", stateless(func() Module { return NewTanh() }))
	r.Register("softmax", stateless(func() Module { return NewSoftmax(-1) }))
	r.Register("prelu", func(u Units) (Module, error) {
		n, ok := u.Get()
		if !ok {
			return nil, fmt.Errorf("prelu: %w", ErrWidthRequired)
		}
		return NewPReLU(n, 0.1)
	})

	r.Register("leakyrelu", stateless(func() Module { return NewLeakyReLU() }))
	r.Register("elu", stateless(func() Module { return NewELU() }))
	r.Register("gelu", stateless(func() Module { return NewGELU() }))
	r.Register("silu", stateless(func() Module { return NewSiLU() }))
	r.Register("swish", stateless(func() Module { return NewSiLU() }))
	r.Register("softplus", stateless(func() Module { return NewSoftplus() }))
	r.Register("logsoftmax", stateless(func() Module { return NewLogSoftmax(-1) }))
	r.Register("identity", stateless(func() Module { return NewIdentity() }))
}

// Register adds or replaces a constructor. Names are case-insensitive.
func (r *Registry) Register(name string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[normalize(name)] = ctor
}

// Get returns the constructor for name.
func (r *Registry) Get(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[normalize(name)]
	return ctor, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named activation.
func (r *Registry) Build(name string, units Units) (Module, error) {
	ctor, ok := r.Get(name)
	if !ok {
		return nil, &UnsupportedActivationError{Name: name}
	}
	return ctor(units)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
