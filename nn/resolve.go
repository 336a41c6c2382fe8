// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/mlutil/internal/nn"
	"github.com/born-ml/mlutil/internal/tensor"
)

// Tensor is the tensor type modules operate on.
type Tensor = tensor.Tensor

// Resolution errors.
var (
	ErrWidthRequired         = nn.ErrWidthRequired
	ErrLengthMismatch        = nn.ErrLengthMismatch
	ErrUnsupportedActivation = nn.ErrUnsupportedActivation
)

// UnsupportedActivationError reports an unknown activation name.
type UnsupportedActivationError = nn.UnsupportedActivationError

// ActivationSpec names one activation, a list of them, or wraps a built module.
type ActivationSpec = nn.ActivationSpec

// Activations is the result of GetActivation.
type Activations = nn.Activations

// Units is an optional layer width; the zero value means none.
type Units = nn.Units

// Constructor builds an activation for an optional width.
type Constructor = nn.Constructor

// Registry maps activation names to constructors.
type Registry = nn.Registry

// Name specifies one activation by name (case-insensitive).
func Name(name string) ActivationSpec { return nn.Name(name) }

// Names specifies one activation per layer.
func Names(names ...string) ActivationSpec { return nn.Names(names...) }

// Prebuilt passes an existing module through GetActivation unchanged.
func Prebuilt(m Module) ActivationSpec { return nn.Prebuilt(m) }

// Width returns Units holding n.
func Width(n int) Units { return nn.Width(n) }

// NewRegistry creates a registry with the built-in activations.
func NewRegistry() *Registry { return nn.NewRegistry() }

// DefaultRegistry returns the registry GetActivation uses.
// Custom names registered on it become visible to GetActivation.
func DefaultRegistry() *Registry { return nn.DefaultRegistry() }

// GetActivation resolves spec into activation modules.
//
// Example:
//
//	act, err := nn.GetActivation(nn.Name("prelu"), nn.Width(64))
func GetActivation(spec ActivationSpec, units ...Units) (Activations, error) {
	return nn.GetActivation(spec, units...)
}
