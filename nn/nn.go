// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/mlutil/internal/nn"
)

// Module is the common interface of all modules.
type Module = nn.Module

// Parameter is a trainable tensor of a module.
type Parameter = nn.Parameter

// NewParameter wraps t as a trainable parameter.
func NewParameter(name string, t *Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Activations

// ReLU applies max(0, x).
type ReLU = nn.ReLU

// NewReLU creates a ReLU module.
func NewReLU() *ReLU { return nn.NewReLU() }

// Sigmoid applies 1 / (1 + exp(-x)).
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid module.
func NewSigmoid() *Sigmoid { return nn.NewSigmoid() }

// Tanh applies the hyperbolic tangent.
type Tanh = nn.Tanh

// NewTanh creates a Tanh module.
func NewTanh() *Tanh { return nn.NewTanh() }

// Softmax normalizes along a dimension.
type Softmax = nn.Softmax

// NewSoftmax creates a Softmax over dim.
func NewSoftmax(dim int) *Softmax { return nn.NewSoftmax(dim) }

// LogSoftmax computes log(softmax(x)) along a dimension.
type LogSoftmax = nn.LogSoftmax

// NewLogSoftmax creates a LogSoftmax over dim.
func NewLogSoftmax(dim int) *LogSoftmax { return nn.NewLogSoftmax(dim) }

// PReLU applies max(x, a*x) with learned slopes.
type PReLU = nn.PReLU

// NewPReLU creates a PReLU with numParameters slopes set to init.
func NewPReLU(numParameters int, init float64) (*PReLU, error) {
	return nn.NewPReLU(numParameters, init)
}

// LeakyReLU applies max(x, alpha*x).
type LeakyReLU = nn.LeakyReLU

// NewLeakyReLU creates a LeakyReLU with slope 0.01.
func NewLeakyReLU() *LeakyReLU { return nn.NewLeakyReLU() }

// ELU is the exponential linear unit.
type ELU = nn.ELU

// NewELU creates an ELU with alpha 1.
func NewELU() *ELU { return nn.NewELU() }

// GELU is the Gaussian error linear unit.
type GELU = nn.GELU

// NewGELU creates a GELU module.
func NewGELU() *GELU { return nn.NewGELU() }

// SiLU applies x * sigmoid(x).
type SiLU = nn.SiLU

// NewSiLU creates a SiLU module.
func NewSiLU() *SiLU { return nn.NewSiLU() }

// Softplus is a smooth approximation of ReLU.
type Softplus = nn.Softplus

// NewSoftplus creates a Softplus with beta 1 and threshold 20.
func NewSoftplus() *Softplus { return nn.NewSoftplus() }

// Identity returns its input.
type Identity = nn.Identity

// NewIdentity creates an Identity module.
func NewIdentity() *Identity { return nn.NewIdentity() }
