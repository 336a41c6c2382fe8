package nn

import (
	"fmt"

	"github.com/born-ml/mlutil/internal/tensor"
)

// forward runs a raw element-wise op and wraps the result.
func forward(input *tensor.Tensor, op func(*tensor.RawTensor) (*tensor.RawTensor, error)) (*tensor.Tensor, error) {
	if input == nil {
		return nil, fmt.Errorf("input tensor is nil")
	}
	out, err := op(input.Raw())
	if err != nil {
		return nil, err
	}
	return tensor.New(out), nil
}

// ReLU applies f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a ReLU module.
func NewReLU() *ReLU { return &ReLU{} }

// Forward applies ReLU element-wise.
func (r *ReLU) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, tensor.ReLU)
}

// Parameters returns nil; ReLU has no trainable parameters.
func (r *ReLU) Parameters() []*Parameter { return nil }

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)), squashing values into (0, 1).
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid module.
func NewSigmoid() *Sigmoid { return &Sigmoid{} }

// Forward applies Sigmoid element-wise.
func (s *Sigmoid) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, tensor.Sigmoid)
}

// Parameters returns nil.
func (s *Sigmoid) Parameters() []*Parameter { return nil }

// Tanh applies the hyperbolic tangent.
type Tanh struct{}

// NewTanh creates a Tanh module.
func NewTanh() *Tanh { return &Tanh{} }

// Forward applies Tanh element-wise.
func (t *Tanh) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, tensor.Tanh)
}

// Parameters returns nil.
func (t *Tanh) Parameters() []*Parameter { return nil }

// Softmax normalizes along Dim so each slice sums to 1.
// Negative Dim counts from the last dimension.
type Softmax struct {
	Dim int
}

// NewSoftmax creates a Softmax over dim.
func NewSoftmax(dim int) *Softmax { return &Softmax{Dim: dim} }

// Forward applies Softmax along s.Dim.
func (s *Softmax) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, func(x *tensor.RawTensor) (*tensor.RawTensor, error) {
		return tensor.Softmax(x, s.Dim)
	})
}

// Parameters returns nil.
func (s *Softmax) Parameters() []*Parameter { return nil }

// LogSoftmax computes log(softmax(x)) along Dim.
type LogSoftmax struct {
	Dim int
}

// NewLogSoftmax creates a LogSoftmax over dim.
func NewLogSoftmax(dim int) *LogSoftmax { return &LogSoftmax{Dim: dim} }

// Forward applies LogSoftmax along s.Dim.
func (s *LogSoftmax) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, func(x *tensor.RawTensor) (*tensor.RawTensor, error) {
		return tensor.LogSoftmax(x, s.Dim)
	})
}

// Parameters returns nil.
func (s *LogSoftmax) Parameters() []*Parameter { return nil }

// LeakyReLU applies max(x, Alpha*x).
type LeakyReLU struct {
	Alpha float64
}

// NewLeakyReLU creates a LeakyReLU with the usual 0.01 slope.
func NewLeakyReLU() *LeakyReLU { return &LeakyReLU{Alpha: 0.01} }

// Forward applies LeakyReLU element-wise.
func (l *LeakyReLU) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, func(x *tensor.RawTensor) (*tensor.RawTensor, error) {
		return tensor.LeakyReLU(x, l.Alpha)
	})
}

// Parameters returns nil.
func (l *LeakyReLU) Parameters() []*Parameter { return nil }

// ELU applies x for x > 0 and Alpha*(exp(x)-1) otherwise.
type ELU struct {
	Alpha float64
}

// NewELU creates an ELU with alpha 1.
func NewELU() *ELU { return &ELU{Alpha: 1} }

// Forward applies ELU element-wise.
func (e *ELU) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, func(x *tensor.RawTensor) (*tensor.RawTensor, error) {
		return tensor.ELU(x, e.Alpha)
	})
}

// Parameters returns nil.
func (e *ELU) Parameters() []*Parameter { return nil }

// GELU applies the Gaussian error linear unit (tanh approximation).
type GELU struct{}

// NewGELU creates a GELU module.
func NewGELU() *GELU { return &GELU{} }

// Forward applies GELU element-wise.
func (g *GELU) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, tensor.GELU)
}

// Parameters returns nil.
func (g *GELU) Parameters() []*Parameter { return nil }

// SiLU applies x * sigmoid(x), also known as Swish.
type SiLU struct{}

// NewSiLU creates a SiLU module.
func NewSiLU() *SiLU { return &SiLU{} }

// Forward applies SiLU element-wise.
func (s *SiLU) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, tensor.SiLU)
}

// Parameters returns nil.
func (s *SiLU) Parameters() []*Parameter { return nil }

// Softplus applies log(1+exp(Beta*x))/Beta, linear above Threshold.
type Softplus struct {
	Beta      float64
	Threshold float64
}

// NewSoftplus creates a Softplus with beta 1 and threshold 20.
func NewSoftplus() *Softplus { return &Softplus{Beta: 1, Threshold: 20} }

// Forward applies Softplus element-wise.
func (s *Softplus) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, func(x *tensor.RawTensor) (*tensor.RawTensor, error) {
		return tensor.Softplus(x, s.Beta, s.Threshold)
	})
}

// Parameters returns nil.
func (s *Softplus) Parameters() []*Parameter { return nil }

// Identity returns its input unchanged.
type Identity struct{}

// NewIdentity creates an Identity module.
func NewIdentity() *Identity { return &Identity{} }

// Forward returns input.
func (i *Identity) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	if input == nil {
		return nil, fmt.Errorf("input tensor is nil")
	}
	return input, nil
}

// Parameters returns nil.
func (i *Identity) Parameters() []*Parameter { return nil }

// PReLU applies max(x, a*x) with a learned slope a.
// With one slope it is shared by all channels; otherwise there is one slope
// per channel, channels being dimension 1 of the input.
//
// Example:
//
//	act, _ := nn.NewPReLU(64, 0.1)
//	out, _ := act.Forward(hidden) // hidden: [batch, 64]
type PReLU struct {
	weight *Parameter
}

// NewPReLU creates a PReLU with numParameters slopes, each set to init.
func NewPReLU(numParameters int, init float64) (*PReLU, error) {
	if numParameters < 1 {
		return nil, fmt.Errorf("PReLU: need at least one parameter, got %d", numParameters)
	}
	w, err := tensor.Full(tensor.Shape{numParameters}, init, tensor.Float32)
	if err != nil {
		return nil, fmt.Errorf("PReLU: %w", err)
	}
	return &PReLU{weight: NewParameter("weight", w)}, nil
}

// Weight returns the slope parameter.
func (p *PReLU) Weight() *Parameter {
	return p.weight
}

// NumParameters returns the number of slopes.
func (p *PReLU) NumParameters() int {
	return p.weight.Tensor().NumElements()
}

// Forward applies PReLU element-wise.
func (p *PReLU) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return forward(input, func(x *tensor.RawTensor) (*tensor.RawTensor, error) {
		return tensor.PReLU(x, p.weight.Tensor().Raw())
	})
}

// Parameters returns the slope parameter.
func (p *PReLU) Parameters() []*Parameter {
	return []*Parameter{p.weight}
}
