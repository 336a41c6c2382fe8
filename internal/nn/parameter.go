package nn

import (
	"github.com/born-ml/mlutil/internal/tensor"
)

// Parameter represents a trainable tensor of a module.
//
// Example:
//
//	slope := nn.NewParameter("weight", weightTensor)
//	w := slope.Tensor()
type Parameter struct {
	name   string
	tensor *tensor.Tensor
}

// NewParameter wraps t as a trainable parameter and marks it for gradients.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	t.RequireGrad()
	return &Parameter{name: name, tensor: t}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the accumulated gradient, or nil before any backward pass.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.tensor.Grad()
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.tensor.SetGrad(nil)
}

// To moves the parameter onto the placer's device in place.
func (p *Parameter) To(dev tensor.Placer) error {
	moved, err := p.tensor.To(dev)
	if err != nil {
		return err
	}
	p.tensor = moved
	return nil
}
