package tensor

import (
	"errors"
	"fmt"
)

var errReleased = errors.New("device buffer already released")

// Placer moves raw tensors onto a device.
// Implemented by the host device and by accelerators.
type Placer interface {
	Device() Device
	Upload(raw *RawTensor) (*RawTensor, error)
}

// Tensor is a shaped numeric buffer with optional gradient tracking.
//
// Example:
//
//	t, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	gpu, _ := t.To(accelerator)
//	host, _ := gpu.Detach().CPU()
type Tensor struct {
	raw          *RawTensor
	requiresGrad bool
	grad         *Tensor
}

// New wraps a RawTensor.
func New(raw *RawTensor) *Tensor {
	return &Tensor{raw: raw}
}

// Raw returns the underlying RawTensor.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the element type.
func (t *Tensor) DType() DataType {
	return t.raw.DType()
}

// Device returns where the data lives.
func (t *Tensor) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.raw.NumElements()
}

// RequireGrad marks the tensor for gradient tracking and returns it.
func (t *Tensor) RequireGrad() *Tensor {
	t.requiresGrad = true
	return t
}

// RequiresGrad reports whether gradients are tracked.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Grad returns the accumulated gradient, if any.
func (t *Tensor) Grad() *Tensor {
	return t.grad
}

// SetGrad sets the accumulated gradient.
func (t *Tensor) SetGrad(grad *Tensor) {
	t.grad = grad
}

// Detach returns a tensor sharing the same data without gradient tracking.
func (t *Tensor) Detach() *Tensor {
	return &Tensor{raw: t.raw}
}

// To places the tensor on the placer's device.
// A tensor already on that device is returned as is.
func (t *Tensor) To(p Placer) (*Tensor, error) {
	target := p.Device()
	if t.Device() == target {
		return t, nil
	}

	src := t.raw
	if !src.Device().IsHost() {
		host, err := src.ToHost()
		if err != nil {
			return nil, err
		}
		src = host
	}

	raw, err := p.Upload(src)
	if err != nil {
		return nil, fmt.Errorf("move tensor to %s: %w", target, err)
	}
	return &Tensor{raw: raw, requiresGrad: t.requiresGrad}, nil
}

// CPU returns the tensor in host memory, copying from the device when needed.
func (t *Tensor) CPU() (*Tensor, error) {
	if t.Device().IsHost() {
		return t, nil
	}
	raw, err := t.raw.ToHost()
	if err != nil {
		return nil, err
	}
	return &Tensor{raw: raw, requiresGrad: t.requiresGrad}, nil
}

// Float64s copies the elements of a host tensor into a []float64.
func (t *Tensor) Float64s() []float64 {
	return t.raw.Float64s()
}

// Clone returns a deep copy of a host tensor without gradient state.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{raw: t.raw.Clone()}
}

// String returns a short description such as "Tensor[float32](2, 3) on cpu".
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[%s]%s on %s", t.DType(), t.Shape(), t.Device())
}
