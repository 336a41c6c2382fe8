package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

// FromSlice creates a host tensor from a Go slice. The slice is copied.
func FromSlice[T DType](data []T, shape Shape) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, dataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	copy(typedView[T](raw), data)
	return New(raw), nil
}

// Values returns a copy of the host tensor's elements as []T.
// T must match the tensor's dtype.
func Values[T DType](t *Tensor) ([]T, error) {
	if want := dataTypeOf[T](); t.DType() != want {
		return nil, fmt.Errorf("tensor dtype is %s, not %s", t.DType(), want)
	}
	if !t.Device().IsHost() {
		return nil, fmt.Errorf("tensor data lives on %s", t.Device())
	}
	out := make([]T, t.NumElements())
	copy(out, typedView[T](t.raw))
	return out, nil
}

func typedView[T DType](raw *RawTensor) []T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(raw.AsFloat32()).([]T)
	case float64:
		return any(raw.AsFloat64()).([]T)
	case int32:
		return any(raw.AsInt32()).([]T)
	case int64:
		return any(raw.AsInt64()).([]T)
	case uint8:
		return any(raw.AsUint8()).([]T)
	case bool:
		return any(raw.AsBool()).([]T)
	default:
		panic(fmt.Sprintf("unsupported element type %T", zero))
	}
}

// Zeros creates a zero-filled host tensor.
func Zeros(shape Shape, dtype DataType) (*Tensor, error) {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	return New(raw), nil
}

// Full creates a float tensor filled with value.
func Full(shape Shape, value float64, dtype DataType) (*Tensor, error) {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = float32(value)
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = value
		}
	default:
		return nil, fmt.Errorf("Full: unsupported dtype %s", dtype)
	}
	return New(raw), nil
}

// Rand creates a float tensor with values uniform in [0, 1) drawn from rng.
func Rand(shape Shape, dtype DataType, rng *rand.Rand) (*Tensor, error) {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = rng.Float32()
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = rng.Float64()
		}
	default:
		return nil, fmt.Errorf("Rand: unsupported dtype %s", dtype)
	}
	return New(raw), nil
}

// Randn creates a float tensor with standard normal values drawn from rng.
// Uses the Box-Muller transform so results depend only on the rng's uniform stream.
func Randn(shape Shape, dtype DataType, rng *rand.Rand) (*Tensor, error) {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	normal := func() float64 {
		u1 := rng.Float64()
		for u1 == 0 {
			u1 = rng.Float64()
		}
		u2 := rng.Float64()
		return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	}
	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = float32(normal())
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = normal()
		}
	default:
		return nil, fmt.Errorf("Randn: unsupported dtype %s", dtype)
	}
	return New(raw), nil
}
