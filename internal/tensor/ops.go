package tensor

import (
	"fmt"
	"math"
)

// unary applies f element-wise to a float host tensor and returns a new tensor.
func unary(name string, x *RawTensor, f func(float64) float64) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: input tensor is nil", name)
	}
	if !x.Device().IsHost() {
		return nil, fmt.Errorf("%s: tensor lives on %s, move it to the host first", name, x.Device())
	}
	result, err := NewRaw(x.shape, x.dtype)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	switch x.dtype {
	case Float32:
		in := x.AsFloat32()
		out := result.AsFloat32()
		for i := range in {
			out[i] = float32(f(float64(in[i])))
		}
	case Float64:
		in := x.AsFloat64()
		out := result.AsFloat64()
		for i := range in {
			out[i] = f(in[i])
		}
	default:
		return nil, fmt.Errorf("%s: unsupported dtype %v", name, x.dtype)
	}
	return result, nil
}

// ReLU applies max(x, 0) element-wise.
func ReLU(x *RawTensor) (*RawTensor, error) {
	return unary("ReLU", x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// LeakyReLU applies max(x, alpha*x) element-wise.
func LeakyReLU(x *RawTensor, alpha float64) (*RawTensor, error) {
	return unary("LeakyReLU", x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return alpha * v
	})
}

// ELU applies x for x > 0 and alpha*(exp(x)-1) otherwise.
func ELU(x *RawTensor, alpha float64) (*RawTensor, error) {
	return unary("ELU", x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return alpha * (math.Exp(v) - 1)
	})
}

// Sigmoid applies 1/(1+exp(-x)) element-wise.
func Sigmoid(x *RawTensor) (*RawTensor, error) {
	return unary("Sigmoid", x, sigmoid)
}

// Tanh applies the hyperbolic tangent element-wise.
func Tanh(x *RawTensor) (*RawTensor, error) {
	return unary("Tanh", x, math.Tanh)
}

// SiLU applies x * sigmoid(x) element-wise.
func SiLU(x *RawTensor) (*RawTensor, error) {
	return unary("SiLU", x, func(v float64) float64 { return v * sigmoid(v) })
}

// GELU applies the tanh approximation 0.5*x*(1+tanh(sqrt(2/pi)*(x+0.044715*x^3))).
func GELU(x *RawTensor) (*RawTensor, error) {
	const sqrt2OverPi = 0.7978845608028654
	const coeff = 0.044715
	return unary("GELU", x, func(v float64) float64 {
		return 0.5 * v * (1 + math.Tanh(sqrt2OverPi*(v+coeff*v*v*v)))
	})
}

// Softplus applies log(1+exp(beta*x))/beta, reverting to x above threshold for stability.
func Softplus(x *RawTensor, beta, threshold float64) (*RawTensor, error) {
	return unary("Softplus", x, func(v float64) float64 {
		if beta*v > threshold {
			return v
		}
		return math.Log1p(math.Exp(beta*v)) / beta
	})
}

func sigmoid(v float64) float64 {
	return 1.0 / (1.0 + math.Exp(-v))
}

// PReLU applies max(x, a*x) with a learned slope.
// A slope with one element is shared; otherwise it holds one value per channel,
// where the channel dimension is dimension 1 of the input.
func PReLU(x, slope *RawTensor) (*RawTensor, error) {
	if x == nil || slope == nil {
		return nil, fmt.Errorf("PReLU: input tensors cannot be nil")
	}
	if !slope.Device().IsHost() {
		return nil, fmt.Errorf("PReLU: slope lives on %s, move it to the host first", slope.Device())
	}
	a := slope.Float64s()
	if len(a) == 0 {
		return nil, fmt.Errorf("PReLU: slope is empty")
	}

	channels, stride := 1, 1
	if len(a) > 1 {
		if len(x.shape) < 2 {
			return nil, fmt.Errorf("PReLU: %d slopes need an input with a channel dimension, got shape %v", len(a), x.shape)
		}
		if x.shape[1] != len(a) {
			return nil, fmt.Errorf("PReLU: %d slopes do not match %d channels", len(a), x.shape[1])
		}
		channels, stride = x.shape[1], x.strides[1]
	}

	i := 0
	return unary("PReLU", x, func(v float64) float64 {
		c := (i / stride) % channels
		i++
		if v > 0 {
			return v
		}
		return a[c] * v
	})
}

// Softmax normalizes exp(x) along axis. Negative axes count from the end.
func Softmax(x *RawTensor, axis int) (*RawTensor, error) {
	return softmax("Softmax", x, axis, false)
}

// LogSoftmax computes log(softmax(x)) along axis using the log-sum-exp trick.
func LogSoftmax(x *RawTensor, axis int) (*RawTensor, error) {
	return softmax("LogSoftmax", x, axis, true)
}

func softmax(name string, x *RawTensor, axis int, logSpace bool) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: input tensor is nil", name)
	}
	if !x.Device().IsHost() {
		return nil, fmt.Errorf("%s: tensor lives on %s, move it to the host first", name, x.Device())
	}
	if !x.dtype.IsFloat() {
		return nil, fmt.Errorf("%s: unsupported dtype %v", name, x.dtype)
	}
	if axis < 0 {
		axis += len(x.shape)
	}
	if axis < 0 || axis >= len(x.shape) {
		return nil, fmt.Errorf("%s: axis %d out of range for tensor with %d dimensions", name, axis, len(x.shape))
	}

	// Work in float64 and convert back through the element-wise path.
	in := x.Float64s()
	out := make([]float64, len(in))

	outer := 1
	for i := 0; i < axis; i++ {
		outer *= x.shape[i]
	}
	size := x.shape[axis]
	inner := 1
	for i := axis + 1; i < len(x.shape); i++ {
		inner *= x.shape[i]
	}

	for o := 0; o < outer; o++ {
		for n := 0; n < inner; n++ {
			base := o*size*inner + n
			maxVal := math.Inf(-1)
			for a := 0; a < size; a++ {
				maxVal = math.Max(maxVal, in[base+a*inner])
			}
			sum := 0.0
			for a := 0; a < size; a++ {
				sum += math.Exp(in[base+a*inner] - maxVal)
			}
			for a := 0; a < size; a++ {
				idx := base + a*inner
				if logSpace {
					out[idx] = in[idx] - maxVal - math.Log(sum)
				} else {
					out[idx] = math.Exp(in[idx]-maxVal) / sum
				}
			}
		}
	}

	i := 0
	return unary(name, x, func(float64) float64 {
		v := out[i]
		i++
		return v
	})
}
