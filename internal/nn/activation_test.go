package nn

import (
	"math"
	"testing"

	"github.com/born-ml/mlutil/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input(t *testing.T, vals []float32, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromSlice(vals, shape)
	require.NoError(t, err)
	return x
}

func assertValues(t *testing.T, want []float64, got *tensor.Tensor) {
	t.Helper()
	vals := got.Float64s()
	require.Len(t, vals, len(want))
	for i := range want {
		assert.InDelta(t, want[i], vals[i], 1e-4, "index %d", i)
	}
}

func TestStatelessActivations(t *testing.T) {
	x := []float32{-2, -1, 0, 1, 2}
	sig := func(v float64) float64 { return 1 / (1 + math.Exp(-v)) }

	tests := []struct {
		name   string
		module Module
		want   []float64
	}{
		{"relu", NewReLU(), []float64{0, 0, 0, 1, 2}},
		{"sigmoid", NewSigmoid(), []float64{sig(-2), sig(-1), 0.5, sig(1), sig(2)}},
		{"tanh", NewTanh(), []float64{math.Tanh(-2), math.Tanh(-1), 0, math.Tanh(1), math.Tanh(2)}},
		{"silu", NewSiLU(), []float64{-0.2384, -0.2689, 0, 0.7311, 1.7616}},
		{"leakyrelu", NewLeakyReLU(), []float64{-0.02, -0.01, 0, 1, 2}},
		{"elu", NewELU(), []float64{math.Exp(-2) - 1, math.Exp(-1) - 1, 0, 1, 2}},
		{"softplus", NewSoftplus(), []float64{math.Log1p(math.Exp(-2)), math.Log1p(math.Exp(-1)), math.Log(2), math.Log1p(math.E), math.Log1p(math.Exp(2))}},
		{"identity", NewIdentity(), []float64{-2, -1, 0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.module.Forward(input(t, x, tensor.Shape{5}))
			require.NoError(t, err)
			assert.True(t, out.Shape().Equal(tensor.Shape{5}))
			assertValues(t, tt.want, out)
			assert.Empty(t, tt.module.Parameters())
		})
	}
}

func TestGELU(t *testing.T) {
	out, err := NewGELU().Forward(input(t, []float32{0, 1, -1}, tensor.Shape{3}))
	require.NoError(t, err)
	assertValues(t, []float64{0, 0.8412, -0.1588}, out)
}

func TestSoftmaxLastDim(t *testing.T) {
	x := input(t, []float32{1, 2, 3, 1, 1, 1}, tensor.Shape{2, 3})
	out, err := NewSoftmax(-1).Forward(x)
	require.NoError(t, err)

	vals := out.Float64s()
	assert.InDelta(t, 1.0, vals[0]+vals[1]+vals[2], 1e-6)
	assert.InDelta(t, 1.0/3, vals[3], 1e-6)
	assert.Greater(t, vals[2], vals[1])

	logOut, err := NewLogSoftmax(-1).Forward(x)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(vals[0]), logOut.Float64s()[0], 1e-5)
}

func TestPReLU(t *testing.T) {
	p, err := NewPReLU(3, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumParameters())

	params := p.Parameters()
	require.Len(t, params, 1)
	assert.Equal(t, "weight", params[0].Name())
	assert.True(t, params[0].Tensor().RequiresGrad())
	assertValues(t, []float64{0.1, 0.1, 0.1}, params[0].Tensor())

	x := input(t, []float32{-1, 2, -3, 4, -5, 6}, tensor.Shape{2, 3})
	out, err := p.Forward(x)
	require.NoError(t, err)
	assertValues(t, []float64{-0.1, 2, -0.3, 4, -0.5, 6}, out)

	_, err = p.Forward(input(t, []float32{1, 2}, tensor.Shape{1, 2}))
	assert.Error(t, err, "channel count must match slopes")

	_, err = NewPReLU(0, 0.1)
	assert.Error(t, err)
}

func TestPReLUShared(t *testing.T) {
	p, err := NewPReLU(1, 0.25)
	require.NoError(t, err)
	out, err := p.Forward(input(t, []float32{-4, 4}, tensor.Shape{2}))
	require.NoError(t, err)
	assertValues(t, []float64{-1, 4}, out)
}

func TestForwardRejectsNil(t *testing.T) {
	_, err := NewReLU().Forward(nil)
	assert.Error(t, err)
	_, err = NewIdentity().Forward(nil)
	assert.Error(t, err)
}

func TestSequential(t *testing.T) {
	p, err := NewPReLU(1, 0.5)
	require.NoError(t, err)
	seq := NewSequential(p, NewReLU())
	seq.Add(NewIdentity())
	assert.Equal(t, 3, seq.Len())
	assert.Same(t, p, seq.Module(0))
	assert.Len(t, seq.Parameters(), 1)

	out, err := seq.Forward(input(t, []float32{-2, 3}, tensor.Shape{2}))
	require.NoError(t, err)
	assertValues(t, []float64{0, 3}, out)

	ints, err := tensor.FromSlice([]int64{1}, tensor.Shape{1})
	require.NoError(t, err)
	_, err = seq.Forward(ints)
	assert.ErrorContains(t, err, "sequential layer 0")
}
