package nn_test

import (
	"testing"

	"github.com/born-ml/mlutil/nn"
	"github.com/born-ml/mlutil/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActivationPublic(t *testing.T) {
	acts, err := nn.GetActivation(nn.Names("relu", "prelu"), nn.Units{}, nn.Width(8))
	require.NoError(t, err)
	require.Equal(t, 2, acts.Len())

	x, err := tensor.FromSlice([]float32{-1, 1}, tensor.Shape{2})
	require.NoError(t, err)
	out, err := nn.NewSequential(acts.Module()).Forward(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, out.Float64s())

	_, err = nn.GetActivation(nn.Name("nope"))
	assert.ErrorIs(t, err, nn.ErrUnsupportedActivation)
}
