package diag

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlutil/internal/tensor"
)

func TestCheck(t *testing.T) {
	log, hook := test.NewNullLogger()

	w, err := tensor.FromSlice([]float32{1, -2.5, 0, 3}, tensor.Shape{2, 2})
	require.NoError(t, err)
	w.RequireGrad()

	err = Check(log, Item{Label: "weight", Tensor: w})
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "", entries[0].Message)
	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Equal(t, "weight\t(2, 2)\n[[ 1.  -2.5]\n [ 0.   3. ]]\n", entries[1].Message)

	assert.True(t, w.RequiresGrad(), "input must keep gradient tracking")
}

func TestCheckSummarizes(t *testing.T) {
	log, hook := test.NewNullLogger()

	vals := make([]int64, 30)
	for i := range vals {
		vals[i] = int64(i)
	}
	x, err := tensor.FromSlice(vals, tensor.Shape{30})
	require.NoError(t, err)

	require.NoError(t, Check(log, Item{Label: "ids", Tensor: x}))
	msg := hook.LastEntry().Message
	assert.True(t, strings.HasPrefix(msg, "ids\t(30,)\n"))
	assert.Contains(t, msg, "...")
}

func TestCheckMultipleItems(t *testing.T) {
	log, hook := test.NewNullLogger()
	a, _ := tensor.Zeros(tensor.Shape{1}, tensor.Float32)
	b, _ := tensor.Zeros(tensor.Shape{2}, tensor.Int64)

	require.NoError(t, Check(log, Item{Label: "a", Tensor: a}, Item{Label: "b", Tensor: b}))
	assert.Len(t, hook.AllEntries(), 3)
}

type brokenStorage struct{}

func (brokenStorage) Read() ([]byte, error) { return nil, errors.New("device lost") }
func (brokenStorage) Release()              {}

func TestCheckPropagatesConversionError(t *testing.T) {
	log, _ := test.NewNullLogger()
	raw, err := tensor.NewDeviceRaw(tensor.Shape{2}, tensor.Float32, tensor.Device{Type: tensor.WebGPU}, brokenStorage{})
	require.NoError(t, err)

	err = Check(log, Item{Label: "gpu", Tensor: tensor.New(raw)})
	assert.ErrorContains(t, err, "device lost")
}

func TestCheckNilTensor(t *testing.T) {
	log, hook := test.NewNullLogger()
	ok, _ := tensor.Zeros(tensor.Shape{1}, tensor.Float32)

	var err error
	assert.NotPanics(t, func() {
		err = Check(log, Item{Label: "ok", Tensor: ok}, Item{Label: "w"})
	})
	assert.ErrorContains(t, err, `"w"`)
	assert.ErrorContains(t, err, "nil tensor")
	assert.Len(t, hook.AllEntries(), 2)
}
