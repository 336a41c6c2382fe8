package batch

import (
	"errors"
	"testing"

	"github.com/born-ml/mlutil/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryDevice keeps uploads in host memory behind a device identity.
type memoryDevice struct {
	buffers map[int][]byte
	next    int
	fail    bool
}

func (m *memoryDevice) Device() tensor.Device {
	return tensor.Device{Type: tensor.WebGPU}
}

func (m *memoryDevice) Upload(raw *tensor.RawTensor) (*tensor.RawTensor, error) {
	if m.fail {
		return nil, errors.New("out of memory")
	}
	m.next++
	m.buffers[m.next] = append([]byte(nil), raw.Data()...)
	buf := tensor.NewDeviceBuffer(m.next, uint64(raw.ByteSize()), m)
	return tensor.NewDeviceRaw(raw.Shape(), raw.DType(), m.Device(), buf)
}

func (m *memoryDevice) ReadBuffer(handle any, _ uint64) ([]byte, error) {
	return m.buffers[handle.(int)], nil
}

func (m *memoryDevice) ReleaseBuffer(handle any) {
	delete(m.buffers, handle.(int))
}

func TestToDevice(t *testing.T) {
	dev := &memoryDevice{buffers: map[int][]byte{}}
	users, err := tensor.FromSlice([]int64{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	labels, err := tensor.FromSlice([]float32{0, 1, 1}, tensor.Shape{3})
	require.NoError(t, err)

	b := Batch{
		"user_id": users,
		"label":   labels,
		"title":   []string{"a", "b", "c"},
		"step":    7,
	}

	got, err := ToDevice(b, dev)
	require.NoError(t, err)

	assert.Equal(t, dev.Device(), got["user_id"].(*tensor.Tensor).Device())
	assert.Equal(t, dev.Device(), got["label"].(*tensor.Tensor).Device())
	assert.Equal(t, []string{"a", "b", "c"}, got["title"])
	assert.Equal(t, 7, got["step"])
	assert.Len(t, dev.buffers, 2)

	// Same map, updated in place.
	assert.Equal(t, dev.Device(), b["label"].(*tensor.Tensor).Device())

	back, err := got["label"].(*tensor.Tensor).CPU()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, back.Float64s())
}

func TestToDeviceError(t *testing.T) {
	dev := &memoryDevice{buffers: map[int][]byte{}, fail: true}
	x, err := tensor.FromSlice([]float32{1}, tensor.Shape{1})
	require.NoError(t, err)

	_, err = ToDevice(Batch{"x": x}, dev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `batch field "x"`)
}

func TestTensors(t *testing.T) {
	x, _ := tensor.Zeros(tensor.Shape{1}, tensor.Float32)
	y, _ := tensor.Zeros(tensor.Shape{1}, tensor.Float32)
	b := Batch{"y": y, "x": x, "n": 1}
	assert.Equal(t, []string{"x", "y"}, b.Tensors())
}
