package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is the untyped tensor representation.
// Host tensors own a byte buffer; device tensors hold a Storage handle instead
// and must be brought back with ToHost before their data can be read.
type RawTensor struct {
	data    []byte
	shape   Shape
	strides []int
	dtype   DataType
	device  Device
	storage Storage
}

// NewRaw allocates a zero-filled host tensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &RawTensor{
		data:    make([]byte, shape.NumElements()*dtype.Size()),
		shape:   shape.Clone(),
		strides: shape.Strides(),
		dtype:   dtype,
		device:  Host,
	}, nil
}

// NewDeviceRaw wraps device-resident data. The tensor has no host buffer.
func NewDeviceRaw(shape Shape, dtype DataType, device Device, storage Storage) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if storage == nil {
		return nil, fmt.Errorf("device tensor on %s requires storage", device)
	}
	return &RawTensor{
		shape:   shape.Clone(),
		strides: shape.Strides(),
		dtype:   dtype,
		device:  device,
		storage: storage,
	}, nil
}

// Shape returns the tensor's dimensions.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the row-major strides.
func (r *RawTensor) Strides() []int {
	return r.strides
}

// DType returns the element type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns where the data lives.
func (r *RawTensor) Device() Device {
	return r.device
}

// Storage returns the device handle, or nil for host tensors.
func (r *RawTensor) Storage() Storage {
	return r.storage
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the size of the data in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the host bytes.
// Panics for device tensors; call ToHost first.
func (r *RawTensor) Data() []byte {
	r.mustBeHost()
	return r.data
}

// ToHost returns a host copy of a device tensor, or r itself when already on the host.
func (r *RawTensor) ToHost() (*RawTensor, error) {
	if r.device.IsHost() {
		return r, nil
	}
	if r.storage == nil {
		return nil, fmt.Errorf("read %s tensor: %w", r.device, errReleased)
	}
	data, err := r.storage.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s tensor: %w", r.device, err)
	}
	if len(data) < r.ByteSize() {
		return nil, fmt.Errorf("read %s tensor: got %d bytes, want %d", r.device, len(data), r.ByteSize())
	}
	host, err := NewRaw(r.shape, r.dtype)
	if err != nil {
		return nil, err
	}
	copy(host.data, data[:r.ByteSize()])
	return host, nil
}

// Release frees device memory held by the tensor. Host tensors are unaffected.
func (r *RawTensor) Release() {
	if r.storage != nil {
		r.storage.Release()
		r.storage = nil
	}
}

// Clone returns a deep copy of a host tensor.
func (r *RawTensor) Clone() *RawTensor {
	r.mustBeHost()
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:    data,
		shape:   r.shape.Clone(),
		strides: append([]int(nil), r.strides...),
		dtype:   r.dtype,
		device:  r.device,
	}
}

func (r *RawTensor) mustBeHost() {
	if !r.device.IsHost() {
		panic(fmt.Sprintf("tensor data lives on %s, move it to the host first", r.device))
	}
}

func (r *RawTensor) checkType(want DataType) {
	r.mustBeHost()
	if r.dtype != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, want))
	}
}

// AsFloat32 views the data as []float32. Panics on dtype mismatch.
func (r *RawTensor) AsFloat32() []float32 {
	r.checkType(Float32)
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // zero-copy view, length bounded by NumElements
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 views the data as []float64. Panics on dtype mismatch.
func (r *RawTensor) AsFloat64() []float64 {
	r.checkType(Float64)
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // zero-copy view, length bounded by NumElements
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsInt32 views the data as []int32. Panics on dtype mismatch.
func (r *RawTensor) AsInt32() []int32 {
	r.checkType(Int32)
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // zero-copy view, length bounded by NumElements
	return unsafe.Slice((*int32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsInt64 views the data as []int64. Panics on dtype mismatch.
func (r *RawTensor) AsInt64() []int64 {
	r.checkType(Int64)
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // zero-copy view, length bounded by NumElements
	return unsafe.Slice((*int64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsUint8 views the data as []uint8. Panics on dtype mismatch.
func (r *RawTensor) AsUint8() []uint8 {
	r.checkType(Uint8)
	return r.data
}

// AsBool views the data as []bool. Panics on dtype mismatch.
func (r *RawTensor) AsBool() []bool {
	r.checkType(Bool)
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // zero-copy view, length bounded by NumElements
	return unsafe.Slice((*bool)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Float64s copies the elements into a new []float64 regardless of dtype.
// Bool elements become 0 or 1.
func (r *RawTensor) Float64s() []float64 {
	out := make([]float64, r.NumElements())
	switch r.dtype {
	case Float32:
		for i, v := range r.AsFloat32() {
			out[i] = float64(v)
		}
	case Float64:
		copy(out, r.AsFloat64())
	case Int32:
		for i, v := range r.AsInt32() {
			out[i] = float64(v)
		}
	case Int64:
		for i, v := range r.AsInt64() {
			out[i] = float64(v)
		}
	case Uint8:
		for i, v := range r.AsUint8() {
			out[i] = float64(v)
		}
	case Bool:
		for i, v := range r.AsBool() {
			if v {
				out[i] = 1
			}
		}
	}
	return out
}
