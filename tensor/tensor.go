// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor types of mlutil.
//
// The package re-exports the core types:
//   - Tensor: shaped numeric buffer with device placement and gradient flag
//   - RawTensor: untyped storage behind a Tensor
//   - Shape, DataType, Device: core type definitions
//   - Format: NumPy-style text rendering used by experiment.Check
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	text, _ := tensor.Format(x, 20)
package tensor

import (
	"math/rand"

	"github.com/born-ml/mlutil/internal/tensor"
)

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType identifies the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Int32   = tensor.Int32
	Int64   = tensor.Int64
	Uint8   = tensor.Uint8
	Bool    = tensor.Bool
)

// DeviceType is the kind of device tensor data lives on.
type DeviceType = tensor.DeviceType

// Device type constants.
const (
	CPU    = tensor.CPU
	CUDA   = tensor.CUDA
	Vulkan = tensor.Vulkan
	Metal  = tensor.Metal
	WebGPU = tensor.WebGPU
)

// Device identifies one device, e.g. "cpu" or "webgpu:1".
type Device = tensor.Device

// Host is the CPU device.
var Host = tensor.Host

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} is a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a shaped numeric buffer with optional gradient tracking.
type Tensor = tensor.Tensor

// RawTensor is the untyped representation behind a Tensor.
type RawTensor = tensor.RawTensor

// Placer moves raw tensors onto a device.
type Placer = tensor.Placer

// Storage is device memory behind a device-resident RawTensor.
type Storage = tensor.Storage

// EdgeItems is the number of leading and trailing entries Format keeps per axis.
const EdgeItems = tensor.EdgeItems

// ParseDevice parses identifiers such as "cpu", "webgpu" or "cuda:1".
func ParseDevice(id string) (Device, error) {
	return tensor.ParseDevice(id)
}

// FromSlice creates a host tensor from a copy of data.
func FromSlice[T DType](data []T, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Values returns a copy of a host tensor's elements.
func Values[T DType](t *Tensor) ([]T, error) {
	return tensor.Values[T](t)
}

// Zeros creates a zero-filled host tensor.
func Zeros(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.Zeros(shape, dtype)
}

// Full creates a float tensor filled with value.
func Full(shape Shape, value float64, dtype DataType) (*Tensor, error) {
	return tensor.Full(shape, value, dtype)
}

// Rand creates a float tensor uniform in [0, 1) drawn from rng.
func Rand(shape Shape, dtype DataType, rng *rand.Rand) (*Tensor, error) {
	return tensor.Rand(shape, dtype, rng)
}

// Randn creates a float tensor of standard normal values drawn from rng.
func Randn(shape Shape, dtype DataType, rng *rand.Rand) (*Tensor, error) {
	return tensor.Randn(shape, dtype, rng)
}

// Format renders a host tensor as bracketed rows, summarizing tensors with
// more than threshold elements. A negative threshold never summarizes.
func Format(t *Tensor, threshold int) (string, error) {
	return tensor.Format(t, threshold)
}
