// Package webgpu places tensors in GPU memory through WebGPU.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO bindings; the native
// wgpu library is loaded at Open time and its absence is reported as ErrNotAvailable.
package webgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/born-ml/mlutil/internal/tensor"
)

// ErrNotAvailable is returned when no WebGPU adapter can be opened.
var ErrNotAvailable = errors.New("webgpu: not available")

// Accelerator owns one WebGPU device and the buffers uploaded to it.
type Accelerator struct {
	index int
	ctx   *gpuContext

	mu     sync.Mutex
	live   int
	closed bool
}

// Open acquires the WebGPU adapter with the given index.
func Open(index int) (*Accelerator, error) {
	if index < 0 {
		return nil, fmt.Errorf("webgpu: invalid adapter index %d", index)
	}
	ctx, err := openContext(index)
	if err != nil {
		return nil, err
	}
	return &Accelerator{index: index, ctx: ctx}, nil
}

// IsAvailable reports whether the default adapter can be opened.
func IsAvailable() bool {
	a, err := Open(0)
	if err != nil {
		return false
	}
	_ = a.Close()
	return true
}

// Device returns the device identifier, e.g. webgpu:0.
func (a *Accelerator) Device() tensor.Device {
	return tensor.Device{Type: tensor.WebGPU, Index: a.index}
}

// Name returns a human-readable device description.
func (a *Accelerator) Name() string {
	return fmt.Sprintf("WebGPU adapter %d", a.index)
}

// LiveBuffers returns the number of uploaded buffers not yet released.
func (a *Accelerator) LiveBuffers() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.live
}

// Upload copies a host tensor into a new GPU buffer.
func (a *Accelerator) Upload(raw *tensor.RawTensor) (*tensor.RawTensor, error) {
	a.mu.Lock()
	closed := a.closed
	a.mu.Unlock()
	if closed {
		return nil, fmt.Errorf("webgpu: upload after Close")
	}

	data := alignedCopy(raw.Data())
	handle, err := a.ctx.upload(data)
	if err != nil {
		return nil, fmt.Errorf("webgpu: upload %d bytes: %w", len(data), err)
	}

	a.mu.Lock()
	a.live++
	a.mu.Unlock()

	buf := tensor.NewDeviceBuffer(handle, uint64(len(data)), a)
	return tensor.NewDeviceRaw(raw.Shape(), raw.DType(), a.Device(), buf)
}

// ReadBuffer implements tensor.BufferReader.
func (a *Accelerator) ReadBuffer(handle any, size uint64) ([]byte, error) {
	return a.ctx.read(handle, size)
}

// ReleaseBuffer implements tensor.BufferReader.
func (a *Accelerator) ReleaseBuffer(handle any) {
	a.ctx.release(handle)
	a.mu.Lock()
	a.live--
	a.mu.Unlock()
}

// Close releases the device. Tensors still on the device become unreadable.
func (a *Accelerator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true
	a.ctx.close()
	return nil
}

// alignedCopy pads data to the 4-byte copy alignment WebGPU requires.
// Buffers are never smaller than 4 bytes.
func alignedCopy(data []byte) []byte {
	size := max(len(data), 4)
	size = (size + 3) &^ 3
	out := make([]byte, size)
	copy(out, data)
	return out
}
