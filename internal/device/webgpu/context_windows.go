//go:build windows

package webgpu

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// gpuContext holds the WebGPU objects behind an Accelerator.
type gpuContext struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

func openContext(index int) (ctx *gpuContext, err error) {
	// The bindings panic when wgpu_native cannot be loaded.
	defer func() {
		if r := recover(); r != nil {
			ctx = nil
			err = fmt.Errorf("%w: native library: %v", ErrNotAvailable, r)
		}
	}()

	if index != 0 {
		return nil, fmt.Errorf("%w: adapter %d (only the default adapter can be requested)", ErrNotAvailable, index)
	}
	if err := wgpu.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %v", ErrNotAvailable, err)
	}
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: request adapter: %v", ErrNotAvailable, err)
	}
	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: request device: %v", ErrNotAvailable, err)
	}
	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: device has no queue", ErrNotAvailable)
	}

	return &gpuContext{instance: instance, adapter: adapter, device: device, queue: queue}, nil
}

// upload creates a storage buffer mapped at creation and copies data into it.
func (c *gpuContext) upload(data []byte) (any, error) {
	size := uint64(len(data))
	buffer := c.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	if buffer == nil {
		return nil, fmt.Errorf("create buffer failed")
	}

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(unsafe.Slice((*byte)(mappedPtr), size), data)
	buffer.Unmap()

	return buffer, nil
}

// read copies a storage buffer back through a mappable staging buffer.
func (c *gpuContext) read(handle any, size uint64) ([]byte, error) {
	src, ok := handle.(*wgpu.Buffer)
	if !ok || src == nil {
		return nil, fmt.Errorf("webgpu: invalid buffer handle %T", handle)
	}

	staging := c.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer staging.Release()

	encoder := c.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	cmd := encoder.Finish(nil)
	c.queue.Submit(cmd)

	if err := staging.MapAsync(c.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("webgpu: map staging buffer: %w", err)
	}
	mappedPtr := staging.GetMappedRange(0, size)
	out := make([]byte, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(out, unsafe.Slice((*byte)(mappedPtr), size))
	staging.Unmap()

	return out, nil
}

func (c *gpuContext) release(handle any) {
	if buffer, ok := handle.(*wgpu.Buffer); ok && buffer != nil {
		buffer.Release()
	}
}

func (c *gpuContext) close() {
	c.queue.Release()
	c.device.Release()
	c.adapter.Release()
	c.instance.Release()
}
