package tensor

import (
	"runtime"
	"sync"
)

// Storage is device-resident tensor memory owned by an accelerator.
type Storage interface {
	// Read copies the device bytes to host memory.
	Read() ([]byte, error)

	// Release frees the device memory. It must be safe to call more than once.
	Release()
}

// BufferReader is implemented by accelerators that can read and free their own buffers.
// Handle is opaque to this package.
type BufferReader interface {
	ReadBuffer(handle any, size uint64) ([]byte, error)
	ReleaseBuffer(handle any)
}

// DeviceBuffer adapts an accelerator buffer handle into Storage.
// The handle is released when garbage collected if nobody released it before.
type DeviceBuffer struct {
	handle any
	size   uint64
	owner  BufferReader
	mu     sync.Mutex
}

// NewDeviceBuffer wraps handle, which owner knows how to read and release.
func NewDeviceBuffer(handle any, size uint64, owner BufferReader) *DeviceBuffer {
	b := &DeviceBuffer{handle: handle, size: size, owner: owner}
	runtime.SetFinalizer(b, func(db *DeviceBuffer) {
		db.Release()
	})
	return b
}

// Read implements Storage.
func (b *DeviceBuffer) Read() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handle == nil {
		return nil, errReleased
	}
	return b.owner.ReadBuffer(b.handle, b.size)
}

// Release implements Storage.
func (b *DeviceBuffer) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handle != nil && b.owner != nil {
		b.owner.ReleaseBuffer(b.handle)
	}
	b.handle = nil
}

// Handle returns the accelerator handle, nil once released.
func (b *DeviceBuffer) Handle() any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handle
}

// Size returns the buffer size in bytes, including alignment padding.
func (b *DeviceBuffer) Size() uint64 {
	return b.size
}
