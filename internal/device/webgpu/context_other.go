//go:build !windows

package webgpu

import "fmt"

// gpuContext is empty where the go-webgpu bindings are not built.
type gpuContext struct{}

func openContext(int) (*gpuContext, error) {
	return nil, fmt.Errorf("%w: bindings are only built for windows", ErrNotAvailable)
}

func (c *gpuContext) upload([]byte) (any, error) { return nil, ErrNotAvailable }

func (c *gpuContext) read(any, uint64) ([]byte, error) { return nil, ErrNotAvailable }

func (c *gpuContext) release(any) {}

func (c *gpuContext) close() {}
