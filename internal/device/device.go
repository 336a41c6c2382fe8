// Package device resolves device identifiers ("cpu", "webgpu:0") into placers
// that tensors can be moved onto.
package device

import (
	"errors"
	"fmt"

	"github.com/born-ml/mlutil/internal/device/webgpu"
	"github.com/born-ml/mlutil/internal/tensor"
)

// Errors returned by Open.
var (
	ErrUnknownDevice = errors.New("unknown device")
	ErrUnavailable   = errors.New("device unavailable")
)

// Placer moves raw tensors onto a device.
type Placer = tensor.Placer

// Accelerator is a placer that owns device resources.
type Accelerator interface {
	Placer
	Name() string
	Close() error
}

// Parse parses a device identifier. See tensor.ParseDevice.
func Parse(id string) (tensor.Device, error) {
	d, err := tensor.ParseDevice(id)
	if err != nil {
		return tensor.Device{}, fmt.Errorf("%w: %v", ErrUnknownDevice, err)
	}
	return d, nil
}

// Open returns a placer for the identified device.
// The host placer needs no Close; accelerators must be closed by the caller.
func Open(id string) (Accelerator, error) {
	d, err := Parse(id)
	if err != nil {
		return nil, err
	}

	switch d.Type {
	case tensor.CPU:
		return Host(), nil
	case tensor.WebGPU:
		acc, err := webgpu.Open(d.Index)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, d, err)
		}
		return acc, nil
	default:
		return nil, fmt.Errorf("%w: %s has no backend in this build", ErrUnavailable, d)
	}
}

// OpenOrHost opens id and falls back to the host when the device is unavailable.
// The returned error reports why the fallback happened, if it did.
func OpenOrHost(id string) (Accelerator, error) {
	acc, err := Open(id)
	if err == nil {
		return acc, nil
	}
	if errors.Is(err, ErrUnavailable) {
		return Host(), err
	}
	return nil, err
}

// Description names a usable device.
type Description struct {
	Device tensor.Device
	Name   string
}

// Available lists the devices that can be opened in this process, host first.
func Available() []Description {
	devices := []Description{{Device: tensor.Host, Name: Host().Name()}}
	if acc, err := webgpu.Open(0); err == nil {
		devices = append(devices, Description{Device: acc.Device(), Name: acc.Name()})
		_ = acc.Close()
	}
	return devices
}
