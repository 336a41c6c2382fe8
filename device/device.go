// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device opens the devices tensors can be placed on.
//
// The host CPU is always available. A WebGPU accelerator is available where
// the native wgpu library and an adapter can be found.
//
// Example:
//
//	acc, err := device.OpenOrHost("webgpu")
//	if err != nil {
//	    log.Printf("falling back to %s: %v", acc.Name(), err)
//	}
//	defer acc.Close()
//	b, err = experiment.BatchToDevice(b, acc)
package device

import (
	"github.com/born-ml/mlutil/internal/device"
)

// Errors returned by Parse and Open.
var (
	ErrUnknownDevice = device.ErrUnknownDevice
	ErrUnavailable   = device.ErrUnavailable
)

// Placer moves tensors onto a device.
type Placer = device.Placer

// Accelerator is a placer that owns device resources and must be closed.
type Accelerator = device.Accelerator

// HostPlacer is the CPU device.
type HostPlacer = device.HostPlacer

// HostInfo describes the host CPU.
type HostInfo = device.HostInfo

// Description names a usable device.
type Description = device.Description

// Host returns the CPU placer.
func Host() *HostPlacer {
	return device.Host()
}

// Parse validates a device identifier such as "cpu" or "webgpu:1".
func Parse(id string) (Device, error) {
	return device.Parse(id)
}

// Open returns a placer for the identified device.
func Open(id string) (Accelerator, error) {
	return device.Open(id)
}

// OpenOrHost opens id, falling back to the host when it is unavailable.
// On fallback the host is returned together with the reason.
func OpenOrHost(id string) (Accelerator, error) {
	return device.OpenOrHost(id)
}

// Available lists the devices usable in this process, host first.
func Available() []Description {
	return device.Available()
}
