package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// DeviceType identifies a family of compute devices.
type DeviceType int

// Supported device families.
const (
	CPU DeviceType = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns the lower-case family name used in device identifiers.
func (d DeviceType) String() string {
	switch d {
	case CPU:
		return "cpu"
	case CUDA:
		return "cuda"
	case Vulkan:
		return "vulkan"
	case Metal:
		return "metal"
	case WebGPU:
		return "webgpu"
	default:
		return "unknown"
	}
}

// Device identifies where a tensor's data is materialized.
// Index distinguishes devices of the same family on multi-device hosts.
type Device struct {
	Type  DeviceType
	Index int
}

// Host is the CPU device every tensor starts on.
var Host = Device{Type: CPU}

// IsHost reports whether the device is host memory.
func (d Device) IsHost() bool {
	return d.Type == CPU
}

// String returns "cpu" for the host and "<family>:<index>" otherwise.
func (d Device) String() string {
	if d.Type == CPU {
		return "cpu"
	}
	return d.Type.String() + ":" + strconv.Itoa(d.Index)
}

// ParseDevice parses identifiers such as "cpu", "webgpu" or "webgpu:1".
// A missing index means device 0.
func ParseDevice(id string) (Device, error) {
	name, index, hasIndex := strings.Cut(strings.ToLower(strings.TrimSpace(id)), ":")

	var typ DeviceType
	switch name {
	case "cpu":
		typ = CPU
	case "cuda", "gpu":
		typ = CUDA
	case "vulkan":
		typ = Vulkan
	case "metal", "mps":
		typ = Metal
	case "webgpu", "wgpu":
		typ = WebGPU
	default:
		return Device{}, fmt.Errorf("unknown device %q", id)
	}

	d := Device{Type: typ}
	if hasIndex {
		n, err := strconv.Atoi(index)
		if err != nil || n < 0 {
			return Device{}, fmt.Errorf("invalid device index in %q", id)
		}
		d.Index = n
	}
	if typ == CPU && d.Index != 0 {
		return Device{}, fmt.Errorf("cpu device has no index: %q", id)
	}
	return d, nil
}
