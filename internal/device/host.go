package device

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/mlutil/internal/tensor"
)

// HostInfo describes the CPU tensors live on by default.
type HostInfo struct {
	Brand         string
	PhysicalCores int
	LogicalCores  int
	AVX2          bool
	AVX512        bool
}

// HostPlacer is the CPU device. Uploading to it is the identity.
type HostPlacer struct {
	info HostInfo
}

var host = &HostPlacer{
	info: HostInfo{
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		AVX2:          cpuid.CPU.Supports(cpuid.AVX2),
		AVX512:        cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ),
	},
}

// Host returns the CPU placer.
func Host() *HostPlacer {
	return host
}

// Device implements Placer.
func (h *HostPlacer) Device() tensor.Device {
	return tensor.Host
}

// Upload implements Placer. Host tensors are already in place.
func (h *HostPlacer) Upload(raw *tensor.RawTensor) (*tensor.RawTensor, error) {
	if !raw.Device().IsHost() {
		return raw.ToHost()
	}
	return raw, nil
}

// Info returns the CPU description.
func (h *HostPlacer) Info() HostInfo {
	return h.info
}

// Name returns the CPU brand and core counts.
func (h *HostPlacer) Name() string {
	brand := h.info.Brand
	if brand == "" {
		brand = "unknown CPU"
	}
	return fmt.Sprintf("%s (%d cores, %d threads)", brand, h.info.PhysicalCores, h.info.LogicalCores)
}

// Close is a no-op.
func (h *HostPlacer) Close() error {
	return nil
}
