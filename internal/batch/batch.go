// Package batch relocates training batches between devices.
package batch

import (
	"fmt"
	"sort"

	"github.com/born-ml/mlutil/internal/tensor"
)

// Batch maps field names to batch values. Tensor values are relocatable;
// anything else (ids, strings, nested maps) travels as is.
type Batch map[string]any

// ToDevice moves every tensor in b onto dev and returns b.
// The map is updated in place; callers that need the original should copy it first.
// On error b may be partially moved.
func ToDevice(b Batch, dev tensor.Placer) (Batch, error) {
	// Sorted keys keep failures reproducible.
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		t, ok := b[k].(*tensor.Tensor)
		if !ok || t == nil {
			continue
		}
		moved, err := t.To(dev)
		if err != nil {
			return b, fmt.Errorf("batch field %q: %w", k, err)
		}
		b[k] = moved
	}
	return b, nil
}

// Tensors returns the names of the tensor fields in sorted order.
func (b Batch) Tensors() []string {
	var names []string
	for k, v := range b {
		if t, ok := v.(*tensor.Tensor); ok && t != nil {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
