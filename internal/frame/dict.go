package frame

import (
	"fmt"
	"math"

	"github.com/born-ml/mlutil/internal/tensor"
)

// ToDict converts every column into one homogeneous array keyed by column name.
//
// Integer columns become Int64 tensors, columns mixing integers and floats
// (or holding missing values) become Float64 tensors with NaN for missing
// cells, bool columns become Bool tensors and string columns stay []string.
// A column of equally long numeric lists becomes a [rows, len] tensor.
// Anything else fails with ErrNotUniform.
func (f *Frame) ToDict() (map[string]any, error) {
	out := make(map[string]any, len(f.columns))
	for _, c := range f.columns {
		v, err := columnArray(c)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		out[c.Name] = v
	}
	return out, nil
}

func columnArray(c Column) (any, error) {
	n := len(c.Values)
	switch kind := c.Kind(); kind {
	case Empty, Float:
		return tensor.FromSlice(floatCells(c.Values), tensor.Shape{n})
	case Int:
		vals := make([]int64, n)
		for i, v := range c.Values {
			vals[i] = v.(int64)
		}
		return tensor.FromSlice(vals, tensor.Shape{n})
	case Bool:
		vals := make([]bool, n)
		for i, v := range c.Values {
			vals[i] = v.(bool)
		}
		return tensor.FromSlice(vals, tensor.Shape{n})
	case String:
		vals := make([]string, n)
		for i, v := range c.Values {
			vals[i] = v.(string)
		}
		return vals, nil
	case List:
		return listArray(c.Values)
	default:
		return nil, fmt.Errorf("%w: %s cells", ErrNotUniform, kind)
	}
}

func floatCells(cells []any) []float64 {
	vals := make([]float64, len(cells))
	for i, v := range cells {
		switch x := v.(type) {
		case int64:
			vals[i] = float64(x)
		case float64:
			vals[i] = x
		default:
			vals[i] = math.NaN()
		}
	}
	return vals
}

// listArray stacks list cells into a 2-D tensor.
func listArray(cells []any) (*tensor.Tensor, error) {
	width := -1
	flat := make([]any, 0, len(cells))
	for row, cell := range cells {
		items := cell.([]any)
		if width >= 0 && len(items) != width {
			return nil, fmt.Errorf("%w: row %d has %d items, row 0 has %d", ErrNotUniform, row, len(items), width)
		}
		width = len(items)
		flat = append(flat, items...)
	}

	elems := Column{Values: flat}
	shape := tensor.Shape{len(cells), max(width, 0)}
	switch kind := elems.Kind(); kind {
	case Int:
		vals := make([]int64, len(flat))
		for i, v := range flat {
			vals[i] = v.(int64)
		}
		return tensor.FromSlice(vals, shape)
	case Float, Empty:
		return tensor.FromSlice(floatCells(flat), shape)
	case Bool:
		vals := make([]bool, len(flat))
		for i, v := range flat {
			vals[i] = v.(bool)
		}
		return tensor.FromSlice(vals, shape)
	default:
		return nil, fmt.Errorf("%w: list items are %s", ErrNotUniform, kind)
	}
}
