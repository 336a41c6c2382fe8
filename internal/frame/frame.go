// Package frame holds small in-memory tables of named columns and converts them
// into tensors for training batches.
package frame

import (
	"errors"
	"fmt"
)

// ErrNotUniform is returned when a column's cells cannot form one homogeneous array.
var ErrNotUniform = errors.New("column values are not uniform")

// Kind classifies the cells of a column.
type Kind int

// Column kinds. Mixed is any combination that fits none of the others.
const (
	Empty Kind = iota
	Int
	Float
	Bool
	String
	List
	Mixed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case List:
		return "list"
	default:
		return "mixed"
	}
}

// Column is a named sequence of cells. Cells hold int64, float64, bool,
// string, []any (parsed list literals) or nil for missing values.
type Column struct {
	Name   string
	Values []any
}

// Kind infers the column kind from its cells.
// Integers mixed with floats or missing values count as Float.
func (c Column) Kind() Kind {
	var ints, floats, bools, strs, lists, missing int
	for _, v := range c.Values {
		switch v.(type) {
		case nil:
			missing++
		case int64:
			ints++
		case float64:
			floats++
		case bool:
			bools++
		case string:
			strs++
		case []any:
			lists++
		default:
			return Mixed
		}
	}

	n := len(c.Values)
	switch {
	case n == 0 || missing == n:
		return Empty
	case ints == n:
		return Int
	case ints+floats+missing == n:
		return Float
	case bools == n:
		return Bool
	case strs == n:
		return String
	case lists == n:
		return List
	default:
		return Mixed
	}
}

// Frame is an ordered set of equally long columns.
type Frame struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New builds a frame from columns, which must have distinct names and equal lengths.
func New(columns ...Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(columns))}
	for _, c := range columns {
		if err := f.Add(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Add appends a column.
func (f *Frame) Add(c Column) error {
	if _, ok := f.index[c.Name]; ok {
		return fmt.Errorf("duplicate column %q", c.Name)
	}
	if len(f.columns) > 0 && len(c.Values) != f.rows {
		return fmt.Errorf("column %q has %d rows, frame has %d", c.Name, len(c.Values), f.rows)
	}
	f.rows = len(c.Values)
	f.index[c.Name] = len(f.columns)
	f.columns = append(f.columns, c)
	return nil
}

// Columns returns the columns in order. The slice is shared with the frame.
func (f *Frame) Columns() []Column {
	return f.columns
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (f *Frame) Column(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, false
	}
	return f.columns[i], true
}

// Set replaces the cells of an existing column.
func (f *Frame) Set(name string, values []any) error {
	i, ok := f.index[name]
	if !ok {
		return fmt.Errorf("no column %q", name)
	}
	if len(values) != f.rows {
		return fmt.Errorf("column %q: got %d rows, frame has %d", name, len(values), f.rows)
	}
	f.columns[i].Values = values
	return nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return f.rows
}
