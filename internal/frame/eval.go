package frame

import (
	"fmt"
	"strings"
)

// IsListColumn reports whether a column name marks serialized list cells:
// names ending in "_s" and the negative-sample column "neg_items".
func IsListColumn(name string) bool {
	return strings.HasSuffix(name, "_s") || name == "neg_items"
}

// EvalListColumns parses the cells of every string column named like a list
// column (see IsListColumn) with ParseLiteral, replacing them in place.
// Other columns are left untouched. The frame is returned for chaining.
func EvalListColumns(f *Frame) (*Frame, error) {
	for i := range f.columns {
		c := &f.columns[i]
		if !IsListColumn(c.Name) || c.Kind() != String {
			continue
		}
		parsed := make([]any, len(c.Values))
		for row, cell := range c.Values {
			v, err := ParseLiteral(fmt.Sprint(cell))
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", c.Name, row, err)
			}
			parsed[row] = v
		}
		c.Values = parsed
	}
	return f, nil
}
