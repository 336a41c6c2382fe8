package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EdgeItems is the number of leading and trailing entries kept per axis
// when a summarized tensor is printed.
const EdgeItems = 3

// Format renders a host tensor as nested bracketed rows, NumPy style.
// When the element count exceeds threshold every axis longer than 2*EdgeItems
// is cut down to its edges around a "..." marker. A negative threshold disables
// summarization.
//
// Example:
//
//	[[ 1.  -2.5]
//	 [ 0.   3. ]]
func Format(t *Tensor, threshold int) (string, error) {
	if !t.Device().IsHost() {
		return "", fmt.Errorf("format tensor: data lives on %s", t.Device())
	}
	raw := t.Raw()
	shape := raw.Shape()
	if raw.NumElements() == 0 {
		return "[]", nil
	}

	p := &printer{
		shape:     shape,
		strides:   raw.Strides(),
		summarize: threshold >= 0 && raw.NumElements() > threshold,
	}
	p.cells = p.formatCells(raw)

	// Column width is taken over the elements that will actually be shown.
	p.visit(0, 0, func(offset int) {
		p.width = max(p.width, len(p.cells[offset]))
	})

	if len(shape) == 0 {
		return p.cells[0], nil
	}
	return p.render(0, 0), nil
}

type printer struct {
	shape     Shape
	strides   []int
	summarize bool
	cells     []string
	width     int
}

// shown returns the visible indices of an axis; -1 marks the ellipsis.
func (p *printer) shown(axis int) []int {
	n := p.shape[axis]
	if !p.summarize || n <= 2*EdgeItems {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	idx := make([]int, 0, 2*EdgeItems+1)
	for i := 0; i < EdgeItems; i++ {
		idx = append(idx, i)
	}
	idx = append(idx, -1)
	for i := n - EdgeItems; i < n; i++ {
		idx = append(idx, i)
	}
	return idx
}

func (p *printer) visit(offset, axis int, fn func(offset int)) {
	if axis == len(p.shape) {
		fn(offset)
		return
	}
	for _, i := range p.shown(axis) {
		if i >= 0 {
			p.visit(offset+i*p.strides[axis], axis+1, fn)
		}
	}
}

func (p *printer) render(offset, axis int) string {
	idx := p.shown(axis)
	parts := make([]string, 0, len(idx))

	if axis == len(p.shape)-1 {
		for _, i := range idx {
			if i < 0 {
				parts = append(parts, "...")
				continue
			}
			parts = append(parts, fmt.Sprintf("%*s", p.width, p.cells[offset+i*p.strides[axis]]))
		}
		return "[" + strings.Join(parts, " ") + "]"
	}

	for _, i := range idx {
		if i < 0 {
			parts = append(parts, "...")
			continue
		}
		parts = append(parts, p.render(offset+i*p.strides[axis], axis+1))
	}
	sep := strings.Repeat("\n", len(p.shape)-axis-1) + strings.Repeat(" ", axis+1)
	return "[" + strings.Join(parts, sep) + "]"
}

// formatCells renders every element. Floats share one fractional width so
// decimal points line up, and switch to scientific notation together when
// fixed point would hide small values or grow too wide.
func (p *printer) formatCells(raw *RawTensor) []string {
	cells := make([]string, raw.NumElements())
	switch raw.DType() {
	case Bool:
		for i, v := range raw.AsBool() {
			cells[i] = strconv.FormatBool(v)
		}
	case Int64:
		for i, v := range raw.AsInt64() {
			cells[i] = strconv.FormatInt(v, 10)
		}
	case Int32:
		for i, v := range raw.AsInt32() {
			cells[i] = strconv.FormatInt(int64(v), 10)
		}
	case Uint8:
		for i, v := range raw.AsUint8() {
			cells[i] = strconv.FormatUint(uint64(v), 10)
		}
	default:
		vals := raw.Float64s()
		sci := useScientific(vals)
		for i, v := range vals {
			cells[i] = formatFloat(v, sci)
		}
		padFractions(cells, sci)
	}
	return cells
}

// useScientific reports whether the nonzero finite magnitudes fall below 1e-4
// or reach 1e16.
func useScientific(vals []float64) bool {
	for _, v := range vals {
		a := math.Abs(v)
		if a == 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			continue
		}
		if a < 1e-4 || a >= 1e16 {
			return true
		}
	}
	return false
}

// formatFloat prints at most 8 fractional digits, trimming trailing zeros
// but keeping the point ("1.", "0.25", "1.5e-09").
func formatFloat(v float64, sci bool) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if !sci {
		return strings.TrimRight(strconv.FormatFloat(v, 'f', 8, 64), "0")
	}
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', 8, 64), "e")
	return strings.TrimRight(mantissa, "0") + "e" + exp
}

// padFractions widens every fraction to the longest one: with spaces in fixed
// point, with zeros inside the mantissa in scientific notation.
func padFractions(cells []string, sci bool) {
	frac := func(c string) (mantissa, rest string, digits int, ok bool) {
		mantissa, rest = c, ""
		if i := strings.IndexByte(c, 'e'); i >= 0 {
			mantissa, rest = c[:i], c[i:]
		}
		dot := strings.IndexByte(mantissa, '.')
		if dot < 0 {
			return c, "", 0, false
		}
		return mantissa, rest, len(mantissa) - dot - 1, true
	}

	width := 0
	for _, c := range cells {
		if _, _, n, ok := frac(c); ok {
			width = max(width, n)
		}
	}
	fill := " "
	if sci {
		fill = "0"
	}
	for i, c := range cells {
		if mantissa, rest, n, ok := frac(c); ok {
			cells[i] = mantissa + strings.Repeat(fill, width-n) + rest
		}
	}
}
