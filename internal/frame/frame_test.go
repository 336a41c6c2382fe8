package frame

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/mlutil/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnKind(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   Kind
	}{
		{"empty", nil, Empty},
		{"missing only", []any{nil, nil}, Empty},
		{"ints", []any{int64(1), int64(2)}, Int},
		{"ints and floats", []any{int64(1), 2.5}, Float},
		{"ints with missing", []any{int64(1), nil}, Float},
		{"bools", []any{true, false}, Bool},
		{"strings", []any{"a", "b"}, String},
		{"lists", []any{[]any{}, []any{int64(1)}}, List},
		{"mixed", []any{"a", int64(1)}, Mixed},
		{"foreign type", []any{int(1)}, Mixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Column{Values: tt.values}.Kind())
		})
	}
}

func TestNewRejectsBadColumns(t *testing.T) {
	_, err := New(Column{Name: "a", Values: []any{int64(1)}}, Column{Name: "a", Values: []any{int64(2)}})
	assert.Error(t, err)

	_, err = New(Column{Name: "a", Values: []any{int64(1)}}, Column{Name: "b", Values: []any{}})
	assert.Error(t, err)
}

func TestToDict(t *testing.T) {
	f, err := New(
		Column{Name: "user", Values: []any{int64(1), int64(2), int64(3)}},
		Column{Name: "score", Values: []any{0.5, int64(1), nil}},
		Column{Name: "clicked", Values: []any{true, false, true}},
		Column{Name: "title", Values: []any{"a", "b", "c"}},
		Column{Name: "items", Values: []any{
			[]any{int64(1), int64(2)},
			[]any{int64(3), int64(4)},
			[]any{int64(5), int64(6)},
		}},
	)
	require.NoError(t, err)

	d, err := f.ToDict()
	require.NoError(t, err)
	assert.Len(t, d, 5)

	user := d["user"].(*tensor.Tensor)
	assert.Equal(t, tensor.Int64, user.DType())
	ids, err := tensor.Values[int64](user)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	score := d["score"].(*tensor.Tensor)
	assert.Equal(t, tensor.Float64, score.DType())
	vals := score.Float64s()
	assert.Equal(t, 0.5, vals[0])
	assert.Equal(t, 1.0, vals[1])
	assert.True(t, math.IsNaN(vals[2]))

	clicked := d["clicked"].(*tensor.Tensor)
	assert.Equal(t, tensor.Bool, clicked.DType())

	assert.Equal(t, []string{"a", "b", "c"}, d["title"])

	items := d["items"].(*tensor.Tensor)
	assert.True(t, items.Shape().Equal(tensor.Shape{3, 2}))
	flat, err := tensor.Values[int64](items)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, flat)
}

func TestToDictNotUniform(t *testing.T) {
	tests := []struct {
		name   string
		values []any
	}{
		{"mixed", []any{"a", int64(1)}},
		{"ragged", []any{[]any{int64(1)}, []any{int64(1), int64(2)}}},
		{"nested", []any{[]any{[]any{int64(1)}}}},
		{"string items", []any{[]any{"a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(Column{Name: "col", Values: tt.values})
			require.NoError(t, err)

			_, err = f.ToDict()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNotUniform))
			assert.Contains(t, err.Error(), `"col"`)
		})
	}
}

func TestToDictPreservesRowOrder(t *testing.T) {
	f, err := New(Column{Name: "x", Values: []any{3.0, 1.0, 2.0}})
	require.NoError(t, err)
	d, err := f.ToDict()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, d["x"].(*tensor.Tensor).Float64s())
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"[1, 2, 3]", []any{int64(1), int64(2), int64(3)}},
		{"[]", []any{}},
		{"(4, 5)", []any{int64(4), int64(5)}},
		{"(7,)", []any{int64(7)}},
		{"()", []any{}},
		{"(7)", int64(7)},
		{" [ -1.5 , 2e3 ] ", []any{-1.5, 2000.0}},
		{"['a', \"b c\", 'it\\'s']", []any{"a", "b c", "it's"}},
		{"[True, False, None]", []any{true, false, nil}},
		{"[[1, 2], [3]]", []any{[]any{int64(1), int64(2)}, []any{int64(3)}}},
		{"[1, 2,]", []any{int64(1), int64(2)}},
		{"42", int64(42)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLiteral(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLiteralRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"[1, 2",
		"[1 2]",
		"__import__('os')",
		"[1] + [2]",
		"'open",
		"[1.2.3]",
	} {
		_, err := ParseLiteral(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestEvalListColumns(t *testing.T) {
	f, err := New(
		Column{Name: "item_id_s", Values: []any{"[1, 2]", "[3]"}},
		Column{Name: "neg_items", Values: []any{"(4, 5)", "()"}},
		Column{Name: "title", Values: []any{"[not parsed]", "x"}},
		Column{Name: "score_s", Values: []any{0.1, 0.2}},
	)
	require.NoError(t, err)

	got, err := EvalListColumns(f)
	require.NoError(t, err)
	assert.Same(t, f, got)

	c, _ := f.Column("item_id_s")
	assert.Equal(t, []any{[]any{int64(1), int64(2)}, []any{int64(3)}}, c.Values)

	c, _ = f.Column("neg_items")
	assert.Equal(t, []any{[]any{int64(4), int64(5)}, []any{}}, c.Values)

	c, _ = f.Column("title")
	assert.Equal(t, []any{"[not parsed]", "x"}, c.Values)

	c, _ = f.Column("score_s")
	assert.Equal(t, []any{0.1, 0.2}, c.Values)
}

func TestEvalListColumnsError(t *testing.T) {
	f, err := New(Column{Name: "tags_s", Values: []any{"[1]", "[oops]"}})
	require.NoError(t, err)

	_, err = EvalListColumns(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "tags_s" row 1`)
}

func TestReadCSV(t *testing.T) {
	in := strings.Join([]string{
		"user_id,rating,liked,title,item_id_s",
		`1,4.5,true,Heat,"[10, 11]"`,
		`2,,false,,"[12, 13]"`,
		`3,3,TRUE,Up,"[14, 15]"`,
	}, "\n")

	f, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, f.NumRows())
	assert.Equal(t, []string{"user_id", "rating", "liked", "title", "item_id_s"}, f.Names())

	c, _ := f.Column("user_id")
	assert.Equal(t, Int, c.Kind())
	c, _ = f.Column("rating")
	assert.Equal(t, []any{4.5, nil, 3.0}, c.Values)
	c, _ = f.Column("liked")
	assert.Equal(t, []any{true, false, true}, c.Values)
	c, _ = f.Column("title")
	assert.Equal(t, []any{"Heat", "", "Up"}, c.Values)

	_, err = EvalListColumns(f)
	require.NoError(t, err)
	d, err := f.ToDict()
	require.NoError(t, err)
	assert.True(t, d["item_id_s"].(*tensor.Tensor).Shape().Equal(tensor.Shape{3, 2}))
}

func TestReadCSVBlankColumn(t *testing.T) {
	f, err := ReadCSV(strings.NewReader("a,b\n1,\n2, \n"))
	require.NoError(t, err)

	c, ok := f.Column("b")
	require.True(t, ok)
	assert.Equal(t, []any{nil, nil}, c.Values)
	assert.Equal(t, Empty, c.Kind())

	d, err := f.ToDict()
	require.NoError(t, err)
	b := d["b"].(*tensor.Tensor)
	assert.Equal(t, tensor.Float64, b.DType())
	for _, v := range b.Float64s() {
		assert.True(t, math.IsNaN(v))
	}
}

func TestLoadCSVWithSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inter.tsv")
	require.NoError(t, os.WriteFile(path, []byte("a\tb\n1\tx\n2\ty\n"), 0o600))

	f, err := LoadCSV(path, WithSeparator('\t'))
	require.NoError(t, err)
	c, _ := f.Column("a")
	assert.Equal(t, []any{int64(1), int64(2)}, c.Values)

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReadCSVEmpty(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, f.NumRows())
}
