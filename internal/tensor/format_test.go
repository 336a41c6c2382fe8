package tensor

import (
	"strings"
	"testing"
)

func TestFormatMatrix(t *testing.T) {
	x, _ := FromSlice([]float64{1, -2.5, 0, 3}, Shape{2, 2})
	got, err := Format(x, 20)
	if err != nil {
		t.Fatal(err)
	}
	want := "[[ 1.  -2.5]\n [ 0.   3. ]]"
	if got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatIntegers(t *testing.T) {
	x, _ := FromSlice([]int64{1, 20, 300}, Shape{3})
	got, err := Format(x, 20)
	if err != nil {
		t.Fatal(err)
	}
	if got != "[  1  20 300]" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatLargeIntegersExact(t *testing.T) {
	x, _ := FromSlice([]int64{9007199254740993, 1}, Shape{2})
	got, err := Format(x, 20)
	if err != nil {
		t.Fatal(err)
	}
	if want := "[9007199254740993                1]"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	u, _ := FromSlice([]uint8{255, 0}, Shape{2})
	if got, _ := Format(u, 20); got != "[255   0]" {
		t.Errorf("uint8 Format() = %q", got)
	}
}

func TestFormatScientific(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want string
	}{
		{"tiny", []float64{1e-9, 1}, "[1.e-09 1.e+00]"},
		{"mantissa padded", []float64{1.5e-9, 1}, "[1.5e-09 1.0e+00]"},
		{"huge", []float64{1e20, 0}, "[1.e+20 0.e+00]"},
		{"fixed point kept", []float64{0.001, 2}, "[0.001 2.   ]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, _ := FromSlice(tc.in, Shape{len(tc.in)})
			got, err := Format(x, 20)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatScalarAndEmpty(t *testing.T) {
	s, _ := FromSlice([]int32{42}, Shape{})
	if got, _ := Format(s, 20); got != "42" {
		t.Errorf("scalar Format() = %q", got)
	}
	e, _ := Zeros(Shape{0}, Float32)
	if got, _ := Format(e, 20); got != "[]" {
		t.Errorf("empty Format() = %q", got)
	}
}

func TestFormatSummarizes(t *testing.T) {
	data := make([]int64, 30)
	for i := range data {
		data[i] = int64(i)
	}
	x, _ := FromSlice(data, Shape{30})

	got, err := Format(x, 20)
	if err != nil {
		t.Fatal(err)
	}
	if got != "[ 0  1  2 ... 27 28 29]" {
		t.Errorf("Format() = %q", got)
	}

	full, _ := Format(x, -1)
	if strings.Contains(full, "...") {
		t.Error("negative threshold should disable summarization")
	}
}

func TestFormatSummarizesRows(t *testing.T) {
	x, _ := Zeros(Shape{10, 10}, Int32)
	got, err := Format(x, 20)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 3+1+3 lines, got %d:\n%s", len(lines), got)
	}
	if strings.TrimSpace(lines[3]) != "..." {
		t.Errorf("middle line = %q, want ...", lines[3])
	}
	if lines[0] != "[[0 0 0 ... 0 0 0]" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestFormatRejectsDeviceTensor(t *testing.T) {
	acc := newFakeAccelerator(0)
	x, _ := FromSlice([]float32{1}, Shape{1})
	onDevice, _ := x.To(acc)
	if _, err := Format(onDevice, 20); err == nil {
		t.Error("expected error for device tensor")
	}
}
