package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(n int, f func() float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f()
	}
	return out
}

func TestEqualSeedsGiveEqualStreams(t *testing.T) {
	a, b := Init(2024), Init(2024)

	assert.Equal(t, draw(10, a.General().Float64), draw(10, b.General().Float64), "general")
	assert.Equal(t, draw(10, a.Numeric().Float64), draw(10, b.Numeric().Float64), "numeric")
	assert.Equal(t, draw(10, a.Accelerator(0).Float64), draw(10, b.Accelerator(0).Float64), "accelerator 0")
	assert.Equal(t, draw(10, a.Accelerator(3).Float64), draw(10, b.Accelerator(3).Float64), "accelerator 3")
	assert.Equal(t, a.RunID(), b.RunID())
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := Init(1), Init(2)
	assert.NotEqual(t, draw(5, a.General().Float64), draw(5, b.General().Float64))
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func TestFamiliesAreDistinct(t *testing.T) {
	c := Init(7)
	general := draw(5, Init(7).General().Float64)
	assert.NotEqual(t, general, draw(5, c.Numeric().Float64))
	assert.NotEqual(t, general, draw(5, c.Accelerator(0).Float64))
	assert.NotEqual(t, draw(5, Init(7).Accelerator(0).Float64), draw(5, c.Accelerator(1).Float64))
}

func TestAcceleratorAllResets(t *testing.T) {
	c := Init(11)
	first := draw(3, c.Accelerator(2).Float64)
	_ = draw(3, c.Accelerator(0).Float64)

	c.AcceleratorAll()
	assert.Equal(t, first, draw(3, c.Accelerator(2).Float64))
}

func TestDeterministicMode(t *testing.T) {
	c := Init(0)
	assert.True(t, c.Deterministic())
	assert.False(t, c.Benchmark())
	assert.Equal(t, int64(0), c.Seed())
}

func TestGlobal(t *testing.T) {
	prev := Global()
	defer SetGlobal(prev)

	c := Init(5)
	SetGlobal(c)
	require.NotNil(t, Global())
	assert.Same(t, c, Global())
}
