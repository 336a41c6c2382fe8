// Package seed builds the explicit random state an experiment run draws from.
//
// A Context replaces process-wide generator state: it owns a general-purpose
// generator, a numeric-array generator and one generator per accelerator
// device, all derived from a single seed. Equal seeds give equal streams.
package seed

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

// Per-family offsets keep the three streams distinct for the same seed.
const (
	generalStream     int64 = 0
	numericStream     int64 = 0x5851f42d4c957f2d
	acceleratorStream int64 = 0x14057b7ef767814f
	runIDStream       int64 = 0x2545f4914f6cdd1d
)

// Context holds seeded generators for one run.
// Generators are not safe for concurrent use.
type Context struct {
	seed        int64
	general     *rand.Rand
	numeric     *rand.Rand
	accelerator map[int]*rand.Rand
	runID       uuid.UUID

	deterministic bool
	benchmark     bool
}

// Init seeds all generator families from seed and enables deterministic mode.
func Init(seed int64) *Context {
	c := &Context{
		seed:          seed,
		general:       newRand(seed, generalStream),
		numeric:       newRand(seed, numericStream),
		accelerator:   make(map[int]*rand.Rand),
		deterministic: true,
		benchmark:     false,
	}
	c.AcceleratorAll()

	// Drawn from its own generator so the general stream starts untouched.
	id, err := uuid.NewRandomFromReader(newRand(seed, runIDStream))
	if err != nil {
		panic(fmt.Sprintf("seed: derive run id: %v", err))
	}
	c.runID = id
	return c
}

func newRand(seed, stream int64) *rand.Rand {
	//nolint:gosec // G404: reproducible ML randomness, not security
	return rand.New(rand.NewSource(seed ^ stream))
}

// Seed returns the seed the context was built from.
func (c *Context) Seed() int64 {
	return c.seed
}

// General returns the general-purpose generator.
func (c *Context) General() *rand.Rand {
	return c.general
}

// Numeric returns the generator used for numeric arrays.
func (c *Context) Numeric() *rand.Rand {
	return c.numeric
}

// Accelerator returns the generator of accelerator device index,
// creating it from the seed on first use.
func (c *Context) Accelerator(index int) *rand.Rand {
	r, ok := c.accelerator[index]
	if !ok {
		r = newRand(c.seed, acceleratorStream+int64(index))
		c.accelerator[index] = r
	}
	return r
}

// AcceleratorAll resets every known accelerator generator, and device 0, to its seeded state.
func (c *Context) AcceleratorAll() {
	c.accelerator[0] = nil
	for index := range c.accelerator {
		c.accelerator[index] = newRand(c.seed, acceleratorStream+int64(index))
	}
}

// RunID returns an identifier derived from the seed.
func (c *Context) RunID() uuid.UUID {
	return c.runID
}

// Deterministic reports whether strict deterministic execution is requested.
func (c *Context) Deterministic() bool {
	return c.deterministic
}

// Benchmark reports whether nondeterministic kernel autotuning is allowed.
// It is always false for a seeded context.
func (c *Context) Benchmark() bool {
	return c.benchmark
}

var (
	globalMu sync.RWMutex
	global   *Context
)

// SetGlobal installs c as the process-wide context.
func SetGlobal(c *Context) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = c
}

// Global returns the process-wide context, or nil if none was installed.
func Global() *Context {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}
