// Package earlystop decides when a validation criterion has stopped improving.
package earlystop

import "cmp"

// NonIncreasing reports whether no element after the first exceeds the first.
// Only the first element is the reference: [5, 3, 4] is non-increasing.
// Empty and single-element slices are non-increasing.
func NonIncreasing[T cmp.Ordered](xs []T) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[0] {
			return false
		}
	}
	return true
}

// Stopper tracks one criterion per evaluation round, where larger is better.
// It asks to stop once more than MinRounds rounds were seen and none of the
// last Patience values beat the value Patience rounds back.
type Stopper struct {
	Patience  int
	MinRounds int

	history []float64
}

// Observe records the criterion of one evaluation round.
func (s *Stopper) Observe(v float64) {
	s.history = append(s.history, v)
}

// Rounds returns the number of recorded rounds.
func (s *Stopper) Rounds() int {
	return len(s.history)
}

// Best returns the largest recorded value and its round index, or -1 when empty.
func (s *Stopper) Best() (float64, int) {
	best, at := 0.0, -1
	for i, v := range s.history {
		if at < 0 || v > best {
			best, at = v, i
		}
	}
	return best, at
}

// Stop reports whether training should stop.
func (s *Stopper) Stop() bool {
	if s.Patience <= 0 || len(s.history) <= s.MinRounds || len(s.history) < s.Patience {
		return false
	}
	return NonIncreasing(s.history[len(s.history)-s.Patience:])
}
