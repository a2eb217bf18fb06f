package random

import "math/rand"

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// MathRandom implements Random using math/rand. Piece selection needs
// uniformity, not unpredictability, so the default source is fine.
type MathRandom struct{}

// New creates a new MathRandom
func New() *MathRandom {
	return &MathRandom{}
}

// Intn returns a uniformly random int in [0, n)
func (r *MathRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n)
}
