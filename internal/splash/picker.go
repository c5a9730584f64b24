package splash

import "math/rand/v2"

// IndexPicker returns an index in [0, n).
type IndexPicker interface {
	IntN(n int) int
}

// RandomPicker picks uniformly using the process-wide random source.
type RandomPicker struct{}

func (RandomPicker) IntN(n int) int { return rand.IntN(n) }
