package costfuncs

import (
	"math"
)

type halfAbs struct{}

// HalfAbs returns the error metric used by the Network: half of the sum of the absolute
// differences between outputs and targets. For n outputs on [0, 1] the result is on [0, n/2].
func HalfAbs() halfAbs {
	return halfAbs{}
}

// Cost assumes that len(outs) == len(targets)
func (h halfAbs) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum += math.Abs(targets[i] - outs[i])
	}

	return sum / 2
}

// Within returns a predicate that reports whether a sample's error is small enough to count as
// correct.
func Within(maxError float64) func(float64) bool {
	return func(e float64) bool {
		return e <= maxError
	}
}
