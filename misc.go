package perceptron

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CorrectRound returns whether every output rounds to its target. Assumes len(outs) ==
// len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}

// CorrectHighest returns whether or not the largest value in each is at the same index, i.e.
// whether the strongest output is the labelled class. Both slices must be non-empty.
func CorrectHighest(outs, targets []float64) bool {
	return floats.MaxIdx(outs) == floats.MaxIdx(targets)
}

// Every returns a function that is true on every multiple of frequency, for use in
// TrainArgs.Update callbacks.
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}
