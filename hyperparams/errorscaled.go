package hyperparams

import (
	"github.com/pkg/errors"
	"math"
)

type errorScaled struct {
	Min, Max float64
	Outputs  int
}

// ErrorScaled returns the learning-rate schedule used by the Network: the rate moves linearly
// from min (no error) to max (every output as wrong as it can be), following the error it is
// given. outputs is the number of output units, which bounds the error to
// [0, outputs/2].
func ErrorScaled(min, max float64, outputs int) (*errorScaled, error) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return nil, errors.Errorf("Learning rate bounds must be numbers (%v, %v)", min, max)
	} else if min > max {
		return nil, errors.Errorf("Minimum learning rate is greater than maximum (%v > %v)", min, max)
	} else if outputs < 1 {
		return nil, errors.Errorf("Number of outputs must be >= 1 (%d)", outputs)
	}

	return &errorScaled{min, max, outputs}, nil
}

// Value gives the learning rate for the given error. It is not clamped; an error outside of
// [0, outputs/2] gives a rate outside of [min, max].
func (e *errorScaled) Value(err float64) float64 {
	scale := 2 * err / float64(e.Outputs)
	return e.Min + (e.Max-e.Min)*scale
}
