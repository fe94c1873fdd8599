package costfuncs

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Mean returns the arithmetic mean of the given per-sample errors. An empty slice is an error,
// never a division by zero.
func Mean(errs []float64) (float64, error) {
	if len(errs) == 0 {
		return 0, errors.Errorf("Can't take the mean of zero values")
	}

	return floats.Sum(errs) / float64(len(errs)), nil
}

// Fraction returns the fraction of values for which ok returns true, on [0, 1].
func Fraction(values []float64, ok func(float64) bool) (float64, error) {
	if len(values) == 0 {
		return 0, errors.Errorf("Can't take a fraction of zero values")
	}

	var count int
	for _, v := range values {
		if ok(v) {
			count++
		}
	}

	return float64(count) / float64(len(values)), nil
}
