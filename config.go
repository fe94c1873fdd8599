package perceptron

import (
	"github.com/pkg/errors"
	"math"
)

// Config holds the topology of a Network and the hyperparameters for training it.
type Config struct {
	// InputSize is the number of input units (the length of a sample's input vector)
	InputSize int
	// OutputSize is the number of output units (the length of a sample's target vector)
	OutputSize int
	// LayerCount is the total number of layers, including the input and output layers. It must
	// be at least 3.
	LayerCount int
	// HiddenSize is the number of units in every hidden layer
	HiddenSize int

	// MaxError is the largest error for which a sample is considered correct. Train does not
	// adjust weights for samples at or below it.
	MaxError float64

	// MinLearningRate and MaxLearningRate bound the learning rate, which is scaled between them
	// by the error of the current sample.
	MinLearningRate float64
	MaxLearningRate float64

	// LearningBarrier is the smallest change in mean error between two epochs that counts as
	// progress.
	LearningBarrier float64
	// MaxBarrier is the number of consecutive epochs without progress (while under MaxError)
	// after which training stops.
	MaxBarrier int
	// EpochBudget is the maximum number of epochs to train for.
	EpochBudget int
}

// DefaultConfig returns the configuration for classifying 7x7 bitmaps into one of three labels.
func DefaultConfig() Config {
	return Config{
		InputSize:       49,
		OutputSize:      3,
		LayerCount:      3,
		HiddenSize:      20,
		MaxError:        0.1,
		MinLearningRate: 0.1,
		MaxLearningRate: 0.3,
		LearningBarrier: 0.001,
		MaxBarrier:      3,
		EpochBudget:     200,
	}
}

// Validate returns an error describing the first invalid field of the Config, if there is one.
func (c Config) Validate() error {
	switch {
	case c.InputSize < 1:
		return errors.Errorf("InputSize must be >= 1 (%d)", c.InputSize)
	case c.OutputSize < 1:
		return errors.Errorf("OutputSize must be >= 1 (%d)", c.OutputSize)
	case c.LayerCount < 3:
		return errors.Errorf("LayerCount must be >= 3 (%d)", c.LayerCount)
	case c.HiddenSize < 1:
		return errors.Errorf("HiddenSize must be >= 1 (%d)", c.HiddenSize)
	case !finite(c.MaxError) || c.MaxError < 0:
		return errors.Errorf("MaxError must be a non-negative number (%v)", c.MaxError)
	case !finite(c.MinLearningRate) || !finite(c.MaxLearningRate):
		return errors.Errorf("Learning rates must be numbers (%v, %v)", c.MinLearningRate, c.MaxLearningRate)
	case c.MinLearningRate > c.MaxLearningRate:
		return errors.Errorf("MinLearningRate is greater than MaxLearningRate (%v > %v)", c.MinLearningRate, c.MaxLearningRate)
	case !finite(c.LearningBarrier) || c.LearningBarrier < 0:
		return errors.Errorf("LearningBarrier must be a non-negative number (%v)", c.LearningBarrier)
	case c.MaxBarrier < 1:
		return errors.Errorf("MaxBarrier must be >= 1 (%d)", c.MaxBarrier)
	case c.EpochBudget < 1:
		return errors.Errorf("EpochBudget must be >= 1 (%d)", c.EpochBudget)
	}

	return nil
}

// sizes returns the number of units in each layer, from input to output
func (c Config) sizes() []int {
	s := make([]int, c.LayerCount)
	for i := range s {
		s[i] = c.HiddenSize
	}

	s[0] = c.InputSize
	s[len(s)-1] = c.OutputSize
	return s
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
