package perceptron

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/sharnoff/perceptron/costfuncs"
)

// Datum is a simple wrapper used to send samples to the Network
type Datum struct {
	// Name identifies the sample in progress reports, usually the file it came from. It may be
	// empty.
	Name string

	// Inputs is the input of the network. It must have the same size as that of the
	// network's inputs.
	Inputs []float64

	// Outputs is the expected output of the network, given the input.
	Outputs []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the Network, allowing
// it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.cfg.InputSize && len(d.Outputs) == net.cfg.OutputSize
}

// Result is a summary of one pass over a set of samples
type Result struct {
	// Epoch is the 1-indexed epoch the Result is from. It is 0 for results from Test.
	Epoch int

	// MeanError is the average error of all samples
	MeanError float64

	// Correct is the fraction of samples with error at most MaxError, on [0, 1]
	Correct float64

	// Samples is the number of samples the Result covers
	Samples int

	// Stalled is the number of consecutive epochs, up to and including this one, in which the
	// mean error did not improve by at least LearningBarrier. It is always 0 for results from
	// Test.
	Stalled int
}

// SampleResult describes the outcome of a single sample, as sent to TrainArgs.Sample
type SampleResult struct {
	Epoch  int
	Datum  Datum
	Output []float64
	Error  float64
}

// TrainArgs holds the arguments to TrainEpochs
type TrainArgs struct {
	// Data is the training corpus. Every epoch is one pass over all of it, in order.
	Data []Datum

	// Update is sent the Result at the end of every epoch. It may be nil.
	Update func(Result)

	// Sample is sent the outcome of every sample as it is trained on. It may be nil.
	Sample func(SampleResult)
}

// Convergence tracks the mean error over successive epochs to decide when training should stop:
// once the mean error has failed to improve by at least LearningBarrier for MaxBarrier
// consecutive epochs, while already under MaxError.
type Convergence struct {
	barrier  float64
	maxCount int
	maxError float64

	previous float64
	count    int
}

// NewConvergence returns a Convergence using the LearningBarrier, MaxBarrier and MaxError of cfg
func NewConvergence(cfg Config) *Convergence {
	return &Convergence{
		barrier:  cfg.LearningBarrier,
		maxCount: cfg.MaxBarrier,
		maxError: cfg.MaxError,
		previous: math.Inf(1),
	}
}

// Observe records the mean error of an epoch, and returns whether or not training should stop.
func (c *Convergence) Observe(meanError float64) bool {
	if math.Abs(c.previous-meanError) < c.barrier || meanError > c.previous {
		c.count++
	} else {
		c.count = 0
	}

	c.previous = meanError
	return c.count >= c.maxCount && meanError < c.maxError
}

// Stalled returns the number of consecutive epochs without progress
func (c *Convergence) Stalled() int {
	return c.count
}

// RunEpochs calls epoch with 1, 2, ... until either the budget is used up or conv reports that
// training has converged. after, if not nil, is called once conv has seen each epoch's mean
// error. RunEpochs returns the number of epochs that were run and the mean error of the last one.
func RunEpochs(budget int, conv *Convergence, epoch func(int) (float64, error), after func(int)) (int, float64, error) {
	var meanError float64
	for e := 1; e <= budget; e++ {
		var err error
		if meanError, err = epoch(e); err != nil {
			return e, meanError, errors.Wrapf(err, "Epoch %d failed", e)
		}

		done := conv.Observe(meanError)
		if after != nil {
			after(e)
		}

		if done {
			return e, meanError, nil
		}
	}

	return budget, meanError, nil
}

// TrainEpochs trains the Network on args.Data for up to EpochBudget epochs, stopping early once
// the mean error has converged (see Convergence). It returns the Result of the final epoch.
//
// All of the data is checked before training starts; if any Datum does not fit the Network,
// nothing is trained and the returned error lists every one that doesn't.
func (net *Network) TrainEpochs(args TrainArgs) (Result, error) {
	if err := net.checkData(args.Data); err != nil {
		return Result{}, errors.Wrapf(err, "Can't train network")
	}

	errs := make([]float64, len(args.Data))
	var last Result

	epoch := func(e int) (float64, error) {
		for i, d := range args.Data {
			if err := net.load(d); err != nil {
				return 0, errors.Wrapf(err, "Sample %d (%s)", i, d.Name)
			}

			if err := net.Train(); err != nil {
				return 0, errors.Wrapf(err, "Training on sample %d (%s) failed", i, d.Name)
			}

			errs[i] = net.err
			if args.Sample != nil {
				args.Sample(SampleResult{Epoch: e, Datum: d, Output: net.Output(), Error: net.err})
			}
		}

		r, err := net.summarize(errs)
		if err != nil {
			return 0, err
		}

		r.Epoch = e
		last = r
		return r.MeanError, nil
	}

	conv := NewConvergence(net.cfg)
	after := func(int) {
		last.Stalled = conv.Stalled()
		if args.Update != nil {
			args.Update(last)
		}
	}

	if _, _, err := RunEpochs(net.cfg.EpochBudget, conv, epoch, after); err != nil {
		return last, err
	}

	return last, nil
}

// Test runs the Network on every Datum without changing any weights, and returns the mean error
// and the fraction of samples with error at most MaxError. sample may be nil.
//
// As with TrainEpochs, all of the data is checked first.
func (net *Network) Test(data []Datum, sample func(SampleResult)) (Result, error) {
	if err := net.checkData(data); err != nil {
		return Result{}, errors.Wrapf(err, "Can't test network")
	}

	errs := make([]float64, len(data))
	for i, d := range data {
		if err := net.load(d); err != nil {
			return Result{}, errors.Wrapf(err, "Sample %d (%s)", i, d.Name)
		}

		if err := net.Run(); err != nil {
			return Result{}, errors.Wrapf(err, "Running sample %d (%s) failed", i, d.Name)
		}

		errs[i] = net.err
		if sample != nil {
			sample(SampleResult{Datum: d, Output: net.Output(), Error: net.err})
		}
	}

	return net.summarize(errs)
}

func (net *Network) load(d Datum) error {
	if err := net.SetInput(d.Inputs); err != nil {
		return err
	}

	return net.SetTarget(d.Outputs)
}

func (net *Network) summarize(errs []float64) (Result, error) {
	mean, err := costfuncs.Mean(errs)
	if err != nil {
		return Result{}, ErrEmptyCorpus
	}

	correct, err := costfuncs.Fraction(errs, costfuncs.Within(net.cfg.MaxError))
	if err != nil {
		return Result{}, ErrEmptyCorpus
	}

	return Result{MeanError: mean, Correct: correct, Samples: len(errs)}, nil
}

// checkData returns ErrEmptyCorpus if there is no data, or an error listing every Datum that
// doesn't fit the Network
func (net *Network) checkData(data []Datum) error {
	if len(data) == 0 {
		return ErrEmptyCorpus
	}

	var bad []string
	for i, d := range data {
		if d.Fits(net) {
			continue
		}

		var e *InputError
		if len(d.Inputs) != net.cfg.InputSize {
			e = sizeError("input", net.cfg.InputSize, len(d.Inputs))
		} else {
			e = sizeError("target", net.cfg.OutputSize, len(d.Outputs))
		}

		bad = append(bad, errors.Wrapf(e, "sample %d (%s)", i, d.Name).Error())
	}

	if len(bad) != 0 {
		return errors.Errorf("%d of %d samples do not fit the network:\n\t%s", len(bad), len(data), strings.Join(bad, "\n\t"))
	}

	return nil
}
