// Command bitmaps trains a perceptron to classify small bitmaps, saves it, loads it back and
// validates the loaded copy.
//
// Each sample is a plain-text file holding the target vector followed by the flattened bitmap,
// as whitespace-separated numbers. The defaults match 7x7 bitmaps with three labels, stored in
// src/data/train and src/data/validate.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	bs "github.com/sharnoff/perceptron"
	"github.com/sharnoff/perceptron/initializers"
	"github.com/sharnoff/perceptron/samples"
)

type options struct {
	cfg bs.Config

	trainDir    string
	validateDir string
	modelPath   string

	verbose bool
	skipBad bool
	seed    int64
}

func parseFlags() options {
	o := options{cfg: bs.DefaultConfig()}

	flag.IntVar(&o.cfg.InputSize, "inputs", o.cfg.InputSize, "number of values in a bitmap")
	flag.IntVar(&o.cfg.OutputSize, "outputs", o.cfg.OutputSize, "number of labels")
	flag.IntVar(&o.cfg.LayerCount, "layers", o.cfg.LayerCount, "total number of layers, including input and output")
	flag.IntVar(&o.cfg.HiddenSize, "hidden", o.cfg.HiddenSize, "number of units in each hidden layer")
	flag.Float64Var(&o.cfg.MaxError, "max-error", o.cfg.MaxError, "largest error that counts as correct")
	flag.Float64Var(&o.cfg.MinLearningRate, "min-rate", o.cfg.MinLearningRate, "learning rate at zero error")
	flag.Float64Var(&o.cfg.MaxLearningRate, "max-rate", o.cfg.MaxLearningRate, "learning rate at maximum error")
	flag.Float64Var(&o.cfg.LearningBarrier, "barrier", o.cfg.LearningBarrier, "smallest change in mean error that counts as progress")
	flag.IntVar(&o.cfg.MaxBarrier, "max-barrier", o.cfg.MaxBarrier, "epochs without progress before stopping")
	flag.IntVar(&o.cfg.EpochBudget, "epochs", o.cfg.EpochBudget, "maximum number of epochs")

	flag.StringVar(&o.trainDir, "train", "src/data/train", "directory of training samples")
	flag.StringVar(&o.validateDir, "validate", "src/data/validate", "directory of validation samples")
	flag.StringVar(&o.modelPath, "model", "weights.txt", "file to save the trained model to")
	flag.BoolVar(&o.verbose, "verbose", false, "print every sample")
	flag.BoolVar(&o.skipBad, "skip-bad", false, "skip malformed sample files instead of stopping")
	flag.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "seed for the initial weights")

	flag.Parse()
	return o
}

func printSeparator() {
	fmt.Println()
	fmt.Println("===========================================================")
	fmt.Println()
}

func printSample(prefix string, s bs.SampleResult) {
	printSeparator()
	fmt.Printf("%s%s\n\n", prefix, s.Datum.Name)
	fmt.Printf("Expected output: %v\n\n", s.Datum.Outputs)
	fmt.Printf("Actual output: %v\n\n", s.Output)
	fmt.Printf("Error: %v\n", s.Error)
	printSeparator()
}

func readCorpus(o options, dir string) ([]bs.Datum, error) {
	data, bad, err := samples.ReadDir(dir, o.cfg.InputSize, o.cfg.OutputSize)
	if err != nil {
		return nil, err
	}

	for _, e := range bad {
		fmt.Fprintln(os.Stderr, e)
	}

	if len(bad) != 0 && !o.skipBad {
		return nil, errors.Errorf("%d malformed samples in %q (use -skip-bad to ignore them)", len(bad), dir)
	} else if len(data) == 0 {
		return nil, errors.Wrapf(bs.ErrEmptyCorpus, "No usable samples in %q", dir)
	}

	return data, nil
}

func train(o options, net *bs.Network) error {
	data, err := readCorpus(o, o.trainDir)
	if err != nil {
		return errors.Wrapf(err, "Can't read training data")
	}

	args := bs.TrainArgs{Data: data}
	if o.verbose {
		args.Sample = func(s bs.SampleResult) {
			printSample(fmt.Sprintf("Epoch: %d | Training on: ", s.Epoch), s)
		}
		args.Update = func(r bs.Result) {
			fmt.Printf("Epoch %d: mean error %v, %v%% correct, stalled for %d\n", r.Epoch, r.MeanError, r.Correct*100, r.Stalled)
		}
	}

	start := time.Now()
	r, err := net.TrainEpochs(args)
	if err != nil {
		return err
	}

	fmt.Printf("Train ended on epoch %d, time: %v\n", r.Epoch, time.Since(start).Seconds())
	fmt.Printf("Mean error on train is %v\n", r.MeanError)
	return nil
}

func validate(o options, net *bs.Network) error {
	data, err := readCorpus(o, o.validateDir)
	if err != nil {
		return errors.Wrapf(err, "Can't read validation data")
	}

	var labelled int
	sample := func(s bs.SampleResult) {
		if bs.CorrectHighest(s.Output, s.Datum.Outputs) {
			labelled++
		}

		if o.verbose {
			printSample("Validating on: ", s)
		}
	}

	r, err := net.Test(data, sample)
	if err != nil {
		return err
	}

	fmt.Printf("Validation ended with %v%% of correct results\n", r.Correct*100)
	fmt.Printf("Mean error on validation is %v\n", r.MeanError)
	fmt.Printf("Strongest output matched the label on %d of %d samples\n", labelled, r.Samples)
	return nil
}

func run(o options) error {
	net, err := bs.New(o.cfg)
	if err != nil {
		return err
	}
	net.SetRNG(initializers.Uniform().Seed(o.seed))

	if err = train(o, net); err != nil {
		return err
	}

	fmt.Printf("Saving to %q...\n", o.modelPath)
	if err = net.Save(o.modelPath, true); err != nil {
		return err
	}

	if net, err = bs.Load(o.modelPath, o.cfg); err != nil {
		return err
	}

	return validate(o, net)
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
