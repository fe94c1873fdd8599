package main

import (
	bs "github.com/sharnoff/perceptron"
	"github.com/sharnoff/perceptron/initializers"

	"fmt"
	"os"
)

const (
	statusFrequency int = 100

	// main hyperparameters
	hiddenSize  int     = 2
	maxEpochs   int     = 3000
	maxError    float64 = 0.1
	minRate     float64 = 0.5
	maxRate     float64 = 2
	weightsSeed int64   = 1

	// where to save/load the network
	path string = "xor save.txt"
)

func train(net *bs.Network, dataset []bs.Datum) {
	sendStatus := bs.Every(statusFrequency)
	args := bs.TrainArgs{
		Data: dataset,
		Update: func(r bs.Result) {
			if sendStatus(r.Epoch) {
				fmt.Printf("%d, %v, %v, %d\n", r.Epoch, r.MeanError, r.Correct, r.Stalled)
			}
		},
	}

	fmt.Println("Starting training...")
	fmt.Println("Epoch, Mean Error, Fraction Correct, Epochs Stalled")

	r, err := net.TrainEpochs(args)
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("%d, %v, %v, %d\n", r.Epoch, r.MeanError, r.Correct, r.Stalled)
	fmt.Println("Done training!")
}

func test(net *bs.Network, dataset []bs.Datum) {
	fmt.Println("Testing...")
	r, err := net.Test(dataset, func(s bs.SampleResult) {
		fmt.Printf("%v -> %v (expected %v, rounds correctly: %v)\n", s.Datum.Inputs, s.Output, s.Datum.Outputs,
			bs.CorrectRound(s.Output, s.Datum.Outputs))
	})
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("Mean error %v, %v%% correct\n", r.MeanError, r.Correct*100)
}

func save(net *bs.Network) {
	fmt.Println("Saving...")
	if err := net.Save(path, true); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")
}

func load(cfg bs.Config) (net *bs.Network) {
	fmt.Println("Loading...")
	var err error
	if net, err = bs.Load(path, cfg); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")

	return
}

func main() {
	dataset := []bs.Datum{
		{Inputs: []float64{0, 0}, Outputs: []float64{0}},
		{Inputs: []float64{0, 1}, Outputs: []float64{1}},
		{Inputs: []float64{1, 0}, Outputs: []float64{1}},
		{Inputs: []float64{1, 1}, Outputs: []float64{0}},
	}

	cfg := bs.DefaultConfig()
	cfg.InputSize, cfg.OutputSize, cfg.HiddenSize = 2, 1, hiddenSize
	cfg.EpochBudget = maxEpochs
	cfg.MaxError = maxError
	cfg.MinLearningRate, cfg.MaxLearningRate = minRate, maxRate

	fmt.Println("Setting up network...")
	net, err := bs.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	net.SetRNG(initializers.Uniform().Seed(weightsSeed))
	fmt.Println("Done!")

	train(net, dataset)
	test(net, dataset)
	save(net)
	net = load(cfg)
	test(net, dataset)
}
