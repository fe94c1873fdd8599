// Package perceptron provides a small multilayer perceptron, trained one sample at a time by
// backpropagation, for classifying fixed-size bitmaps into one of a few labels.
//
// Creating Networks
//
// The topology and hyperparameters of a Network are given by a Config:
//
//		cfg := perceptron.DefaultConfig()
//		cfg.InputSize, cfg.OutputSize = 49, 3
//
//		net, err := perceptron.New(cfg)
//		if err != nil {
//			return err
//		}
//
// Every Network has one input layer, LayerCount-2 hidden layers of HiddenSize units and one
// output layer. Each non-input unit is connected to every unit of the layer before it, and uses
// the logistic function as its activation. There are no biases. The topology never changes after
// New; units are allocated the first time they are needed and then reused, so weights carry over
// from one sample to the next.
//
// Initial weights are drawn uniformly from [-0.1, 0.1). For repeatable results, give the Network
// a seeded generator from the subpackage "initializers" before it is first used:
//
//		net.SetRNG(initializers.Uniform().Seed(1))
//
// Training and Testing
//
// A single cycle works on the current sample, set by SetInput and SetTarget:
//
//		net.SetInput(bitmap)
//		net.SetTarget(label)
//		net.Train() // or net.Run(), which never changes any weights
//
// After either, Error gives half of the sum of the absolute differences between outputs and
// targets, and Output gives the activations of the output layer. Train only adjusts weights if
// the error is greater than Config.MaxError. The learning rate is scaled with the error, between
// MinLearningRate and MaxLearningRate.
//
// Whole corpora are handled by TrainEpochs and Test, which work on slices of Datum. TrainEpochs
// stops either at EpochBudget or once the mean error has settled under MaxError (see
// Convergence). The subpackage "samples" reads a Datum from each file of a directory.
//
// Saving and Loading
//
// Models are stored as plain text: a header with the topology, then the weights of one unit per
// line.
//
//		err := net.Save(path, true)
//		net, err = perceptron.Load(path, cfg)
//
// Save and Load are wrappers around WriteModel and ReadModel. The topology of a loaded Network
// comes from the file; the rest of the given Config is kept.
package perceptron
