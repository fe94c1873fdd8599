package perceptron

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sharnoff/perceptron/costfuncs"
	"github.com/sharnoff/perceptron/hyperparams"
	"github.com/sharnoff/perceptron/initializers"
	"gonum.org/v1/gonum/floats"
)

// Network is a fully-connected multilayer perceptron with a fixed topology. Units are stored as
// a two-dimensional arena, indexed by (layer, unit); they are created on first use and reused by
// every later cycle, so that learned weights persist across samples.
//
// A Network is not safe for concurrent use.
type Network struct {
	cfg   Config
	sizes []int

	layers [][]Unit
	stat   status

	input  []float64
	target []float64

	err  float64
	rate float64

	rng      initializers.RNG
	cost     costFunction
	schedule learningRate
}

type costFunction interface {
	// Cost(outputs, targets []float64) float64
	Cost([]float64, []float64) float64
}

type learningRate interface {
	// Value(err float64) float64
	Value(float64) float64
}

// New returns a Network with the topology and hyperparameters of cfg. No units are allocated
// until they are first needed.
func New(cfg Config) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "Can't create network, invalid config")
	}

	schedule, err := hyperparams.ErrorScaled(cfg.MinLearningRate, cfg.MaxLearningRate, cfg.OutputSize)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't create network, invalid learning rate")
	}

	net := &Network{
		cfg:      cfg,
		sizes:    cfg.sizes(),
		rng:      initializers.Uniform(),
		cost:     costfuncs.HalfAbs(),
		schedule: schedule,
	}

	return net, nil
}

// SetRNG sets the generator used for the initial weights. It only has an effect if called before
// the units are initialized.
func (net *Network) SetRNG(g initializers.RNG) *Network {
	if g == nil {
		panic(errors.Errorf("RNG is nil"))
	}

	net.rng = g
	return net
}

// Config returns the configuration the Network was created with
func (net *Network) Config() Config {
	return net.cfg
}

// Sizes returns the number of units in each layer, from input to output
func (net *Network) Sizes() []int {
	s := make([]int, len(net.sizes))
	copy(s, net.sizes)
	return s
}

// Initialized returns whether or not the units of the Network have been allocated
func (net *Network) Initialized() bool {
	return net.stat >= ready
}

// SetInput replaces the current input vector. If its length is not the input size, an
// *InputError is returned and the current input is unchanged.
func (net *Network) SetInput(input []float64) error {
	if len(input) != net.cfg.InputSize {
		return sizeError("input", net.cfg.InputSize, len(input))
	}

	net.input = append(net.input[:0], input...)
	return nil
}

// SetTarget replaces the current target vector. If its length is not the output size, an
// *InputError is returned and the current target is unchanged.
func (net *Network) SetTarget(target []float64) error {
	if len(target) != net.cfg.OutputSize {
		return sizeError("target", net.cfg.OutputSize, len(target))
	}

	net.target = append(net.target[:0], target...)
	return nil
}

// Error returns the error calculated by the most recent call to Train or Run: half of the sum of
// the absolute differences between outputs and targets.
func (net *Network) Error() float64 {
	return net.err
}

// LearningRate returns the learning rate calculated by the most recent call to Train
func (net *Network) LearningRate() float64 {
	return net.rate
}

// Output returns a copy of the activations of the output layer. It returns nil if the Network has
// not been initialized.
func (net *Network) Output() []float64 {
	if net.stat < ready {
		return nil
	}

	out := net.layers[len(net.layers)-1]
	vs := make([]float64, len(out))
	for i := range out {
		vs[i] = out[i].activation
	}

	return vs
}

// Layers returns a copy of the activations of every layer, from input to output. It returns nil if
// the Network has not been initialized.
func (net *Network) Layers() [][]float64 {
	if net.stat < ready {
		return nil
	}

	ls := make([][]float64, len(net.layers))
	for l, layer := range net.layers {
		ls[l] = make([]float64, len(layer))
		for i := range layer {
			ls[l][i] = layer[i].activation
		}
	}

	return ls
}

// Unit returns a copy of the unit at the given position. It returns ErrNotInitialized if the
// units have not been created yet.
func (net *Network) Unit(layer, index int) (Unit, error) {
	if net.stat < ready {
		return Unit{}, ErrNotInitialized
	} else if layer < 0 || layer >= len(net.layers) {
		return Unit{}, errors.Errorf("Layer %d out of range [0, %d)", layer, len(net.layers))
	} else if index < 0 || index >= len(net.layers[layer]) {
		return Unit{}, errors.Errorf("Unit %d out of range [0, %d) in layer %d", index, len(net.layers[layer]), layer)
	}

	u := net.layers[layer][index]
	u.connections = u.Connections()
	return u, nil
}

// Dump writes the activations of every layer, one layer per line, followed by the targets of the
// output layer in parentheses.
func (net *Network) Dump(w io.Writer) error {
	if net.stat < ready {
		return ErrNotInitialized
	}

	if _, err := fmt.Fprintln(w, "Unit values"); err != nil {
		return err
	}

	for _, vs := range net.Layers() {
		if _, err := fmt.Fprintf(w, "%v (sum %v)\n", vs, floats.Sum(vs)); err != nil {
			return err
		}
	}

	out := net.layers[len(net.layers)-1]
	ts := make([]float64, len(out))
	for i := range out {
		ts[i], _ = out[i].Target()
	}

	_, err := fmt.Fprintf(w, "(%v)\n", ts)
	return err
}
