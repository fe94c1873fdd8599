package perceptron

type status int8

const (
	uninitialized status = iota // 0
	ready         status = iota // 1
)

// initialize allocates every layer and connects each non-input unit to the whole of the previous
// layer. All activations start at zero.
func (net *Network) initialize() {
	net.layers = make([][]Unit, len(net.sizes))
	for l, size := range net.sizes {
		net.layers[l] = make([]Unit, size)
		if l == 0 {
			continue
		}

		for i := range net.layers[l] {
			net.layers[l][i].connect(net.sizes[l-1], net.rng.Gen)
		}
	}

	// output units are marked by having a target
	out := net.layers[len(net.layers)-1]
	for i := range out {
		out[i].SetTarget(0)
	}

	net.stat = ready
}

// prepare makes sure the units exist, then loads the current sample into them: the input layer
// gets the input vector, hidden units are zeroed, output units get the target vector. Weights are
// not touched.
func (net *Network) prepare() error {
	if net.input == nil {
		return ErrNoInput
	} else if net.target == nil {
		return ErrNoTarget
	}

	if net.stat < ready {
		net.initialize()
	}

	net.reset()
	return nil
}

func (net *Network) reset() {
	last := len(net.layers) - 1
	for l := range net.layers {
		for i := range net.layers[l] {
			u := &net.layers[l][i]
			switch l {
			case 0:
				u.SetActivation(net.input[i])
			case last:
				u.SetActivation(0)
				u.SetTarget(net.target[i])
			default:
				u.SetActivation(0)
			}
		}
	}
}

// forward recalculates every non-input unit, one layer at a time, so that each layer only reads
// completed values from the one before it
func (net *Network) forward() {
	for l := 1; l < len(net.layers); l++ {
		prev := net.layers[l-1]
		for i := range net.layers[l] {
			net.layers[l][i].recompute(prev)
		}
	}
}

func (net *Network) updateError() {
	net.err = net.cost.Cost(net.Output(), net.target)
}

func (net *Network) updateLearningRate() {
	net.rate = net.schedule.Value(net.err)
}

// backward calculates the gradient of every non-input unit, starting from the output layer.
// Nothing is adjusted here.
func (net *Network) backward() {
	last := len(net.layers) - 1
	for i := range net.layers[last] {
		net.layers[last][i].outputGradient()
	}

	for l := last - 1; l > 0; l-- {
		next := net.layers[l+1]
		for i := range net.layers[l] {
			var sum float64
			for n := range next {
				sum += next[n].gradient * next[n].connections[i].weight
			}

			net.layers[l][i].hiddenGradient(sum)
		}
	}
}

// adjust applies the weight updates of every unit. It must only be run once all gradients are
// known.
func (net *Network) adjust() {
	for l := 1; l < len(net.layers); l++ {
		prev := net.layers[l-1]
		for i := range net.layers[l] {
			net.layers[l][i].adjust(net.rate, prev)
		}
	}
}

// Train runs a single training cycle on the current input and target: a forward pass, then the
// learning rate and error are updated. The learning rate is set before the error, so it follows
// the error of the previous cycle (zero before the first one). Weights are only adjusted if the
// error is greater than the MaxError of the Network's Config; samples that are already good
// enough are left alone.
//
// Train returns ErrNoInput or ErrNoTarget if either has not been set.
func (net *Network) Train() error {
	if err := net.prepare(); err != nil {
		return err
	}

	net.forward()
	net.updateLearningRate()
	net.updateError()

	if net.err > net.cfg.MaxError {
		net.backward()
		net.adjust()
	}

	return nil
}

// Run runs a forward pass on the current input and calculates the error against the current
// target. No weights are changed.
//
// Run returns ErrNoInput or ErrNoTarget if either has not been set.
func (net *Network) Run() error {
	if err := net.prepare(); err != nil {
		return err
	}

	net.forward()
	net.updateError()
	return nil
}
