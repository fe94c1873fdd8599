package perceptron

// Weights returns the weights of every non-input unit as a matrix. Rows are in (layer, unit)
// order, starting with the first hidden layer; each row holds the unit's connection weights,
// ordered by the index of the source unit. The units are initialized first if they have not been
// already.
func (net *Network) Weights() [][]float64 {
	if net.stat < ready {
		net.initialize()
	}

	rows := make([][]float64, 0, net.weightRows())
	for l := 1; l < len(net.layers); l++ {
		for i := range net.layers[l] {
			cs := net.layers[l][i].connections
			row := make([]float64, len(cs))
			for c := range cs {
				row[c] = cs[c].weight
			}

			rows = append(rows, row)
		}
	}

	return rows
}

// SetWeights overwrites every connection weight, in the same order given by Weights. The units
// are initialized first if they have not been already.
//
// The shape of the matrix is checked before anything is changed: if there are the wrong number
// of rows or a row has the wrong length, an *InputError is returned and the Network is unchanged.
func (net *Network) SetWeights(weights [][]float64) error {
	if len(weights) != net.weightRows() {
		return sizeError("weights", net.weightRows(), len(weights))
	}

	r := 0
	for l := 1; l < len(net.sizes); l++ {
		for i := 0; i < net.sizes[l]; i++ {
			if len(weights[r]) != net.sizes[l-1] {
				return &InputError{What: "weights", Expected: net.sizes[l-1], Got: len(weights[r]), Row: r}
			}
			r++
		}
	}

	// every weight is overwritten below, so the initial values drawn here never survive
	if net.stat < ready {
		net.initialize()
	}

	r = 0
	for l := 1; l < len(net.layers); l++ {
		for i := range net.layers[l] {
			cs := net.layers[l][i].connections
			for c := range cs {
				cs[c].SetWeight(weights[r][c])
			}
			r++
		}
	}

	return nil
}

// weightRows returns the number of non-input units
func (net *Network) weightRows() int {
	var n int
	for _, s := range net.sizes[1:] {
		n += s
	}

	return n
}
