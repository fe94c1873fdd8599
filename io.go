package perceptron

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WriteModel writes the topology and weights of the Network in plain text. The first line holds
// the input size, output size, layer count and hidden layer size; every following line holds the
// weights of one non-input unit, in the order given by Weights.
//
// Weights are written in their shortest exact form, so reading them back gives identical values.
func (net *Network) WriteModel(w io.Writer) error {
	bw := bufio.NewWriter(w)

	c := net.cfg
	header := []string{
		strconv.Itoa(c.InputSize),
		strconv.Itoa(c.OutputSize),
		strconv.Itoa(c.LayerCount),
		strconv.Itoa(c.HiddenSize),
	}
	if _, err := bw.WriteString(strings.Join(header, " ") + "\n"); err != nil {
		return errors.Wrapf(err, "Can't write model header")
	}

	for r, row := range net.Weights() {
		strs := make([]string, len(row))
		for i := range row {
			strs[i] = strconv.FormatFloat(row[i], 'g', -1, 64)
		}

		if _, err := bw.WriteString(strings.Join(strs, " ") + "\n"); err != nil {
			return errors.Wrapf(err, "Can't write weights of row %d", r)
		}
	}

	return errors.Wrapf(bw.Flush(), "Can't write model")
}

// Save writes the model to the file at path, as described by WriteModel. If 'overwrite' is false
// and the file already exists, Save will return error.
func (net *Network) Save(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.Errorf("Can't save network, file %q already exists, and overwrite is not enabled", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't save network, couldn't create file %q", path)
	}

	if err = net.WriteModel(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "Can't save network to %q", path)
	}

	return errors.Wrapf(f.Close(), "Can't save network, couldn't close file %q", path)
}

// ReadModel reads a model written by WriteModel into a fresh Network. The topology in the model
// replaces that of cfg; all other fields of cfg are kept. Any problem with the contents is
// returned as a *ModelFormatError.
func ReadModel(r io.Reader, cfg Config) (*Network, error) {
	return readModel(r, "", cfg)
}

// Load opens the file at path and reads it with ReadModel.
func Load(path string, cfg Config) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network")
	}

	defer f.Close()

	return readModel(f, path, cfg)
}

// limits on the topology a model header may declare, checked before anything is allocated
const (
	maxModelSize    int     = 1 << 24
	maxModelLayers  int     = 1 << 16
	maxModelWeights float64 = 1 << 28
)

func readModel(r io.Reader, path string, cfg Config) (*Network, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	formatErr := func(format string, args ...interface{}) error {
		return &ModelFormatError{Path: path, Line: line, Err: errors.Errorf(format, args...)}
	}

	// header
	{
		line++
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, &ModelFormatError{Path: path, Line: line, Err: err}
			}
			return nil, formatErr("missing header")
		}

		fields := strings.Fields(sc.Text())
		if len(fields) != 4 {
			return nil, formatErr("header must have 4 values, has %d", len(fields))
		}

		vs := make([]int, 4)
		for i, s := range fields {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, formatErr("header value %q is not an integer", s)
			}
			vs[i] = v
		}

		for _, v := range vs {
			if v > maxModelSize {
				return nil, formatErr("header value %d is greater than the limit of %d", v, maxModelSize)
			}
		}

		if vs[2] > maxModelLayers {
			return nil, formatErr("header declares %d layers, more than the limit of %d", vs[2], maxModelLayers)
		}

		in, out, layers, hidden := float64(vs[0]), float64(vs[1]), float64(vs[2]), float64(vs[3])
		if total := in*hidden + hidden*hidden*(layers-3) + hidden*out; total > maxModelWeights {
			return nil, formatErr("header declares %v weights, more than the limit of %v", total, maxModelWeights)
		}

		cfg.InputSize, cfg.OutputSize, cfg.LayerCount, cfg.HiddenSize = vs[0], vs[1], vs[2], vs[3]
	}

	net, err := New(cfg)
	if err != nil {
		return nil, &ModelFormatError{Path: path, Line: line, Err: err}
	}

	var weights [][]float64
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if len(weights) == net.weightRows() {
			return nil, formatErr("more weight rows than the %d declared by the header", net.weightRows())
		}

		expected := net.sizes[net.layerOfRow(len(weights))-1]
		if len(fields) != expected {
			return nil, formatErr("row %d has %d weights, expected %d", len(weights), len(fields), expected)
		}

		row := make([]float64, len(fields))
		for i, s := range fields {
			if row[i], err = strconv.ParseFloat(s, 64); err != nil || !finite(row[i]) {
				return nil, formatErr("weight %q is not a finite number", s)
			}
		}

		weights = append(weights, row)
	}

	if err := sc.Err(); err != nil {
		return nil, &ModelFormatError{Path: path, Line: line, Err: err}
	}

	if len(weights) != net.weightRows() {
		line = 0
		return nil, formatErr("found %d weight rows, expected %d", len(weights), net.weightRows())
	}

	if err := net.SetWeights(weights); err != nil {
		return nil, &ModelFormatError{Path: path, Err: err}
	}

	return net, nil
}

// layerOfRow returns the layer of the unit with the given weight row
func (net *Network) layerOfRow(row int) int {
	for l := 1; l < len(net.sizes); l++ {
		if row < net.sizes[l] {
			return l
		}
		row -= net.sizes[l]
	}

	return len(net.sizes) - 1
}
