// Package samples reads labeled bitmap samples from plain-text files.
//
// A sample file holds whitespace-separated numbers: first the target vector (one value per
// output unit), then the flattened bitmap (one value per input unit). Nothing else may be in the
// file.
package samples

import (
	"bufio"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sharnoff/perceptron"
)

// Read parses a single sample from r. name is used for Datum.Name and in errors.
func Read(r io.Reader, name string, inputSize, outputSize int) (perceptron.Datum, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	total := outputSize + inputSize
	values := make([]float64, 0, total)
	for sc.Scan() {
		if len(values) == total {
			return perceptron.Datum{}, &perceptron.CorpusError{
				Path: name,
				Err:  errors.Errorf("more than the expected %d values", total),
			}
		}

		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return perceptron.Datum{}, &perceptron.CorpusError{
				Path: name,
				Err:  errors.Errorf("value %d (%q) is not a finite number", len(values), sc.Text()),
			}
		}

		values = append(values, v)
	}

	if err := sc.Err(); err != nil {
		return perceptron.Datum{}, &perceptron.CorpusError{Path: name, Err: err}
	} else if len(values) != total {
		return perceptron.Datum{}, &perceptron.CorpusError{
			Path: name,
			Err:  errors.Errorf("found %d values, expected %d", len(values), total),
		}
	}

	return perceptron.Datum{
		Name:    name,
		Outputs: values[:outputSize:outputSize],
		Inputs:  values[outputSize:],
	}, nil
}

// ReadFile reads the sample in the file at path. Any problem is returned as a
// *perceptron.CorpusError.
func ReadFile(path string, inputSize, outputSize int) (perceptron.Datum, error) {
	f, err := os.Open(path)
	if err != nil {
		return perceptron.Datum{}, &perceptron.CorpusError{Path: path, Err: err}
	}

	defer f.Close()

	d, err := Read(f, path, inputSize, outputSize)
	d.Name = filepath.Base(path)
	return d, err
}

// ReadDir reads every regular file in dir as a sample, in lexical order of file name.
//
// Files that fail to parse don't stop the others from being read; their errors are returned in
// 'bad', one *perceptron.CorpusError per file, so that the caller can choose to skip them or to
// abort. err is only set for problems with the directory itself: if it can't be read, or has no
// regular files in it.
func ReadDir(dir string, inputSize, outputSize int) (data []perceptron.Datum, bad []error, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, &perceptron.CorpusError{Path: dir, Err: err}
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}

	if len(names) == 0 {
		return nil, nil, &perceptron.CorpusError{Path: dir, Err: perceptron.ErrEmptyCorpus}
	}

	sort.Strings(names)

	for _, name := range names {
		d, err := ReadFile(filepath.Join(dir, name), inputSize, outputSize)
		if err != nil {
			bad = append(bad, err)
			continue
		}

		data = append(data, d)
	}

	return data, bad, nil
}
