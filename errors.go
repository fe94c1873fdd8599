package perceptron

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and can all follow the form:
//
//		if err == perceptron.ErrNoInput { ... }
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrNoInput        = Error{"Network has no input set"}
	ErrNoTarget       = Error{"Network has no target set"}
	ErrEmptyCorpus    = Error{"Corpus has no samples"}
	ErrNotInitialized = Error{"Network units have not been initialized"}
)

// InputError documents a vector whose length does not match the topology of the Network. It is
// returned by SetInput, SetTarget, SetWeights and by anything given a Datum that does not fit.
//
// Row is the index of the offending weight row, or -1 if the error is not about a weight row.
type InputError struct {
	What     string
	Expected int
	Got      int
	Row      int
}

func (err *InputError) Error() string {
	if err.Row >= 0 {
		return fmt.Sprintf("%s row %d has wrong length: expected %d, got %d", err.What, err.Row, err.Expected, err.Got)
	}

	return fmt.Sprintf("%s has wrong length: expected %d, got %d", err.What, err.Expected, err.Got)
}

func sizeError(what string, expected, got int) *InputError {
	return &InputError{What: what, Expected: expected, Got: got, Row: -1}
}

// CorpusError is returned when a sample directory or a single sample file can't be used. Path is
// the directory or file that failed.
type CorpusError struct {
	Path string
	Err  error
}

func (err *CorpusError) Error() string {
	return fmt.Sprintf("corpus %q: %v", err.Path, err.Err)
}

// Cause allows github.com/pkg/errors.Cause to unwrap the error
func (err *CorpusError) Cause() error { return err.Err }

func (err *CorpusError) Unwrap() error { return err.Err }

// ModelFormatError is returned when a persisted model is malformed, or when the topology it
// declares conflicts with the weights that are actually present. Line is 1-indexed; 0 means that
// the error is not tied to a single line.
type ModelFormatError struct {
	Path string
	Line int
	Err  error
}

func (err *ModelFormatError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("model %q, line %d: %v", err.Path, err.Line, err.Err)
	}

	return fmt.Sprintf("model %q: %v", err.Path, err.Err)
}

// Cause allows github.com/pkg/errors.Cause to unwrap the error
func (err *ModelFormatError) Cause() error { return err.Err }

func (err *ModelFormatError) Unwrap() error { return err.Err }
