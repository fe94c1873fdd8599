package perceptron

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

func TestModelRoundTrip(t *testing.T) {
	cfg := smallConfig(6, 4, 3)
	cfg.LayerCount = 4
	net := newNet(t, cfg, 31)

	// move the weights away from their initial values
	setSample(t, net, []float64{1, 0, 1, 0, 1, 1}, []float64{0, 1, 0})
	for i := 0; i < 25; i++ {
		if err := net.Train(); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "model.txt")
	if err := net.Save(path, false); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := net.Save(path, false); err == nil {
		t.Error("Expected error saving over existing file without overwrite")
	}
	if err := net.Save(path, true); err != nil {
		t.Errorf("Unexpected error with overwrite: %v", err)
	}

	// topology comes from the file, not from the config given to Load
	loaded, err := Load(path, DefaultConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if c := loaded.Config(); c.InputSize != 6 || c.OutputSize != 3 || c.LayerCount != 4 || c.HiddenSize != 4 {
		t.Errorf("Expected topology (6, 3, 4, 4), got (%d, %d, %d, %d)", c.InputSize, c.OutputSize, c.LayerCount, c.HiddenSize)
	}

	for r, row := range loaded.Weights() {
		if !floats.Equal(row, net.Weights()[r]) {
			t.Errorf("Expected row %d to be %v, got %v", r, net.Weights()[r], row)
		}
	}

	in, target := []float64{0.25, 1, 0, 0, 1, 0.5}, []float64{1, 0, 0}
	setSample(t, net, in, target)
	setSample(t, loaded, in, target)
	if err := net.Run(); err != nil {
		t.Fatal(err)
	}
	if err := loaded.Run(); err != nil {
		t.Fatal(err)
	}

	if !floats.Equal(net.Output(), loaded.Output()) {
		t.Errorf("Expected identical outputs, got %v and %v", net.Output(), loaded.Output())
	}
}

func TestWriteModelFormat(t *testing.T) {
	net := newNet(t, smallConfig(2, 2, 1), 1)
	if err := net.SetWeights([][]float64{{0.5, -0.25}, {1, 0}, {0.125, 2}}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := net.WriteModel(&buf); err != nil {
		t.Fatal(err)
	}

	expected := "2 1 3 2\n0.5 -0.25\n1 0\n0.125 2\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestReadModelMalformed(t *testing.T) {
	tests := []struct {
		name  string
		model string
		line  int
	}{
		{"empty", "", 1},
		{"short header", "2 1 3\n", 1},
		{"bad header", "2 one 3 2\n", 1},
		{"invalid topology", "2 1 2 2\n", 1},
		{"missing rows", "2 1 3 2\n0.5 0.5\n1 1\n", 0},
		{"extra row", "2 1 3 2\n0.5 0.5\n1 1\n1 1\n1 1\n", 5},
		{"short row", "2 1 3 2\n0.5 0.5\n1\n1 1\n", 3},
		{"output row too long", "2 1 3 2\n0.5 0.5\n1 1\n1 1 1\n", 4},
		{"bad weight", "2 1 3 2\n0.5 x\n1 1\n1 1\n", 2},
		{"NaN weight", "2 1 3 2\n0.5 NaN\n1 1\n1 1\n", 2},
		{"infinite weight", "2 1 3 2\n0.5 0.5\n1 1\n-Inf 1\n", 4},
		{"huge hidden layer", "1 1 3 100000000000000\n0.1\n", 1},
		{"too many weights", "16000000 1 3 16000000\n", 1},
		{"too many layers", "1 1 70000 1\n", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadModel(strings.NewReader(tc.model), DefaultConfig())
			var me *ModelFormatError
			if !errors.As(err, &me) {
				t.Fatalf("Expected *ModelFormatError, got %v", err)
			}

			if me.Line != tc.line {
				t.Errorf("Expected line %d, got %d (%v)", tc.line, me.Line, err)
			}
		})
	}
}

func TestReadModelBlankLines(t *testing.T) {
	net, err := ReadModel(strings.NewReader("2 1 3 2\n\n0.5 0.5\n1 1\n1 1\n\n"), DefaultConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if w := net.Weights(); len(w) != 3 || w[2][1] != 1 {
		t.Errorf("Expected 3 rows, got %v", w)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.txt"), DefaultConfig())
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
