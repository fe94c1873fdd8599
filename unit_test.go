package perceptron

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"negative", -0.5, 0},
		{"zero", 0, 0},
		{"inside", 0.375, 0.375},
		{"one", 1, 1},
		{"above", 7, 1},
		{"NaN", math.NaN(), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var u Unit
			u.SetActivation(tc.in)
			if u.Activation() != tc.expected {
				t.Errorf("Expected activation %v, got %v", tc.expected, u.Activation())
			}

			u.SetTarget(tc.in)
			if v, ok := u.Target(); !ok || v != tc.expected {
				t.Errorf("Expected target (%v, true), got (%v, %v)", tc.expected, v, ok)
			}
		})
	}
}

func TestUnitRecompute(t *testing.T) {
	prev := make([]Unit, 2)
	prev[0].SetActivation(1)
	prev[1].SetActivation(0.5)

	var u Unit
	u.connect(2, func() float64 { return 0 })
	u.connections[0].SetWeight(0.3)
	u.connections[1].SetWeight(-0.2)

	u.recompute(prev)

	expected := 1 / (1 + math.Exp(-(0.3 - 0.1)))
	if math.Abs(u.Activation()-expected) > 1e-15 {
		t.Errorf("Expected %v, got %v", expected, u.Activation())
	}

	if a := u.connections[1].Activation(prev); a != 0.5 {
		t.Errorf("Expected source activation 0.5, got %v", a)
	}
}

func TestUnitGradients(t *testing.T) {
	var out Unit
	out.SetActivation(0.75)
	out.SetTarget(1)
	out.outputGradient()

	if g := 0.75 * 0.25 * 0.25; out.Gradient() != g {
		t.Errorf("Expected output gradient %v, got %v", g, out.Gradient())
	}

	// output units ignore the hidden rule
	out.hiddenGradient(0.5)
	if g := 0.75 * 0.25 * 0.25; out.Gradient() != g {
		t.Errorf("Expected output gradient unchanged, got %v", out.Gradient())
	}

	var hidden Unit
	hidden.SetActivation(0.9)
	hidden.hiddenGradient(0.2)
	if g := 0.2 * 0.8; math.Abs(hidden.Gradient()-g) > 1e-15 {
		t.Errorf("Expected hidden gradient %v, got %v", g, hidden.Gradient())
	}

	hidden.outputGradient()
	if g := 0.2 * 0.8; math.Abs(hidden.Gradient()-g) > 1e-15 {
		t.Errorf("Expected hidden gradient unchanged, got %v", hidden.Gradient())
	}
}

func TestUnitAdjust(t *testing.T) {
	prev := make([]Unit, 2)
	prev[0].SetActivation(1)
	prev[1].SetActivation(0)

	var u Unit
	u.connect(2, func() float64 { return 0.1 })
	u.gradient = 0.5

	u.adjust(0.2, prev)

	if w := u.connections[0].Weight(); math.Abs(w-0.2) > 1e-15 {
		t.Errorf("Expected weight 0.2, got %v", w)
	}
	if w := u.connections[1].Weight(); w != 0.1 {
		t.Errorf("Expected weight with inactive source unchanged, got %v", w)
	}
}
