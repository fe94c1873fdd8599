package hyperparams

import (
	"math"
	"testing"
)

func TestErrorScaled(t *testing.T) {
	lr, err := ErrorScaled(0.1, 0.3, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		err      float64
		expected float64
	}{
		{"no error", 0, 0.1},
		{"worst error", 1.5, 0.3},
		{"half error", 0.75, 0.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if v := lr.Value(tc.err); math.Abs(v-tc.expected) > 1e-12 {
				t.Errorf("Expected %v, got %v", tc.expected, v)
			}
		})
	}
}

func TestErrorScaledInvalid(t *testing.T) {
	if _, err := ErrorScaled(0.3, 0.1, 3); err == nil {
		t.Error("Expected error for min > max, got nil")
	}
	if _, err := ErrorScaled(0.1, 0.3, 0); err == nil {
		t.Error("Expected error for zero outputs, got nil")
	}
	if _, err := ErrorScaled(math.NaN(), 0.3, 1); err == nil {
		t.Error("Expected error for NaN bound, got nil")
	}
}
