package common

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		wx, wy float64
	}{
		{"zero", 0, 0, 0, 0},
		{"axis", 0, -5, 0, -1},
		{"diagonal", 3, 4, 0.6, 0.8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := Normalize(tc.x, tc.y)
			if math.Abs(x-tc.wx) > 1e-9 || math.Abs(y-tc.wy) > 1e-9 {
				t.Fatalf("Normalize(%v, %v) = (%v, %v), want (%v, %v)", tc.x, tc.y, x, y, tc.wx, tc.wy)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, 0, 1); got != tc.want {
			t.Fatalf("Clamp(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}
