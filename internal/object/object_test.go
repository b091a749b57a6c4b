package object

import (
	"math"
	"testing"
)

// seqRand replays a fixed sequence of draws, cycling when exhausted.
type seqRand struct {
	values []float64
	next   int
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		theta    float64
		expected Vec
	}{
		{"quarter turn", Vec{1, 0}, math.Pi / 2, Vec{0, 1}},
		{"half turn", Vec{2, 3}, math.Pi, Vec{-2, -3}},
		{"no turn", Vec{5, -1}, 0, Vec{5, -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.theta)
			if !near(got.X, tc.expected.X) || !near(got.Y, tc.expected.Y) {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.theta, got, tc.expected)
			}
		})
	}
}

func TestUniform(t *testing.T) {
	rng := &seqRand{values: []float64{0, 0.5, 0.999}}
	for _, expected := range []float64{50, 100, 149.9} {
		if got := Uniform(rng, 50, 150); !near(got, expected) {
			t.Errorf("Uniform() = %v, expected %v", got, expected)
		}
	}
}
