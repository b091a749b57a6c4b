// Package object holds the simulated entities: lasers fired from the turret
// and asteroids drifting toward the planet.
package object

import (
	"math"

	"github.com/tomz197/planetdefense/internal/draw"
)

// Vec is a screen-space vector in pixels (or pixels per second).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate rotates v by theta radians about the origin.
func (v Vec) Rotate(theta float64) Vec {
	sin, cos := math.Sincos(theta)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Point converts v to a draw.Point.
func (v Vec) Point() draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}

// Polar returns the vector of length r at angle theta in screen axes.
func Polar(r, theta float64) Vec {
	sin, cos := math.Sincos(theta)
	return Vec{X: r * cos, Y: r * sin}
}

// Rand is the random source entities are generated from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Uniform returns a value drawn uniformly from [lo, hi).
func Uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
