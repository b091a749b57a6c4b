// Package physics provides distance tests and a broad-phase grid for
// collision resolution.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// WithinRadius reports whether (px, py) is strictly closer than radius to (cx, cy).
func WithinRadius(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) < radius*radius
}
