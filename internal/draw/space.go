package draw

// NormalizedPoint is a position in draw space: [-1, 1] on both axes,
// origin at the screen center, Y increasing upward.
type NormalizedPoint struct {
	X, Y float64
}

// Space describes the fixed screen rectangle that screen points live in.
type Space struct {
	Width  float64
	Height float64
}

// NewSpace creates a Space for a screen of the given pixel dimensions.
func NewSpace(width, height int) Space {
	return Space{Width: float64(width), Height: float64(height)}
}

// Center returns the screen-space center point.
func (s Space) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// ToNormalized maps a screen point into draw space.
// Points outside the screen rectangle extrapolate linearly.
func (s Space) ToNormalized(p Point) NormalizedPoint {
	hw := s.Width / 2
	hh := s.Height / 2
	return NormalizedPoint{
		X: (p.X - hw) / hw,
		Y: -(p.Y - hh) / hh,
	}
}

// ToScreen is the inverse of ToNormalized.
func (s Space) ToScreen(n NormalizedPoint) Point {
	hw := s.Width / 2
	hh := s.Height / 2
	return Point{
		X: n.X*hw + hw,
		Y: -n.Y*hh + hh,
	}
}
