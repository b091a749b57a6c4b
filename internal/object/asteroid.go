package object

import (
	"math"

	"github.com/tomz197/planetdefense/internal/draw"
)

// Asteroid spawn tuning.
const (
	AsteroidSize     = 20.0  // Hull vertex distance from center
	SpawnRadius      = 707.0 // Distance from screen center asteroids appear at
	MinAsteroidSpeed = 50.0
	MaxAsteroidSpeed = 150.0
	// Rotation speed is pi divided by a value drawn from this range.
	minRotationDivisor = 200.0
	maxRotationDivisor = 500.0
)

// Asteroid is a four-point rock that drifts inward and spins.
type Asteroid struct {
	Center        Vec
	Vel           Vec
	Hull          [4]Vec
	RotationSpeed float64 // radians/sec, sign gives the direction

	destroyed bool
}

// NewAsteroid creates an asteroid at center with one hull vertex per quadrant.
func NewAsteroid(center, vel Vec, size, rotationSpeed float64, rng Rand) *Asteroid {
	a := &Asteroid{
		Center:        center,
		Vel:           vel,
		RotationSpeed: rotationSpeed,
	}
	for i := range a.Hull {
		theta := (float64(i) + rng.Float64()) * math.Pi / 2
		a.Hull[i] = center.Add(Polar(size, theta))
	}
	return a
}

// SpawnAsteroid creates an asteroid on the circle of SpawnRadius around
// origin, heading toward it.
func SpawnAsteroid(origin Vec, rng Rand) *Asteroid {
	theta := rng.Float64() * 2 * math.Pi
	center := origin.Add(Polar(SpawnRadius, theta))
	speed := Uniform(rng, MinAsteroidSpeed, MaxAsteroidSpeed)
	vel := Polar(speed, theta).Scale(-1)

	rotation := math.Pi / Uniform(rng, minRotationDivisor, maxRotationDivisor)
	if rng.Float64() < 0.5 {
		rotation = -rotation
	}

	return NewAsteroid(center, vel, AsteroidSize, rotation, rng)
}

// Advance translates the asteroid by dt seconds, then spins the hull about
// the translated center.
func (a *Asteroid) Advance(dt float64) {
	delta := a.Vel.Scale(dt)
	a.Center = a.Center.Add(delta)
	for i := range a.Hull {
		a.Hull[i] = a.Hull[i].Add(delta)
	}

	theta := a.RotationSpeed * dt
	for i := range a.Hull {
		a.Hull[i] = a.Center.Add(a.Hull[i].Sub(a.Center).Rotate(theta))
	}
}

// Draw emits the closed hull outline.
func (a *Asteroid) Draw(buf *draw.LineBuffer) {
	var points [4]draw.Point
	for i, v := range a.Hull {
		points[i] = v.Point()
	}
	buf.AddPolygon(points[:])
}

// MarkDestroyed marks the asteroid for removal at the end of the collision pass.
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for removal.
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}
