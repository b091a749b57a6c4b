package object

import "github.com/tomz197/planetdefense/internal/draw"

// Laser tuning.
const (
	LaserSpeed = 500.0 // px/s
	// LaserTail is the trail length factor: the tail spans Vel*LaserTail,
	// i.e. 30 px at LaserSpeed.
	LaserTail   = 30.0 / 500.0
	LaserMargin = 30.0 // px beyond the screen before a laser is culled
)

// Laser is a shot fired from the turret.
type Laser struct {
	Pos Vec
	Vel Vec

	destroyed bool
}

// NewLaser creates a laser at pos traveling at LaserSpeed along the screen
// direction theta.
func NewLaser(pos Vec, theta float64) *Laser {
	return &Laser{
		Pos: pos,
		Vel: Polar(LaserSpeed, theta),
	}
}

// Advance moves the laser by dt seconds.
func (l *Laser) Advance(dt float64) {
	l.Pos = l.Pos.Add(l.Vel.Scale(dt))
}

// OutOfBounds reports whether the laser left the screen expanded by margin.
func (l *Laser) OutOfBounds(width, height, margin float64) bool {
	return l.Pos.X < -margin || l.Pos.X > width+margin ||
		l.Pos.Y < -margin || l.Pos.Y > height+margin
}

// Tail returns the start of the trail drawn behind the laser.
func (l *Laser) Tail() Vec {
	return l.Pos.Sub(l.Vel.Scale(LaserTail))
}

// Draw emits the laser's trail.
func (l *Laser) Draw(buf *draw.LineBuffer) {
	buf.AddLine(l.Tail().Point(), l.Pos.Point())
}

// MarkDestroyed marks the laser for removal at the end of the collision pass.
func (l *Laser) MarkDestroyed() {
	l.destroyed = true
}

// IsDestroyed returns true if the laser is marked for removal.
func (l *Laser) IsDestroyed() bool {
	return l.destroyed
}
