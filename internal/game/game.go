// Package game is the simulation core: it owns every entity, advances the
// world one frame at a time and emits the frame as draw-space lines.
package game

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/planetdefense/internal/draw"
	"github.com/tomz197/planetdefense/internal/object"
	"github.com/tomz197/planetdefense/internal/physics"
)

// Gameplay constants.
const (
	InitialLives = 5

	DefaultWidth  = 1000
	DefaultHeight = 1000

	BasePlanetSize   = 100.0
	PlanetPulse      = 10.0  // Amplitude of the planet size oscillation
	PlanetPulsePhase = 500.0 // ms per radian of the oscillation

	ShipGap    = 30.0 // Distance between planet surface and ship base
	ShipLength = 30.0
	ShipWidth  = 30.0

	LaserHitRadius = 20.0
)

// State is the phase of a run.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Options configures a Game. Zero values select defaults.
type Options struct {
	Width  int
	Height int
	Clock  Clock
	Rand   object.Rand
	Logger *log.Logger
}

// Game owns all lasers and asteroids and the counters of the current run.
// It is not safe for concurrent use; the frame driver calls it from one
// goroutine.
type Game struct {
	space  draw.Space
	clock  Clock
	rng    object.Rand
	logger *log.Logger
	grid   *physics.SpatialGrid

	lasers    []*object.Laser
	asteroids []*object.Asteroid

	aim       float64 // radians, math orientation (Y up)
	lives     int
	destroyed int
	gameTime  time.Duration
	state     State

	now          time.Duration
	start        time.Duration
	lastAsteroid time.Duration
}

// New creates a game whose run starts at the clock's current reading.
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Clock == nil {
		opts.Clock = NewMonotonicClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	now := opts.Clock.Now()
	space := draw.NewSpace(opts.Width, opts.Height)
	return &Game{
		space:        space,
		clock:        opts.Clock,
		rng:          opts.Rand,
		logger:       opts.Logger,
		grid:         physics.NewSpatialGrid(space.Width, space.Height, LaserHitRadius),
		lives:        InitialLives,
		state:        StatePlaying,
		now:          now,
		start:        now,
		lastAsteroid: now,
	}
}

// Space returns the screen the game is played on.
func (g *Game) Space() draw.Space {
	return g.space
}

// SetCursor aims the turret at the screen position (x, y).
func (g *Game) SetCursor(x, y float64) {
	c := g.space.Center()
	g.aim = math.Atan2(-(y - c.Y), x-c.X)
}

// Aim returns the turret angle in radians, counter-clockwise from +X with
// Y pointing up.
func (g *Game) Aim() float64 {
	return g.aim
}

// aimDir is the aim as a unit vector in screen axes.
func (g *Game) aimDir() object.Vec {
	return object.Polar(1, -g.aim)
}

// Fire launches a laser from the ship's nose.
func (g *Game) Fire() {
	dist := ShipGap + ShipLength + g.PlanetSize()
	pos := g.center().Add(g.aimDir().Scale(dist))
	g.lasers = append(g.lasers, object.NewLaser(pos, -g.aim))
}

// Restart begins a new run. Lasers and asteroids in flight are kept.
func (g *Game) Restart() {
	g.lives = InitialLives
	g.destroyed = 0
	g.gameTime = 0
	g.start = g.now
	g.state = StatePlaying
	g.logger.Info("restart", "asteroids", len(g.asteroids), "lasers", len(g.lasers))
}

// PlanetSize returns the planet radius at the current simulation time.
func (g *Game) PlanetSize() float64 {
	ms := float64(g.now) / float64(time.Millisecond)
	return BasePlanetSize + PlanetPulse*math.Sin(ms/PlanetPulsePhase)
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Destroyed returns how many asteroids the player shot down this run.
func (g *Game) Destroyed() int {
	return g.destroyed
}

// GameTime returns the length of the current run, frozen at game over.
func (g *Game) GameTime() time.Duration {
	return g.gameTime
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// IsGameOver reports whether the run has ended.
func (g *Game) IsGameOver() bool {
	return g.state == StateGameOver
}

// Now returns the clock reading of the latest frame.
func (g *Game) Now() time.Duration {
	return g.now
}

// Lasers returns the lasers in flight. The slice must not be modified.
func (g *Game) Lasers() []*object.Laser {
	return g.lasers
}

// Asteroids returns the live asteroids. The slice must not be modified.
func (g *Game) Asteroids() []*object.Asteroid {
	return g.asteroids
}

func (g *Game) center() object.Vec {
	c := g.space.Center()
	return object.Vec{X: c.X, Y: c.Y}
}

func (g *Game) endRun() {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.logger.Info("game over", "destroyed", g.destroyed, "time", g.gameTime)
}
