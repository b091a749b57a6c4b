package game

import (
	"time"

	"github.com/tomz197/planetdefense/internal/draw"
	"github.com/tomz197/planetdefense/internal/object"
)

// Advance runs one frame at the clock's current reading.
func (g *Game) Advance(buf *draw.LineBuffer) {
	g.Step(g.clock.Now(), buf)
}

// Step runs one frame as if the clock read now, replacing the contents of
// buf with the frame's lines. A reading earlier than the previous frame
// counts as no time passing.
func (g *Game) Step(now time.Duration, buf *draw.LineBuffer) {
	dt := now - g.now
	if dt < 0 {
		dt = 0
	}
	g.now += dt
	seconds := dt.Seconds()

	buf.Clear()

	if g.lives <= 0 {
		g.lives = 0
		g.endRun()
	}
	if g.state == StatePlaying {
		g.gameTime = g.now - g.start
	}

	interval := SpawnInterval(g.destroyed)
	if g.state == StatePlaying && g.now-g.lastAsteroid > interval {
		g.spawnAsteroid()
		g.lastAsteroid = g.now
	}

	if g.state == StateGameOver {
		g.drawGameOver(buf)
	}
	g.drawShip(buf)
	g.drawPlanet(buf)
	g.updateLasers(seconds, buf)
	g.drawHUD(buf)
	g.updateAsteroids(seconds, buf)

	g.resolveCollisions()
}

func (g *Game) spawnAsteroid() {
	a := object.SpawnAsteroid(g.center(), g.rng)
	g.asteroids = append(g.asteroids, a)
	g.logger.Debug("asteroid spawned", "x", a.Center.X, "y", a.Center.Y, "count", len(g.asteroids))
}

// updateLasers moves every laser, drops the ones that left the screen and
// draws the rest.
func (g *Game) updateLasers(dt float64, buf *draw.LineBuffer) {
	kept := g.lasers[:0]
	for _, l := range g.lasers {
		l.Advance(dt)
		if l.OutOfBounds(g.space.Width, g.space.Height, object.LaserMargin) {
			continue
		}
		l.Draw(buf)
		kept = append(kept, l)
	}
	clear(g.lasers[len(kept):])
	g.lasers = kept
}

func (g *Game) updateAsteroids(dt float64, buf *draw.LineBuffer) {
	for _, a := range g.asteroids {
		a.Advance(dt)
		a.Draw(buf)
	}
}
