package game

import (
	"github.com/tomz197/planetdefense/internal/object"
	"github.com/tomz197/planetdefense/internal/physics"
)

// resolveCollisions checks every asteroid, in order, first against the
// lasers and then against the planet. Hits are only marked during the pass;
// both collections are compacted once it is done, so no index is reused
// after a removal. Losing the last life ends the run after the pass, so
// every hit of this frame still scores.
func (g *Game) resolveCollisions() {
	g.grid.Clear()
	for i, l := range g.lasers {
		g.grid.Insert(l.Pos.X, l.Pos.Y, i)
	}

	c := g.space.Center()
	planet := g.PlanetSize()

	for _, a := range g.asteroids {
		if j := g.firstLaserHit(a); j >= 0 {
			g.lasers[j].MarkDestroyed()
			a.MarkDestroyed()
			if g.state == StatePlaying {
				g.destroyed++
			}
			g.logger.Debug("asteroid destroyed", "destroyed", g.destroyed)
			continue
		}

		if physics.WithinRadius(a.Center.X, a.Center.Y, c.X, c.Y, planet) {
			a.MarkDestroyed()
			g.hitPlanet()
		}
	}

	if g.lives == 0 {
		g.endRun()
	}

	g.lasers = compact(g.lasers)
	g.asteroids = compact(g.asteroids)
}

// firstLaserHit returns the index of the earliest live laser within hit
// range of a, or -1.
func (g *Game) firstLaserHit(a *object.Asteroid) int {
	best := -1
	g.grid.QueryAround(a.Center.X, a.Center.Y, func(j int) bool {
		if best >= 0 && j >= best {
			return false
		}
		l := g.lasers[j]
		if l.IsDestroyed() {
			return false
		}
		if physics.WithinRadius(l.Pos.X, l.Pos.Y, a.Center.X, a.Center.Y, LaserHitRadius) {
			best = j
		}
		return false
	})
	return best
}

func (g *Game) hitPlanet() {
	if g.lives == 0 {
		return
	}
	g.lives--
	g.logger.Info("planet hit", "lives", g.lives)
}

type destructible interface {
	IsDestroyed() bool
}

// compact removes destroyed items in place, preserving order.
func compact[T destructible](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.IsDestroyed() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
