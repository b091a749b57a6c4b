package game

import (
	"fmt"
	"math"

	"github.com/tomz197/planetdefense/internal/draw"
	"github.com/tomz197/planetdefense/internal/object"
)

// HUD layout, in screen pixels.
const (
	hudMargin     = 20.0
	hudLineHeight = 60.0
	heartsOffset  = 60.0 // Distance of the first heart's anchor from the right edge

	planetSegments = 64
	planetWaves    = 6
	planetRipple   = 3.0   // px
	planetDrift    = 300.0 // ms per radian of ripple drift
)

// drawShip draws the turret as a triangle floating outside the planet,
// pointing along the aim.
func (g *Game) drawShip(buf *draw.LineBuffer) {
	dir := g.aimDir()
	side := dir.Rotate(math.Pi / 2).Scale(ShipWidth / 2)
	base := g.center().Add(dir.Scale(g.PlanetSize() + ShipGap))
	nose := base.Add(dir.Scale(ShipLength))

	buf.AddPolygon([]draw.Point{
		nose.Point(),
		base.Add(side).Point(),
		base.Sub(side).Point(),
	})
}

// drawPlanet draws the planet as a closed ring with a slowly drifting ripple.
func (g *Game) drawPlanet(buf *draw.LineBuffer) {
	center := g.center()
	size := g.PlanetSize()
	drift := float64(g.now.Milliseconds()) / planetDrift

	var points [planetSegments]draw.Point
	for i := range points {
		theta := float64(i) * 2 * math.Pi / planetSegments
		r := size + planetRipple*math.Sin(planetWaves*theta+drift)
		points[i] = center.Add(object.Polar(r, theta)).Point()
	}
	buf.AddPolygon(points[:])
}

// drawHUD draws the destroyed counter and run time at the top left, and the
// remaining lives as hearts at the top right.
func (g *Game) drawHUD(buf *draw.LineBuffer) {
	draw.DrawText(buf, fmt.Sprint(g.destroyed), hudMargin, hudMargin)
	draw.DrawText(buf, formatSeconds(g.gameTime.Seconds()), hudMargin, hudMargin+hudLineHeight)
	draw.DrawHearts(buf, g.lives, g.space.Width-heartsOffset, hudMargin)
}

// drawGameOver crosses out the planet and shows the final score and run
// time centered under it.
func (g *Game) drawGameOver(buf *draw.LineBuffer) {
	c := g.center()
	arm := g.PlanetSize() / 2
	buf.AddLine(c.Add(object.Vec{X: -arm, Y: -arm}).Point(), c.Add(object.Vec{X: arm, Y: arm}).Point())
	buf.AddLine(c.Add(object.Vec{X: -arm, Y: arm}).Point(), c.Add(object.Vec{X: arm, Y: -arm}).Point())

	y := c.Y + BasePlanetSize + PlanetPulse + ShipGap + ShipLength + hudMargin
	score := fmt.Sprint(g.destroyed)
	draw.DrawText(buf, score, c.X-draw.TextWidth(score)/2, y)

	elapsed := formatSeconds(g.gameTime.Seconds())
	draw.DrawText(buf, elapsed, c.X-draw.TextWidth(elapsed)/2, y+hudLineHeight)
}

func formatSeconds(s float64) string {
	return fmt.Sprintf("%.1f", s)
}
