package loop

import (
	"time"

	"github.com/tomz197/planetdefense/internal/draw"
	"github.com/tomz197/planetdefense/internal/game"
	"github.com/tomz197/planetdefense/internal/input"
)

// State holds everything the frame driver carries between frames.
type State struct {
	Game    *game.Game
	Lines   *draw.LineBuffer
	Input   input.Input
	Running bool
	Delta   time.Duration // Wall time since the previous frame
}

// NewState wraps g with a fresh line buffer for its screen.
func NewState(g *game.Game) *State {
	return &State{
		Game:    g,
		Lines:   draw.NewLineBuffer(g.Space()),
		Running: true,
	}
}
