package loop

import (
	"github.com/tomz197/planetdefense/internal/draw"
)

const (
	playingHint  = " SPACE/click fire | mouse or A/D aim | Q quit "
	gameOverHint = " GAME OVER | R restart | Q quit "
)

// drawStatus writes the key hints over the top border of the play field.
func drawStatus(state *State, out *draw.FrameWriter) {
	hint := playingHint
	if state.Game.IsGameOver() {
		hint = gameOverHint
	}
	out.WriteAt(2, 0, hint)
}
