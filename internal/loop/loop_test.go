package loop

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/planetdefense/internal/draw"
	"github.com/tomz197/planetdefense/internal/game"
	"github.com/tomz197/planetdefense/internal/input"
)

func newTestState() *State {
	return NewState(game.New(game.Options{
		Clock: &game.ManualClock{},
		Rand:  rand.New(rand.NewSource(1)),
	}))
}

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestApplyInputQuit(t *testing.T) {
	tests := []struct {
		name string
		in   input.Input
	}{
		{"quit key", input.Input{Quit: true}},
		{"input closed", input.Input{Closed: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := newTestState()
			applyInput(state, tc.in, draw.NewCanvas(10, 5))
			if state.Running {
				t.Error("Running = true, expected the loop to stop")
			}
		})
	}
}

func TestApplyInputPointerAndFire(t *testing.T) {
	state := newTestState()
	canvas := draw.NewCanvas(10, 5)

	// The first cell maps to (50, 100) on a 1000x1000 screen.
	applyInput(state, input.Input{HasPointer: true, Pointer: input.Pointer{Col: 1, Row: 1}, Fire: true}, canvas)

	expected := math.Atan2(400, -450)
	if math.Abs(state.Game.Aim()-expected) > 1e-9 {
		t.Errorf("Aim() = %v, expected %v", state.Game.Aim(), expected)
	}
	if len(state.Game.Lasers()) != 1 {
		t.Errorf("len(Lasers()) = %d, expected 1", len(state.Game.Lasers()))
	}
	if !state.Running {
		t.Error("Running = false, expected the loop to keep going")
	}
}

func TestApplyInputKeyboardAim(t *testing.T) {
	state := newTestState()
	state.Delta = 100 * time.Millisecond

	applyInput(state, input.Input{AimLeft: true}, draw.NewCanvas(10, 5))
	if got := state.Game.Aim(); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Aim() after turning left = %v, expected 0.3", got)
	}

	applyInput(state, input.Input{AimRight: true}, draw.NewCanvas(10, 5))
	if got := state.Game.Aim(); math.Abs(got) > 1e-9 {
		t.Errorf("Aim() after turning back = %v, expected 0", got)
	}
}

func TestApplyInputRestartOnlyAfterGameOver(t *testing.T) {
	state := newTestState()
	state.Game.Step(time.Second, state.Lines)

	applyInput(state, input.Input{Restart: true}, draw.NewCanvas(10, 5))
	if state.Game.GameTime() != time.Second {
		t.Errorf("GameTime() = %v, expected restart to be ignored while playing", state.Game.GameTime())
	}
}

func TestRunQuits(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader("q"), &out, Options{
		FPS:          200,
		Rand:         rand.New(rand.NewSource(1)),
		TermSizeFunc: fixedSize(80, 24),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	s := out.String()
	if !strings.Contains(s, "\033[?1003h") || !strings.Contains(s, "\033[?1003l") {
		t.Error("mouse reporting was not enabled and restored")
	}
	if !strings.Contains(s, playingHint) {
		t.Error("frame status line missing")
	}
}

func TestRunCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, pr, io.Discard, Options{TermSizeFunc: fixedSize(80, 24)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected %v", err, context.Canceled)
	}
}
