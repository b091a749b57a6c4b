// Package loop drives the simulation from a terminal: it reads input,
// advances the game once per frame and rasterizes the frame's lines.
package loop

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/planetdefense/internal/draw"
	"github.com/tomz197/planetdefense/internal/game"
	"github.com/tomz197/planetdefense/internal/input"
	"github.com/tomz197/planetdefense/internal/object"
)

const (
	defaultFPS = 60
	// aimSpeed is how fast the keyboard turns the turret, in radians/sec.
	aimSpeed = 3.0
	// aimRadius is how far from the center keyboard aiming places the cursor.
	aimRadius = 200.0
)

// Options configures Run. Zero values select defaults.
type Options struct {
	Width        int // Simulated screen width in pixels
	Height       int // Simulated screen height in pixels
	FPS          int
	Rand         object.Rand
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc
}

// Run starts the Input -> Update -> Draw cycle and blocks until the player
// quits, the input stream ends or ctx is cancelled.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frameTime := time.Second / time.Duration(opts.FPS)

	state := NewState(game.New(game.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Rand:   opts.Rand,
		Logger: logger,
	}))
	stream := input.StartStream(r)

	draw.HideCursor(w)
	draw.EnableMouse(w)
	defer func() {
		draw.DisableMouse(w)
		draw.ShowCursor(w)
		draw.ClearScreen(w)
	}()
	draw.ClearScreen(w)

	canvas := draw.NewCanvas(1, 1)
	out := draw.NewFrameWriter(w)

	logger.Info("loop started", "fps", opts.FPS, "width", state.Game.Space().Width, "height", state.Game.Space().Height)
	defer logger.Info("loop stopped")

	lastTime := time.Now()

	for state.Running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		updateScreen(opts.TermSizeFunc, canvas, out)
		processInput(state, stream, canvas)

		// ===== UPDATE PHASE =====
		state.Game.Advance(state.Lines)

		// ===== DRAW PHASE =====
		if err := drawFrame(state, canvas, out); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	return nil
}

// processInput reads pending input and forwards it to the game.
func processInput(state *State, stream *input.Stream, canvas *draw.Canvas) {
	in := input.ReadInput(stream)
	state.Input = in
	applyInput(state, in, canvas)
}

// applyInput turns one frame of input into game commands.
func applyInput(state *State, in input.Input, canvas *draw.Canvas) {
	g := state.Game

	if in.Quit || in.Closed {
		state.Running = false
		return
	}

	if in.HasPointer {
		p := canvas.TerminalToScreen(in.Pointer.Col, in.Pointer.Row, g.Space())
		g.SetCursor(p.X, p.Y)
	}

	turn := 0.0
	if in.AimLeft {
		turn += aimSpeed * state.Delta.Seconds()
	}
	if in.AimRight {
		turn -= aimSpeed * state.Delta.Seconds()
	}
	if turn != 0 {
		aim := g.Aim() + turn
		c := g.Space().Center()
		g.SetCursor(c.X+aimRadius*math.Cos(aim), c.Y-aimRadius*math.Sin(aim))
	}

	if in.Fire {
		g.Fire()
	}
	if in.Restart && g.IsGameOver() {
		g.Restart()
	}
}

// updateScreen fits the canvas to the current terminal size.
func updateScreen(sizeFunc draw.TermSizeFunc, canvas *draw.Canvas, out *draw.FrameWriter) {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return
	}
	width, height, offsetCol, offsetRow := draw.FitSquare(termWidth, termHeight)
	canvas.Resize(width, height)
	canvas.SetOffset(offsetCol, offsetRow)
	out.SetOrigin(offsetCol, offsetRow)
}

// drawFrame rasterizes the frame's lines and writes the whole frame at once.
func drawFrame(state *State, canvas *draw.Canvas, out *draw.FrameWriter) error {
	canvas.Clear()
	canvas.DrawLines(state.Lines)

	draw.ClearScreen(out)
	if err := canvas.RenderBorder(out); err != nil {
		return err
	}
	if err := canvas.Render(out); err != nil {
		return err
	}
	drawStatus(state, out)

	return out.Flush()
}
