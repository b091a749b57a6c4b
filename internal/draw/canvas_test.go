package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCanvasDrawLines(t *testing.T) {
	c := NewCanvas(10, 5) // 10x10 sub-pixels
	buf := NewLineBuffer(NewSpace(100, 100))
	buf.AddLine(Point{0, 0}, Point{100, 0}) // Along the top edge

	c.DrawLines(buf)

	for x := 0; x < 10; x++ {
		if !c.Pixel(x, 0) {
			t.Errorf("Pixel(%d, 0) not set", x)
		}
	}
	if c.Pixel(0, 1) {
		t.Error("Pixel(0, 1) set, expected only the top row")
	}

	var out bytes.Buffer
	if err := c.Render(&out); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.ContainsRune(out.String(), BlockUpperHalf) {
		t.Errorf("Render() output has no upper half blocks: %q", out.String())
	}

	c.Clear()
	if c.Pixel(0, 0) {
		t.Error("Pixel(0, 0) set after Clear")
	}
}

func TestCanvasIgnoresOffscreen(t *testing.T) {
	c := NewCanvas(4, 2)
	buf := NewLineBuffer(NewSpace(100, 100))
	buf.AddLine(Point{-500, -500}, Point{-400, -500})

	c.DrawLines(buf)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c.Pixel(x, y) {
				t.Errorf("Pixel(%d, %d) set by an offscreen line", x, y)
			}
		}
	}
}

func TestFitSquare(t *testing.T) {
	tests := []struct {
		name                 string
		termW, termH         int
		w, h, offCol, offRow int
	}{
		{"wide terminal", 100, 40, 76, 38, 12, 1},
		{"narrow terminal", 42, 40, 40, 20, 1, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h, oc, or := FitSquare(tc.termW, tc.termH)
			if w != tc.w || h != tc.h || oc != tc.offCol || or != tc.offRow {
				t.Errorf("FitSquare(%d, %d) = (%d, %d, %d, %d), expected (%d, %d, %d, %d)",
					tc.termW, tc.termH, w, h, oc, or, tc.w, tc.h, tc.offCol, tc.offRow)
			}
		})
	}
}

func TestTerminalToScreen(t *testing.T) {
	c := NewCanvas(10, 5)
	c.SetOffset(2, 1)
	space := NewSpace(1000, 1000)

	p := c.TerminalToScreen(3, 2, space) // First canvas cell
	if p.X != 50 || p.Y != 100 {
		t.Errorf("TerminalToScreen(3, 2) = %v, expected (50, 100)", p)
	}

	p = c.TerminalToScreen(1, 1, space) // On the border, clamped
	if p.X != 0 || p.Y != 0 {
		t.Errorf("TerminalToScreen(1, 1) = %v, expected (0, 0)", p)
	}
}
