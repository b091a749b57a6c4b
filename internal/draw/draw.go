// Package draw turns simulation geometry into renderer-agnostic line segments
// and rasterizes those segments onto a terminal canvas.
package draw

import (
	"fmt"
	"io"
)

// Point is a screen-space position in pixels (origin top-left, Y down).
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// EnableMouse turns on any-motion mouse tracking with SGR encoded reports.
func EnableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1003h\033[?1006h")
}

// DisableMouse reverts EnableMouse.
func DisableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1006l\033[?1003l")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
