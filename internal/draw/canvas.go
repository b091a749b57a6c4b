package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Canvas rasterizes draw-space segments into terminal cells with 2x vertical
// resolution using half-block characters.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	// Offset for centering the render area when the terminal is wider or
	// taller than the square play field. 0-based columns/rows to skip.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

// NewCanvas creates a canvas for the given terminal dimensions.
func NewCanvas(termWidth, termHeight int) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize reallocates the pixel grid when the terminal dimensions change.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth == c.termWidth && termHeight == c.termHeight {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]bool, c.subPixelHeight*termWidth)
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Pixel reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// toPixel maps a draw-space point onto the sub-pixel grid.
func (c *Canvas) toPixel(n NormalizedPoint) (int, int) {
	x := (n.X + 1) / 2 * float64(c.termWidth-1)
	y := (1 - n.Y) / 2 * float64(c.subPixelHeight-1)
	return int(math.Round(x)), int(math.Round(y))
}

// DrawLines rasterizes every segment in buf.
func (c *Canvas) DrawLines(buf *LineBuffer) {
	for _, s := range buf.Segments() {
		x1, y1 := c.toPixel(s.P1)
		x2, y2 := c.toPixel(s.P2)
		c.drawLine(x1, y1, x2, y2)
	}
}

// drawLine draws a line in pixel coordinates using Bresenham's algorithm.
func (c *Canvas) drawLine(x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Render outputs the canvas to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// RenderBorder draws a box around the canvas when there is room for it.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	if hasV {
		line := strings.Repeat("─", c.termWidth)
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}
	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// TerminalToScreen converts a 1-based terminal cell (as reported by mouse
// events) into a screen point of space. The result is clamped to the screen.
func (c *Canvas) TerminalToScreen(col, row int, space Space) Point {
	x := float64(col-1-c.offsetCol) + 0.5
	y := float64(row-1-c.offsetRow) + 0.5
	p := Point{
		X: x / float64(c.termWidth) * space.Width,
		Y: y / float64(c.termHeight) * space.Height,
	}
	p.X = math.Max(0, math.Min(space.Width, p.X))
	p.Y = math.Max(0, math.Min(space.Height, p.Y))
	return p
}

// FitSquare picks the largest canvas that keeps the play field square on a
// terminal of the given size (cells are about twice as tall as wide) and
// returns its dimensions plus the offsets that center it.
func FitSquare(termWidth, termHeight int) (width, height, offsetCol, offsetRow int) {
	height = termHeight - 2
	if height < 1 {
		height = 1
	}
	width = height * 2
	if width > termWidth-2 {
		width = termWidth - 2
		if width < 2 {
			width = 2
		}
		height = width / 2
	}
	offsetCol = (termWidth - width) / 2
	offsetRow = (termHeight - height) / 2
	return width, height, offsetCol, offsetRow
}
