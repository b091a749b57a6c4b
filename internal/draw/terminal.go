package draw

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// maxWriteSize bounds a single write to the terminal.
const maxWriteSize = 1400

// FrameWriter collects one frame of ANSI output and hands it to the
// terminal on Flush. Writes are only split in front of an escape sequence,
// so the terminal never receives half a cursor move or half a glyph.
type FrameWriter struct {
	out   io.Writer
	frame bytes.Buffer
	col   int // Canvas origin on the terminal, 0-based
	row   int
}

// NewFrameWriter creates a FrameWriter that writes to out.
func NewFrameWriter(out io.Writer) *FrameWriter {
	return &FrameWriter{out: out}
}

// SetOrigin moves the canvas origin used by WriteAt, e.g. after a resize.
func (f *FrameWriter) SetOrigin(col, row int) {
	f.col = col
	f.row = row
}

// Write appends raw output to the frame.
func (f *FrameWriter) Write(p []byte) (int, error) {
	return f.frame.Write(p)
}

// WriteString appends raw output to the frame.
func (f *FrameWriter) WriteString(s string) (int, error) {
	return f.frame.WriteString(s)
}

// WriteAt places s at a canvas cell. col and row are 1-based; row 0 is the
// line above the canvas.
func (f *FrameWriter) WriteAt(col, row int, s string) {
	fmt.Fprintf(&f.frame, "\033[%d;%dH%s", row+f.row, col+f.col, s)
}

// Len returns the size of the pending frame in bytes.
func (f *FrameWriter) Len() int {
	return f.frame.Len()
}

var _ io.StringWriter = (*FrameWriter)(nil)

// Flush sends the pending frame and starts a new one.
func (f *FrameWriter) Flush() error {
	defer f.frame.Reset()

	data := f.frame.Bytes()
	for len(data) > 0 {
		n := splitPoint(data, maxWriteSize)
		if _, err := f.out.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// splitPoint returns how much of data to send next: all of it when it fits
// in limit, otherwise everything before the last escape sequence that starts
// within limit.
func splitPoint(data []byte, limit int) int {
	if len(data) <= limit {
		return len(data)
	}
	if i := bytes.LastIndexByte(data[:limit], '\033'); i > 0 {
		return i
	}
	return limit
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
