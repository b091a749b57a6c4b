package draw

import (
	"bytes"
	"strings"
	"testing"
)

// recorder keeps every write separately.
type recorder struct {
	writes [][]byte
}

func (r *recorder) Write(p []byte) (int, error) {
	r.writes = append(r.writes, append([]byte(nil), p...))
	return len(p), nil
}

func TestFrameWriterWriteAt(t *testing.T) {
	var out bytes.Buffer
	f := NewFrameWriter(&out)
	f.SetOrigin(10, 3)

	f.WriteAt(2, 0, "hint")
	if err := f.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if got := out.String(); got != "\033[3;12Hhint" {
		t.Errorf("output = %q, expected %q", got, "\033[3;12Hhint")
	}
	if f.Len() != 0 {
		t.Errorf("Len() after Flush = %d, expected 0", f.Len())
	}
}

func TestFrameWriterSplitsAtEscapes(t *testing.T) {
	rec := &recorder{}
	f := NewFrameWriter(rec)

	var expected strings.Builder
	for row := 1; row <= 200; row++ {
		for col := 1; col <= 5; col++ {
			f.WriteAt(col, row, string(BlockFull))
		}
	}
	expected.Write(f.frame.Bytes())

	if err := f.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if len(rec.writes) < 2 {
		t.Fatalf("frame sent in %d writes, expected it to be split", len(rec.writes))
	}
	var joined []byte
	for i, w := range rec.writes {
		if len(w) > maxWriteSize {
			t.Errorf("write %d is %d bytes, expected at most %d", i, len(w), maxWriteSize)
		}
		if w[0] != '\033' {
			t.Errorf("write %d starts with %q, expected an escape sequence", i, w[0])
		}
		joined = append(joined, w...)
	}
	if string(joined) != expected.String() {
		t.Error("split writes do not add up to the frame")
	}
}

func TestSplitPoint(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		limit    int
		expected int
	}{
		{"fits", "\033[1;1Hx", 20, 7},
		{"cut before escape", "\033[1;1Hx\033[2;1Hy", 10, 7},
		{"no escape to cut at", "abcdefghij", 4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := splitPoint([]byte(tc.data), tc.limit); got != tc.expected {
				t.Errorf("splitPoint(%q, %d) = %d, expected %d", tc.data, tc.limit, got, tc.expected)
			}
		})
	}
}
