package draw

// Glyph geometry. Digits are 20x40 seven-segment strokes, the decimal point
// is a 2x2 square sitting on the baseline, and the heart is a 40x35 outline.
// Offsets are relative to the glyph's top-left anchor.
const (
	GlyphWidth    = 20
	GlyphHeight   = 40
	GlyphPitch    = 30
	pointAdvance  = GlyphPitch - 18
	HeartPitch    = 50
	heartSegments = 10
)

// stroke is one line of a glyph: x1, y1, x2, y2.
type stroke [4]float64

var (
	segTop         = stroke{0, 0, 20, 0}
	segTopRight    = stroke{20, 0, 20, 20}
	segBottomRight = stroke{20, 20, 20, 40}
	segBottom      = stroke{0, 40, 20, 40}
	segBottomLeft  = stroke{0, 20, 0, 40}
	segTopLeft     = stroke{0, 0, 0, 20}
	segMiddle      = stroke{0, 20, 20, 20}
)

var glyphs = map[rune][]stroke{
	'0': {segTop, segTopRight, segBottomRight, segBottom, segBottomLeft, segTopLeft},
	'1': {segTopRight, segBottomRight},
	'2': {segTop, segTopRight, segMiddle, segBottomLeft, segBottom},
	'3': {segTop, segTopRight, segMiddle, segBottomRight, segBottom},
	'4': {segTopLeft, segMiddle, segTopRight, segBottomRight},
	'5': {segTop, segTopLeft, segMiddle, segBottomRight, segBottom},
	'6': {segTop, segTopLeft, segMiddle, segBottomLeft, segBottom, segBottomRight},
	'7': {segTop, segTopRight, segBottomRight},
	'8': {segTop, segTopRight, segBottomRight, segBottom, segBottomLeft, segTopLeft, segMiddle},
	'9': {segTop, segTopRight, segBottomRight, segBottom, segTopLeft, segMiddle},
	'.': {
		{0, 38, 2, 38},
		{2, 38, 2, 40},
		{2, 40, 0, 40},
		{0, 40, 0, 38},
	},
}

// heartOutline is walked as a closed loop starting at the top notch.
var heartOutline = [heartSegments]Point{
	{20, 8}, {26, 2}, {33, 0}, {40, 6}, {40, 14},
	{20, 35}, {0, 14}, {0, 6}, {7, 0}, {14, 2},
}

// GlyphStrokes returns the number of segments DrawDigit emits for ch.
func GlyphStrokes(ch rune) int {
	return len(glyphs[ch])
}

// DrawDigit emits the strokes for a digit or '.' anchored at (x, y).
// Any other character draws nothing.
func DrawDigit(buf *LineBuffer, ch rune, x, y float64) {
	for _, s := range glyphs[ch] {
		buf.AddLine(Point{X: x + s[0], Y: y + s[1]}, Point{X: x + s[2], Y: y + s[3]})
	}
}

// DrawText draws text left to right starting at (x, y).
// The cursor advances one pitch per glyph, less after a '.', and not at all
// for characters without a glyph.
func DrawText(buf *LineBuffer, text string, x, y float64) {
	for _, ch := range text {
		DrawDigit(buf, ch, x, y)
		x += advance(ch)
	}
}

// TextWidth returns how far DrawText moves the cursor for text.
func TextWidth(text string) float64 {
	var w float64
	for _, ch := range text {
		w += advance(ch)
	}
	return w
}

func advance(ch rune) float64 {
	switch {
	case ch == '.':
		return pointAdvance
	case GlyphStrokes(ch) == 0:
		return 0
	default:
		return GlyphPitch
	}
}

// DrawHearts draws count hearts, the first anchored at (x, y) and each
// following one a pitch further left.
func DrawHearts(buf *LineBuffer, count int, x, y float64) {
	for i := 0; i < count; i++ {
		for j := range heartOutline {
			a := heartOutline[j]
			b := heartOutline[(j+1)%heartSegments]
			buf.AddLine(Point{X: x + a.X, Y: y + a.Y}, Point{X: x + b.X, Y: y + b.Y})
		}
		x -= HeartPitch
	}
}
