package draw

// Color is an RGB triple with components in [0, 1].
type Color [3]float32

// White is the only color the simulation emits.
var White = Color{1, 1, 1}

// Segment is one colored line in draw space.
type Segment struct {
	P1, P2 NormalizedPoint
	Color  Color
}

// Vertex is the flat record handed to a GPU-style renderer: two vertices
// per segment, positions in draw space with z = 0.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// LineBuffer collects the segments for a single frame.
// The frame driver owns it, passes it to every draw call, and clears it
// before the next frame is emitted.
type LineBuffer struct {
	space    Space
	segments []Segment
}

// NewLineBuffer creates an empty buffer that transforms through space.
func NewLineBuffer(space Space) *LineBuffer {
	return &LineBuffer{
		space:    space,
		segments: make([]Segment, 0, 256),
	}
}

// Space returns the transform used by AddLine.
func (b *LineBuffer) Space() Space {
	return b.space
}

// AddLine transforms both screen points and appends a white segment.
func (b *LineBuffer) AddLine(p1, p2 Point) {
	b.segments = append(b.segments, Segment{
		P1:    b.space.ToNormalized(p1),
		P2:    b.space.ToNormalized(p2),
		Color: White,
	})
}

// AddPolygon adds a closed outline through points.
func (b *LineBuffer) AddPolygon(points []Point) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		b.AddLine(points[i], points[(i+1)%n])
	}
}

// Clear empties the buffer, keeping its capacity for the next frame.
func (b *LineBuffer) Clear() {
	b.segments = b.segments[:0]
}

// Len returns the number of segments in the buffer.
func (b *LineBuffer) Len() int {
	return len(b.segments)
}

// Segments returns the segments emitted this frame.
// The slice is only valid until the next Clear.
func (b *LineBuffer) Segments() []Segment {
	return b.segments
}

// Vertices flattens the buffer into renderer vertices.
func (b *LineBuffer) Vertices() []Vertex {
	out := make([]Vertex, 0, len(b.segments)*2)
	for _, s := range b.segments {
		out = append(out,
			Vertex{Position: [3]float32{float32(s.P1.X), float32(s.P1.Y), 0}, Color: s.Color},
			Vertex{Position: [3]float32{float32(s.P2.X), float32(s.P2.Y), 0}, Color: s.Color},
		)
	}
	return out
}
