package draw

import "testing"

func TestLineBufferAddAndClear(t *testing.T) {
	buf := NewLineBuffer(NewSpace(1000, 1000))

	buf.AddLine(Point{0, 0}, Point{1000, 1000})
	buf.AddLine(Point{500, 500}, Point{750, 500})

	if buf.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", buf.Len())
	}

	seg := buf.Segments()[0]
	if seg.P1 != (NormalizedPoint{-1, 1}) || seg.P2 != (NormalizedPoint{1, -1}) {
		t.Errorf("first segment = %+v, expected (-1,1)-(1,-1)", seg)
	}
	if seg.Color != White {
		t.Errorf("Color = %v, expected white", seg.Color)
	}

	buf.Clear()
	if buf.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", buf.Len())
	}
}

func TestLineBufferVertices(t *testing.T) {
	buf := NewLineBuffer(NewSpace(1000, 1000))
	buf.AddLine(Point{500, 500}, Point{750, 250})

	v := buf.Vertices()
	if len(v) != 2 {
		t.Fatalf("len(Vertices()) = %d, expected 2", len(v))
	}
	if v[0].Position != [3]float32{0, 0, 0} {
		t.Errorf("first vertex = %v, expected origin", v[0].Position)
	}
	if v[1].Position != [3]float32{0.5, 0.5, 0} {
		t.Errorf("second vertex = %v, expected (0.5, 0.5, 0)", v[1].Position)
	}
	if v[1].Color != [3]float32{1, 1, 1} {
		t.Errorf("vertex color = %v, expected white", v[1].Color)
	}
}

func TestAddPolygonCloses(t *testing.T) {
	buf := NewLineBuffer(NewSpace(100, 100))
	pts := []Point{{0, 0}, {10, 0}, {10, 10}}
	buf.AddPolygon(pts)

	if buf.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", buf.Len())
	}
	last := buf.Segments()[2]
	if last.P2 != buf.Space().ToNormalized(pts[0]) {
		t.Errorf("last segment ends at %v, expected the first point", last.P2)
	}
}
