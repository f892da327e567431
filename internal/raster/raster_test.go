package raster

import (
	"image/color"
	"testing"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected color.RGBA
		ok       bool
	}{
		{"#000000", color.RGBA{A: 255}, true},
		{"#FF8000", color.RGBA{R: 255, G: 128, A: 255}, true},
		{"00ff00", color.RGBA{G: 255, A: 255}, true},
		{"#fff", color.RGBA{}, false},
		{"#gg0000", color.RGBA{}, false},
		{"", color.RGBA{}, false},
		{"#12345678", color.RGBA{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseHex(tc.in)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("ParseHex(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.expected, tc.ok)
			}
		})
	}

	if Hex(color.RGBA{R: 255, G: 128, A: 255}) != "#ff8000" {
		t.Errorf("Hex() = %s, expected #ff8000", Hex(color.RGBA{R: 255, G: 128, A: 255}))
	}
}

func TestBufferBasics(t *testing.T) {
	b := NewBuffer(4, 3, White)

	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("expected 4x3 buffer, got %dx%d", b.Width(), b.Height())
	}
	if b.At(2, 2) != White {
		t.Errorf("new buffer pixel = %v, expected white", b.At(2, 2))
	}

	b.Set(1, 1, red)
	if b.At(1, 1) != red {
		t.Errorf("At(1,1) = %v, expected red", b.At(1, 1))
	}

	// Out of bounds is ignored
	b.Set(-1, 0, red)
	b.Set(4, 0, red)
	if b.At(10, 10) != (color.RGBA{}) {
		t.Error("out-of-bounds At should return zero color")
	}

	clone := b.Clone()
	if !clone.Equal(b) {
		t.Error("clone should equal original")
	}
	clone.Set(0, 0, blue)
	if clone.Equal(b) || b.At(0, 0) != White {
		t.Error("clone must not share pixel memory with original")
	}
}

func TestUndoStackBounded(t *testing.T) {
	u := NewUndoStack(20)
	buf := NewBuffer(1, 1, White)

	for i := range 25 {
		buf.Set(0, 0, color.RGBA{R: uint8(i), A: 255})
		u.Push(buf)
		if u.Len() > 20 {
			t.Fatalf("undo stack grew to %d entries", u.Len())
		}
	}

	if u.Len() != 20 {
		t.Fatalf("expected 20 snapshots, got %d", u.Len())
	}

	// Most recent first; the 5 oldest were evicted
	for want := 24; want >= 5; want-- {
		snap, ok := u.Pop()
		if !ok {
			t.Fatalf("Pop() failed with %d expected remaining", want-4)
		}
		if got := snap.At(0, 0).R; got != uint8(want) {
			t.Errorf("Pop() = snapshot %d, expected %d", got, want)
		}
	}

	if _, ok := u.Pop(); ok {
		t.Error("Pop() on empty stack should return false")
	}
}

func TestUndoStackSnapshotsAreCopies(t *testing.T) {
	u := NewUndoStack(3)
	buf := NewBuffer(2, 2, White)
	u.Push(buf)
	buf.Set(0, 0, red)

	snap, _ := u.Pop()
	if snap.At(0, 0) != White {
		t.Error("snapshot changed after the source buffer was modified")
	}
}

// walledBuffer returns a 10x10 white buffer split by a black wall at x=5.
func walledBuffer() *Buffer {
	b := NewBuffer(10, 10, White)
	for y := range 10 {
		b.Set(5, y, Black)
	}
	return b
}

func TestFloodFillRecolorsConnectedRegion(t *testing.T) {
	b := walledBuffer()
	f := NewFillEngine(nil)

	if !f.FloodFill(b, 0, 0, red) {
		t.Fatal("FloodFill() should report a change")
	}

	for y := range 10 {
		for x := range 10 {
			got := b.At(x, y)
			switch {
			case x < 5 && got != red:
				t.Fatalf("(%d,%d) = %v, expected red", x, y, got)
			case x == 5 && got != Black:
				t.Fatalf("wall pixel (%d,%d) = %v, expected black", x, y, got)
			case x > 5 && got != White:
				t.Fatalf("(%d,%d) = %v, expected untouched white", x, y, got)
			}
		}
	}
}

func TestFloodFillIsDiagonalTight(t *testing.T) {
	// A diagonal line of black pixels separates two regions under
	// 4-connectivity.
	b := NewBuffer(4, 4, White)
	for i := range 4 {
		b.Set(i, 3-i, Black)
	}
	NewFillEngine(nil).FloodFill(b, 0, 0, red)

	if b.At(3, 3) != White {
		t.Error("fill leaked through a diagonal wall")
	}
	if b.At(1, 1) != red {
		t.Error("fill did not reach (1,1)")
	}
}

func TestFloodFillSameColorIsNoop(t *testing.T) {
	b := walledBuffer()
	before := b.Clone()

	if NewFillEngine(nil).FloodFill(b, 8, 8, White) {
		t.Error("filling with the seed color should report no change")
	}
	if !b.Equal(before) {
		t.Error("filling with the seed color changed the buffer")
	}
}

func TestFloodFillMatchesRGBOnly(t *testing.T) {
	b := NewBuffer(3, 1, White)
	b.Set(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 128})

	NewFillEngine(nil).FloodFill(b, 0, 0, color.RGBA{B: 255, A: 10})

	for x := range 3 {
		if got := b.At(x, 0); got != blue {
			t.Errorf("(%d,0) = %v, expected opaque blue", x, got)
		}
	}
}

func TestFloodFillOutOfBounds(t *testing.T) {
	undo := NewUndoStack(5)
	b := walledBuffer()
	before := b.Clone()
	f := NewFillEngine(undo)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if f.FloodFill(b, p[0], p[1], red) {
			t.Errorf("FloodFill(%d,%d) out of bounds should not change anything", p[0], p[1])
		}
	}
	if !b.Equal(before) {
		t.Error("out-of-bounds fill changed the buffer")
	}
	if undo.Len() != 4 {
		t.Errorf("expected a snapshot per fill attempt, got %d", undo.Len())
	}
}

func TestFloodFillLargeBuffer(t *testing.T) {
	b := NewBuffer(800, 600, White)
	NewFillEngine(nil).FloodFill(b, 400, 300, red)

	if b.At(0, 0) != red || b.At(799, 599) != red {
		t.Error("large fill did not reach the corners")
	}
}

func TestSurfaceStrokeDrawsRoundSegment(t *testing.T) {
	s := NewSurface(20, 20, DefaultSurfaceOptions())

	s.PointerDown(Point{X: 5, Y: 10})
	s.PointerMove(Point{X: 15, Y: 10})
	s.PointerUp()

	buf := s.Buffer()
	if got := buf.At(10, 10); got != Black {
		t.Errorf("stroke center = %v, expected black", got)
	}
	if got := buf.At(5, 10); got != Black {
		t.Errorf("stroke start cap = %v, expected black", got)
	}
	if got := buf.At(10, 15); got != White {
		t.Errorf("pixel outside stroke = %v, expected white", got)
	}
	if s.UndoLen() != 1 {
		t.Errorf("expected one snapshot for the stroke, got %d", s.UndoLen())
	}
}

func TestSurfaceMoveWithoutStrokeIsNoop(t *testing.T) {
	s := NewSurface(10, 10, DefaultSurfaceOptions())
	before := s.Snapshot()

	if s.PointerMove(Point{X: 5, Y: 5}) {
		t.Error("PointerMove without PointerDown should not draw")
	}
	s.PointerUp() // no open stroke
	if !s.Buffer().Equal(before) {
		t.Error("buffer changed without an open stroke")
	}
}

func TestSurfaceScalesDisplayCoordinates(t *testing.T) {
	s := NewSurface(40, 40, DefaultSurfaceOptions())
	s.SetDisplaySize(10, 10)

	p := s.ToBuffer(Point{X: 2.5, Y: 5})
	if p.X != 10 || p.Y != 20 {
		t.Errorf("ToBuffer(2.5,5) = %v, expected (10,20)", p)
	}

	s.PointerDown(Point{X: 2, Y: 5})
	s.PointerMove(Point{X: 8, Y: 5})
	s.PointerUp()

	if got := s.Buffer().At(20, 20); got != Black {
		t.Errorf("scaled stroke missing at buffer (20,20): %v", got)
	}
}

func TestSurfaceEraser(t *testing.T) {
	s := NewSurface(60, 20, DefaultSurfaceOptions())
	s.Buffer().Fill(red)

	s.SetTool(ToolEraser)
	s.PointerDown(Point{X: 20, Y: 10})
	s.PointerMove(Point{X: 40, Y: 10})
	s.PointerUp()

	// Brush 5 × 4 = 20px wide eraser covers rows 0..19
	if got := s.Buffer().At(30, 2); got != White {
		t.Errorf("eraser should paint background at width*4, got %v", got)
	}
	if got := s.Buffer().At(0, 10); got != red {
		t.Errorf("pixel outside eraser = %v, expected red", got)
	}
}

func TestSurfaceFillTool(t *testing.T) {
	s := NewSurface(10, 10, DefaultSurfaceOptions())
	for y := range 10 {
		s.Buffer().Set(5, y, Black)
	}

	s.SetTool(ToolFill)
	s.SetColor("#ff0000")
	s.PointerDown(Point{X: 1.7, Y: 3.2})

	if s.Stroking() {
		t.Error("fill tool must not open a stroke")
	}
	if s.Buffer().At(0, 0) != red || s.Buffer().At(9, 9) != White {
		t.Error("fill tool did not fill the left region only")
	}
	if s.UndoLen() != 1 {
		t.Errorf("expected a fill snapshot, got %d", s.UndoLen())
	}
}

func TestSurfaceMalformedColor(t *testing.T) {
	s := NewSurface(10, 10, DefaultSurfaceOptions())
	s.SetColor("#00ff00")
	if s.SetColor("not-a-color") {
		t.Fatal("SetColor should reject malformed input")
	}

	s.SetTool(ToolFill)
	before := s.Snapshot()
	s.PointerDown(Point{X: 1, Y: 1})
	if !s.Buffer().Equal(before) || s.UndoLen() != 0 {
		t.Error("fill with malformed color should be a no-op")
	}

	// Strokes keep the last valid color
	s.SetTool(ToolPencil)
	s.PointerDown(Point{X: 2, Y: 5})
	s.PointerMove(Point{X: 8, Y: 5})
	s.PointerUp()
	if got := s.Buffer().At(5, 5); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("stroke color = %v, expected last valid green", got)
	}
}

func TestSurfaceUndoRestoresInReverseOrder(t *testing.T) {
	s := NewSurface(30, 30, DefaultSurfaceOptions())
	var states []*Buffer

	for i := range 3 {
		states = append(states, s.Snapshot())
		y := float64(5 + i*10)
		s.PointerDown(Point{X: 5, Y: y})
		s.PointerMove(Point{X: 25, Y: y})
		s.PointerUp()
	}

	for i := 2; i >= 0; i-- {
		if !s.Undo() {
			t.Fatalf("Undo() #%d returned false", 3-i)
		}
		if !s.Buffer().Equal(states[i]) {
			t.Errorf("after undo, buffer does not match state %d", i)
		}
	}

	if s.Undo() {
		t.Error("Undo() on empty history should return false")
	}
	if !s.Buffer().Equal(states[0]) {
		t.Error("Undo() on empty history changed the buffer")
	}
}

func TestSurfaceResizeIsDestructive(t *testing.T) {
	s := NewSurface(10, 10, DefaultSurfaceOptions())
	s.PointerDown(Point{X: 1, Y: 1})
	s.PointerMove(Point{X: 8, Y: 8})

	s.Resize(20, 15)

	if s.Stroking() {
		t.Error("Resize must abort the open stroke")
	}
	if s.Buffer().Width() != 20 || s.Buffer().Height() != 15 {
		t.Errorf("buffer is %dx%d, expected 20x15", s.Buffer().Width(), s.Buffer().Height())
	}
	if !s.Buffer().Equal(NewBuffer(20, 15, White)) {
		t.Error("resized buffer should be cleared")
	}
	if s.UndoLen() != 0 {
		t.Error("Resize should drop snapshots of the old size")
	}
}

func TestSurfaceClearAndReset(t *testing.T) {
	s := NewSurface(10, 10, DefaultSurfaceOptions())
	s.PointerDown(Point{X: 1, Y: 5})
	s.PointerMove(Point{X: 9, Y: 5})
	s.PointerUp()

	s.Clear()
	if !s.Buffer().Equal(NewBuffer(10, 10, White)) {
		t.Error("Clear() should paint the background")
	}
	if s.UndoLen() != 1 {
		t.Error("Clear() should keep the undo history")
	}

	s.Reset()
	if s.UndoLen() != 0 {
		t.Error("Reset() should drop the undo history")
	}
}
