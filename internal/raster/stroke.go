package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Point is a position in buffer or display space.
// Sub-pixel precision is kept so strokes stay smooth under scaling.
type Point struct {
	X, Y float64
}

// capSegments is the number of line segments used per half circle of a
// round cap.
const capSegments = 12

// stroker renders round-capped line segments into an RGBA image.
// A stroke made of consecutive segments gets round joins for free, because
// every segment end is a full half disc.
type stroker struct {
	z    *vector.Rasterizer
	w, h int
}

// segment draws the segment a→b of the given width in color c.
// A zero-length segment draws a dot of diameter width.
func (s *stroker) segment(dst *image.RGBA, a, b Point, width float64, c color.RGBA) {
	if width <= 0 {
		return
	}
	bounds := dst.Bounds()
	r := width / 2

	// Skip segments entirely outside the buffer
	if math.Max(a.X, b.X)+r < 0 || math.Min(a.X, b.X)-r > float64(bounds.Dx()) ||
		math.Max(a.Y, b.Y)+r < 0 || math.Min(a.Y, b.Y)-r > float64(bounds.Dy()) {
		return
	}

	if s.z == nil || s.w != bounds.Dx() || s.h != bounds.Dy() {
		s.w, s.h = bounds.Dx(), bounds.Dy()
		s.z = vector.NewRasterizer(s.w, s.h)
	} else {
		s.z.Reset(s.w, s.h)
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	// Angle of the segment direction; any angle works for a dot
	theta := 0.0
	if length > 0 {
		theta = math.Atan2(dy, dx)
	}

	// Half circle around b from +normal through the direction to -normal,
	// then around a from -normal through the reverse direction back.
	first := true
	emit := func(p Point) {
		if first {
			s.z.MoveTo(float32(p.X), float32(p.Y))
			first = false
			return
		}
		s.z.LineTo(float32(p.X), float32(p.Y))
	}
	arc(b, r, theta-math.Pi/2, emit)
	arc(a, r, theta+math.Pi/2, emit)
	s.z.ClosePath()

	s.z.Draw(dst, bounds, image.NewUniform(c), image.Point{})
}

// arc emits capSegments+1 points on a half circle starting at angle start.
func arc(center Point, r, start float64, emit func(Point)) {
	for i := 0; i <= capSegments; i++ {
		t := start + math.Pi*float64(i)/capSegments
		emit(Point{X: center.X + r*math.Cos(t), Y: center.Y + r*math.Sin(t)})
	}
}
