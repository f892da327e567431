package raster

import (
	"image/color"
	"math"
)

// Tool selects what pointer input does on a Surface.
type Tool string

const (
	ToolPencil Tool = "pencil"
	ToolEraser Tool = "eraser"
	ToolFill   Tool = "fill"
)

// SurfaceOptions configures a new Surface.
type SurfaceOptions struct {
	UndoDepth        int
	BrushSize        float64
	EraserMultiplier float64
	Color            string // "#rrggbb"
	Background       color.RGBA
}

// DefaultSurfaceOptions returns black 5px ink on white with 20 undo steps.
func DefaultSurfaceOptions() SurfaceOptions {
	return SurfaceOptions{
		UndoDepth:        DefaultUndoDepth,
		BrushSize:        5,
		EraserMultiplier: 4,
		Color:            "#000000",
		Background:       White,
	}
}

// Surface is the drawing canvas: one Buffer, its undo history and the
// current tool settings. Pointer input arrives in display space and is scaled
// to buffer space, so drawing stays aligned when the buffer resolution
// differs from the displayed size.
type Surface struct {
	buf     *Buffer
	undo    *UndoStack
	fill    *FillEngine
	stroker stroker

	bg        color.RGBA
	tool      Tool
	brush     float64
	eraserMul float64
	colorHex  string
	ink       color.RGBA // last color that parsed

	displayW, displayH float64

	stroking bool
	last     Point
}

// NewSurface creates a cleared width×height surface.
// The display size initially equals the buffer size.
func NewSurface(width, height int, opts SurfaceOptions) *Surface {
	if opts.BrushSize <= 0 {
		opts.BrushSize = 5
	}
	if opts.EraserMultiplier <= 0 {
		opts.EraserMultiplier = 4
	}
	if opts.Background.A == 0 {
		opts.Background = White
	}

	undo := NewUndoStack(opts.UndoDepth)
	s := &Surface{
		buf:       NewBuffer(width, height, opts.Background),
		undo:      undo,
		fill:      NewFillEngine(undo),
		bg:        opts.Background,
		tool:      ToolPencil,
		brush:     opts.BrushSize,
		eraserMul: opts.EraserMultiplier,
		ink:       Black,
		displayW:  float64(width),
		displayH:  float64(height),
	}
	s.SetColor(opts.Color)
	return s
}

// Buffer returns the live pixel buffer.
func (s *Surface) Buffer() *Buffer {
	return s.buf
}

// Snapshot returns a copy of the current pixels.
func (s *Surface) Snapshot() *Buffer {
	return s.buf.Clone()
}

// UndoLen returns the number of undo steps available.
func (s *Surface) UndoLen() int {
	return s.undo.Len()
}

// Tool returns the active tool.
func (s *Surface) Tool() Tool {
	return s.tool
}

// SetTool switches the active tool, closing any open stroke.
func (s *Surface) SetTool(t Tool) {
	s.EndStroke()
	s.tool = t
}

// Color returns the current color input as given to SetColor.
func (s *Surface) Color() string {
	return s.colorHex
}

// SetColor records the color input. Strokes keep using the last valid color
// when hex is malformed, while fills become no-ops until a valid color is set.
// Returns whether hex parsed.
func (s *Surface) SetColor(hex string) bool {
	s.colorHex = hex
	c, ok := ParseHex(hex)
	if ok {
		s.ink = c
	}
	return ok
}

// BrushSize returns the pencil width in buffer pixels.
func (s *Surface) BrushSize() float64 {
	return s.brush
}

// SetBrushSize sets the pencil width. Non-positive widths are ignored.
func (s *Surface) SetBrushSize(w float64) {
	if w > 0 {
		s.brush = w
	}
}

// SetDisplaySize records the size at which the buffer is shown.
// Non-positive sizes reset the mapping to 1:1.
func (s *Surface) SetDisplaySize(w, h float64) {
	if w <= 0 || h <= 0 {
		w, h = float64(s.buf.Width()), float64(s.buf.Height())
	}
	s.displayW, s.displayH = w, h
}

// ToBuffer maps a display-space point to buffer space.
func (s *Surface) ToBuffer(p Point) Point {
	sx, sy := 1.0, 1.0
	if s.displayW > 0 {
		sx = float64(s.buf.Width()) / s.displayW
	}
	if s.displayH > 0 {
		sy = float64(s.buf.Height()) / s.displayH
	}
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// PointerDown starts a stroke (or fills) at a display-space point.
func (s *Surface) PointerDown(p Point) {
	s.BeginStroke(s.ToBuffer(p))
}

// PointerMove extends the open stroke to a display-space point using the
// current brush. Returns true if anything was drawn.
func (s *Surface) PointerMove(p Point) bool {
	if !s.stroking {
		return false
	}
	s.ExtendStroke(s.ToBuffer(p), s.brush, s.ink)
	return true
}

// PointerUp closes the open stroke.
func (s *Surface) PointerUp() {
	s.EndStroke()
}

// Stroking returns true while a stroke is open.
func (s *Surface) Stroking() bool {
	return s.stroking
}

// BeginStroke opens a path at p (buffer space). With the fill tool the
// region under p is flood filled instead and no path is opened.
func (s *Surface) BeginStroke(p Point) {
	if s.tool == ToolFill {
		s.EndStroke()
		target, ok := ParseHex(s.colorHex)
		if !ok {
			return
		}
		s.fill.FloodFill(s.buf, int(math.Floor(p.X)), int(math.Floor(p.Y)), target)
		return
	}

	s.undo.Push(s.buf)
	s.stroking = true
	s.last = p
}

// ExtendStroke draws a round-capped segment from the previous point to p.
// The eraser paints the background at width × eraser multiplier.
// Does nothing when no stroke is open.
func (s *Surface) ExtendStroke(p Point, width float64, c color.RGBA) {
	if !s.stroking {
		return
	}
	if s.tool == ToolEraser {
		c = s.bg
		width *= s.eraserMul
	}
	s.stroker.segment(s.buf.img, s.last, p, width, c)
	s.last = p
}

// EndStroke closes the open path. No-op if no stroke is open.
func (s *Surface) EndStroke() {
	s.stroking = false
}

// Undo restores the most recent snapshot. Returns false when there is
// nothing to undo.
func (s *Surface) Undo() bool {
	s.EndStroke()
	snap, ok := s.undo.Pop()
	if !ok {
		return false
	}
	s.buf = snap
	return true
}

// Clear paints the whole buffer with the background color.
func (s *Surface) Clear() {
	s.EndStroke()
	s.buf.Fill(s.bg)
}

// Reset clears the canvas and forgets the undo history.
func (s *Surface) Reset() {
	s.Clear()
	s.undo.Clear()
}

// Resize reallocates the buffer at the new size and clears it.
// Any open stroke is aborted and the undo history is dropped, since its
// snapshots no longer match the buffer size. The display mapping resets
// to 1:1 until SetDisplaySize is called again.
func (s *Surface) Resize(width, height int) {
	s.EndStroke()
	s.buf = NewBuffer(width, height, s.bg)
	s.undo.Clear()
	s.displayW, s.displayH = float64(s.buf.Width()), float64(s.buf.Height())
}
