package raster

import (
	"image"
	"image/color"
)

// FillEngine recolors 4-connected regions of matching pixels.
// Every fill records an undo snapshot first, the same as a stroke.
type FillEngine struct {
	undo  *UndoStack
	stack []image.Point // reused between fills
}

// NewFillEngine creates a fill engine recording snapshots to undo.
// A nil undo stack disables snapshots.
func NewFillEngine(undo *UndoStack) *FillEngine {
	return &FillEngine{undo: undo}
}

// FloodFill recolors the region containing (startX, startY) to target.
// Pixels match the seed on RGB only; written pixels are forced opaque.
// Returns true if any pixel changed.
//
// The region is grown with an explicit work stack so large buffers cannot
// exhaust the call stack. Each pixel is recolored at most once, since a
// recolored pixel no longer matches the seed color.
func (f *FillEngine) FloodFill(buf *Buffer, startX, startY int, target color.RGBA) bool {
	if f.undo != nil {
		f.undo.Push(buf)
	}

	if !buf.InBounds(startX, startY) {
		return false
	}

	match := buf.At(startX, startY)
	if sameRGB(match, target) {
		return false
	}
	target.A = 255

	w, h := buf.Width(), buf.Height()
	pix := buf.img.Pix
	stride := buf.img.Stride

	f.stack = append(f.stack[:0], image.Pt(startX, startY))
	changed := false

	for len(f.stack) > 0 {
		p := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]

		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			continue
		}
		i := p.Y*stride + p.X*4
		if pix[i] != match.R || pix[i+1] != match.G || pix[i+2] != match.B {
			continue
		}

		pix[i] = target.R
		pix[i+1] = target.G
		pix[i+2] = target.B
		pix[i+3] = target.A
		changed = true

		f.stack = append(f.stack,
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
		)
	}

	return changed
}
