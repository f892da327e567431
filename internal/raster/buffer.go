// Package raster implements the drawing engine: an RGBA pixel buffer,
// a bounded undo history, flood fill and stroke rendering, composed by
// Surface into a tool-driven canvas.
//
// Nothing in this package knows about terminals or sessions; all operations
// are synchronous and out-of-range input is ignored rather than reported.
package raster

import (
	"bytes"
	"image"
	"image/color"
)

// Buffer owns the pixel memory of a drawing surface.
// Pixels are stored row-major as RGBA bytes in an image.RGBA.
type Buffer struct {
	img *image.RGBA
}

// NewBuffer allocates a width×height buffer filled with bg.
// Non-positive dimensions produce an empty buffer.
func NewBuffer(width, height int, bg color.RGBA) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	b.Fill(bg)
	return b
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.img.Rect.Dy()
}

// InBounds returns true if (x, y) addresses a pixel.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width() && y >= 0 && y < b.Height()
}

// At returns the pixel at (x, y), or transparent black when out of bounds.
func (b *Buffer) At(x, y int) color.RGBA {
	if !b.InBounds(x, y) {
		return color.RGBA{}
	}
	return b.img.RGBAAt(x, y)
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (b *Buffer) Set(x, y int, c color.RGBA) {
	if !b.InBounds(x, y) {
		return
	}
	b.img.SetRGBA(x, y, c)
}

// Fill paints every pixel with c.
func (b *Buffer) Fill(c color.RGBA) {
	pix := b.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	img := image.NewRGBA(b.img.Rect)
	copy(img.Pix, b.img.Pix)
	return &Buffer{img: img}
}

// Equal returns true if both buffers have the same size and pixels.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return false
	}
	return b.img.Rect == other.img.Rect && bytes.Equal(b.img.Pix, other.img.Pix)
}

// Image exposes the backing image for read-only consumers such as the
// scorer and renderers. Callers must not retain it across mutations.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}
