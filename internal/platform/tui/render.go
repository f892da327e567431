package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-scribble/internal/raster"
)

// halfBlock shows the top pixel as foreground and the bottom as background.
const halfBlock = "▀"

// RenderImage draws img into cols×rows terminal cells. Each cell holds two
// vertically stacked pixels, so the image is scaled to cols×(rows*2).
// Adjacent cells with the same colors are grouped to minimize ANSI escape
// sequences.
func RenderImage(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	small := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	if img != nil && !img.Bounds().Empty() {
		draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Over, nil)
	}

	var sb strings.Builder
	sb.Grow(cols*rows*4 + rows)

	for y := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cols {
			top, bottom := small.RGBAAt(x, y*2), small.RGBAAt(x, y*2+1)

			n := 0
			for x < cols && small.RGBAAt(x, y*2) == top && small.RGBAAt(x, y*2+1) == bottom {
				n++
				x++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(raster.Hex(top))).
				Background(lipgloss.Color(raster.Hex(bottom)))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

// swatch renders a two-cell color sample.
func swatch(c color.RGBA) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(raster.Hex(c))).Render("  ")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
