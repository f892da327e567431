package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// White is the canvas background.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Black is the default ink.
var Black = color.RGBA{A: 255}

// ParseHex converts "#rrggbb" (leading '#' optional, case-insensitive) to an
// opaque color. Returns false for anything else.
func ParseHex(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// sameRGB compares color channels only.
func sameRGB(a, b color.RGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}
