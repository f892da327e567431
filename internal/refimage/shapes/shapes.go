// Package shapes generates reference images offline. Each seed maps to a
// deterministic composition of a few dark geometric shapes on white, so the
// game can score drawings without network access.
package shapes

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"math/rand/v2"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/refimage"
	"github.com/vovakirdan/tui-scribble/internal/registry"
)

// Size is the edge length of generated images.
const Size = 256

func init() {
	registry.Register("shapes", "Procedural shapes (offline)", func(config.ReferenceConfig) (refimage.Provider, error) {
		return New(), nil
	})
}

// Provider renders PNG images from seeds.
type Provider struct{}

// New creates a shapes provider.
func New() *Provider {
	return &Provider{}
}

// Fetch renders and encodes the image for seed.
func (p *Provider) Fetch(ctx context.Context, seed string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Render(seed)); err != nil {
		return nil, fmt.Errorf("shapes: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Render draws the composition for seed.
func Render(seed string) *image.RGBA {
	h := fnv.New64a()
	h.Write([]byte(seed)) //nolint:errcheck // hash writes never fail
	sum := h.Sum64()
	rng := rand.New(rand.NewPCG(sum, sum>>32|sum<<32))

	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	z := vector.NewRasterizer(Size, Size)
	n := 2 + rng.IntN(3)
	for range n {
		z.Reset(Size, Size)
		cx := 48 + rng.Float64()*(Size-96)
		cy := 48 + rng.Float64()*(Size-96)
		r := 20 + rng.Float64()*40

		switch rng.IntN(3) {
		case 0:
			polygon(z, cx, cy, r, 32, 0)
		case 1:
			polygon(z, cx, cy, r, 4, rng.Float64()*math.Pi/2)
		default:
			polygon(z, cx, cy, r, 3, rng.Float64()*2*math.Pi)
		}

		ink := color.RGBA{
			R: uint8(rng.IntN(160)),
			G: uint8(rng.IntN(160)),
			B: uint8(rng.IntN(160)),
			A: 255,
		}
		z.Draw(img, img.Bounds(), image.NewUniform(ink), image.Point{})
	}

	return img
}

// polygon adds a regular polygon with the given number of sides.
// Many sides approximate a circle.
func polygon(z *vector.Rasterizer, cx, cy, r float64, sides int, rot float64) {
	for i := range sides {
		t := rot + 2*math.Pi*float64(i)/float64(sides)
		x, y := float32(cx+r*math.Cos(t)), float32(cy+r*math.Sin(t))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
}
