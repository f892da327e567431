// Package refimage fetches and decodes the reference images that drawings
// are scored against.
package refimage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// Provider returns encoded image bytes for a reference seed.
// Implementations must be safe for concurrent use.
type Provider interface {
	Fetch(ctx context.Context, seed string) ([]byte, error)
}

// ErrEmpty is returned by Decode for zero-length input.
var ErrEmpty = errors.New("refimage: empty image data")

// Decode decodes PNG, JPEG, GIF, BMP or WebP data.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("refimage: decode: %w", err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("refimage: %s image has no pixels", format)
	}
	return img, nil
}

// Load fetches the image for seed from p and decodes it.
func Load(ctx context.Context, p Provider, seed string) (image.Image, error) {
	data, err := p.Fetch(ctx, seed)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
