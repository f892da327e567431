package refimage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

type stubProvider struct {
	data []byte
	err  error
}

func (s stubProvider) Fetch(context.Context, string) ([]byte, error) {
	return s.data, s.err
}

func sample() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	img.Set(1, 1, color.Black)
	return img
}

func TestDecodeFormats(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, sample()) },
		"jpeg": func(b *bytes.Buffer) error { return jpeg.Encode(b, sample(), nil) },
		"gif":  func(b *bytes.Buffer) error { return gif.Encode(b, sample(), nil) },
	}

	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := enc(&buf); err != nil {
				t.Fatalf("encode error: %v", err)
			}
			img, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
				t.Errorf("Decode() bounds = %v, expected 8x6", b)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Decode(nil) = %v, expected ErrEmpty", err)
	}
	if _, err := Decode([]byte("<svg></svg>")); err == nil {
		t.Error("Decode() should reject unknown formats")
	}
}

func TestLoad(t *testing.T) {
	var buf bytes.Buffer
	png.Encode(&buf, sample()) //nolint:errcheck // In-memory encode

	if _, err := Load(context.Background(), stubProvider{data: buf.Bytes()}, "x"); err != nil {
		t.Errorf("Load() error: %v", err)
	}

	fetchErr := errors.New("offline")
	if _, err := Load(context.Background(), stubProvider{err: fetchErr}, "x"); !errors.Is(err, fetchErr) {
		t.Errorf("Load() = %v, expected fetch error", err)
	}
}

type countingProvider struct {
	calls int
	fail  bool
}

func (c *countingProvider) Fetch(_ context.Context, seed string) ([]byte, error) {
	c.calls++
	if c.fail {
		return nil, errors.New("offline")
	}
	return []byte(seed), nil
}

func TestCache(t *testing.T) {
	p := &countingProvider{}
	c := NewCache(p, 2)
	ctx := context.Background()

	for range 3 {
		b, err := c.Fetch(ctx, "cat")
		if err != nil || string(b) != "cat" {
			t.Fatalf("Fetch(cat) = %q, %v", b, err)
		}
	}
	if p.calls != 1 {
		t.Errorf("provider calls = %d, expected 1", p.calls)
	}

	c.Fetch(ctx, "dog")  //nolint:errcheck // Stub never fails
	c.Fetch(ctx, "bird") //nolint:errcheck // Stub never fails
	if c.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", c.Len())
	}

	// "cat" was evicted first
	c.Fetch(ctx, "cat") //nolint:errcheck // Stub never fails
	if p.calls != 4 {
		t.Errorf("provider calls = %d, expected 4 after eviction", p.calls)
	}
}

func TestCacheSkipsFailures(t *testing.T) {
	p := &countingProvider{fail: true}
	c := NewCache(p, 0)

	for range 2 {
		if _, err := c.Fetch(context.Background(), "cat"); err == nil {
			t.Fatal("Fetch() should fail")
		}
	}
	if p.calls != 2 || c.Len() != 0 {
		t.Errorf("calls = %d, len = %d; failures must not be cached", p.calls, c.Len())
	}
}
