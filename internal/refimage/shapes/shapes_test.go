package shapes

import (
	"bytes"
	"context"
	"testing"

	"github.com/vovakirdan/tui-scribble/internal/refimage"
)

func TestFetchIsDeterministic(t *testing.T) {
	p := New()
	a, err := p.Fetch(context.Background(), "cat")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	b, _ := p.Fetch(context.Background(), "cat")
	if !bytes.Equal(a, b) {
		t.Error("same seed should produce identical images")
	}

	c, _ := p.Fetch(context.Background(), "house")
	if bytes.Equal(a, c) {
		t.Error("different seeds should produce different images")
	}
}

func TestFetchDecodes(t *testing.T) {
	data, err := New().Fetch(context.Background(), "tree")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	img, err := refimage.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != Size || b.Dy() != Size {
		t.Errorf("image is %dx%d, expected %dx%d", b.Dx(), b.Dy(), Size, Size)
	}
}

func TestRenderHasInk(t *testing.T) {
	for _, seed := range []string{"a", "sun", "bicycle", ""} {
		img := Render(seed)
		dark := 0
		for i := 0; i < len(img.Pix); i += 4 {
			if img.Pix[i] < 240 || img.Pix[i+1] < 240 || img.Pix[i+2] < 240 {
				dark++
			}
		}
		if dark == 0 {
			t.Errorf("Render(%q) produced a blank image", seed)
		}
	}
}

func TestFetchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Fetch(ctx, "cat"); err == nil {
		t.Error("Fetch() should honor a cancelled context")
	}
}
