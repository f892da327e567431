package dicebear

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/refimage"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

func TestNewRejectsBadTemplate(t *testing.T) {
	for _, tmpl := range []string{"", "https://example.com/png", "https://example.com/%s/%s"} {
		if _, err := New(config.ReferenceConfig{URLTemplate: tmpl}); err == nil {
			t.Errorf("New(%q) should fail", tmpl)
		}
	}
}

func TestURLEscapesSeed(t *testing.T) {
	p, err := New(config.ReferenceConfig{URLTemplate: "https://example.com/png?seed=%s"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := p.URL("ice cream&x"); got != "https://example.com/png?seed=ice+cream%26x" {
		t.Errorf("URL() = %q", got)
	}
}

func TestFetch(t *testing.T) {
	body := encodePNG(t)
	var gotSeed string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSeed = r.URL.Query().Get("seed")
		w.Header().Set("Content-Type", "image/png")
		w.Write(body) //nolint:errcheck // Test server
	}))
	defer srv.Close()

	p, err := New(config.ReferenceConfig{URLTemplate: srv.URL + "/png?seed=%s", RequestsPerSecond: 100})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	data, err := p.Fetch(context.Background(), "cat")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if gotSeed != "cat" {
		t.Errorf("server saw seed %q, expected cat", gotSeed)
	}
	if _, err := refimage.Decode(data); err != nil {
		t.Errorf("Decode() of fetched data failed: %v", err)
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, _ := New(config.ReferenceConfig{URLTemplate: srv.URL + "?seed=%s"})
	if _, err := p.Fetch(context.Background(), "cat"); err == nil {
		t.Error("Fetch() should fail on non-200 status")
	}
}

func TestFetchCancelledContext(t *testing.T) {
	p, _ := New(config.ReferenceConfig{URLTemplate: "http://127.0.0.1:1/?seed=%s"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Fetch(ctx, "cat"); err == nil {
		t.Error("Fetch() should fail with a cancelled context")
	}
}
