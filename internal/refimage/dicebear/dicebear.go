// Package dicebear fetches reference images from an HTTP image service
// such as api.dicebear.com. Requests are rate limited per provider.
package dicebear

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/refimage"
	"github.com/vovakirdan/tui-scribble/internal/registry"
)

// maxImageBytes caps how much of a response body is read.
const maxImageBytes = 4 << 20

func init() {
	registry.Register("dicebear", "DiceBear shapes (HTTP)", func(cfg config.ReferenceConfig) (refimage.Provider, error) {
		return New(cfg)
	})
}

// Provider fetches images by substituting the seed into a URL template.
type Provider struct {
	client      *http.Client
	urlTemplate string
	limiter     *rate.Limiter
}

// New creates a provider from cfg. The URL template must contain one %s
// where the escaped seed goes.
func New(cfg config.ReferenceConfig) (*Provider, error) {
	if strings.Count(cfg.URLTemplate, "%s") != 1 {
		return nil, fmt.Errorf("dicebear: url template %q must contain exactly one %%s", cfg.URLTemplate)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Provider{
		client:      &http.Client{Timeout: timeout},
		urlTemplate: cfg.URLTemplate,
		limiter:     rate.NewLimiter(limit, 1),
	}, nil
}

// URL returns the request URL for seed.
func (p *Provider) URL(seed string) string {
	return fmt.Sprintf(p.urlTemplate, url.QueryEscape(seed))
}

// Fetch waits for the rate limiter, then downloads the image for seed.
func (p *Provider) Fetch(ctx context.Context, seed string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("dicebear: rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL(seed), nil)
	if err != nil {
		return nil, fmt.Errorf("dicebear: build request: %w", err)
	}
	req.Header.Set("Accept", "image/png, image/*")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dicebear: fetch %q: %w", seed, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Best-effort close

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dicebear: fetch %q: unexpected status %s", seed, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("dicebear: read body: %w", err)
	}
	return data, nil
}
