// Package scoring rates a drawing by how much of a reference image's ink
// it covers.
//
// Both images are flattened over white and downsampled to a small square
// grid, so the result does not depend on canvas resolution. A cell is
// active when any color channel is darker than the active threshold.
// Coverage is the share of the reference's active cells that are also
// active in the drawing, amplified and clamped to 100.
package scoring

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/refimage"
)

// Options controls the coverage heuristic.
type Options struct {
	GridSize        int
	ActiveThreshold uint8
	Amplification   float64
}

// DefaultOptions returns a 64×64 grid, threshold 240 and ×2 amplification.
func DefaultOptions() Options {
	return Options{GridSize: 64, ActiveThreshold: 240, Amplification: 2}
}

// Coverage returns the accuracy of user against ref in [0, 100].
// A reference with no active cells yields 0.
func Coverage(user, ref image.Image, opts Options) float64 {
	if opts.GridSize <= 0 {
		opts.GridSize = DefaultOptions().GridSize
	}
	if opts.Amplification <= 0 {
		opts.Amplification = 1
	}

	u := downsample(user, opts.GridSize)
	r := downsample(ref, opts.GridSize)

	both, refActive := 0, 0
	for i := 0; i < len(r.Pix); i += 4 {
		if !active(r.Pix[i:i+3], opts.ActiveThreshold) {
			continue
		}
		refActive++
		if active(u.Pix[i:i+3], opts.ActiveThreshold) {
			both++
		}
	}

	if refActive == 0 {
		return 0
	}

	score := float64(both) / float64(refActive) * 100 * opts.Amplification
	return math.Min(100, math.Max(0, score))
}

// downsample composites src over white into a size×size grid.
func downsample(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if src != nil && !src.Bounds().Empty() {
		draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	}
	return dst
}

func active(rgb []uint8, threshold uint8) bool {
	return rgb[0] < threshold || rgb[1] < threshold || rgb[2] < threshold
}

// Scorer fetches reference images and rates drawings against them.
// Failures never surface: a missing or broken reference yields the
// fallback score so the game can continue.
type Scorer struct {
	provider refimage.Provider
	opts     Options
	fallback float64
	timeout  time.Duration
	logger   *log.Logger
}

// New creates a scorer using provider for reference images.
func New(provider refimage.Provider, cfg config.ScoringConfig, logger *log.Logger) *Scorer {
	if logger == nil {
		logger = log.Default()
	}
	return &Scorer{
		provider: provider,
		opts: Options{
			GridSize:        cfg.GridSize,
			ActiveThreshold: cfg.ActiveThreshold,
			Amplification:   cfg.Amplification,
		},
		fallback: math.Min(100, math.Max(0, cfg.FallbackScore)),
		timeout:  cfg.Timeout,
		logger:   logger,
	}
}

// Score returns the accuracy of user against the reference for seed.
func (s *Scorer) Score(ctx context.Context, user image.Image, seed string) float64 {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if s.provider == nil {
		s.logger.Warn("No reference provider, using fallback score", "seed", seed, "score", s.fallback)
		return s.fallback
	}

	ref, err := refimage.Load(ctx, s.provider, seed)
	if err != nil {
		s.logger.Warn("Reference image unavailable, using fallback score", "seed", seed, "score", s.fallback, "error", err)
		return s.fallback
	}

	score := Coverage(user, ref, s.opts)
	s.logger.Debug("Scored drawing", "seed", seed, "accuracy", score)
	return score
}
