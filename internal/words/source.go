package words

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// ErrNoWords is returned when no source produced a usable word list.
var ErrNoWords = errors.New("words: no word source available")

// Source loads the master word list.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	Load(ctx context.Context) ([]Word, error)
}

// LoadWithFallback tries each source in order and returns the first
// non-empty list. An empty list counts as a failure. When every source
// fails the error wraps ErrNoWords and each source error.
func LoadWithFallback(ctx context.Context, logger *log.Logger, sources ...Source) ([]Word, error) {
	if logger == nil {
		logger = log.Default()
	}

	errs := []error{ErrNoWords}
	for _, src := range sources {
		list, err := src.Load(ctx)
		if err == nil {
			list = normalize(list)
			if len(list) == 0 {
				err = errors.New("empty word list")
			}
		}
		if err != nil {
			logger.Warn("Word source failed", "source", src.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}

		logger.Info("Loaded words", "source", src.Name(), "count", len(list))
		return list, nil
	}

	return nil, errors.Join(errs...)
}

// normalize trims text fields and drops entries without text.
func normalize(list []Word) []Word {
	list = lo.Map(list, func(w Word, _ int) Word {
		w.Text = strings.TrimSpace(w.Text)
		w.Clue = strings.TrimSpace(w.Clue)
		return w
	})
	return lo.Filter(list, func(w Word, _ int) bool {
		return w.Text != ""
	})
}
