package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/platform/tui"
	"github.com/vovakirdan/tui-scribble/internal/refimage"
	"github.com/vovakirdan/tui-scribble/internal/refimage/shapes"
	"github.com/vovakirdan/tui-scribble/internal/registry"
	"github.com/vovakirdan/tui-scribble/internal/scoring"
	"github.com/vovakirdan/tui-scribble/internal/storage"
	"github.com/vovakirdan/tui-scribble/internal/words"
)

// loadConfig reads the config file and applies environment overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyEnv(&cfg)
	return cfg, cfg.Validate()
}

// newFileLogger logs to ~/.scribble/scribble.log, since the game owns the
// terminal. Falls back to discarding output when the file cannot be opened.
func newFileLogger(prefix string) (*log.Logger, func()) {
	opts := log.Options{ReportTimestamp: true, Prefix: prefix}

	dir := config.DataDir()
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "scribble.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				//nolint:errcheck // Best-effort close on exit
				return log.NewWithOptions(f, opts), func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(os.Stderr, opts)
	logger.SetLevel(log.FatalLevel)
	return logger, func() {}
}

// newStderrLogger logs to stderr with timestamps.
func newStderrLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// wordSources returns the word sources in fallback order: remote store,
// configured file, embedded list. offline skips the remote store.
func wordSources(cfg config.Config, offline bool) []words.Source {
	var sources []words.Source
	if cfg.Words.RemoteURL != "" && !offline {
		sources = append(sources, words.NewRemoteSource(cfg.Words.RemoteURL, cfg.Words.APIKey, cfg.Words.Table, cfg.Words.Timeout))
	}
	if cfg.Words.File != "" {
		sources = append(sources, words.NewFileSource(cfg.Words.File))
	}
	return append(sources, words.NewFileSource(""))
}

// referenceProvider creates the configured provider, or the offline shape
// generator when offline is set or the provider cannot be created.
// The result is cached so the preview and the scorer share fetches.
func referenceProvider(cfg config.Config, offline bool, logger *log.Logger) refimage.Provider {
	var p refimage.Provider = shapes.New()
	if !offline {
		created, err := registry.Create(cfg.Reference)
		if err != nil {
			logger.Warn("Reference provider unavailable, using offline shapes", "provider", cfg.Reference.Provider, "error", err)
		} else {
			p = created
		}
	}
	return refimage.NewCache(p, 0)
}

// buildDeps assembles everything a game model needs.
func buildDeps(ctx context.Context, cfg config.Config, store *storage.Store, logger *log.Logger, offline bool) (tui.Deps, error) {
	list, err := words.LoadWithFallback(ctx, logger, wordSources(cfg, offline)...)
	if err != nil {
		return tui.Deps{}, fmt.Errorf("loading words: %w", err)
	}

	refs := referenceProvider(cfg, offline, logger)
	return tui.Deps{
		Config:     cfg,
		Words:      list,
		Scorer:     scoring.New(refs, cfg.Scoring, logger),
		References: refs,
		Store:      store,
		Logger:     logger,
		Seed:       flagSeed,
	}, nil
}
