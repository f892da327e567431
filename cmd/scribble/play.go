package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/platform/tui"
	"github.com/vovakirdan/tui-scribble/internal/storage"
)

var (
	flagDifficulty string
	flagMode       string
	flagOffline    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start the drawing game. Without --difficulty the home menu is shown.

Controls:
  Mouse drag   - Draw
  1/2/3        - Pencil / Eraser / Fill
  [ ]          - Previous / next color
  - +          - Thinner / thicker brush
  U            - Undo
  C            - Clear
  Enter        - Submit drawing
  P/Space      - Pause
  Esc          - Back to menu
  Ctrl+C       - Quit

Modes:
  clue     - Draw a set of words, scored per drawing (default)
  classic  - Draw a single word, scored by time left

Examples:
  scribble play
  scribble play --difficulty Medium
  scribble play --mode classic
  scribble play --offline --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Start at once: Easy, Medium or Hard")
	playCmd.Flags().StringVar(&flagMode, "mode", "clue", "Game mode: clue or classic")
	playCmd.Flags().BoolVar(&flagOffline, "offline", false, "Use the embedded words and offline reference shapes")
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := tui.ModelOptions{Width: 80, Height: 24} // Defaults

	if flagDifficulty != "" {
		d, ok := config.ParseDifficulty(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (expected Easy, Medium or Hard)", flagDifficulty)
		}
		opts.Difficulty = d
		opts.AutoStart = true
	}
	mode, ok := config.ParseMode(flagMode)
	if !ok {
		return fmt.Errorf("unknown mode %q (expected clue or classic)", flagMode)
	}
	opts.Mode = mode

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Width = w
		opts.Height = h
	}

	logger, closeLog := newFileLogger("scribble")
	defer closeLog()

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	deps, err := buildDeps(context.Background(), cfg, store, logger, flagOffline)
	if err != nil {
		return err
	}

	if err := tui.Run(deps, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
