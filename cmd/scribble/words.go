package main

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/words"
)

var flagWordsDifficulty string

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the words for a difficulty",
	Long: `Load the word list the same way a game does (remote store, configured
file, embedded list) and print the words and clues.

Examples:
  scribble words
  scribble words --difficulty Hard
  scribble words --offline`,
	Args: cobra.NoArgs,
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().StringVar(&flagWordsDifficulty, "difficulty", "", "Only list Easy, Medium or Hard words")
	wordsCmd.Flags().BoolVar(&flagOffline, "offline", false, "Skip the remote word store")
}

func runWords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	difficulties := config.AllDifficulties()
	if flagWordsDifficulty != "" {
		d, ok := config.ParseDifficulty(flagWordsDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (expected Easy, Medium or Hard)", flagWordsDifficulty)
		}
		difficulties = []config.Difficulty{d}
	}

	logger := newStderrLogger("scribble")
	list, err := words.LoadWithFallback(context.Background(), logger, wordSources(cfg, flagOffline)...)
	if err != nil {
		return err
	}

	for _, d := range difficulties {
		matching := lo.Filter(list, func(w words.Word, _ int) bool { return w.Is(d) })
		fmt.Printf("%s (%d words, %d per game)\n", d, len(matching), cfg.Session.TargetCount(d))
		for _, w := range matching {
			fmt.Printf("  %-16s %s\n", w.Text, w.Clue)
		}
		fmt.Println()
	}
	return nil
}
