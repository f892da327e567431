package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/platform/tui"
	"github.com/vovakirdan/tui-scribble/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show session history and stats",
	Long: `Display the high score, per-difficulty stats and recent sessions.

Examples:
  scribble scores
  scribble scores --limit 25
  scribble scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent sessions to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the best sessions in a table")
}

func runScores(cmd *cobra.Command, args []string) error {
	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening sessions database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	high, err := store.HighScore()
	if err != nil {
		return fmt.Errorf("retrieving high score: %w", err)
	}
	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	fmt.Printf("High score: %d\n", high)
	fmt.Println()

	// Print stats
	fmt.Printf("  %-8s  %-8s  %-9s  %-5s  %-7s  %s\n", "Level", "Sessions", "Completed", "Best", "Average", "Words")
	fmt.Printf("  %-8s  %-8s  %-9s  %-5s  %-7s  %s\n", "-----", "--------", "---------", "----", "-------", "-----")
	for _, d := range config.AllDifficulties() {
		s, ok := stats[d]
		if !ok {
			fmt.Printf("  %-8s  %-8d  %-9d  %-5s  %-7s  %d\n", d, 0, 0, "-", "-", 0)
			continue
		}
		fmt.Printf("  %-8s  %-8d  %-9d  %-5d  %-7.1f  %d\n", d, s.Sessions, s.Completed, s.BestScore, s.AvgScore, s.WordsDrawn)
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'scribble play' to set the first high score!")
		return nil
	}

	// Print recent sessions
	fmt.Println("Recent sessions:")
	fmt.Printf("  %-16s  %-8s  %-7s  %-5s  %-5s  %s\n", "Date", "Level", "Mode", "Words", "Time", "Score")
	fmt.Printf("  %-16s  %-8s  %-7s  %-5s  %-5s  %s\n", "----", "-----", "----", "-----", "----", "-----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-8s  %-7s  %-5s  %-5s  %d\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.Difficulty,
			s.Mode,
			fmt.Sprintf("%d/%d", s.WordsCompleted, s.TargetCount),
			fmt.Sprintf("%d:%02d", s.ElapsedSeconds/60, s.ElapsedSeconds%60),
			s.Score,
		)
	}
	return nil
}
