// scribble is a timed drawing game for the terminal: draw each word on a
// mouse-driven canvas and get scored against a reference image.
//
// Usage:
//
//	scribble play            - Play a game (menu, or --difficulty to start at once)
//	scribble words           - List the words for a difficulty
//	scribble scores          - Show recent sessions and per-difficulty stats
//	scribble list            - List reference image providers
//	scribble serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Set config file (default: search ~/.scribble, ./configs)
//	--db <path>     - Set database path (default: ~/.scribble/scribble.db)
//	--seed <value>  - Set word shuffle seed for reproducible sessions
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import providers to register them
	_ "github.com/vovakirdan/tui-scribble/internal/refimage/dicebear"
	_ "github.com/vovakirdan/tui-scribble/internal/refimage/shapes"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scribble",
	Short: "Scribble - a timed drawing game in your terminal",
	Long: `Scribble shows you a word and a clue. Draw it with the mouse before
the clock runs out; each drawing is scored against a reference image.

Available commands:
  play     - Play a game
  words    - List the words for a difficulty
  scores   - View session history and stats
  list     - Show reference image providers
  serve    - Start SSH server for remote play

Examples:
  scribble play
  scribble play --difficulty Hard
  scribble play --mode classic --offline
  scribble serve --ssh :2222
  scribble scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scribble/scribble.db", "Path to sessions database")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Word shuffle seed (0 = random)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}
