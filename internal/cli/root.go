// Package cli holds the command line entry points: serve (HTTP), play
// (interactive terminal game) and today (print today's acronym).
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/proverbial/internal/config"
	"github.com/robalobadob/proverbial/internal/daily"
	"github.com/robalobadob/proverbial/internal/puzzle"
)

var (
	puzzlesFlag string
	cfg         *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "proverbial",
	Short: "The Proverbial Challenge: guess the daily proverb from its acronym",
	Long: `proverbial serves and plays a daily word-guessing puzzle. A proverb is shown as
an acronym and the player has six attempts to guess the full phrase, with
per-word feedback after each guess.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if puzzlesFlag != "" {
			c.PuzzlesFile = puzzlesFlag
		}
		c.SetupLogging(os.Stderr)
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&puzzlesFlag, "puzzles", "", "YAML puzzle file (overrides PUZZLES_FILE)")
}

// Execute runs the root command and exits non-zero on failure.
// SIGINT/SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadPuzzles loads the configured set and fails when selection is impossible.
func loadPuzzles(c *config.Config) (puzzle.Set, error) {
	set, err := puzzle.Load(c.PuzzlesFile)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, daily.ErrInvalidConfiguration
	}
	log.Debug().Int("puzzles", len(set)).Str("file", c.PuzzlesFile).Msg("puzzles loaded")
	return set, nil
}
