package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/robalobadob/proverbial/internal/daily"
	"github.com/robalobadob/proverbial/internal/game"
	"github.com/robalobadob/proverbial/internal/puzzle"
	"github.com/robalobadob/proverbial/internal/render"
)

var playNoColor bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play today's puzzle in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadPuzzles(cfg)
		if err != nil {
			return err
		}
		color := !playNoColor && isatty.IsTerminal(os.Stdout.Fd())
		return play(cmd.InOrStdin(), cmd.OutOrStdout(), set, daily.In(cfg.Location), color)
	},
}

func init() {
	playCmd.Flags().BoolVar(&playNoColor, "no-color", false, "Disable coloured feedback")
	rootCmd.AddCommand(playCmd)
}

// play runs sessions until the player declines a restart or input ends.
func play(in io.Reader, out io.Writer, set puzzle.Set, clock daily.Clock, color bool) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "The Proverbial Challenge")
	fmt.Fprintf(out, "Decode the daily proverb from its acronym. You have %d attempts!\n", game.MaxAttempts)

	for {
		sess, err := game.Start(clock(), set)
		if err != nil {
			return err
		}
		if done, err := playSession(sc, out, sess, color); err != nil || done {
			return err
		}

		fmt.Fprint(out, "Try again? [y/N] ")
		if !sc.Scan() || !strings.EqualFold(strings.TrimSpace(sc.Text()), "y") {
			return sc.Err()
		}
		fmt.Fprintln(out, "Today's proverb is the same all day, so here it is again.")
	}
}

// playSession drives one session. done is true when input ran out mid-game.
func playSession(sc *bufio.Scanner, out io.Writer, sess *game.Session, color bool) (done bool, err error) {
	fmt.Fprintln(out)
	if err := render.Board(out, sess, color); err != nil {
		return true, err
	}
	for !sess.Over() {
		fmt.Fprintf(out, "Enter your full guess (%d words): ", len(sess.Solution))
		if !sc.Scan() {
			fmt.Fprintln(out)
			return true, sc.Err()
		}
		res, err := sess.Submit(sc.Text())
		var lm *game.LengthMismatchError
		switch {
		case errors.As(err, &lm):
			fmt.Fprintln(out, lm.Message())
			continue
		case err != nil:
			return true, err
		}

		last := sess.Guesses[len(sess.Guesses)-1]
		fmt.Fprintf(out, "Attempt %d: %s\n", len(sess.Guesses), render.FeedbackText(last, res.Feedback, color))
		fmt.Fprintf(out, "Attempts left: %d\n", res.AttemptsLeft)
		if res.Hint != "" {
			fmt.Fprintf(out, "Hint: %s\n", res.Hint)
		}
		switch res.State {
		case game.Won:
			fmt.Fprintln(out, "Congratulations! You solved it!")
		case game.Lost:
			fmt.Fprintf(out, "No attempts left! The solution was:\n%s\n", res.Solution)
		}
	}
	return false, nil
}
