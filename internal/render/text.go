package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/proverbial/internal/game"
)

// ANSI backgrounds approximating the HTML palette.
var verdictANSI = map[game.Verdict]string{
	game.Correct: "\x1b[30;42m",
	game.Present: "\x1b[30;43m",
	game.Absent:  "\x1b[30;41m",
}

const ansiReset = "\x1b[0m"

// FeedbackText renders one guess for a terminal. Without colour each word is
// suffixed with its marker, e.g. "Never[~] Late[✓]".
func FeedbackText(words []string, fb game.Feedback, color bool) string {
	parts := make([]string, 0, len(words))
	for i, w := range words {
		if i >= len(fb) {
			break
		}
		if color {
			parts = append(parts, verdictANSI[fb[i]]+" "+w+" "+ansiReset)
		} else {
			parts = append(parts, w+"["+fb[i].Symbol()+"]")
		}
	}
	return strings.Join(parts, " ")
}

// Board writes the acronym, remaining attempts and every recorded attempt.
func Board(w io.Writer, s *game.Session, color bool) error {
	if _, err := fmt.Fprintf(w, "Acronym: %s\nAttempts left: %d\n", s.Puzzle.Acronym, s.AttemptsLeft); err != nil {
		return err
	}
	for i, g := range s.Guesses {
		if _, err := fmt.Fprintf(w, "Attempt %d: %s\n", i+1, FeedbackText(g, s.Feedbacks[i], color)); err != nil {
			return err
		}
	}
	return nil
}
