// internal/game/types.go
//
// Core type definitions for the proverb game engine.
// Defines:
//   - Verdict: per-word result of a guess (correct/present/absent).
//   - Feedback: ordered verdicts for one guess.
//   - State: lifecycle of a session (active → won | lost).
//   - Session: state for a single in-progress or finished game.
//   - Outcome: what a single accepted guess produced.

package game

import (
	"time"

	"github.com/robalobadob/proverbial/internal/puzzle"
)

// MaxAttempts is the attempt budget per session.
const MaxAttempts = 6

// HintAfter is the number of recorded guesses that discloses the hint.
const HintAfter = 3

// Verdict represents the evaluation result for a single word in a guess.
// Possible values:
//   - "correct": word matches the solution word at the same position.
//   - "present": word appears at another, not yet credited, solution position.
//   - "absent":  word has no uncredited occurrence in the solution.
type Verdict string

const (
	Correct Verdict = "correct"
	Present Verdict = "present"
	Absent  Verdict = "absent"
)

// Symbol is the compact marker used in text output.
func (v Verdict) Symbol() string {
	switch v {
	case Correct:
		return "✓"
	case Present:
		return "~"
	default:
		return "X"
	}
}

// Feedback holds one verdict per guessed word.
type Feedback []Verdict

// Solved reports whether every verdict is Correct.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, v := range f {
		if v != Correct {
			return false
		}
	}
	return true
}

// Symbols renders f as e.g. "~ ✓ ✓ ~".
func (f Feedback) Symbols() string {
	out := make([]byte, 0, len(f)*4)
	for i, v := range f {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, v.Symbol()...)
	}
	return string(out)
}

// State is the session lifecycle.
type State string

const (
	Active State = "active"
	Won    State = "won"
	Lost   State = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == Won || s == Lost }

// Session holds the state of a single player's game.
// Fields are exported so stores can snapshot it; mutate only through methods.
type Session struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`        // YYYY-MM-DD the puzzle was selected for
	PuzzleIndex  int           `json:"puzzleIndex"` // index into the puzzle set
	Puzzle       puzzle.Puzzle `json:"puzzle"`
	Solution     []string      `json:"solution"`
	AttemptsLeft int           `json:"attemptsLeft"`
	Guesses      [][]string    `json:"guesses"`
	Feedbacks    []Feedback    `json:"feedbacks"`
	HintUsed     bool          `json:"hintUsed"`
	State        State         `json:"state"`
	StartedAt    time.Time     `json:"startedAt"`
	FinishedAt   time.Time     `json:"finishedAt"` // zero while Active
}

// Outcome is the result of one accepted guess.
type Outcome struct {
	Feedback     Feedback
	AttemptsLeft int
	Hint         string // set only on the guess that discloses the hint
	State        State
	Solution     string // phrase, set only when the guess ended the game lost
}
