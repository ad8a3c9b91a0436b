// internal/game/engine.go
//
// Session controller for a single proverb game.
// Responsibilities:
//   - Create sessions for a selected puzzle with a fixed attempt budget (6).
//   - Validate guesses (word count must match the solution).
//   - Score guesses with Evaluate and record guess/feedback pairs.
//   - Disclose the hint once, on the 3rd recorded guess.
//   - Track state transitions: active → won/lost.
//
// Notes:
//   - Rejected guesses never change the session.
//   - A Session is not safe for concurrent use; callers serialise submissions.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/proverbial/internal/daily"
	"github.com/robalobadob/proverbial/internal/puzzle"
)

var (
	// ErrGuessLengthMismatch matches any *LengthMismatchError via errors.Is.
	ErrGuessLengthMismatch = errors.New("guess length mismatch")
	// ErrGameOver is returned for guesses submitted after the game ended.
	ErrGameOver = errors.New("game over")
)

// LengthMismatchError reports a guess with the wrong number of words.
type LengthMismatchError struct {
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("guess has %d words, want %d", e.Got, e.Want)
}

// Message is the player-facing form of the error.
func (e *LengthMismatchError) Message() string {
	return fmt.Sprintf("Your guess must have %d words. Try again!", e.Want)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrGuessLengthMismatch }

// Start selects the puzzle for now's calendar date and opens a session for it.
// Restarting goes through Start again, so a restart on the same day yields the
// same puzzle.
func Start(now time.Time, set puzzle.Set) (*Session, error) {
	p, idx, err := daily.Select(now, set)
	if err != nil {
		return nil, err
	}
	return New(daily.DateKey(now), idx, p), nil
}

// New constructs a fresh session for p, selected for date at index.
func New(date string, index int, p puzzle.Puzzle) *Session {
	return &Session{
		ID:           randomID(),
		Date:         date,
		PuzzleIndex:  index,
		Puzzle:       p,
		Solution:     p.Solution(),
		AttemptsLeft: MaxAttempts,
		Guesses:      [][]string{},
		Feedbacks:    []Feedback{},
		State:        Active,
		StartedAt:    time.Now().UTC(),
	}
}

// Submit validates and scores a raw guess, mutating the session on success.
//
// Validation rules:
//   - Session must still be active (ErrGameOver otherwise).
//   - Guess must tokenise to exactly len(Solution) words (*LengthMismatchError).
//
// State transitions:
//   - All words Correct → Won.
//   - Else attempts exhausted → Lost, solution revealed in the Outcome.
func (s *Session) Submit(raw string) (Outcome, error) {
	if s.State.Terminal() {
		return Outcome{State: s.State, AttemptsLeft: s.AttemptsLeft}, ErrGameOver
	}
	words := puzzle.Words(raw)
	if len(words) != len(s.Solution) {
		return Outcome{State: s.State, AttemptsLeft: s.AttemptsLeft},
			&LengthMismatchError{Want: len(s.Solution), Got: len(words)}
	}

	fb := Evaluate(words, s.Solution)
	s.Guesses = append(s.Guesses, words)
	s.Feedbacks = append(s.Feedbacks, fb)
	s.AttemptsLeft--

	out := Outcome{Feedback: fb}
	if len(s.Guesses) == HintAfter && !s.HintUsed {
		s.HintUsed = true
		out.Hint = s.Puzzle.Hint
	}

	switch {
	case fb.Solved():
		s.finish(Won)
	case s.AttemptsLeft <= 0:
		s.finish(Lost)
		out.Solution = s.Puzzle.Phrase
	}
	out.State = s.State
	out.AttemptsLeft = s.AttemptsLeft
	return out, nil
}

// Over reports whether the session has reached a terminal state.
func (s *Session) Over() bool { return s.State.Terminal() }

// Reveal returns the solution phrase once the game is lost, otherwise "".
func (s *Session) Reveal() string {
	if s.State == Lost {
		return s.Puzzle.Phrase
	}
	return ""
}

// Clone returns a deep copy so stores never alias a caller's session.
func (s *Session) Clone() *Session {
	c := *s
	c.Solution = append([]string(nil), s.Solution...)
	c.Guesses = make([][]string, len(s.Guesses))
	for i, g := range s.Guesses {
		c.Guesses[i] = append([]string(nil), g...)
	}
	c.Feedbacks = make([]Feedback, len(s.Feedbacks))
	for i, f := range s.Feedbacks {
		c.Feedbacks[i] = append(Feedback(nil), f...)
	}
	return &c
}

func (s *Session) finish(st State) {
	s.State = st
	s.FinishedAt = time.Now().UTC()
}

// randomID returns a compact 16‑hex‑char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
