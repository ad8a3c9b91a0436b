package game

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/robalobadob/proverbial/internal/daily"
	"github.com/robalobadob/proverbial/internal/puzzle"
)

var betterLate = puzzle.Puzzle{
	Acronym: "B L T N",
	Phrase:  "Better Late Than Never",
	Hint:    "It's preferable to do something eventually than not at all.",
}

func newTestSession() *Session { return New("2024-01-02", 1, betterLate) }

func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	if len(s.Feedbacks) != len(s.Guesses) {
		t.Fatalf("len(feedbacks)=%d len(guesses)=%d", len(s.Feedbacks), len(s.Guesses))
	}
	if s.AttemptsLeft != MaxAttempts-len(s.Guesses) {
		t.Fatalf("attemptsLeft=%d with %d guesses", s.AttemptsLeft, len(s.Guesses))
	}
}

func TestNewSession(t *testing.T) {
	s := newTestSession()
	if s.State != Active || s.AttemptsLeft != 6 || s.HintUsed || len(s.Guesses) != 0 {
		t.Fatalf("unexpected initial session: %+v", s)
	}
	if !reflect.DeepEqual(s.Solution, []string{"Better", "Late", "Than", "Never"}) {
		t.Fatalf("solution = %v", s.Solution)
	}
	if s.ID == "" || len(s.ID) != 16 {
		t.Fatalf("id = %q", s.ID)
	}
}

func TestSubmitWin(t *testing.T) {
	s := newTestSession()
	out, err := s.Submit("  better late than NEVER ")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.State != Won || !s.Over() {
		t.Fatalf("state = %s, want won", out.State)
	}
	if out.Solution != "" || s.Reveal() != "" {
		t.Errorf("won game must not reveal the phrase")
	}
	if out.AttemptsLeft != 5 {
		t.Errorf("attemptsLeft = %d", out.AttemptsLeft)
	}
	if s.FinishedAt.IsZero() {
		t.Errorf("FinishedAt not set")
	}
	checkInvariants(t, s)

	if _, err := s.Submit("Better Late Than Never"); !errors.Is(err, ErrGameOver) {
		t.Errorf("guess after win: err = %v, want ErrGameOver", err)
	}
	checkInvariants(t, s)
}

func TestSubmitLengthMismatch(t *testing.T) {
	for _, guess := range []string{"Better Late Than", "", "   ", "Better Late Than Never Ever"} {
		s := newTestSession()
		out, err := s.Submit(guess)
		if !errors.Is(err, ErrGuessLengthMismatch) {
			t.Fatalf("Submit(%q) err = %v, want ErrGuessLengthMismatch", guess, err)
		}
		var lm *LengthMismatchError
		if !errors.As(err, &lm) || lm.Want != 4 {
			t.Fatalf("Submit(%q) err = %#v", guess, err)
		}
		if lm.Message() != "Your guess must have 4 words. Try again!" {
			t.Errorf("Message() = %q", lm.Message())
		}
		if msg := err.Error(); msg != fmt.Sprintf("guess has %d words, want 4", lm.Got) {
			t.Errorf("Error() = %q", msg)
		}
		if out.AttemptsLeft != 6 || s.AttemptsLeft != 6 || len(s.Guesses) != 0 || s.State != Active {
			t.Errorf("Submit(%q) changed the session: %+v", guess, s)
		}
	}
}

func TestSubmitLossAfterSixGuesses(t *testing.T) {
	s := newTestSession()
	var out Outcome
	var err error
	for i := 0; i < MaxAttempts; i++ {
		out, err = s.Submit("Late Better Now Always")
		if err != nil {
			t.Fatalf("guess %d: %v", i+1, err)
		}
		checkInvariants(t, s)
		if i < MaxAttempts-1 && out.State != Active {
			t.Fatalf("guess %d: state = %s", i+1, out.State)
		}
	}
	if out.State != Lost || s.State != Lost {
		t.Fatalf("state = %s, want lost", out.State)
	}
	if out.Solution != "Better Late Than Never" || s.Reveal() != "Better Late Than Never" {
		t.Errorf("solution not revealed: %q", out.Solution)
	}

	before := s.Clone()
	if _, err := s.Submit("Better Late Than Never"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("7th guess err = %v, want ErrGameOver", err)
	}
	if !reflect.DeepEqual(before, s) {
		t.Errorf("7th guess changed the session")
	}
}

func TestHintDisclosedOnceOnThirdGuess(t *testing.T) {
	s := newTestSession()
	wrong := "Never Late Than Better"
	for i := 1; i <= 5; i++ {
		out, err := s.Submit(wrong)
		if err != nil {
			t.Fatalf("guess %d: %v", i, err)
		}
		switch {
		case i == 3 && out.Hint != betterLate.Hint:
			t.Errorf("guess 3: hint = %q", out.Hint)
		case i != 3 && out.Hint != "":
			t.Errorf("guess %d: unexpected hint %q", i, out.Hint)
		}
		if got := s.HintUsed; got != (i >= 3) {
			t.Errorf("guess %d: HintUsed = %v", i, got)
		}
	}
}

func TestRejectedGuessDoesNotCountTowardsHint(t *testing.T) {
	s := newTestSession()
	_, _ = s.Submit("a b c d")
	_, _ = s.Submit("too short")
	out, _ := s.Submit("a b c d")
	if out.Hint != "" {
		t.Fatalf("hint disclosed after two recorded guesses")
	}
	out, _ = s.Submit("a b c d")
	if out.Hint == "" {
		t.Fatalf("hint not disclosed on third recorded guess")
	}
}

func TestWinOnLastAttempt(t *testing.T) {
	s := newTestSession()
	for i := 0; i < MaxAttempts-1; i++ {
		if _, err := s.Submit("a b c d"); err != nil {
			t.Fatal(err)
		}
	}
	out, err := s.Submit("Better Late Than Never")
	if err != nil {
		t.Fatal(err)
	}
	if out.State != Won || out.AttemptsLeft != 0 || out.Solution != "" {
		t.Fatalf("outcome = %+v, want won with no reveal", out)
	}
}

func TestStartIsDeterministic(t *testing.T) {
	set, err := puzzle.Load("")
	if err != nil {
		t.Fatal(err)
	}
	day := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)

	a, err := Start(day, set)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Start(day.Add(10*time.Hour), set)
	if err != nil {
		t.Fatal(err)
	}
	// (2024+1+2) % 10 == 7
	if a.PuzzleIndex != 7 || a.Puzzle != set[7] || a.Date != "2024-01-02" {
		t.Fatalf("session = %+v", a)
	}
	if a.Puzzle != b.Puzzle || a.ID == b.ID {
		t.Fatalf("restart on the same day should reuse the puzzle with a new id")
	}

	if _, err := Start(day, nil); !errors.Is(err, daily.ErrInvalidConfiguration) {
		t.Fatalf("empty set err = %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := newTestSession()
	_, _ = s.Submit("Never Late Than Better")
	c := s.Clone()
	c.Guesses[0][0] = "changed"
	c.Feedbacks[0][0] = Absent
	c.Solution[0] = "changed"
	if s.Guesses[0][0] != "Never" || s.Feedbacks[0][0] != Present || s.Solution[0] != "Better" {
		t.Fatalf("clone aliases the original")
	}
}
