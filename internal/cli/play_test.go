package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/proverbial/internal/daily"
	"github.com/robalobadob/proverbial/internal/puzzle"
)

func fixedClock() daily.Clock {
	// (2024+1+2) % 2 == 1
	return func() time.Time { return time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC) }
}

var cliPuzzles = puzzle.Set{
	{Acronym: "P M P", Phrase: "Practice Makes Perfect", Hint: "Repeat it."},
	{Acronym: "B L T N", Phrase: "Better Late Than Never", Hint: "Eventually beats never."},
}

func TestPlayWin(t *testing.T) {
	in := strings.NewReader("Better Late\nNever Late Than Better\nbetter late than never\nn\n")
	var out bytes.Buffer
	if err := play(in, &out, cliPuzzles, fixedClock(), false); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"Acronym: B L T N",
		"Your guess must have 4 words. Try again!",
		"Attempt 1: Never[~] Late[✓] Than[✓] Better[~]",
		"Attempts left: 5",
		"Congratulations! You solved it!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPlayLossHintAndRestart(t *testing.T) {
	wrong := strings.Repeat("Late Better Now Always\n", 6)
	in := strings.NewReader(wrong + "y\n" + "Better Late Than Never\n" + "n\n")
	var out bytes.Buffer
	if err := play(in, &out, cliPuzzles, fixedClock(), false); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if strings.Count(got, "Hint: Eventually beats never.") != 1 {
		t.Errorf("hint shown %d times:\n%s", strings.Count(got, "Hint:"), got)
	}
	if !strings.Contains(got, "No attempts left! The solution was:\nBetter Late Than Never") {
		t.Errorf("solution not revealed:\n%s", got)
	}
	if !strings.Contains(got, "same all day") || !strings.Contains(got, "Congratulations!") {
		t.Errorf("restart did not replay today's puzzle:\n%s", got)
	}
	if strings.Count(got, "Try again? [y/N]") != 2 {
		t.Errorf("expected a restart prompt after each game:\n%s", got)
	}
	if strings.Count(got, "Acronym: B L T N") != 2 {
		t.Errorf("expected two boards:\n%s", got)
	}
}

func TestPlayInputEndsMidGame(t *testing.T) {
	var out bytes.Buffer
	if err := play(strings.NewReader("a b c d\n"), &out, cliPuzzles, fixedClock(), false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Attempts left: 5") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestPlayEmptySet(t *testing.T) {
	err := play(strings.NewReader(""), &bytes.Buffer{}, puzzle.Set{}, fixedClock(), false)
	if !errors.Is(err, daily.ErrInvalidConfiguration) {
		t.Fatalf("err = %v", err)
	}
}
