package daily

import (
	"errors"
	"testing"
	"time"

	"github.com/robalobadob/proverbial/internal/puzzle"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		n    int
		want int
	}{
		{"2024-01-02 over ten", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 10, 7},
		{"2025-12-31 over ten", time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC), 10, 8},
		{"single puzzle", time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC), 1, 0},
		{"seven puzzles", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), 7, (2024 + 3 + 4) % 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Index(tt.date, tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Index(%s, %d) = %d, want %d", DateKey(tt.date), tt.n, got, tt.want)
			}
		})
	}
}

func TestIndexEmptySet(t *testing.T) {
	if _, err := Index(time.Now(), 0); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
	if _, _, err := Select(time.Now(), puzzle.Set{}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("Select err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestSelectSameSumSamePuzzle(t *testing.T) {
	set := puzzle.Set{{Phrase: "a"}, {Phrase: "b"}, {Phrase: "c"}}
	// 2024+1+5 and 2024+2+4 share a sum, 2024+3+3 too.
	dates := []time.Time{
		time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 4, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC),
	}
	first, _, err := Select(dates[0], set)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range dates[1:] {
		p, _, err := Select(d, set)
		if err != nil {
			t.Fatal(err)
		}
		if p != first {
			t.Errorf("Select(%s) = %v, want %v", DateKey(d), p, first)
		}
	}
}

func TestSelectUsesLocalCalendarDate(t *testing.T) {
	set := puzzle.Set{{Phrase: "a"}, {Phrase: "b"}}
	east := time.FixedZone("UTC+10", 10*3600)
	utc := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC) // 2024-01-02 06:00 in east

	_, iu, _ := Select(utc, set)
	_, ie, _ := Select(utc.In(east), set)
	if iu == ie {
		t.Fatalf("expected different puzzles across the date boundary, got %d for both", iu)
	}
	if DateKey(utc.In(east)) != "2024-01-02" {
		t.Errorf("DateKey = %s", DateKey(utc.In(east)))
	}
}

func TestNextMidnight(t *testing.T) {
	loc := time.FixedZone("X", -5*3600)
	got := NextMidnight(time.Date(2024, 12, 31, 13, 30, 0, 0, loc))
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("NextMidnight = %s, want %s", got, want)
	}
}

func TestInClock(t *testing.T) {
	loc := time.FixedZone("Y", 3*3600)
	if got := In(loc)().Location(); got != loc {
		t.Fatalf("location = %v", got)
	}
	if In(nil)().Location() != time.Local {
		t.Fatalf("nil location should default to Local")
	}
}
