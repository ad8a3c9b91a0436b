// internal/daily/daily.go
//
// Deterministic daily puzzle selection.
//
// The index for a calendar day is (year + month + day) % len(set), evaluated in
// the location attached to the time value. The scheme is intentionally simple:
// neighbouring days walk through the set and the puzzle changes exactly at the
// local midnight boundary.

package daily

import (
	"errors"
	"time"

	"github.com/robalobadob/proverbial/internal/puzzle"
)

// ErrInvalidConfiguration is returned when there is nothing to select from.
var ErrInvalidConfiguration = errors.New("daily: puzzle set is empty")

// Clock reports the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// In returns a Clock that reads time.Now in loc.
func In(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// DateKey returns YYYY-MM-DD in t's location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Index returns the puzzle index for the calendar date of t.
func Index(t time.Time, n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidConfiguration
	}
	y, m, d := t.Date()
	return (y + int(m) + d) % n, nil
}

// Select returns the puzzle for the calendar date of t and its index in set.
func Select(t time.Time, set puzzle.Set) (puzzle.Puzzle, int, error) {
	idx, err := Index(t, len(set))
	if err != nil {
		return puzzle.Puzzle{}, 0, err
	}
	return set[idx], idx, nil
}

// NextMidnight returns the start of the day after t, in t's location.
func NextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
