// internal/puzzle/puzzle.go
//
// Puzzle data model for The Proverbial Challenge.
//
// Responsibilities:
//   - Define Puzzle (acronym, phrase, hint) and the ordered Set of puzzles.
//   - Tokenise phrases and guesses into words (whitespace only).
//   - Derive an acronym from a phrase for datasets that omit one.
//
// Constraints:
//   • Puzzles are read-only once loaded; Set is shared across sessions.
//   • Word comparisons elsewhere are case-insensitive; tokenising does not
//     lowercase or strip punctuation ("Don't" stays "Don't").

package puzzle

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Puzzle is a single proverb. Acronym is informational only.
type Puzzle struct {
	Acronym string `yaml:"acronym" json:"acronym"`
	Phrase  string `yaml:"phrase" json:"phrase"`
	Hint    string `yaml:"hint" json:"hint"`
}

// Set is the ordered, fixed list of puzzles the daily selector indexes into.
type Set []Puzzle

// Solution returns a fresh copy of the phrase split into words.
func (p Puzzle) Solution() []string {
	return Words(p.Phrase)
}

// WordCount is the number of words a guess must have.
func (p Puzzle) WordCount() int {
	return len(Words(p.Phrase))
}

// Words splits s on whitespace. An empty or blank s yields no words.
func Words(s string) []string {
	return strings.Fields(s)
}

// Acronym derives "B L T N" from "Better Late Than Never".
func Acronym(phrase string) string {
	ws := Words(phrase)
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		r, _ := utf8.DecodeRuneInString(w)
		out = append(out, string(unicode.ToUpper(r)))
	}
	return strings.Join(out, " ")
}
