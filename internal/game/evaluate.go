package game

import "strings"

// Evaluate scores guess against solution word by word.
//
// Pass 1 marks exact-position matches Correct and consumes those solution slots.
// Pass 2 walks the remaining guess words in order and, for each, consumes the
// leftmost unconsumed solution slot holding the same word (Present) or marks it
// Absent. A solution slot is credited to at most one guess word.
//
// Comparison is case-insensitive. Neither input is modified. Callers reject
// length mismatches first; positions past the end of solution come back Absent.
func Evaluate(guess, solution []string) Feedback {
	res := make(Feedback, len(guess))
	used := make([]bool, len(solution))

	for i, w := range guess {
		if i < len(solution) && strings.EqualFold(w, solution[i]) {
			res[i] = Correct
			used[i] = true
		}
	}

	for i, w := range guess {
		if res[i] == Correct {
			continue
		}
		res[i] = Absent
		for j, s := range solution {
			if !used[j] && strings.EqualFold(w, s) {
				res[i] = Present
				used[j] = true
				break
			}
		}
	}
	return res
}
