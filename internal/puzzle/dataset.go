// internal/puzzle/dataset.go
//
// Loads the proverb dataset.
//
// Initialization behavior (Load):
//   1. If a path is given (PUZZLES_FILE or --puzzles), read YAML from that file.
//   2. Otherwise fall back to the embedded default set in assets/puzzles.yaml.
//
// File format:
//
//	puzzles:
//	  - acronym: "B L T N"
//	    phrase: "Better Late Than Never"
//	    hint: "It's preferable to do something eventually than not at all."
//
// Notes:
//   • Entries without a phrase are rejected.
//   • Missing acronyms are derived; mismatching ones are kept and logged.
//   • An empty list is not an error here; selection reports it instead.

package puzzle

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/proverbial/assets"
)

type datasetFile struct {
	Puzzles []Puzzle `yaml:"puzzles"`
}

// Load reads the dataset at path, or the embedded default when path is empty.
func Load(path string) (Set, error) {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = assets.PuzzlesYAML()
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read puzzles: %w", err)
	}
	set, err := Parse(raw)
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	return set, nil
}

// Parse decodes and normalizes a YAML dataset.
func Parse(raw []byte) (Set, error) {
	var f datasetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse puzzles: %w", err)
	}

	set := make(Set, 0, len(f.Puzzles))
	for i, p := range f.Puzzles {
		p.Phrase = strings.TrimSpace(p.Phrase)
		p.Acronym = strings.TrimSpace(p.Acronym)
		p.Hint = strings.TrimSpace(p.Hint)
		if p.Phrase == "" {
			return nil, fmt.Errorf("puzzle %d: empty phrase", i)
		}

		derived := Acronym(p.Phrase)
		switch {
		case p.Acronym == "":
			p.Acronym = derived
		case !strings.EqualFold(p.Acronym, derived):
			log.Warn().Int("index", i).Str("acronym", p.Acronym).Str("derived", derived).
				Msg("acronym does not match phrase")
		}
		set = append(set, p)
	}
	return set, nil
}
