package puzzle

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"Better Late Than Never", []string{"Better", "Late", "Than", "Never"}},
		{"  Don't\tCount \n Your  ", []string{"Don't", "Count", "Your"}},
	}
	for _, tt := range tests {
		got := Words(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Words(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAcronym(t *testing.T) {
	tests := map[string]string{
		"Better Late Than Never":                      "B L T N",
		"don't count your chickens before they hatch": "D C Y C B T H",
		"": "",
	}
	for in, want := range tests {
		if got := Acronym(in); got != want {
			t.Errorf("Acronym(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadEmbedded(t *testing.T) {
	set, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(set) != 10 {
		t.Fatalf("len(set) = %d, want 10", len(set))
	}
	if set[1].Phrase != "Better Late Than Never" || set[1].Acronym != "B L T N" {
		t.Errorf("set[1] = %+v", set[1])
	}
	for i, p := range set {
		if p.Hint == "" {
			t.Errorf("puzzle %d has no hint", i)
		}
		if got := Acronym(p.Phrase); got != p.Acronym {
			t.Errorf("puzzle %d acronym %q, derived %q", i, p.Acronym, got)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzles.yaml")
	data := `puzzles:
  - phrase: "  Practice Makes Perfect "
    hint: "Repeated practice leads to improvement."
  - acronym: "X Y"
    phrase: "Look Before You Leap"
    hint: "Think first."
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("len = %d", len(set))
	}
	if set[0].Acronym != "P M P" || set[0].Phrase != "Practice Makes Perfect" {
		t.Errorf("derived acronym/trim failed: %+v", set[0])
	}
	if set[1].Acronym != "X Y" {
		t.Errorf("supplied acronym should be kept: %+v", set[1])
	}
	if got := set[1].WordCount(); got != 4 {
		t.Errorf("WordCount = %d", got)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("puzzles:\n  - hint: no phrase\n")); err == nil || !strings.Contains(err.Error(), "puzzle 0") {
		t.Errorf("expected empty phrase error, got %v", err)
	}
	if _, err := Parse([]byte("puzzles: [")); err == nil {
		t.Errorf("expected yaml error")
	}
	set, err := Parse([]byte("puzzles: []\n"))
	if err != nil || len(set) != 0 {
		t.Errorf("empty list: set=%v err=%v", set, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestSolutionIsACopy(t *testing.T) {
	p := Puzzle{Phrase: "Better Late Than Never"}
	a := p.Solution()
	a[0] = "changed"
	if p.Solution()[0] != "Better" {
		t.Fatal("Solution must return a fresh slice")
	}
}
