package assets

import (
	"embed"
	"io/fs"
)

//go:embed puzzles.yaml sql/*.sql
var FS embed.FS

// PuzzlesYAML returns the embedded default proverb dataset.
func PuzzlesYAML() ([]byte, error) {
	return FS.ReadFile("puzzles.yaml")
}

// Migrations returns the embedded SQL migrations rooted at sql/.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
