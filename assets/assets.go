// Package assets embeds the stage files.
package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/dobok/level"
)

// LevelsDir is the directory of the stage files inside FS.
const LevelsDir = "levels"

//go:embed levels/*.tmx
var FS embed.FS

// LoadLevels loads the embedded stages ordered by stage number.
func LoadLevels() ([]*level.Level, error) {
	levels, err := level.LoadAll(FS, LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("load embedded levels: %w", err)
	}
	return levels, nil
}

// MustLoadLevels is LoadLevels for program start-up.
func MustLoadLevels() []*level.Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
