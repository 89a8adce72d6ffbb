// Package level parses TMX stage files and builds them into a world.
package level

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Level holds everything the simulation needs from a TMX stage file.
type Level struct {
	Name  string // File stem, e.g. "stage1"
	Title string
	Stage int // 1-based stage number, from the "stage" map property

	Width, Height         int // Pixels
	TileWidth, TileHeight int

	SolidRects  []Rect
	SpawnPoints []SpawnPoint
	Targets     []TargetSpawn
	DeadZones   []Rect
	Goals       []Rect
	Doboks      []DobokSpawn
}

// Rect is an axis-aligned box in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is a player spawn location. The player's top-left corner is
// placed at Pos.
type SpawnPoint struct {
	Pos   dmath.Vec2
	Index int
}

// TargetSpawn is a training target placed in the editor.
type TargetSpawn struct {
	Name   string
	Bounds Rect
	Health int // 0 uses the configured default
}

// DobokSpawn is a uniform pickup. Name doubles as the colour key.
type DobokSpawn struct {
	Name   string
	Bounds Rect
}

// DefaultSpawn returns the spawn with the lowest index.
func (l *Level) DefaultSpawn() (SpawnPoint, bool) {
	if len(l.SpawnPoints) == 0 {
		return SpawnPoint{}, false
	}
	best := l.SpawnPoints[0]
	for _, sp := range l.SpawnPoints[1:] {
		if sp.Index < best.Index {
			best = sp
		}
	}
	return best, true
}
