package level

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrNoLevels is returned when a directory holds no .tmx files.
var ErrNoLevels = errors.New("no levels found")

// Layer and object group names used by the stage files
const (
	groundLayer    = "wg-tiles"
	spawnGroup     = "PlayerSpawn"
	targetGroup    = "Targets"
	deadZoneGroup  = "DeadZones"
	goalGroup      = "Goal"
	dobokGroup     = "Doboks"
	stageProperty  = "stage"
	titleProperty  = "title"
	healthProperty = "health"
	spawnProperty  = "spawnIndex"
)

// Load parses one TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}
	// Map properties are optional; go-tiled leaves them nil when absent
	if props := levelMap.Properties; props != nil {
		lvl.Title = props.GetString(titleProperty)
		lvl.Stage = props.GetInt(stageProperty)
	}
	if lvl.Title == "" {
		lvl.Title = lvl.Name
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != groundLayer {
			continue
		}
		lvl.SolidRects = solidRuns(levelMap, layer)
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case spawnGroup:
			for _, o := range og.Objects {
				lvl.SpawnPoints = append(lvl.SpawnPoints, SpawnPoint{
					Pos:   dmath.NewVec2(o.X, o.Y),
					Index: o.Properties.GetInt(spawnProperty),
				})
			}
		case targetGroup:
			for i, o := range og.Objects {
				name := o.Name
				if name == "" {
					name = fmt.Sprintf("target-%d", i+1)
				}
				lvl.Targets = append(lvl.Targets, TargetSpawn{
					Name:   name,
					Bounds: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Health: o.Properties.GetInt(healthProperty),
				})
			}
		case deadZoneGroup:
			for _, o := range og.Objects {
				lvl.DeadZones = append(lvl.DeadZones, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case goalGroup:
			for _, o := range og.Objects {
				lvl.Goals = append(lvl.Goals, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case dobokGroup:
			for i, o := range og.Objects {
				name := o.Name
				if name == "" {
					name = fmt.Sprintf("dobok-%d", i+1)
				}
				lvl.Doboks = append(lvl.Doboks, DobokSpawn{
					Name:   name,
					Bounds: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(lvl.SpawnPoints, func(i, j int) bool {
		return lvl.SpawnPoints[i].Pos.X < lvl.SpawnPoints[j].Pos.X
	})

	return lvl, nil
}

// solidRuns merges each row's consecutive ground tiles into one rect so
// bodies sliding along the floor never catch on tile seams.
func solidRuns(levelMap *tiled.Map, layer *tiled.Layer) []Rect {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	var rects []Rect
	for y := 0; y < levelMap.Height; y++ {
		start := -1
		for x := 0; x <= levelMap.Width; x++ {
			solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
			switch {
			case solid && start < 0:
				start = x
			case !solid && start >= 0:
				rects = append(rects, Rect{
					X: float64(start) * tileW,
					Y: float64(y) * tileH,
					W: float64(x-start) * tileW,
					H: tileH,
				})
				start = -1
			}
		}
	}
	return rects
}

// LoadAll loads every .tmx file in dir, ordered by stage number and then by
// name. Files without a stage property are numbered by that order.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, dir)
	}

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		lvl, err := Load(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].Stage != levels[j].Stage {
			return levels[i].Stage < levels[j].Stage
		}
		return levels[i].Name < levels[j].Name
	})
	for i, lvl := range levels {
		if lvl.Stage == 0 {
			lvl.Stage = i + 1
		}
	}
	return levels, nil
}

// ForStage returns the level for a 1-based stage number.
func ForStage(levels []*Level, stage int) (*Level, error) {
	for _, lvl := range levels {
		if lvl.Stage == stage {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("%w for stage %d", ErrNoLevels, stage)
}
