package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tile layers holding collision blocks.
const (
	LayerGround = "ground"
	LayerWalls  = "walls"
)

var ErrNoSpawn = errors.New("level has no PlayerSpawn object")

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    levelMap.Width * levelMap.TileWidth,
		Height:   levelMap.Height * levelMap.TileHeight,
		TileSize: levelMap.TileWidth,
	}

	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case LayerGround:
			level.Ground = append(level.Ground, tileRuns(levelMap, layer)...)
		case LayerWalls:
			level.Walls = append(level.Walls, tileRuns(levelMap, layer)...)
		}
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			// one player, the first spawn wins
			if len(og.Objects) > 0 {
				level.Spawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawned = true
			}
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, Platform{
					Rect:     objectRect(o),
					MoveX:    o.Properties.GetFloat("moveX"),
					MoveY:    o.Properties.GetFloat("moveY"),
					Duration: o.Properties.GetFloat("duration"),
				})
			}
		case "Boosters":
			for _, o := range og.Objects {
				level.Boosters = append(level.Boosters, Booster{
					Rect:      objectRect(o),
					VelocityX: o.Properties.GetFloat("velocityX"),
					VelocityY: o.Properties.GetFloat("velocityY"),
					Override:  o.Properties.GetBool("override"),
				})
			}
		case "Teleporters":
			for _, o := range og.Objects {
				level.Teleports = append(level.Teleports, Teleporter{
					Rect:          objectRect(o),
					ID:            int(o.ID),
					Target:        o.Properties.GetInt("target"),
					ResetVelocity: o.Properties.GetBool("resetVelocity"),
				})
			}
		case "DeadZones":
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, objectRect(o))
			}
		}
	}

	if !spawned {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}
	for _, tp := range level.Teleports {
		if _, ok := level.Teleporter(tp.Target); !ok {
			return nil, fmt.Errorf("load TMX %s: teleporter %d targets unknown id %d", tmxPath, tp.ID, tp.Target)
		}
	}

	return level, nil
}

// Teleporter looks up a teleporter by its object ID.
func (l *Level) Teleporter(id int) (Teleporter, bool) {
	for _, tp := range l.Teleports {
		if tp.ID == id {
			return tp, true
		}
	}
	return Teleporter{}, false
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// tileRuns merges horizontally adjacent tiles of a row into one rect, which
// keeps the collision space small and leaves no seams along floors.
func tileRuns(m *tiled.Map, layer *tiled.Layer) []Rect {
	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)

	var rects []Rect
	for y := 0; y < m.Height; y++ {
		start := -1
		for x := 0; x <= m.Width; x++ {
			filled := x < m.Width && !layer.Tiles[y*m.Width+x].IsNil()
			switch {
			case filled && start < 0:
				start = x
			case !filled && start >= 0:
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

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
