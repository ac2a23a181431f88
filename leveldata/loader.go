package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/leafgrove/planar/coord"
)

// solidLayer is the tile layer name holding collision tiles. When no layer
// carries the name, the first tile layer is used.
const solidLayer = "solid"

// spawnsGroup is the object group name holding spawn points.
const spawnsGroup = "spawns"

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	layer := pickSolidLayer(levelMap)
	if layer != nil {
		tileW := float64(levelMap.TileWidth)
		tileH := float64(levelMap.TileHeight)
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				// TMX rows grow south; world rows grow north.
				row := levelMap.Height - 1 - y
				level.SolidCells = append(level.SolidCells,
					coord.NewPosition[coord.Orthogonal](coord.Orthogonal(x), coord.Orthogonal(row)))
				level.SolidRects = append(level.SolidRects, SolidRect{
					X: float64(x) * tileW,
					Y: float64(row+1) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
	}

	mapHeight := float64(levelMap.Height * levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnsGroup {
			continue
		}
		for _, o := range og.Objects {
			level.Spawns = append(level.Spawns, Spawn{
				Name: o.Name,
				Position: coord.NewPosition[coord.Continuous](
					coord.Continuous(o.X),
					coord.Continuous(mapHeight-o.Y),
				),
			})
		}
	}
	sort.Slice(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].Position.X < level.Spawns[j].Position.X
	})

	return level, nil
}

func pickSolidLayer(levelMap *tiled.Map) *tiled.Layer {
	for _, layer := range levelMap.Layers {
		if layer.Name == solidLayer {
			return layer
		}
	}
	if len(levelMap.Layers) > 0 {
		return levelMap.Layers[0]
	}
	return nil
}

// LoadAll discovers every .tmx file in dir within fsys and loads each,
// returning a map keyed by stem name plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = level
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
