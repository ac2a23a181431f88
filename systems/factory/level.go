package factory

import (
	"io/fs"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/leafgrove/planar/leveldata"
)

// CreateLevel loads a TMX map and builds its world: the shared collision
// space sized to the map plus a static collider per solid tile. Returns the
// parsed level alongside the wall entries.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, tmxPath string) (*leveldata.Level, []*donburi.Entry, error) {
	level, err := leveldata.Load(fsys, tmxPath)
	if err != nil {
		return nil, nil, err
	}

	CreateSpace(ecs,
		level.Width*level.TileWidth,
		level.Height*level.TileHeight,
		level.TileWidth, level.TileHeight,
	)

	walls := make([]*donburi.Entry, 0, len(level.SolidRects))
	for _, rect := range level.SolidRects {
		walls = append(walls, CreateWall(ecs, rect))
	}
	return level, walls, nil
}
