package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"

	"github.com/leafgrove/planar/geometry"
)

// SyncCacheData remembers the last values the sync systems wrote for an
// entity, in transform units. Comparing live components against the cache
// stands in for change detection: a component that differs from the cache was
// touched since the previous frame.
type SyncCacheData struct {
	// Seeded is false until the first sync pass has run for the entity.
	Seeded bool

	Position  math.Vec2
	Rotation  geometry.Rotation
	Direction math.Vec2
	Scale     float64

	TransformPosition math.Vec2
	TransformRotation float64
	TransformScale    math.Vec2
}

var SyncCache = donburi.NewComponentType[SyncCacheData]()
