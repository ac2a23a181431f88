package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/leafgrove/planar/components"
	"github.com/leafgrove/planar/leveldata"
)

// CreateFloatingPlatform spawns a wall that drifts north by rise world units
// and back, looping forever.
func CreateFloatingPlatform(ecs *ecs.ECS, rect leveldata.SolidRect, rise float64, period float32) *donburi.Entry {
	platform := CreateWall(ecs, rect)
	platform.AddComponent(components.Tween)

	y := float32(components.Position.Get(platform).Y.Transform())
	seq := gween.NewSequence(
		gween.New(y, y+float32(rise), period/2, ease.Linear),
		gween.New(y+float32(rise), y, period/2, ease.Linear),
	)
	components.Tween.SetValue(platform, components.TweenData{
		PositionY: seq,
		Loop:      true,
	})

	return platform
}
