package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/leafgrove/planar/components"
	cfg "github.com/leafgrove/planar/config"
	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/geometry"
)

// Tweens builds the system advancing gween sequences that drive an entity's
// position and rotation. Values produced by the sequences are in transform
// units (degrees for rotation). Looping entities reset their sequences when
// they complete.
func Tweens[C coord.Coordinate[C]](set components.Set[C]) func(*ecs.ECS) {
	dt := float32(cfg.FixedDelta.Seconds())
	return func(e *ecs.ECS) {
		components.Tween.Each(e.World, func(entry *donburi.Entry) {
			tw := components.Tween.Get(entry)

			if entry.HasComponent(set.Position) {
				pos := set.Position.Get(entry)
				var kind C
				if tw.PositionX != nil {
					if x, _, done := tw.PositionX.Update(dt); !done {
						pos.X = kind.FromTransform(float64(x))
					} else if tw.Loop {
						tw.PositionX.Reset()
					}
				}
				if tw.PositionY != nil {
					if y, _, done := tw.PositionY.Update(dt); !done {
						pos.Y = kind.FromTransform(float64(y))
					} else if tw.Loop {
						tw.PositionY.Reset()
					}
				}
			}

			if tw.Rotation != nil && entry.HasComponent(components.Rotation) {
				if deg, _, done := tw.Rotation.Update(dt); !done {
					rot := components.Rotation.Get(entry)
					*rot = geometry.RotationFromDegrees(float64(deg))
				} else if tw.Loop {
					tw.Rotation.Reset()
				}
			}
		})
	}
}
