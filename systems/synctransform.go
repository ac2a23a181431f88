package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"

	"github.com/leafgrove/planar/components"
	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/geometry"
)

// TransformSync builds the system mirroring Position, Rotation and Scale
// into the host transform component and back.
//
// Per axis of state, whichever side moved since the last frame wins; when
// both moved, the 2D components win. Transform state never mirrored (a
// rotation on an entity with no Rotation component, say) is left alone. On
// the first frame for an entity the 2D components win outright, which seeds
// the sync cache.
func TransformSync[C coord.Coordinate[C]](set components.Set[C]) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		set.Position.Each(e.World, func(entry *donburi.Entry) {
			if !entry.HasComponent(transform.Transform) || !entry.HasComponent(components.SyncCache) {
				return
			}
			cache := components.SyncCache.Get(entry)
			pos := set.Position.Get(entry)
			td := transform.Transform.Get(entry)
			seeded := cache.Seeded

			posMoved := !seeded || pos.Vec2() != cache.Position
			hostPosMoved := seeded && td.LocalPosition != cache.TransformPosition
			if posMoved || !hostPosMoved {
				td.LocalPosition = pos.Vec2()
			} else {
				*pos = coord.PositionFromVec2[C](td.LocalPosition)
			}
			cache.Position = pos.Vec2()
			cache.TransformPosition = td.LocalPosition

			if entry.HasComponent(components.Rotation) {
				rot := components.Rotation.Get(entry)
				rotMoved := !seeded || *rot != cache.Rotation
				hostRotMoved := seeded && td.LocalRotation != cache.TransformRotation
				if rotMoved || !hostRotMoved {
					td.LocalRotation = rot.Degrees()
				} else {
					*rot = geometry.RotationFromDegrees(td.LocalRotation)
				}
				if entry.HasComponent(components.Direction) {
					dir := components.Direction.Get(entry)
					*dir = rot.Direction()
					cache.Direction = dir.Vec2()
				}
				cache.Rotation = *rot
				cache.TransformRotation = td.LocalRotation
			}

			if entry.HasComponent(components.Scale) {
				sc := components.Scale.Get(entry)
				scaleMoved := !seeded || sc.Factor != cache.Scale
				hostScaleMoved := seeded && td.LocalScale != cache.TransformScale
				if scaleMoved || !hostScaleMoved {
					td.LocalScale = dmath.Vec2{X: sc.Factor, Y: sc.Factor}
				} else {
					sc.Factor = td.LocalScale.X
				}
				cache.Scale = sc.Factor
				cache.TransformScale = td.LocalScale
			}

			cache.Seeded = true
		})
	}
}
