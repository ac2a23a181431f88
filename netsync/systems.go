package netsync

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/leafgrove/planar/components"
	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/geometry"
)

// Capture builds the server-side system filling pose snapshots from local
// components. Entities with a NetPose but no Position keep their last
// snapshot.
func Capture[C coord.Coordinate[C]](set components.Set[C]) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		NetPose.Each(e.World, func(entry *donburi.Entry) {
			if !entry.HasComponent(set.Position) {
				return
			}
			pose := NetPose.Get(entry)
			v := set.Position.Get(entry).Vec2()
			pose.X, pose.Y = v.X, v.Y

			if entry.HasComponent(components.Rotation) {
				pose.RotationDeci = components.Rotation.Get(entry).DeciDegrees()
			}
			pose.Scale = 1
			if entry.HasComponent(components.Scale) {
				pose.Scale = components.Scale.Get(entry).Factor
			}
		})
	}
}

// Apply builds the client-side system copying received (and interpolated)
// pose snapshots back onto local components.
func Apply[C coord.Coordinate[C]](set components.Set[C]) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		NetPose.Each(e.World, func(entry *donburi.Entry) {
			pose := NetPose.Get(entry)

			if entry.HasComponent(set.Position) {
				*set.Position.Get(entry) = coord.PositionFromVec2[C](dmath.Vec2{X: pose.X, Y: pose.Y})
			}
			if entry.HasComponent(components.Rotation) {
				rot := components.Rotation.Get(entry)
				*rot = geometry.NewRotation(pose.RotationDeci)
				if entry.HasComponent(components.Direction) {
					*components.Direction.Get(entry) = rot.Direction()
				}
			}
			if entry.HasComponent(components.Scale) {
				components.Scale.Get(entry).Factor = pose.Scale
			}
		})
	}
}
