// Package systems contains the per-frame systems keeping planar components
// integrated, consistent with each other, and mirrored into the host
// transform, collision space and camera.
package systems

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/leafgrove/planar/components"
	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/kinematics"
)

// Kinematics builds the system advancing linear kinematics for the component
// set of one coordinate kind, with a fixed timestep. A nil paused predicate
// never pauses.
func Kinematics[C coord.Coordinate[C]](set components.Set[C], delta time.Duration, paused func() bool) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if paused != nil && paused() {
			return
		}
		set.Velocity.Each(e.World, func(entry *donburi.Entry) {
			if !entry.HasComponent(set.Position) {
				return
			}
			pos := set.Position.Get(entry)
			vel := set.Velocity.Get(entry)
			if entry.HasComponent(set.Acceleration) {
				acc := set.Acceleration.Get(entry)
				*pos, *vel = kinematics.Integrate(*pos, *vel, *acc, delta)
				return
			}
			*pos = pos.Add(vel.Over(delta))
		})
	}
}

// AngularKinematics builds the system advancing spin for entities carrying a
// Rotation. It is independent of the coordinate kind; register it once per
// world.
func AngularKinematics(delta time.Duration, paused func() bool) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if paused != nil && paused() {
			return
		}
		components.AngularVelocity.Each(e.World, func(entry *donburi.Entry) {
			if !entry.HasComponent(components.Rotation) {
				return
			}
			rot := components.Rotation.Get(entry)
			w := components.AngularVelocity.Get(entry)
			if entry.HasComponent(components.AngularAcceleration) {
				a := components.AngularAcceleration.Get(entry)
				*rot, w.AngularVelocity = kinematics.IntegrateAngular(*rot, w.AngularVelocity, a.AngularAcceleration, delta)
				return
			}
			*rot = w.Rotate(*rot, delta)
		})
	}
}
