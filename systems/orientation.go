package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"

	"github.com/leafgrove/planar/components"
)

// UpdateOrientation keeps Rotation and Direction agreeing on entities that
// carry both. Whichever side moved since the last frame wins; when both
// moved, Rotation wins. Change detection compares against the entity's sync
// cache, which is written here only for entities with no host transform; the
// transform sync system owns the cache otherwise.
func UpdateOrientation(e *ecs.ECS) {
	components.SyncCache.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Rotation) || !entry.HasComponent(components.Direction) {
			return
		}
		cache := components.SyncCache.Get(entry)
		rot := components.Rotation.Get(entry)
		dir := components.Direction.Get(entry)

		rotMoved := !cache.Seeded || *rot != cache.Rotation
		dirMoved := cache.Seeded && dir.Vec2() != cache.Direction

		if rotMoved {
			*dir = rot.Direction()
		} else if dirMoved {
			*rot = dir.Rotation()
		}

		if !entry.HasComponent(transform.Transform) {
			cache.Rotation = *rot
			cache.Direction = dir.Vec2()
			cache.Seeded = true
		}
	})
}
