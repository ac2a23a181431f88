// Package archetypes bundles the component lists entities are spawned with.
package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"

	"github.com/leafgrove/planar/components"
	cfg "github.com/leafgrove/planar/config"
	"github.com/leafgrove/planar/tags"
)

var (
	// Mobile is a moving entity with the full 2D state kept in sync with its
	// host transform.
	Mobile = newArchetype(
		tags.Mobile,
		components.Position,
		components.Rotation,
		components.Direction,
		components.Scale,
		components.Velocity,
		components.SyncCache,
		transform.Transform,
	)
	// Static is a non-moving collider.
	Static = newArchetype(
		tags.Static,
		components.Position,
		components.Bounds,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity carrying the archetype's components plus any
// extras.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
