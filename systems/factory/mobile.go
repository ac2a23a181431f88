package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/leafgrove/planar/archetypes"
	"github.com/leafgrove/planar/components"
	"github.com/leafgrove/planar/coord"
)

// CreateMobile spawns a moving entity at a position, optionally with extra
// components.
func CreateMobile(ecs *ecs.ECS, pos coord.Position[coord.Continuous], extras ...donburi.IComponentType) *donburi.Entry {
	entry := archetypes.Mobile.Spawn(ecs, extras...)
	components.Position.SetValue(entry, pos)
	return entry
}
