package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/leafgrove/planar/archetypes"
	"github.com/leafgrove/planar/bounding"
	"github.com/leafgrove/planar/components"
	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/leveldata"
	"github.com/leafgrove/planar/tags"
)

// CreateWall spawns a static collider covering a solid rectangle. The
// entity's position sits at the rectangle's center with symmetric bounds.
func CreateWall(ecs *ecs.ECS, rect leveldata.SolidRect) *donburi.Entry {
	wall := archetypes.Static.Spawn(ecs)

	halfW := coord.Continuous(rect.W / 2)
	halfH := coord.Continuous(rect.H / 2)
	center := coord.NewPosition[coord.Continuous](
		coord.Continuous(rect.X+rect.W/2),
		coord.Continuous(rect.Y-rect.H/2),
	)
	components.Position.SetValue(wall, center)
	components.Bounds.SetValue(wall, bounding.AABBFromCenter(coord.Position[coord.Continuous]{}, halfW, halfH))

	// Resolv space y grows down, so the object's y is the negated top edge.
	obj := resolv.NewObject(rect.X, -rect.Y, rect.W, rect.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
