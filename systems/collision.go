package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/leafgrove/planar/components"
	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/tags"
)

// Collision builds the system mirroring Position plus Bounds into resolv
// objects inside the world's shared space. Entities gain an Object component
// the first time they are seen; afterwards the object tracks the entity.
//
// World positions have y growing north, resolv spaces have y growing down,
// so an object's space y is the negated world top of its bounds.
func Collision[C coord.Coordinate[C]](set components.Set[C]) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		spaceEntry, ok := components.Space.First(e.World)
		if !ok {
			return
		}
		space := components.Space.Get(spaceEntry)

		var missing []*donburi.Entry
		set.Bounds.Each(e.World, func(entry *donburi.Entry) {
			if !entry.HasComponent(set.Position) {
				return
			}
			if !entry.HasComponent(components.Object) {
				missing = append(missing, entry)
				return
			}
			obj := components.Object.Get(entry)
			if obj.Object == nil {
				obj.Object = newCollider(space, entry, set)
				return
			}
			x, y, _, _ := colliderRect(entry, set)
			if obj.X != x || obj.Y != y {
				obj.X, obj.Y = x, y
				obj.Update()
			}
		})

		// Components cannot be added while iterating.
		for _, entry := range missing {
			entry.AddComponent(components.Object)
			components.Object.SetValue(entry, components.ObjectData{
				Object: newCollider(space, entry, set),
			})
		}
	}
}

func newCollider[C coord.Coordinate[C]](space *resolv.Space, entry *donburi.Entry, set components.Set[C]) *resolv.Object {
	x, y, w, h := colliderRect(entry, set)
	tag := tags.ResolvSolid
	if entry.HasComponent(tags.Mobile) {
		tag = tags.ResolvMobile
	}
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.Data = entry
	space.Add(obj)
	return obj
}

// colliderRect computes the resolv rectangle of an entity from its position
// and local bounds, in space coordinates.
func colliderRect[C coord.Coordinate[C]](entry *donburi.Entry, set components.Set[C]) (x, y, w, h float64) {
	pos := set.Position.Get(entry)
	b := set.Bounds.Get(entry)

	left := pos.X.Add(b.Left).Transform()
	top := pos.Y.Add(b.Top).Transform()
	w = b.Right.Sub(b.Left).Transform()
	h = b.Top.Sub(b.Bottom).Transform()
	return left, -top, w, h
}
