package bounding

import (
	stdmath "math"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/geometry"
)

// OrientedBox is a rectangle centered on a position and rotated about it.
//
// HalfWidth extends along the box's local x axis and HalfHeight along its
// local y axis; at zero rotation the local y axis points north.
type OrientedBox[C coord.Coordinate[C]] struct {
	Center     coord.Position[C]
	HalfWidth  C
	HalfHeight C
	Rotation   geometry.Rotation
}

// NewOrientedBox creates an oriented box from its center, half extents and
// rotation. It panics when either half extent is negative.
func NewOrientedBox[C coord.Coordinate[C]](center coord.Position[C], halfWidth, halfHeight C, rotation geometry.Rotation) OrientedBox[C] {
	var zero C
	if halfWidth.Less(zero) || halfHeight.Less(zero) {
		panic("bounding: negative half extent")
	}
	return OrientedBox[C]{
		Center:     center,
		HalfWidth:  halfWidth,
		HalfHeight: halfHeight,
		Rotation:   rotation,
	}
}

// axes returns the box's local x and y axes as unit vectors.
func (b OrientedBox[C]) axes() (right, up dmath.Vec2) {
	up = b.Rotation.Vec2()
	right = b.Rotation.Add(geometry.NewRotation(geometry.FullCircle / 4)).Vec2()
	return right, up
}

// Vertices lists the corners clockwise from the box's local top right.
// For discrete coordinate kinds the corners round to the nearest cell.
func (b OrientedBox[C]) Vertices() []coord.Position[C] {
	right, up := b.axes()
	center := b.Center.Vec2()
	hw := b.HalfWidth.Transform()
	hh := b.HalfHeight.Transform()

	corner := func(sx, sy float64) coord.Position[C] {
		return coord.PositionFromVec2[C](dmath.Vec2{
			X: center.X + sx*hw*right.X + sy*hh*up.X,
			Y: center.Y + sx*hw*right.Y + sy*hh*up.Y,
		})
	}
	return []coord.Position[C]{
		corner(1, 1), corner(1, -1), corner(-1, -1), corner(-1, 1),
	}
}

// Contains reports whether the position lies inside the box, edges included.
func (b OrientedBox[C]) Contains(p coord.Position[C]) bool {
	right, up := b.axes()
	d := sub(p.Vec2(), b.Center.Vec2())
	return stdmath.Abs(dot(d, right)) <= b.HalfWidth.Transform() &&
		stdmath.Abs(dot(d, up)) <= b.HalfHeight.Transform()
}

// Clamp moves the position the shortest distance needed to lie inside the
// box. Positions already inside are unchanged.
func (b OrientedBox[C]) Clamp(p coord.Position[C]) coord.Position[C] {
	right, up := b.axes()
	center := b.Center.Vec2()
	d := sub(p.Vec2(), center)

	x := clampAbs(dot(d, right), b.HalfWidth.Transform())
	y := clampAbs(dot(d, up), b.HalfHeight.Transform())
	return coord.PositionFromVec2[C](dmath.Vec2{
		X: center.X + x*right.X + y*up.X,
		Y: center.Y + x*right.Y + y*up.Y,
	})
}

// Intersects reports whether two oriented boxes overlap, using the separating
// axis test over both boxes' local axes. Touching boxes count as overlapping.
func (b OrientedBox[C]) Intersects(other OrientedBox[C]) bool {
	br, bu := b.axes()
	or, ou := other.axes()
	delta := sub(other.Center.Vec2(), b.Center.Vec2())

	for _, axis := range []dmath.Vec2{br, bu, or, ou} {
		ra := b.HalfWidth.Transform()*stdmath.Abs(dot(br, axis)) +
			b.HalfHeight.Transform()*stdmath.Abs(dot(bu, axis))
		rb := other.HalfWidth.Transform()*stdmath.Abs(dot(or, axis)) +
			other.HalfHeight.Transform()*stdmath.Abs(dot(ou, axis))
		if stdmath.Abs(dot(delta, axis)) > ra+rb {
			return false
		}
	}
	return true
}

// AABB returns the tightest axis-aligned box holding all four corners.
func (b OrientedBox[C]) AABB() AABB[C] {
	return AABBAround(b.Vertices())
}

func dot(a, b dmath.Vec2) float64 { return a.X*b.X + a.Y*b.Y }

func sub(a, b dmath.Vec2) dmath.Vec2 { return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y} }

func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
