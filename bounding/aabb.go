package bounding

import "github.com/leafgrove/planar/coord"

// AABB is a 2D axis-aligned bounding box over the coordinate kind C.
//
// Invariants: Left <= Right and Bottom <= Top. Use the constructors rather
// than building the struct directly when the inputs are not known-ordered.
type AABB[C coord.Coordinate[C]] struct {
	Left   C
	Bottom C
	Right  C
	Top    C
}

// NewAABB creates an AABB from the coordinates of its sides.
// It panics when left > right or bottom > top.
func NewAABB[C coord.Coordinate[C]](left, bottom, right, top C) AABB[C] {
	if right.Less(left) || top.Less(bottom) {
		panic("bounding: AABB sides are out of order")
	}
	return AABB[C]{Left: left, Bottom: bottom, Right: right, Top: top}
}

// AABBFromCenter creates an AABB from a central position plus half extents.
// It panics when either half extent is negative.
func AABBFromCenter[C coord.Coordinate[C]](center coord.Position[C], halfWidth, halfHeight C) AABB[C] {
	var zero C
	if halfWidth.Less(zero) || halfHeight.Less(zero) {
		panic("bounding: negative half extent")
	}
	return AABB[C]{
		Left:   center.X.Sub(halfWidth),
		Bottom: center.Y.Sub(halfHeight),
		Right:  center.X.Add(halfWidth),
		Top:    center.Y.Add(halfHeight),
	}
}

// AABBAround tightly draws a box around the provided positions.
// The zero box is returned when positions is empty.
func AABBAround[C coord.Coordinate[C]](positions []coord.Position[C]) AABB[C] {
	if len(positions) == 0 {
		return AABB[C]{}
	}
	box := AABB[C]{
		Left:   positions[0].X,
		Right:  positions[0].X,
		Bottom: positions[0].Y,
		Top:    positions[0].Y,
	}
	for _, p := range positions[1:] {
		if p.X.Less(box.Left) {
			box.Left = p.X
		} else if box.Right.Less(p.X) {
			box.Right = p.X
		}
		if p.Y.Less(box.Bottom) {
			box.Bottom = p.Y
		} else if box.Top.Less(p.Y) {
			box.Top = p.Y
		}
	}
	return box
}

// BottomLeft returns the bottom left corner.
func (b AABB[C]) BottomLeft() coord.Position[C] {
	return coord.Position[C]{X: b.Left, Y: b.Bottom}
}

// BottomRight returns the bottom right corner.
func (b AABB[C]) BottomRight() coord.Position[C] {
	return coord.Position[C]{X: b.Right, Y: b.Bottom}
}

// TopLeft returns the top left corner.
func (b AABB[C]) TopLeft() coord.Position[C] {
	return coord.Position[C]{X: b.Left, Y: b.Top}
}

// TopRight returns the top right corner.
func (b AABB[C]) TopRight() coord.Position[C] {
	return coord.Position[C]{X: b.Right, Y: b.Top}
}

// Vertices lists the corners clockwise from the top right.
func (b AABB[C]) Vertices() []coord.Position[C] {
	return []coord.Position[C]{
		b.TopRight(), b.BottomRight(), b.BottomLeft(), b.TopLeft(),
	}
}

// Contains reports whether the position lies inside the box, edges included.
func (b AABB[C]) Contains(p coord.Position[C]) bool {
	return !p.X.Less(b.Left) && !b.Right.Less(p.X) &&
		!p.Y.Less(b.Bottom) && !b.Top.Less(p.Y)
}

// Intersects reports whether two boxes overlap, including one containing the
// other and boxes that merely touch.
func (b AABB[C]) Intersects(other AABB[C]) bool {
	if other.Right.Less(b.Left) || b.Right.Less(other.Left) {
		return false
	}
	if other.Top.Less(b.Bottom) || b.Top.Less(other.Bottom) {
		return false
	}
	return true
}

// Clamp moves the position the shortest distance needed to lie inside the
// box. Positions already inside are unchanged.
func (b AABB[C]) Clamp(p coord.Position[C]) coord.Position[C] {
	clamped := p
	if p.X.Less(b.Left) {
		clamped.X = b.Left
	} else if b.Right.Less(p.X) {
		clamped.X = b.Right
	}
	if p.Y.Less(b.Bottom) {
		clamped.Y = b.Bottom
	} else if b.Top.Less(p.Y) {
		clamped.Y = b.Top
	}
	return clamped
}
