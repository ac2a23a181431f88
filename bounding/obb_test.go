package bounding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/geometry"
)

func TestOrientedBoxContains(t *testing.T) {
	// A 4x2 box spun a quarter turn clockwise swaps its extents.
	box := NewOrientedBox(coord.Position[coord.Continuous]{},
		coord.Continuous(2), coord.Continuous(1), geometry.East.Rotation())

	assert.True(t, box.Contains(coord.NewPosition[coord.Continuous](0, 1.5)))
	assert.False(t, box.Contains(coord.NewPosition[coord.Continuous](1.5, 0)))
	assert.True(t, box.Contains(box.Center))
}

func TestOrientedBoxUnrotatedMatchesAABB(t *testing.T) {
	box := NewOrientedBox(coord.NewPosition[coord.Continuous](1, 2),
		coord.Continuous(3), coord.Continuous(1), geometry.Rotation{})
	aligned := AABBFromCenter(box.Center, box.HalfWidth, box.HalfHeight)

	for _, p := range []coord.Position[coord.Continuous]{
		{X: 1, Y: 2}, {X: 4, Y: 3}, {X: 4.1, Y: 2}, {X: -3, Y: 2}, {X: 1, Y: 0.5},
	} {
		assert.Equal(t, aligned.Contains(p), box.Contains(p), "position %v", p)
		assert.Equal(t, aligned.Clamp(p), box.Clamp(p), "position %v", p)
	}
}

func TestOrientedBoxClamp(t *testing.T) {
	box := NewOrientedBox(coord.Position[coord.Continuous]{},
		coord.Continuous(1), coord.Continuous(1), geometry.East.Rotation())

	inside := coord.NewPosition[coord.Continuous](0.25, -0.5)
	assert.Equal(t, inside, box.Clamp(inside))

	clamped := box.Clamp(coord.NewPosition[coord.Continuous](5, 0))
	assert.InDelta(t, 1, float64(clamped.X), 1e-9)
	assert.InDelta(t, 0, float64(clamped.Y), 1e-9)
}

func TestOrientedBoxIntersects(t *testing.T) {
	unit := func(x, y float64, r geometry.Rotation) OrientedBox[coord.Continuous] {
		return NewOrientedBox(coord.NewPosition(coord.Continuous(x), coord.Continuous(y)),
			coord.Continuous(1), coord.Continuous(1), r)
	}

	a := unit(0, 0, geometry.Rotation{})
	assert.True(t, a.Intersects(a))
	assert.True(t, a.Intersects(unit(1.5, 0, geometry.Rotation{})))
	assert.False(t, a.Intersects(unit(2.5, 0, geometry.Rotation{})))

	// A diamond reaches sqrt(2) toward its corners but only covers the
	// projection interval [-sqrt(2), sqrt(2)] on the x axis.
	diamond45 := geometry.RotationFromDegrees(45)
	assert.True(t, a.Intersects(unit(2.3, 0, diamond45)))
	assert.False(t, a.Intersects(unit(2.5, 0, diamond45)))
	assert.False(t, unit(2.5, 0, diamond45).Intersects(a))
}

func TestOrientedBoxAABB(t *testing.T) {
	diamond := NewOrientedBox(coord.Position[coord.Continuous]{},
		coord.Continuous(1), coord.Continuous(1), geometry.RotationFromDegrees(45))
	box := diamond.AABB()

	const reach = 1.4142135623730951
	assert.InDelta(t, -reach, float64(box.Left), 1e-3)
	assert.InDelta(t, -reach, float64(box.Bottom), 1e-3)
	assert.InDelta(t, reach, float64(box.Right), 1e-3)
	assert.InDelta(t, reach, float64(box.Top), 1e-3)
}

func TestOrientedBoxVertices(t *testing.T) {
	box := NewOrientedBox(coord.NewPosition[coord.Orthogonal](10, 10),
		coord.Orthogonal(2), coord.Orthogonal(1), geometry.Rotation{})

	assert.Equal(t, []coord.Position[coord.Orthogonal]{
		{X: 12, Y: 11}, {X: 12, Y: 9}, {X: 8, Y: 9}, {X: 8, Y: 11},
	}, box.Vertices())

	assert.Panics(t, func() {
		NewOrientedBox(coord.Position[coord.Continuous]{},
			coord.Continuous(-1), coord.Continuous(1), geometry.Rotation{})
	})
}
