package geometry

import (
	stdmath "math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Partitioning is an exhaustive partitioning of the unit circle, used to snap
// continuous directional input onto a few discrete options.
//
// Partitions must be listed clockwise starting from the one nearest north;
// ties between equally close partitions resolve to the earlier entry.
type Partitioning interface {
	Partitions() []Rotation
}

// Quadrant is a 4-way partitioning onto the cardinal directions.
type Quadrant struct{}

func (Quadrant) Partitions() []Rotation {
	return []Rotation{
		North.Rotation(), East.Rotation(), South.Rotation(), West.Rotation(),
	}
}

// OffsetQuadrant is a 4-way partitioning onto the cardinal directions offset
// by 45 degrees.
type OffsetQuadrant struct{}

func (OffsetQuadrant) Partitions() []Rotation {
	return []Rotation{
		NorthEast.Rotation(), SouthEast.Rotation(), SouthWest.Rotation(), NorthWest.Rotation(),
	}
}

// Octant is an 8-way partitioning onto the cardinal directions and the
// intermediate values.
type Octant struct{}

func (Octant) Partitions() []Rotation {
	return []Rotation{
		North.Rotation(), NorthEast.Rotation(), East.Rotation(), SouthEast.Rotation(),
		South.Rotation(), SouthWest.Rotation(), West.Rotation(), NorthWest.Rotation(),
	}
}

// Sextant is a 6-way partitioning matching the neighbors of a flat-top
// hexagon. Hexagons of this kind tile in a column.
type Sextant struct{}

func (Sextant) Partitions() []Rotation {
	return []Rotation{
		RotationFromDegrees(0), RotationFromDegrees(60), RotationFromDegrees(120),
		RotationFromDegrees(180), RotationFromDegrees(240), RotationFromDegrees(300),
	}
}

// OffsetSextant is a 6-way partitioning matching the neighbors of a tip-up
// hexagon. Hexagons of this kind tile in a row.
type OffsetSextant struct{}

func (OffsetSextant) Partitions() []Rotation {
	return []Rotation{
		RotationFromDegrees(30), RotationFromDegrees(90), RotationFromDegrees(150),
		RotationFromDegrees(210), RotationFromDegrees(270), RotationFromDegrees(330),
	}
}

// Snap returns the partition rotation nearest to r.
func Snap(p Partitioning, r Rotation) Rotation {
	partitions := p.Partitions()
	best := partitions[0]
	bestDistance := r.Distance(best)
	for _, candidate := range partitions[1:] {
		if d := r.Distance(candidate); d.DeciDegrees() < bestDistance.DeciDegrees() {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// SnapDirection snaps d onto the nearest partition direction.
func SnapDirection(p Partitioning, d Direction) Direction {
	return Snap(p, d.Rotation()).Direction()
}

// SnapVec2 snaps v onto the nearest partition direction, preserving its
// magnitude. A zero-length vector stays zero.
func SnapVec2(p Partitioning, v dmath.Vec2) dmath.Vec2 {
	rotation, err := RotationFromVec2(v)
	if err != nil {
		return dmath.Vec2{}
	}
	length := stdmath.Hypot(v.X, v.Y)
	unit := Snap(p, rotation).Vec2()
	return dmath.Vec2{X: unit.X * length, Y: unit.Y * length}
}
