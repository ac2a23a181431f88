package geometry

import dmath "github.com/yohamta/donburi/features/math"

// Compass names the eight principal winds, clockwise from north.
type Compass int

const (
	North Compass = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Rotation returns the exact rotation of this compass point.
func (c Compass) Rotation() Rotation {
	return NewRotation(uint16(c) * 450)
}

// Direction returns the unit vector of this compass point.
//
// Diagonals are exact (sqrt(2)/2 components) rather than being derived from
// the discretized rotation.
func (c Compass) Direction() Direction {
	const diag = 0.7071067811865476
	switch c {
	case North:
		return Direction{unit: dmath.Vec2{X: 0, Y: 1}}
	case NorthEast:
		return Direction{unit: dmath.Vec2{X: diag, Y: diag}}
	case East:
		return Direction{unit: dmath.Vec2{X: 1, Y: 0}}
	case SouthEast:
		return Direction{unit: dmath.Vec2{X: diag, Y: -diag}}
	case South:
		return Direction{unit: dmath.Vec2{X: 0, Y: -1}}
	case SouthWest:
		return Direction{unit: dmath.Vec2{X: -diag, Y: -diag}}
	case West:
		return Direction{unit: dmath.Vec2{X: -1, Y: 0}}
	default:
		return Direction{unit: dmath.Vec2{X: -diag, Y: diag}}
	}
}

// Vec2 returns the unit vector of this compass point.
func (c Compass) Vec2() dmath.Vec2 {
	return c.Direction().Vec2()
}

func (c Compass) String() string {
	names := [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	if c < North || c > NorthWest {
		return "invalid"
	}
	return names[c]
}
