package coord

import (
	"math"

	"github.com/leafgrove/planar/geometry"
)

// Orthogonal is a square-grid coordinate whose cells have four neighbors,
// touching on their faces.
type Orthogonal int

func (c Orthogonal) Add(o Orthogonal) Orthogonal { return c + o }
func (c Orthogonal) Sub(o Orthogonal) Orthogonal { return c - o }
func (c Orthogonal) Mul(o Orthogonal) Orthogonal { return c * o }
func (c Orthogonal) Div(o Orthogonal) Orthogonal { return c / o }
func (c Orthogonal) Mod(o Orthogonal) Orthogonal { return c % o }
func (c Orthogonal) Less(o Orthogonal) bool      { return c < o }
func (c Orthogonal) Next() Orthogonal            { return c + 1 }
func (c Orthogonal) Prev() Orthogonal            { return c - 1 }

func (c Orthogonal) Transform() float64 { return float64(c) }

func (Orthogonal) FromTransform(f float64) Orthogonal { return Orthogonal(math.Round(f)) }

func (Orthogonal) GridNeighbors(p Position[Orthogonal]) []Position[Orthogonal] {
	return []Position[Orthogonal]{
		{p.X, p.Y + 1}, // N
		{p.X + 1, p.Y}, // E
		{p.X, p.Y - 1}, // S
		{p.X - 1, p.Y}, // W
	}
}

func (Orthogonal) GridPartitioning() geometry.Partitioning { return geometry.Quadrant{} }

// Adjacent is a square-grid coordinate whose cells have eight neighbors:
// a king's move away, touching on faces or corners.
type Adjacent int

func (c Adjacent) Add(o Adjacent) Adjacent { return c + o }
func (c Adjacent) Sub(o Adjacent) Adjacent { return c - o }
func (c Adjacent) Mul(o Adjacent) Adjacent { return c * o }
func (c Adjacent) Div(o Adjacent) Adjacent { return c / o }
func (c Adjacent) Mod(o Adjacent) Adjacent { return c % o }
func (c Adjacent) Less(o Adjacent) bool    { return c < o }
func (c Adjacent) Next() Adjacent          { return c + 1 }
func (c Adjacent) Prev() Adjacent          { return c - 1 }

func (c Adjacent) Transform() float64 { return float64(c) }

func (Adjacent) FromTransform(f float64) Adjacent { return Adjacent(math.Round(f)) }

func (Adjacent) GridNeighbors(p Position[Adjacent]) []Position[Adjacent] {
	return []Position[Adjacent]{
		{p.X, p.Y + 1},     // N
		{p.X + 1, p.Y + 1}, // NE
		{p.X + 1, p.Y},     // E
		{p.X + 1, p.Y - 1}, // SE
		{p.X, p.Y - 1},     // S
		{p.X - 1, p.Y - 1}, // SW
		{p.X - 1, p.Y},     // W
		{p.X - 1, p.Y + 1}, // NW
	}
}

func (Adjacent) GridPartitioning() geometry.Partitioning { return geometry.Octant{} }

// FlatHex is a hexagonal-grid coordinate for cells that point sideways.
// These hexes tile vertically but not horizontally.
type FlatHex int

func (c FlatHex) Add(o FlatHex) FlatHex { return c + o }
func (c FlatHex) Sub(o FlatHex) FlatHex { return c - o }
func (c FlatHex) Mul(o FlatHex) FlatHex { return c * o }
func (c FlatHex) Div(o FlatHex) FlatHex { return c / o }
func (c FlatHex) Mod(o FlatHex) FlatHex { return c % o }
func (c FlatHex) Less(o FlatHex) bool   { return c < o }
func (c FlatHex) Next() FlatHex         { return c + 1 }
func (c FlatHex) Prev() FlatHex         { return c - 1 }

func (c FlatHex) Transform() float64 { return float64(c) }

func (FlatHex) FromTransform(f float64) FlatHex { return FlatHex(math.Round(f)) }

func (FlatHex) GridNeighbors(p Position[FlatHex]) []Position[FlatHex] {
	return []Position[FlatHex]{
		{p.X, p.Y + 1},     // N
		{p.X + 1, p.Y + 1}, // NE
		{p.X + 1, p.Y - 1}, // SE
		{p.X, p.Y - 1},     // S
		{p.X - 1, p.Y - 1}, // SW
		{p.X - 1, p.Y + 1}, // NW
	}
}

func (FlatHex) GridPartitioning() geometry.Partitioning { return geometry.Sextant{} }

// PointyHex is a hexagonal-grid coordinate for cells that point up.
// These hexes tile horizontally but not vertically.
type PointyHex int

func (c PointyHex) Add(o PointyHex) PointyHex { return c + o }
func (c PointyHex) Sub(o PointyHex) PointyHex { return c - o }
func (c PointyHex) Mul(o PointyHex) PointyHex { return c * o }
func (c PointyHex) Div(o PointyHex) PointyHex { return c / o }
func (c PointyHex) Mod(o PointyHex) PointyHex { return c % o }
func (c PointyHex) Less(o PointyHex) bool     { return c < o }
func (c PointyHex) Next() PointyHex           { return c + 1 }
func (c PointyHex) Prev() PointyHex           { return c - 1 }

func (c PointyHex) Transform() float64 { return float64(c) }

func (PointyHex) FromTransform(f float64) PointyHex { return PointyHex(math.Round(f)) }

func (PointyHex) GridNeighbors(p Position[PointyHex]) []Position[PointyHex] {
	return []Position[PointyHex]{
		{p.X + 1, p.Y + 1}, // NE
		{p.X + 1, p.Y},     // E
		{p.X + 1, p.Y - 1}, // SE
		{p.X - 1, p.Y - 1}, // SW
		{p.X - 1, p.Y},     // W
		{p.X - 1, p.Y + 1}, // NW
	}
}

func (PointyHex) GridPartitioning() geometry.Partitioning { return geometry.OffsetSextant{} }
