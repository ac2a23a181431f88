package coord

import (
	"testing"

	"github.com/leafgrove/planar/geometry"
	"github.com/stretchr/testify/assert"
)

func TestOrthogonalNeighbors(t *testing.T) {
	cell := NewPosition[Orthogonal](2, -1)

	assert.Equal(t, []Position[Orthogonal]{
		{2, 0},  // N
		{3, -1}, // E
		{2, -2}, // S
		{1, -1}, // W
	}, Neighbors(cell))
}

func TestAdjacentNeighbors(t *testing.T) {
	neighbors := Neighbors(Position[Adjacent]{})

	assert.Len(t, neighbors, 8)
	assert.Equal(t, Position[Adjacent]{0, 1}, neighbors[0])  // starts north
	assert.Equal(t, Position[Adjacent]{1, 1}, neighbors[1])  // then clockwise
	assert.Equal(t, Position[Adjacent]{-1, 1}, neighbors[7]) // ends northwest
}

func TestHexNeighborCounts(t *testing.T) {
	assert.Len(t, Neighbors(Position[FlatHex]{}), 6)
	assert.Len(t, Neighbors(Position[PointyHex]{}), 6)
}

func TestNeighborDirectionsAreClockwiseFromNorth(t *testing.T) {
	directions := NeighborDirections[Orthogonal]()

	assert.Len(t, directions, 4)
	assert.Equal(t, geometry.North.Rotation(), directions[0].Rotation())
	assert.Equal(t, geometry.East.Rotation(), directions[1].Rotation())
	assert.Equal(t, geometry.South.Rotation(), directions[2].Rotation())
	assert.Equal(t, geometry.West.Rotation(), directions[3].Rotation())
}

func TestGridPartitionings(t *testing.T) {
	assert.IsType(t, geometry.Quadrant{}, Partitioning[Orthogonal]())
	assert.IsType(t, geometry.Octant{}, Partitioning[Adjacent]())
	assert.IsType(t, geometry.Sextant{}, Partitioning[FlatHex]())
	assert.IsType(t, geometry.OffsetSextant{}, Partitioning[PointyHex]())
}

func TestNextPrev(t *testing.T) {
	assert.Equal(t, Orthogonal(1), Orthogonal(0).Next())
	assert.Equal(t, Orthogonal(-1), Orthogonal(0).Prev())
	assert.Equal(t, FlatHex(5), FlatHex(4).Next())
	assert.Equal(t, PointyHex(3), PointyHex(4).Prev())
}

func TestSnapOntoGridPartitioning(t *testing.T) {
	// Analog stick input leaning mostly east snaps onto the orthogonal
	// grid's east neighbor direction.
	snapped := geometry.Snap(Partitioning[Orthogonal](), geometry.RotationFromDegrees(75))
	assert.Equal(t, geometry.East.Rotation(), snapped)
}
