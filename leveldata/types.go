// Package leveldata parses TMX maps into planar coordinates: solid cells as
// grid positions, solid rectangles for collision walls, and named spawn
// points. World y grows north, so TMX rows are flipped around the map's
// bottom edge.
package leveldata

import "github.com/leafgrove/planar/coord"

// Level holds the planar-relevant data parsed from a TMX map.
type Level struct {
	// Width and Height are the map dimensions in cells.
	Width, Height int
	// TileWidth and TileHeight are the cell dimensions in world units.
	TileWidth, TileHeight int

	// SolidCells lists the solid tiles as grid positions, bottom-left cell
	// at the origin.
	SolidCells []coord.Position[coord.Orthogonal]
	// SolidRects lists the same tiles as world-unit rectangles for collision
	// walls. Y is the rectangle's top (north) edge.
	SolidRects []SolidRect
	// Spawns lists the named spawn points, sorted west to east.
	Spawns []Spawn
}

// SolidRect is a solid rectangle in world units.
type SolidRect struct {
	X, Y, W, H float64
}

// Spawn is a named spawn location in world units.
type Spawn struct {
	Name     string
	Position coord.Position[coord.Continuous]
}
