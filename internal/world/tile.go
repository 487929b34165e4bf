// Package world provides scene grids and the per-cell properties NPCs path over.
package world

// Tile represents a single cell glyph in a scene layout.
type Tile rune

const (
	// TileVoid marks a cell with no grid properties at all.
	TileVoid Tile = ' '
	// TileGround is plain walkable ground.
	TileGround Tile = '.'
	// TilePath is a paved path.
	TilePath Tile = '='
	// TileObstacle blocks NPC movement.
	TileObstacle Tile = '#'
	// TileSoil is diggable farmland.
	TileSoil Tile = ':'
	// TileFloor is indoor floor that accepts furniture.
	TileFloor Tile = '_'
)

// Details returns the grid properties a layout tile stands for.
// The second result is false for TileVoid and unknown glyphs.
func (t Tile) Details(x, y int) (GridPropertyDetails, bool) {
	d := GridPropertyDetails{GridX: x, GridY: y}
	switch t {
	case TileGround:
		d.CanDropItem = true
	case TilePath:
		d.IsPath = true
		d.CanDropItem = true
	case TileObstacle:
		d.IsNPCObstacle = true
	case TileSoil:
		d.IsDiggable = true
		d.CanDropItem = true
	case TileFloor:
		d.CanPlaceFurniture = true
		d.CanDropItem = true
	default:
		return d, false
	}
	return d, true
}

// TileFor picks the glyph that best represents a cell's properties.
func TileFor(d GridPropertyDetails) Tile {
	switch {
	case d.IsNPCObstacle:
		return TileObstacle
	case d.IsPath:
		return TilePath
	case d.IsDiggable:
		return TileSoil
	case d.CanPlaceFurniture:
		return TileFloor
	default:
		return TileGround
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
