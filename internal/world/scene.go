package world

import "fmt"

// SceneName identifies a game scene with its own grid.
type SceneName string

const (
	// SceneFarm is the player's farm and the default start scene.
	SceneFarm SceneName = "Scene1_Farm"
	// SceneField is the open field east of the farm.
	SceneField SceneName = "Scene2_Field"
	// SceneCabin is the interior of the player's cabin.
	SceneCabin SceneName = "Scene3_Cabin"
)

// String returns the scene identifier.
func (s SceneName) String() string {
	return string(s)
}

// Valid reports whether s is one of the known scenes.
func (s SceneName) Valid() bool {
	switch s {
	case SceneFarm, SceneField, SceneCabin:
		return true
	default:
		return false
	}
}

// GridCoordinate is a cell position in global scene coordinates.
type GridCoordinate struct {
	X, Y int
}

// String returns the coordinate as "(x,y)".
func (c GridCoordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// GridDimensions describes a scene grid: its size in cells and the global
// coordinate of local cell (0,0).
type GridDimensions struct {
	Width   int
	Height  int
	OriginX int
	OriginY int
}

// Contains returns true if the global coordinate lies inside the grid.
func (d GridDimensions) Contains(c GridCoordinate) bool {
	x, y := d.Local(c)
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// Local converts a global coordinate to local (0-based) grid coordinates.
func (d GridDimensions) Local(c GridCoordinate) (int, int) {
	return c.X - d.OriginX, c.Y - d.OriginY
}

// Global converts local grid coordinates back to a global coordinate.
func (d GridDimensions) Global(x, y int) GridCoordinate {
	return GridCoordinate{X: x + d.OriginX, Y: y + d.OriginY}
}
