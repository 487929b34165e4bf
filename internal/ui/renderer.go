package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/farmstead/internal/entity"
	"github.com/samdwyer/farmstead/internal/pathfind"
	"github.com/samdwyer/farmstead/internal/world"
)

// TileSource supplies the glyph for each cell of a scene.
type TileSource interface {
	TileAt(scene world.SceneName, x, y int) world.Tile
}

// View is everything drawn in one frame.
type View struct {
	Tiles  TileSource
	Scene  world.SceneName
	Dims   world.GridDimensions
	NPC    *entity.NPC
	Cursor world.GridCoordinate
	Steps  []pathfind.MovementStep
	Status []string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellFor maps a global coordinate to a screen column and row. Grid y grows
// upwards, so the top row of the scene is drawn first.
func CellFor(dims world.GridDimensions, c world.GridCoordinate) (col, row int) {
	x, y := dims.Local(c)
	return x, dims.Height - 1 - y
}

// Render draws the scene, the planned steps, the cursor and the NPC.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	for y := 0; y < v.Dims.Height; y++ {
		for x := 0; x < v.Dims.Width; x++ {
			c := v.Dims.Global(x, y)
			tile := v.Tiles.TileAt(v.Scene, c.X, c.Y)
			col, row := CellFor(v.Dims, c)
			r.screen.SetContent(col, row, tile.Rune(), r.getTileStyle(tile))
		}
	}

	stepStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	for _, step := range v.Steps {
		if step.Scene != v.Scene || !v.Dims.Contains(step.GridCoordinate) {
			continue
		}
		col, row := CellFor(v.Dims, step.GridCoordinate)
		r.screen.SetContent(col, row, '*', stepStyle)
	}

	if v.Dims.Contains(v.Cursor) {
		col, row := CellFor(v.Dims, v.Cursor)
		r.screen.SetContent(col, row, '+', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}

	if v.NPC != nil && v.NPC.Scene == v.Scene && v.Dims.Contains(v.NPC.Position) {
		col, row := CellFor(v.Dims, v.NPC.Position)
		npcStyle := tcell.StyleDefault.
			Foreground(v.NPC.Color).
			Bold(true)
		r.screen.SetContent(col, row, v.NPC.Symbol, npcStyle)
	}

	for i, line := range v.Status {
		r.RenderMessage(line, v.Dims.Height+1+i)
	}

	r.screen.Show()
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileObstacle:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TilePath:
		return tcell.StyleDefault.Foreground(tcell.ColorTan)
	case world.TileSoil:
		return tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	case world.TileGround:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
