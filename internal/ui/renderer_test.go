package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/farmstead/internal/entity"
	"github.com/samdwyer/farmstead/internal/pathfind"
	"github.com/samdwyer/farmstead/internal/world"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(20, 10)
	return NewRenderer(screen), sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestCellFor(t *testing.T) {
	dims := world.GridDimensions{Width: 4, Height: 3, OriginX: -2, OriginY: 10}

	tests := []struct {
		c        world.GridCoordinate
		col, row int
	}{
		{world.GridCoordinate{X: -2, Y: 10}, 0, 2},
		{world.GridCoordinate{X: 1, Y: 12}, 3, 0},
		{world.GridCoordinate{X: 0, Y: 11}, 2, 1},
	}

	for _, tt := range tests {
		col, row := CellFor(dims, tt.c)
		if col != tt.col || row != tt.row {
			t.Errorf("CellFor(%v) = (%d,%d), want (%d,%d)", tt.c, col, row, tt.col, tt.row)
		}
	}
}

func TestRender(t *testing.T) {
	r, sim := newTestRenderer(t)

	store := world.NewPropertyStore()
	if err := store.AddSceneLayout(world.SceneFarm, 0, 0, []string{
		"#..",
		".=.",
	}); err != nil {
		t.Fatalf("AddSceneLayout: %v", err)
	}
	dims, _ := store.GridDimensions(world.SceneFarm)

	villager := entity.NewNPC("Butch", world.SceneFarm, world.GridCoordinate{X: 0, Y: 0})
	r.Render(View{
		Tiles:  store,
		Scene:  world.SceneFarm,
		Dims:   dims,
		NPC:    villager,
		Cursor: world.GridCoordinate{X: 2, Y: 1},
		Steps: []pathfind.MovementStep{
			{Scene: world.SceneFarm, GridCoordinate: world.GridCoordinate{X: 1, Y: 1}},
		},
		Status: []string{"06:00:00"},
	})

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"obstacle top-left", 0, 0, '#'},
		{"path tile", 1, 1, '='},
		{"npc bottom-left", 0, 1, 'B'},
		{"step", 1, 0, '*'},
		{"cursor", 2, 0, '+'},
		{"status", 0, 3, '0'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runeAt(sim, tt.x, tt.y); got != tt.want {
				t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
