package entity

import (
	"testing"

	"github.com/samdwyer/farmstead/internal/gamedata"
	"github.com/samdwyer/farmstead/internal/world"
)

func TestNewNPCFromDef(t *testing.T) {
	def := &gamedata.NPCDef{
		ID:    "butch",
		Name:  "Butch",
		Glyph: "B",
		Color: "#E0A040",
		Scene: world.SceneFarm,
		X:     -3,
		Y:     4,
	}

	n := NewNPCFromDef(def)
	if n.ID == "" {
		t.Error("NewNPCFromDef() left the instance id empty")
	}
	if n.Symbol != 'B' {
		t.Errorf("Symbol = %c, want B", n.Symbol)
	}
	if n.Position != (world.GridCoordinate{X: -3, Y: 4}) {
		t.Errorf("Position = %v, want (-3,4)", n.Position)
	}
	if n.Speed != DefaultSpeed {
		t.Errorf("Speed = %v, want default %v for a zero speed definition", n.Speed, DefaultSpeed)
	}

	other := NewNPCFromDef(def)
	if other.ID == n.ID {
		t.Error("two NPCs from the same definition share an id")
	}
}

func TestNPCMoveTo(t *testing.T) {
	n := NewNPC("Daisy", world.SceneField, world.GridCoordinate{X: 1, Y: 1})
	if n.Symbol != 'D' {
		t.Errorf("Symbol = %c, want D", n.Symbol)
	}

	n.MoveTo(world.SceneCabin, world.GridCoordinate{X: 0, Y: -2})
	if n.Scene != world.SceneCabin || n.Position != (world.GridCoordinate{X: 0, Y: -2}) {
		t.Errorf("after MoveTo: scene=%s pos=%v", n.Scene, n.Position)
	}
}
