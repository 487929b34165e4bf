// Package entity provides game entities such as villagers.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/farmstead/internal/gamedata"
	"github.com/samdwyer/farmstead/internal/world"
)

// DefaultSpeed is the walking speed of NPCs without a definition.
const DefaultSpeed = 2.0

// NPC is a non-player character that walks between grid cells.
type NPC struct {
	ID       string               // Unique instance id
	Def      *gamedata.NPCDef     // Definition this NPC was created from (may be nil)
	Name     string               // Display name
	Symbol   rune                 // Display symbol
	Color    tcell.Color          // Display color
	Scene    world.SceneName      // Scene the NPC is currently in
	Position world.GridCoordinate // Current global grid position
	Speed    float64              // Normal walking speed
}

// NewNPC creates an NPC with default appearance at the given position.
func NewNPC(name string, scene world.SceneName, pos world.GridCoordinate) *NPC {
	symbol := '?'
	if name != "" {
		symbol = []rune(name)[0]
	}
	return &NPC{
		ID:       uuid.NewString(),
		Name:     name,
		Symbol:   symbol,
		Color:    tcell.ColorWhite,
		Scene:    scene,
		Position: pos,
		Speed:    DefaultSpeed,
	}
}

// NewNPCFromDef creates an NPC from a data-driven definition.
func NewNPCFromDef(def *gamedata.NPCDef) *NPC {
	speed := def.Speed
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &NPC{
		ID:       uuid.NewString(),
		Def:      def,
		Name:     def.Name,
		Symbol:   def.GlyphRune(),
		Color:    def.TCellColor(),
		Scene:    def.Scene,
		Position: def.Start(),
		Speed:    speed,
	}
}

// MoveTo places the NPC on a cell, possibly in another scene.
func (n *NPC) MoveTo(scene world.SceneName, pos world.GridCoordinate) {
	n.Scene = scene
	n.Position = pos
}
