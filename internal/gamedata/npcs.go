package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/farmstead/internal/world"
)

// NPCDef defines a non-player character loaded from JSON.
type NPCDef struct {
	ID    string          `json:"id"`    // Unique identifier (e.g., "butch")
	Name  string          `json:"name"`  // Display name (e.g., "Butch")
	Glyph string          `json:"glyph"` // Single character for rendering (e.g., "B")
	Color string          `json:"color"` // Hex code or colour name (e.g., "#E0A040")
	Scene world.SceneName `json:"scene"` // Scene the NPC starts in
	X     int             `json:"x"`     // Starting global grid x
	Y     int             `json:"y"`     // Starting global grid y
	Speed float64         `json:"speed"` // Normal walking speed in cells per real second

	Schedule []ScheduleDef `json:"schedule,omitempty"`
}

// ScheduleDef is one entry of an NPC's daily schedule. Zero day and empty
// season or weather match any.
type ScheduleDef struct {
	Hour     int             `json:"hour"`
	Minute   int             `json:"minute"`
	Priority int             `json:"priority,omitempty"` // Lower wins among entries at the same time
	Day      int             `json:"day,omitempty"`      // Day of the season, 1-based
	Season   string          `json:"season,omitempty"`   // "spring", "summer", "autumn" or "winter"
	Weather  string          `json:"weather,omitempty"`  // "dry", "raining" or "snowing"
	Scene    world.SceneName `json:"scene"`
	X        int             `json:"x"`
	Y        int             `json:"y"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (n *NPCDef) GlyphRune() rune {
	if len(n.Glyph) == 0 {
		return '?'
	}
	return rune(n.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (n *NPCDef) TCellColor() tcell.Color {
	color, err := ParseColor(n.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// Start returns the NPC's starting grid coordinate.
func (n *NPCDef) Start() world.GridCoordinate {
	return world.GridCoordinate{X: n.X, Y: n.Y}
}

// NPCsFile represents the structure of npcs.json.
type NPCsFile struct {
	NPCs []NPCDef `json:"npcs"`
}

// LoadNPCs loads NPC definitions from the embedded npcs.json file.
func LoadNPCs() ([]NPCDef, error) {
	file, err := Load[NPCsFile]("npcs.json")
	if err != nil {
		return nil, err
	}
	return file.NPCs, nil
}
