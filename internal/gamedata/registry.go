package gamedata

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownScene indicates a definition naming a scene the game does not have.
	ErrUnknownScene = errors.New("gamedata: unknown scene")
	// ErrUnknownNPC indicates a lookup of an NPC id that was never loaded.
	ErrUnknownNPC = errors.New("gamedata: unknown npc")
)

// NPCRegistry holds loaded NPC definitions.
type NPCRegistry struct {
	npcs map[string]*NPCDef
	all  []NPCDef
}

// NewNPCRegistry creates a registry from loaded NPC definitions.
func NewNPCRegistry(npcs []NPCDef) *NPCRegistry {
	registry := &NPCRegistry{
		npcs: make(map[string]*NPCDef),
		all:  npcs,
	}
	for i := range npcs {
		registry.npcs[npcs[i].ID] = &npcs[i]
	}
	return registry
}

// LoadNPCRegistry loads and creates a registry from the embedded npcs.json.
func LoadNPCRegistry() (*NPCRegistry, error) {
	npcs, err := LoadNPCs()
	if err != nil {
		return nil, err
	}
	if len(npcs) == 0 {
		return nil, errors.New("no npcs loaded from npcs.json")
	}
	for _, n := range npcs {
		if !n.Scene.Valid() {
			return nil, fmt.Errorf("%w: npc %s starts in %q", ErrUnknownScene, n.ID, n.Scene)
		}
	}
	return NewNPCRegistry(npcs), nil
}

// MustLoadNPCRegistry loads a registry, panicking on error.
func MustLoadNPCRegistry() *NPCRegistry {
	registry, err := LoadNPCRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the NPC definition with the given ID, or nil if not found.
func (r *NPCRegistry) GetByID(id string) *NPCDef {
	return r.npcs[id]
}

// Lookup is GetByID with an error for unknown ids.
func (r *NPCRegistry) Lookup(id string) (*NPCDef, error) {
	def := r.npcs[id]
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNPC, id)
	}
	return def, nil
}

// All returns all NPC definitions.
func (r *NPCRegistry) All() []NPCDef {
	return r.all
}

// Count returns the number of NPCs in the registry.
func (r *NPCRegistry) Count() int {
	return len(r.all)
}
