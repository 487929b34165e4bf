package gamedata

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/farmstead/internal/telemetry"
	"github.com/samdwyer/farmstead/internal/world"
)

// SceneDef defines a scene grid loaded from JSON.
//
// Layout rows run from the top of the scene to the bottom; the glyph legend
// is the one of world.Tile ('.' ground, '=' path, '#' NPC obstacle,
// ':' diggable soil, '_' furniture floor, ' ' no properties).
type SceneDef struct {
	Name    world.SceneName `json:"name"`    // Scene identifier (e.g., "Scene1_Farm")
	OriginX int             `json:"originX"` // Global x of the bottom-left cell
	OriginY int             `json:"originY"` // Global y of the bottom-left cell
	Layout  []string        `json:"layout"`  // Tile glyph rows, top first
}

// ScenesFile represents the structure of scenes.json.
type ScenesFile struct {
	Scenes []SceneDef `json:"scenes"`
}

// LoadScenes loads scene definitions from the embedded scenes.json file.
func LoadScenes() ([]SceneDef, error) {
	file, err := Load[ScenesFile]("scenes.json")
	if err != nil {
		return nil, err
	}
	return file.Scenes, nil
}

// LoadPropertyStore builds a property store holding every embedded scene.
func LoadPropertyStore(ctx context.Context) (*world.PropertyStore, error) {
	_, span := telemetry.Tracer("gamedata").Start(ctx, "gamedata.load_scenes")
	defer span.End()

	scenes, err := LoadScenes()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	store, err := NewPropertyStore(scenes)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("gamedata.scene_count", len(scenes)))
	return store, nil
}

// NewPropertyStore builds a property store from scene definitions.
func NewPropertyStore(scenes []SceneDef) (*world.PropertyStore, error) {
	store := world.NewPropertyStore()
	for _, def := range scenes {
		if !def.Name.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScene, def.Name)
		}
		if err := store.AddSceneLayout(def.Name, def.OriginX, def.OriginY, def.Layout); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// MustLoadPropertyStore loads the property store, panicking on error.
func MustLoadPropertyStore(ctx context.Context) *world.PropertyStore {
	store, err := LoadPropertyStore(ctx)
	if err != nil {
		panic(err)
	}
	return store
}
