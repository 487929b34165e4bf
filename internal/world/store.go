package world

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrMalformedLayout indicates a scene layout that is empty or not rectangular.
	ErrMalformedLayout = errors.New("world: layout must be a non-empty rectangle")
	// ErrUnknownScene indicates an operation on a scene the store does not hold.
	ErrUnknownScene = errors.New("world: scene not loaded")
)

// sceneGrid is the property dictionary of a single scene.
type sceneGrid struct {
	dims    GridDimensions
	details map[GridCoordinate]GridPropertyDetails
}

// PropertyStore holds grid properties for every loaded scene.
// It is safe for concurrent use.
type PropertyStore struct {
	mu     sync.RWMutex
	scenes map[SceneName]*sceneGrid
}

// NewPropertyStore creates an empty store.
func NewPropertyStore() *PropertyStore {
	return &PropertyStore{
		scenes: make(map[SceneName]*sceneGrid),
	}
}

// AddScene registers a scene with its dimensions and initial cell properties.
// An existing scene of the same name is replaced.
func (s *PropertyStore) AddScene(scene SceneName, dims GridDimensions, cells []GridPropertyDetails) {
	grid := &sceneGrid{
		dims:    dims,
		details: make(map[GridCoordinate]GridPropertyDetails, len(cells)),
	}
	for _, d := range cells {
		grid.details[d.Coordinate()] = d
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenes[scene] = grid
}

// AddSceneLayout registers a scene described by rows of tile glyphs.
// The first row is the top of the scene (highest y); origin is the global
// coordinate of the bottom-left cell.
func (s *PropertyStore) AddSceneLayout(scene SceneName, originX, originY int, layout []string) error {
	cells, dims, err := ParseLayout(originX, originY, layout)
	if err != nil {
		return fmt.Errorf("scene %s: %w", scene, err)
	}
	s.AddScene(scene, dims, cells)
	return nil
}

// ParseLayout converts rows of tile glyphs into cell properties.
func ParseLayout(originX, originY int, layout []string) ([]GridPropertyDetails, GridDimensions, error) {
	if len(layout) == 0 {
		return nil, GridDimensions{}, ErrMalformedLayout
	}
	width := len([]rune(layout[0]))
	if width == 0 {
		return nil, GridDimensions{}, ErrMalformedLayout
	}

	dims := GridDimensions{
		Width:   width,
		Height:  len(layout),
		OriginX: originX,
		OriginY: originY,
	}

	cells := make([]GridPropertyDetails, 0, dims.Width*dims.Height)
	for row, line := range layout {
		runes := []rune(line)
		if len(runes) != width {
			return nil, GridDimensions{}, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrMalformedLayout, row, len(runes), width)
		}
		y := originY + dims.Height - 1 - row
		for col, r := range runes {
			if d, ok := Tile(r).Details(originX+col, y); ok {
				cells = append(cells, d)
			}
		}
	}
	return cells, dims, nil
}

// GridDimensions returns the size and origin of a scene grid.
func (s *PropertyStore) GridDimensions(scene SceneName) (GridDimensions, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grid, ok := s.scenes[scene]
	if !ok {
		return GridDimensions{}, false
	}
	return grid.dims, true
}

// CellDetails returns the properties of the cell at a global coordinate.
// The second result is false when the scene or the cell has no properties.
func (s *PropertyStore) CellDetails(scene SceneName, x, y int) (GridPropertyDetails, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grid, ok := s.scenes[scene]
	if !ok {
		return GridPropertyDetails{}, false
	}
	d, ok := grid.details[GridCoordinate{X: x, Y: y}]
	return d, ok
}

// SetGridPropertyDetails stores the properties of a cell, replacing any previous value.
func (s *PropertyStore) SetGridPropertyDetails(scene SceneName, d GridPropertyDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid, ok := s.scenes[scene]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScene, scene)
	}
	grid.details[d.Coordinate()] = d
	return nil
}

// SetBoolProperty sets a single flag on a cell, creating the cell's entry if needed.
func (s *PropertyStore) SetBoolProperty(scene SceneName, c GridCoordinate, p GridBoolProperty, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid, ok := s.scenes[scene]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScene, scene)
	}
	d, ok := grid.details[c]
	if !ok {
		d = GridPropertyDetails{GridX: c.X, GridY: c.Y}
	}
	d.Set(p, value)
	grid.details[c] = d
	return nil
}

// TileAt returns the display glyph for a cell.
func (s *PropertyStore) TileAt(scene SceneName, x, y int) Tile {
	d, ok := s.CellDetails(scene, x, y)
	if !ok {
		return TileVoid
	}
	return TileFor(d)
}

// Scenes returns the names of all loaded scenes in sorted order.
func (s *PropertyStore) Scenes() []SceneName {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]SceneName, 0, len(s.scenes))
	for name := range s.scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
