package world

// GridBoolProperty names one of the boolean flags a grid cell can carry.
type GridBoolProperty int

const (
	PropertyDiggable GridBoolProperty = iota
	PropertyCanDropItem
	PropertyCanPlaceFurniture
	PropertyIsPath
	PropertyIsNPCObstacle
)

// String returns a human-readable property name.
func (p GridBoolProperty) String() string {
	switch p {
	case PropertyDiggable:
		return "diggable"
	case PropertyCanDropItem:
		return "can_drop_item"
	case PropertyCanPlaceFurniture:
		return "can_place_furniture"
	case PropertyIsPath:
		return "is_path"
	case PropertyIsNPCObstacle:
		return "is_npc_obstacle"
	default:
		return "unknown"
	}
}

// GridPropertyDetails holds everything known about one cell of a scene.
type GridPropertyDetails struct {
	GridX             int
	GridY             int
	IsDiggable        bool
	CanDropItem       bool
	CanPlaceFurniture bool
	IsPath            bool
	IsNPCObstacle     bool
}

// Coordinate returns the cell's global grid coordinate.
func (d GridPropertyDetails) Coordinate() GridCoordinate {
	return GridCoordinate{X: d.GridX, Y: d.GridY}
}

// Set assigns a boolean property. Unknown properties are ignored.
func (d *GridPropertyDetails) Set(p GridBoolProperty, value bool) {
	switch p {
	case PropertyDiggable:
		d.IsDiggable = value
	case PropertyCanDropItem:
		d.CanDropItem = value
	case PropertyCanPlaceFurniture:
		d.CanPlaceFurniture = value
	case PropertyIsPath:
		d.IsPath = value
	case PropertyIsNPCObstacle:
		d.IsNPCObstacle = value
	}
}
