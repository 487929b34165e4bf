package pathfind

import (
	"fmt"

	"github.com/samdwyer/farmstead/internal/world"
)

// NodeGrid is a dense width*height array of nodes for one scene request.
// Nodes are stored row by row; parent links are indices into the same array.
type NodeGrid struct {
	Width  int
	Height int
	nodes  []Node
}

// NewNodeGrid creates a grid of walkable, zero-penalty nodes.
func NewNodeGrid(width, height int) *NodeGrid {
	g := &NodeGrid{
		Width:  width,
		Height: height,
		nodes:  make([]Node, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := &g.nodes[g.index(x, y)]
			n.X, n.Y = x, y
			n.reset()
		}
	}
	return g
}

// BuildNodeGrid creates the grid for a scene from the provider's cell data.
// It fails without a partial grid if the scene is not configured.
func BuildNodeGrid(provider GridCostProvider, scene world.SceneName, opts Options) (*NodeGrid, world.GridDimensions, error) {
	dims, ok := provider.GridDimensions(scene)
	if !ok || dims.Width <= 0 || dims.Height <= 0 {
		return nil, world.GridDimensions{}, fmt.Errorf("%w: %s", ErrSceneNotConfigured, scene)
	}

	g := NewNodeGrid(dims.Width, dims.Height)
	for y := 0; y < dims.Height; y++ {
		for x := 0; x < dims.Width; x++ {
			details, ok := provider.CellDetails(scene, x+dims.OriginX, y+dims.OriginY)
			if !ok {
				continue
			}
			n := g.Node(x, y)
			switch {
			case details.IsNPCObstacle:
				n.IsObstacle = true
			case details.IsPath:
				n.MovementPenalty = opts.PathMovementPenalty
			default:
				n.MovementPenalty = opts.DefaultMovementPenalty
			}
		}
	}
	return g, dims, nil
}

// InBounds returns true if (x, y) is a cell of the grid.
func (g *NodeGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Node returns the node at local (x, y), or nil if out of bounds.
func (g *NodeGrid) Node(x, y int) *Node {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.nodes[g.index(x, y)]
}

// Parent returns the predecessor of n on its best known route, or nil.
func (g *NodeGrid) Parent(n *Node) *Node {
	if n == nil || n.parent == noParent {
		return nil
	}
	return &g.nodes[n.parent]
}

// Reset clears the search state of every node so the grid can be searched again.
func (g *NodeGrid) Reset() {
	for i := range g.nodes {
		g.nodes[i].reset()
	}
}

func (g *NodeGrid) index(x, y int) int {
	return y*g.Width + x
}

func (g *NodeGrid) indexOf(n *Node) int {
	return g.index(n.X, n.Y)
}
