package pathfind

const noParent = -1

// Node is the search state of a single grid cell.
type Node struct {
	X, Y            int // Local position in the owning grid
	IsObstacle      bool
	MovementPenalty int
	GCost           int // Cost of the best known route from the start
	HCost           int // Estimated cost to the goal

	parent    int // Index of the predecessor in the owning grid, or noParent
	heapIndex int // Position in the open set, or -1 when not queued
	closed    bool
}

// FCost returns GCost + HCost.
func (n *Node) FCost() int {
	return n.GCost + n.HCost
}

// less orders nodes by FCost, then HCost.
func (n *Node) less(other *Node) bool {
	if f1, f2 := n.FCost(), other.FCost(); f1 != f2 {
		return f1 < f2
	}
	return n.HCost < other.HCost
}

// inOpenSet reports whether the node is queued for expansion.
func (n *Node) inOpenSet() bool {
	return n.heapIndex >= 0
}

// reset clears search state while keeping terrain data.
func (n *Node) reset() {
	n.GCost = 0
	n.HCost = 0
	n.parent = noParent
	n.heapIndex = -1
	n.closed = false
}
