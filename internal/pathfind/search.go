package pathfind

const (
	orthogonalCost = 10
	diagonalCost   = 14
)

// Result is the outcome of a successful search.
type Result struct {
	Goal     *Node // Goal node; follow NodeGrid.Parent back to the start
	Expanded int   // Number of nodes moved to the closed set
}

// Distance returns the octile distance between two local positions:
// 14 per diagonal step and 10 per remaining orthogonal step.
func Distance(x1, y1, x2, y2 int) int {
	dx := abs(x1 - x2)
	dy := abs(y1 - y2)
	if dx > dy {
		return dy*diagonalCost + (dx-dy)*orthogonalCost
	}
	return dx*diagonalCost + (dy-dx)*orthogonalCost
}

func nodeDistance(a, b *Node) int {
	return Distance(a.X, a.Y, b.X, b.Y)
}

// FindPath runs A* on grid between two local positions.
// The grid's search state is reset first. On success the goal node's parent
// chain leads back to the start; the second result is false when the goal
// cannot be reached or either endpoint is outside the grid.
func FindPath(grid *NodeGrid, startX, startY, goalX, goalY int, observePenalties bool) (Result, bool) {
	start := grid.Node(startX, startY)
	goal := grid.Node(goalX, goalY)
	if start == nil || goal == nil {
		return Result{}, false
	}

	grid.Reset()

	open := make(openSet, 0, grid.Width+grid.Height)
	open.push(start)

	expanded := 0
	for open.Len() > 0 {
		current := open.pop()
		current.closed = true
		expanded++

		if current == goal {
			return Result{Goal: goal, Expanded: expanded}, true
		}

		expandNeighbours(grid, &open, current, goal, observePenalties)
	}

	return Result{Expanded: expanded}, false
}

// expandNeighbours relaxes the eight cells around current.
func expandNeighbours(grid *NodeGrid, open *openSet, current, goal *Node, observePenalties bool) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}

			neighbour := grid.Node(current.X+dx, current.Y+dy)
			if neighbour == nil || neighbour.IsObstacle || neighbour.closed {
				continue
			}

			cost := current.GCost + nodeDistance(current, neighbour)
			if observePenalties {
				cost += neighbour.MovementPenalty
			}

			queued := neighbour.inOpenSet()
			if queued && cost >= neighbour.GCost {
				continue
			}

			neighbour.GCost = cost
			neighbour.HCost = nodeDistance(neighbour, goal)
			neighbour.parent = grid.indexOf(current)

			if queued {
				open.fix(neighbour)
			} else {
				open.push(neighbour)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
