package pathfind_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/farmstead/internal/pathfind"
	"github.com/samdwyer/farmstead/internal/world"
)

const (
	testScene = world.SceneFarm
	originX   = -3
	originY   = 5
)

// newOpenStore returns a store holding a width*height scene of plain ground
// whose local (0,0) sits at (originX, originY).
func newOpenStore(t *testing.T, width, height int) (*world.PropertyStore, world.GridDimensions) {
	t.Helper()
	layout := make([]string, height)
	for i := range layout {
		layout[i] = strings.Repeat(".", width)
	}
	store := world.NewPropertyStore()
	require.NoError(t, store.AddSceneLayout(testScene, originX, originY, layout))
	dims, ok := store.GridDimensions(testScene)
	require.True(t, ok)
	return store, dims
}

func block(t *testing.T, store *world.PropertyStore, dims world.GridDimensions, x, y int) {
	t.Helper()
	require.NoError(t, store.SetBoolProperty(testScene, dims.Global(x, y), world.PropertyIsNPCObstacle, true))
}

func newFinder(t *testing.T, store *world.PropertyStore, opts pathfind.Options) *pathfind.PathFinder {
	t.Helper()
	finder, err := pathfind.New(store, opts)
	require.NoError(t, err)
	return finder
}

func noPenalties() pathfind.Options {
	return pathfind.Options{ObserveMovementPenalties: true}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 int
		want           int
	}{
		{"Same", 0, 0, 0, 0, 0},
		{"Orthogonal", 0, 0, 3, 0, 30},
		{"Diagonal", 0, 0, 3, 3, 42},
		{"Mixed", 0, 0, 2, 5, 58},
		{"Symmetric", 2, 5, 0, 0, 58},
		{"Negative", -1, -1, 1, -4, 38},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pathfind.Distance(tc.x1, tc.y1, tc.x2, tc.y2))
		})
	}
}

// Scenario A: open 5x5 grid, corner to corner is a pure diagonal.
func TestBuildPath_OpenGridDiagonal(t *testing.T) {
	store, dims := newOpenStore(t, 5, 5)
	finder := newFinder(t, store, noPenalties())

	path, err := finder.BuildPathResult(testScene, dims.Global(0, 0), dims.Global(4, 4))
	require.NoError(t, err)
	require.Equal(t, 5, path.Steps.Len())
	assert.Equal(t, 56, path.Cost)

	steps := path.Steps.Steps()
	assert.Equal(t, dims.Global(0, 0), steps[0].GridCoordinate, "top of stack is the start")
	assert.Equal(t, dims.Global(4, 4), steps[4].GridCoordinate, "bottom of stack is the goal")
	for i := 1; i < len(steps); i++ {
		prev, cur := steps[i-1].GridCoordinate, steps[i].GridCoordinate
		assert.Equal(t, world.GridCoordinate{X: prev.X + 1, Y: prev.Y + 1}, cur, "step %d is diagonal", i)
		assert.Equal(t, testScene, steps[i].Scene)
	}
}

// Scenario B: an obstacle on the diagonal forces a detour.
func TestBuildPath_RoutesAroundObstacle(t *testing.T) {
	store, dims := newOpenStore(t, 5, 5)
	block(t, store, dims, 2, 2)
	finder := newFinder(t, store, noPenalties())

	path, err := finder.BuildPathResult(testScene, dims.Global(0, 0), dims.Global(4, 4))
	require.NoError(t, err)
	assert.Greater(t, path.Cost, 56)
	assert.Equal(t, 62, path.Cost)
	for _, step := range path.Steps.Steps() {
		assert.NotEqual(t, dims.Global(2, 2), step.GridCoordinate, "path enters the obstacle")
	}
}

// Scenario C: start equals goal.
func TestBuildPath_StartIsGoal(t *testing.T) {
	store, dims := newOpenStore(t, 5, 5)
	finder := newFinder(t, store, noPenalties())

	path, err := finder.BuildPathResult(testScene, dims.Global(3, 1), dims.Global(3, 1))
	require.NoError(t, err)
	require.Equal(t, 1, path.Steps.Len())
	assert.Equal(t, 0, path.Cost)
	assert.Equal(t, 1, path.Expanded)
}

// Scenario D: the goal is walled in on all eight sides.
func TestBuildPath_EnclosedGoal(t *testing.T) {
	store, dims := newOpenStore(t, 5, 5)
	for x := 1; x <= 3; x++ {
		for y := 1; y <= 3; y++ {
			if x != 2 || y != 2 {
				block(t, store, dims, x, y)
			}
		}
	}
	finder := newFinder(t, store, noPenalties())

	path, err := finder.BuildPathResult(testScene, dims.Global(0, 0), dims.Global(2, 2))
	require.ErrorIs(t, err, pathfind.ErrUnreachable)
	// The whole reachable ring is exhausted before giving up.
	assert.Equal(t, 16, path.Expanded)

	steps, err := finder.BuildPath(testScene, dims.Global(0, 0), dims.Global(2, 2))
	require.ErrorIs(t, err, pathfind.ErrUnreachable)
	assert.Nil(t, steps)
}

// Scenario E: a uniform penalty adds exactly penalty*(steps after start).
func TestBuildPath_UniformPenalty(t *testing.T) {
	store, dims := newOpenStore(t, 5, 5)
	start, goal := dims.Global(0, 0), dims.Global(4, 4)

	base, err := newFinder(t, store, noPenalties()).BuildPathResult(testScene, start, goal)
	require.NoError(t, err)

	penalised, err := newFinder(t, store, pathfind.Options{
		ObserveMovementPenalties: true,
		DefaultMovementPenalty:   5,
	}).BuildPathResult(testScene, start, goal)
	require.NoError(t, err)

	require.Equal(t, base.Steps.Len(), penalised.Steps.Len())
	assert.Equal(t, base.Cost+5*(penalised.Steps.Len()-1), penalised.Cost)
}

func TestBuildPath_PenaltiesIgnoredWhenNotObserved(t *testing.T) {
	store, dims := newOpenStore(t, 5, 5)
	finder := newFinder(t, store, pathfind.Options{
		ObserveMovementPenalties: false,
		PathMovementPenalty:      20,
		DefaultMovementPenalty:   20,
	})

	path, err := finder.BuildPathResult(testScene, dims.Global(0, 0), dims.Global(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 40, path.Cost)
}

func TestBuildPath_PrefersCheapTerrain(t *testing.T) {
	// A path strip along the top row is cheap; plain ground is expensive.
	store := world.NewPropertyStore()
	require.NoError(t, store.AddSceneLayout(testScene, 0, 0, []string{
		"=======",
		".......",
		".......",
	}))
	finder := newFinder(t, store, pathfind.Options{
		ObserveMovementPenalties: true,
		PathMovementPenalty:      0,
		DefaultMovementPenalty:   20,
	})

	path, err := finder.BuildPathResult(testScene, world.GridCoordinate{X: 0, Y: 2}, world.GridCoordinate{X: 6, Y: 2})
	require.NoError(t, err)
	for _, step := range path.Steps.Steps() {
		assert.Equal(t, 2, step.GridCoordinate.Y, "route leaves the path at %v", step.GridCoordinate)
	}
	assert.Equal(t, 60, path.Cost)
}

func TestBuildPath_Deterministic(t *testing.T) {
	store, dims := newOpenStore(t, 12, 9)
	for y := 0; y < 7; y++ {
		block(t, store, dims, 5, y)
	}
	finder := newFinder(t, store, pathfind.DefaultOptions())

	first, err := finder.BuildPath(testScene, dims.Global(0, 0), dims.Global(11, 0))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := finder.BuildPath(testScene, dims.Global(0, 0), dims.Global(11, 0))
		require.NoError(t, err)
		require.Equal(t, first.Steps(), again.Steps())
	}
}

func TestBuildPath_CostNonDecreasing(t *testing.T) {
	store, dims := newOpenStore(t, 10, 10)
	for x := 1; x < 9; x++ {
		block(t, store, dims, x, 5)
	}
	finder := newFinder(t, store, pathfind.Options{
		ObserveMovementPenalties: true,
		DefaultMovementPenalty:   3,
	})

	steps, err := finder.BuildPath(testScene, dims.Global(4, 0), dims.Global(4, 9))
	require.NoError(t, err)
	all := steps.Steps()
	assert.Equal(t, 0, all[0].Cost)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i].Cost, all[i-1].Cost)
	}
}

func TestBuildPath_Errors(t *testing.T) {
	store, dims := newOpenStore(t, 4, 4)
	finder := newFinder(t, store, pathfind.DefaultOptions())

	_, err := finder.BuildPath(world.SceneCabin, dims.Global(0, 0), dims.Global(1, 1))
	require.ErrorIs(t, err, pathfind.ErrSceneNotConfigured)

	_, err = finder.BuildPath(testScene, dims.Global(-1, 0), dims.Global(1, 1))
	require.ErrorIs(t, err, pathfind.ErrOutsideGrid)

	_, err = finder.BuildPath(testScene, dims.Global(0, 0), dims.Global(4, 1))
	require.ErrorIs(t, err, pathfind.ErrOutsideGrid)
}

func TestOptionsValidate(t *testing.T) {
	cases := []struct {
		name string
		opts pathfind.Options
		ok   bool
	}{
		{"Defaults", pathfind.DefaultOptions(), true},
		{"Upper", pathfind.Options{PathMovementPenalty: 20, DefaultMovementPenalty: 20}, true},
		{"PathTooHigh", pathfind.Options{PathMovementPenalty: 21}, false},
		{"DefaultNegative", pathfind.Options{DefaultMovementPenalty: -1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pathfind.New(world.NewPropertyStore(), tc.opts)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, pathfind.ErrInvalidPenalty)
			}
		})
	}
}

func TestBuildNodeGrid(t *testing.T) {
	store := world.NewPropertyStore()
	require.NoError(t, store.AddSceneLayout(testScene, 10, 20, []string{"#= ."}))

	grid, dims, err := pathfind.BuildNodeGrid(store, testScene, pathfind.Options{
		PathMovementPenalty:    7,
		DefaultMovementPenalty: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, world.GridDimensions{Width: 4, Height: 1, OriginX: 10, OriginY: 20}, dims)

	assert.True(t, grid.Node(0, 0).IsObstacle)
	assert.Equal(t, 7, grid.Node(1, 0).MovementPenalty)
	assert.Equal(t, 0, grid.Node(2, 0).MovementPenalty, "cells without properties keep no penalty")
	assert.False(t, grid.Node(2, 0).IsObstacle)
	assert.Equal(t, 3, grid.Node(3, 0).MovementPenalty)

	_, _, err = pathfind.BuildNodeGrid(store, world.SceneField, pathfind.DefaultOptions())
	require.ErrorIs(t, err, pathfind.ErrSceneNotConfigured)
}

func TestNodeGridBounds(t *testing.T) {
	grid := pathfind.NewNodeGrid(3, 2)
	assert.NotNil(t, grid.Node(2, 1))
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		assert.False(t, grid.InBounds(xy[0], xy[1]))
		assert.Nil(t, grid.Node(xy[0], xy[1]))
	}

	// Searching from every edge cell must never step outside the grid.
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			res, ok := pathfind.FindPath(grid, x, y, 2-x, 1-y, false)
			require.True(t, ok, "from (%d,%d)", x, y)
			for n := res.Goal; n != nil; n = grid.Parent(n) {
				assert.True(t, grid.InBounds(n.X, n.Y))
			}
		}
	}

	_, ok := pathfind.FindPath(grid, 0, 0, 5, 5, false)
	assert.False(t, ok)
}

func TestFindPath_ResetsBetweenSearches(t *testing.T) {
	grid := pathfind.NewNodeGrid(6, 6)

	first, ok := pathfind.FindPath(grid, 0, 0, 5, 5, false)
	require.True(t, ok)
	firstCost := first.Goal.GCost

	second, ok := pathfind.FindPath(grid, 0, 0, 5, 5, false)
	require.True(t, ok)
	assert.Equal(t, firstCost, second.Goal.GCost)
	assert.Nil(t, grid.Parent(grid.Node(0, 0)), "start has no parent after a fresh search")
}

// reachable flood-fills 8-connected walkable cells from (sx, sy).
func reachable(blocked [][]bool, sx, sy int) [][]bool {
	h, w := len(blocked), len(blocked[0])
	seen := make([][]bool, h)
	for y := range seen {
		seen[y] = make([]bool, w)
	}
	queue := [][2]int{{sx, sy}}
	seen[sy][sx] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				x, y := c[0]+dx, c[1]+dy
				if x < 0 || y < 0 || x >= w || y >= h || seen[y][x] || blocked[y][x] {
					continue
				}
				seen[y][x] = true
				queue = append(queue, [2]int{x, y})
			}
		}
	}
	return seen
}

func TestFindPath_MatchesReachability(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const w, h = 9, 7

	for trial := 0; trial < 200; trial++ {
		grid := pathfind.NewNodeGrid(w, h)
		blocked := make([][]bool, h)
		for y := range blocked {
			blocked[y] = make([]bool, w)
			for x := range blocked[y] {
				if rng.Intn(100) < 35 {
					blocked[y][x] = true
					grid.Node(x, y).IsObstacle = true
				}
			}
		}

		sx, sy := rng.Intn(w), rng.Intn(h)
		gx, gy := rng.Intn(w), rng.Intn(h)
		blocked[sy][sx] = false
		grid.Node(sx, sy).IsObstacle = false
		blocked[gy][gx] = false
		grid.Node(gx, gy).IsObstacle = false

		want := reachable(blocked, sx, sy)[gy][gx]
		res, got := pathfind.FindPath(grid, sx, sy, gx, gy, false)
		require.Equal(t, want, got, "trial %d: (%d,%d)->(%d,%d)", trial, sx, sy, gx, gy)

		if got {
			// Without penalties the octile heuristic is exact on open ground,
			// so the cost can never beat the straight-line distance.
			assert.GreaterOrEqual(t, res.Goal.GCost, pathfind.Distance(sx, sy, gx, gy))
		}
	}
}
