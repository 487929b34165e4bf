package npc

import (
	"time"

	"github.com/samdwyer/farmstead/internal/gametime"
	"github.com/samdwyer/farmstead/internal/pathfind"
)

// Settings holds the world scale used to turn cells into walking time.
type Settings struct {
	GridCellSize         float64 // World units per cell edge
	GridCellDiagonalSize float64 // World units per cell diagonal
	SecondsPerGameSecond float64 // Real seconds per game second
}

// DefaultSettings returns unit cells and the game clock's rate.
func DefaultSettings() Settings {
	return Settings{
		GridCellSize:         1,
		GridCellDiagonalSize: 1.41,
		SecondsPerGameSecond: gametime.SecondsPerGameSecond,
	}
}

// StepDuration returns the game time an NPC moving at speed needs to cross
// one cell, truncated to whole game seconds.
func (s Settings) StepDuration(diagonal bool, speed float64) time.Duration {
	size := s.GridCellSize
	if diagonal {
		size = s.GridCellDiagonalSize
	}
	if speed <= 0 || s.SecondsPerGameSecond <= 0 {
		return 0
	}
	return time.Duration(int64(size/s.SecondsPerGameSecond/speed)) * time.Second
}

// isDiagonal reports whether moving from prev to step changes both axes.
func isDiagonal(prev, step pathfind.MovementStep) bool {
	return prev.GridCoordinate.X != step.GridCoordinate.X &&
		prev.GridCoordinate.Y != step.GridCoordinate.Y
}

// UpdateTimesOnPath stamps every step with its arrival time, walking the
// stack from the top. The first step arrives at now; each later step adds the
// time needed to cross from the previous one.
func UpdateTimesOnPath(steps *pathfind.StepStack, now time.Duration, speed float64, settings Settings) {
	var prev *pathfind.MovementStep
	steps.Each(func(step *pathfind.MovementStep) bool {
		if prev != nil {
			now += settings.StepDuration(isDiagonal(*prev, *step), speed)
		}
		step.SetTime(now)
		prev = step
		return true
	})
}
