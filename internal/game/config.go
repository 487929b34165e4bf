package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/samdwyer/farmstead/internal/npc"
	"github.com/samdwyer/farmstead/internal/pathfind"
	"github.com/samdwyer/farmstead/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Scene to show. Empty means the scene the NPC starts in.
	Scene world.SceneName
	// NPCID selects the villager to control from npcs.json.
	NPCID string
	// Options configures terrain penalties for path searches.
	Options pathfind.Options
	// Speed overrides the NPC's walking speed when positive.
	Speed float64
	// StartTime is the game clock's time of day at startup.
	StartTime time.Duration
	// TickInterval is how often the clock and NPC movement advance.
	TickInterval time.Duration
	// Day, Season and Weather select which schedule entries apply.
	Day     int
	Season  npc.Season
	Weather npc.Weather
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		NPCID:        "butch",
		Options:      pathfind.DefaultOptions(),
		StartTime:    6 * time.Hour,
		TickInterval: 50 * time.Millisecond,
		Day:          1,
		Season:       npc.SeasonSpring,
		Weather:      npc.WeatherDry,
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Scene != "" && !c.Scene.Valid() {
		return fmt.Errorf("%w: %q", world.ErrUnknownScene, c.Scene)
	}
	if c.NPCID == "" {
		return errors.New("game: no npc selected")
	}
	if c.Speed < 0 {
		return fmt.Errorf("game: negative speed %g", c.Speed)
	}
	if c.StartTime < 0 || c.StartTime >= 24*time.Hour {
		return fmt.Errorf("game: start time %s is not a time of day", c.StartTime)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("game: tick interval must be positive, got %s", c.TickInterval)
	}
	if c.Day < 1 {
		return fmt.Errorf("game: day must be at least 1, got %d", c.Day)
	}
	if c.Season <= npc.SeasonNone || c.Season > npc.SeasonWinter {
		return fmt.Errorf("game: no season selected")
	}
	if c.Weather <= npc.WeatherNone || c.Weather > npc.WeatherSnowing {
		return fmt.Errorf("game: no weather selected")
	}
	return c.Options.Validate()
}
