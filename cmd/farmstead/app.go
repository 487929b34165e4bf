package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/urfave/cli/v3"

	"github.com/samdwyer/farmstead/internal/entity"
	"github.com/samdwyer/farmstead/internal/game"
	"github.com/samdwyer/farmstead/internal/gamedata"
	"github.com/samdwyer/farmstead/internal/gametime"
	"github.com/samdwyer/farmstead/internal/npc"
	"github.com/samdwyer/farmstead/internal/pathfind"
	"github.com/samdwyer/farmstead/internal/telemetry"
	"github.com/samdwyer/farmstead/internal/world"
)

// newApp builds the command tree. Every flag can also be set through a
// FARMSTEAD_* environment variable.
func newApp() *cli.Command {
	return &cli.Command{
		Name:           "farmstead",
		Usage:          "walk farm villagers around their scenes",
		DefaultCommand: "view",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "verbosity",
				Aliases: []string{"v"},
				Usage:   "highest log level written",
				Sources: cli.EnvVars("FARMSTEAD_VERBOSITY"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "view",
				Usage:  "open the terminal scene viewer",
				Flags:  append(append(searchFlags(""), npcFlags()...), viewFlags()...),
				Action: runView,
			},
			{
				Name:  "path",
				Usage: "print the timed route between two cells",
				Flags: append(searchFlags(string(world.SceneFarm)),
					&cli.StringFlag{
						Name:     "from",
						Usage:    "start cell as x,y",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination cell as x,y",
						Required: true,
					},
				),
				Action: runPath,
			},
		},
	}
}

// searchFlags are the path search and timing flags shared by subcommands.
func searchFlags(defaultScene string) []cli.Flag {
	defaults := pathfind.DefaultOptions()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "scene",
			Usage:   "scene to search",
			Value:   defaultScene,
			Sources: cli.EnvVars("FARMSTEAD_SCENE"),
		},
		&cli.BoolFlag{
			Name:    "no-penalties",
			Usage:   "ignore terrain movement penalties",
			Sources: cli.EnvVars("FARMSTEAD_NO_PENALTIES"),
		},
		&cli.IntFlag{
			Name:    "path-penalty",
			Usage:   "movement penalty of path cells",
			Value:   int64(defaults.PathMovementPenalty),
			Sources: cli.EnvVars("FARMSTEAD_PATH_PENALTY"),
		},
		&cli.IntFlag{
			Name:    "default-penalty",
			Usage:   "movement penalty of other walkable cells",
			Value:   int64(defaults.DefaultMovementPenalty),
			Sources: cli.EnvVars("FARMSTEAD_DEFAULT_PENALTY"),
		},
		&cli.FloatFlag{
			Name:    "speed",
			Usage:   "walking speed in cells per unit time (0 keeps the NPC's own)",
			Sources: cli.EnvVars("FARMSTEAD_SPEED"),
		},
		&cli.StringFlag{
			Name:    "at",
			Usage:   "game time of day to start walking, HH:MM[:SS]",
			Value:   "06:00:00",
			Sources: cli.EnvVars("FARMSTEAD_AT"),
		},
	}
}

func npcFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "npc",
			Usage:   "villager to control, by id from npcs.json",
			Value:   "butch",
			Sources: cli.EnvVars("FARMSTEAD_NPC"),
		},
		&cli.DurationFlag{
			Name:    "tick",
			Usage:   "real time between clock updates",
			Value:   game.DefaultConfig().TickInterval,
			Sources: cli.EnvVars("FARMSTEAD_TICK"),
		},
	}
}

// viewFlags configure the terminal viewer. Its log goes to a file because
// the screen owns the terminal.
func viewFlags() []cli.Flag {
	defaults := game.DefaultConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "append logs to this file; empty discards them",
			Sources: cli.EnvVars("FARMSTEAD_LOG_FILE"),
		},
		&cli.IntFlag{
			Name:    "day",
			Usage:   "day of the season, for schedule entries",
			Value:   int64(defaults.Day),
			Sources: cli.EnvVars("FARMSTEAD_DAY"),
		},
		&cli.StringFlag{
			Name:    "season",
			Usage:   "spring, summer, autumn or winter",
			Value:   defaults.Season.String(),
			Sources: cli.EnvVars("FARMSTEAD_SEASON"),
		},
		&cli.StringFlag{
			Name:    "weather",
			Usage:   "dry, raining or snowing",
			Value:   defaults.Weather.String(),
			Sources: cli.EnvVars("FARMSTEAD_WEATHER"),
		},
	}
}

// searchOptions reads the penalty flags.
func searchOptions(cmd *cli.Command) pathfind.Options {
	return pathfind.Options{
		ObserveMovementPenalties: !cmd.Bool("no-penalties"),
		PathMovementPenalty:      int(cmd.Int("path-penalty")),
		DefaultMovementPenalty:   int(cmd.Int("default-penalty")),
	}
}

// viewLogger opens the viewer's log. An empty path discards everything.
func viewLogger(path string, verbosity int) (logr.Logger, func() error, error) {
	if path == "" {
		return logr.Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("open log file: %w", err)
	}
	return telemetry.Logger(f, verbosity), f.Close, nil
}

// startTelemetry installs the trace and metric pipelines when an exporter is
// configured. The returned function flushes them.
func startTelemetry(ctx context.Context, logger logr.Logger) func() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return func() {}
	}

	shutdown, err := telemetry.Setup(ctx, logger)
	if err != nil {
		// Continue without telemetry - the game still works
		logger.Error(err, "telemetry setup failed, running without observability")
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			logger.Error(err, "shutting down telemetry")
		}
	}
}

func runView(ctx context.Context, cmd *cli.Command) error {
	logger, closeLog, err := viewLogger(cmd.String("log-file"), int(cmd.Root().Int("verbosity")))
	if err != nil {
		return err
	}
	defer closeLog()
	stop := startTelemetry(ctx, logger)
	defer stop()

	start, err := gametime.Parse(cmd.String("at"))
	if err != nil {
		return err
	}
	season, err := npc.ParseSeason(cmd.String("season"))
	if err != nil {
		return err
	}
	weather, err := npc.ParseWeather(cmd.String("weather"))
	if err != nil {
		return err
	}

	cfg := game.DefaultConfig()
	cfg.Scene = world.SceneName(cmd.String("scene"))
	cfg.NPCID = cmd.String("npc")
	cfg.Options = searchOptions(cmd)
	cfg.Speed = cmd.Float("speed")
	cfg.StartTime = start
	cfg.TickInterval = cmd.Duration("tick")
	cfg.Day = int(cmd.Int("day"))
	cfg.Season = season
	cfg.Weather = weather

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	return g.Run(ctx)
}

func runPath(ctx context.Context, cmd *cli.Command) error {
	logger := telemetry.Logger(os.Stderr, int(cmd.Root().Int("verbosity")))
	stop := startTelemetry(ctx, logger)
	defer stop()

	scene := world.SceneName(cmd.String("scene"))
	if !scene.Valid() {
		return fmt.Errorf("%w: %q", world.ErrUnknownScene, scene)
	}
	from, err := parseCoordinate(cmd.String("from"))
	if err != nil {
		return err
	}
	to, err := parseCoordinate(cmd.String("to"))
	if err != nil {
		return err
	}
	at, err := gametime.Parse(cmd.String("at"))
	if err != nil {
		return err
	}
	speed := cmd.Float("speed")
	if speed <= 0 {
		speed = entity.DefaultSpeed
	}

	store, err := gamedata.LoadPropertyStore(ctx)
	if err != nil {
		return err
	}
	finder, err := pathfind.New(store, searchOptions(cmd))
	if err != nil {
		return err
	}
	nav, err := npc.NewNavigator(finder, logger)
	if err != nil {
		return err
	}

	steps, err := nav.BuildPath(ctx, scene, from, to)
	if err != nil {
		return err
	}
	npc.UpdateTimesOnPath(steps, at, speed, npc.DefaultSettings())

	w := cmd.Root().Writer
	fmt.Fprintf(w, "%s %s -> %s: %d steps\n", scene, from, to, steps.Len())
	for i, step := range steps.Steps() {
		fmt.Fprintf(w, "%3d  %-10s %s  cost %d\n",
			i, step.GridCoordinate, gametime.Format(step.Time()), step.Cost)
	}
	return nil
}

// parseCoordinate reads a cell given as "x,y".
func parseCoordinate(s string) (world.GridCoordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return world.GridCoordinate{}, fmt.Errorf("invalid cell %q, want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return world.GridCoordinate{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return world.GridCoordinate{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return world.GridCoordinate{X: x, Y: y}, nil
}
