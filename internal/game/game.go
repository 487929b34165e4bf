package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/farmstead/internal/entity"
	"github.com/samdwyer/farmstead/internal/gamedata"
	"github.com/samdwyer/farmstead/internal/gametime"
	"github.com/samdwyer/farmstead/internal/npc"
	"github.com/samdwyer/farmstead/internal/pathfind"
	"github.com/samdwyer/farmstead/internal/telemetry"
	"github.com/samdwyer/farmstead/internal/ui"
	"github.com/samdwyer/farmstead/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	logger   logr.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	store    *world.PropertyStore
	scene    world.SceneName
	dims     world.GridDimensions
	villager *entity.NPC
	schedule *npc.Schedule
	finder   *pathfind.PathFinder
	path     *npc.Path
	mover    *npc.Mover
	clock    *gametime.Clock
	cursor   world.GridCoordinate
	state    State
	message  string
	running  bool
	lastTick time.Time
}

// New creates a new game instance on the terminal.
func New(ctx context.Context, cfg Config, logger logr.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := newGame(ctx, cfg, logger, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame loads the world and the controlled NPC. It is traced as game.init.
func newGame(ctx context.Context, cfg Config, logger logr.Logger, screen *ui.Screen) (*Game, error) {
	ctx, initSpan := telemetry.Tracer("game").Start(ctx, "game.init")
	defer initSpan.End()

	fail := func(err error) (*Game, error) {
		initSpan.RecordError(err)
		initSpan.SetStatus(codes.Error, "init failed")
		return nil, err
	}

	store, err := gamedata.LoadPropertyStore(ctx)
	if err != nil {
		return fail(err)
	}
	registry, err := gamedata.LoadNPCRegistry()
	if err != nil {
		return fail(err)
	}
	def, err := registry.Lookup(cfg.NPCID)
	if err != nil {
		return fail(err)
	}

	schedule, err := npc.ScheduleFromDefs(def.Schedule)
	if err != nil {
		return fail(err)
	}

	villager := entity.NewNPCFromDef(def)
	if cfg.Speed > 0 {
		villager.Speed = cfg.Speed
	}

	scene := cfg.Scene
	if scene == "" {
		scene = villager.Scene
	}
	if scene != villager.Scene {
		return fail(fmt.Errorf("%w: %s starts in %s", npc.ErrCrossScene, villager.Name, villager.Scene))
	}
	dims, ok := store.GridDimensions(scene)
	if !ok {
		return fail(fmt.Errorf("%w: %s", pathfind.ErrSceneNotConfigured, scene))
	}

	g := &Game{
		cfg:      cfg,
		logger:   logger.WithName("game"),
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		store:    store,
		scene:    scene,
		dims:     dims,
		villager: villager,
		schedule: schedule,
		clock:    gametime.NewClock(0, 0, 0),
		cursor:   villager.Position,
		state:    StateIdle,
		running:  true,
	}
	g.clock.Set(cfg.StartTime)

	if err := g.setOptions(ctx, cfg.Options); err != nil {
		return fail(err)
	}

	initSpan.SetAttributes(
		attribute.String("scene", scene.String()),
		attribute.String("npc.id", villager.ID),
		attribute.String("npc.name", villager.Name),
		attribute.Int("npc.start_x", villager.Position.X),
		attribute.Int("npc.start_y", villager.Position.Y),
	)
	g.logger.V(1).Info("initialized", "scene", scene, "npc", villager.Name, "at", villager.Position,
		"scheduleEvents", len(schedule.Events()))
	return g, nil
}

// setOptions rebuilds the navigator for new penalty settings. A journey in
// progress is planned again from the NPC's current cell.
func (g *Game) setOptions(ctx context.Context, opts pathfind.Options) error {
	finder, err := pathfind.New(g.store, opts)
	if err != nil {
		return err
	}
	nav, err := npc.NewNavigator(finder, g.logger)
	if err != nil {
		return err
	}

	var pending *npc.ScheduleEvent
	if g.path != nil && g.state == StateTravelling {
		pending = g.path.Event()
	}

	g.finder = finder
	g.path = npc.NewPath(g.villager, nav, npc.DefaultSettings())
	g.mover = npc.NewMover(g.path, g.logger)

	if pending != nil {
		g.follow(ctx, *pending)
	}
	return nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tickCtx, stopTicks := context.WithCancel(ctx)
	go tick(tickCtx, g.screen, g.cfg.TickInterval)

	g.lastTick = time.Now()
	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	stopTicks()
	g.Close()
	return nil
}

// tick wakes the event loop every interval until ctx ends.
func tick(ctx context.Context, screen *ui.Screen, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			// A dropped tick is harmless: the next one covers the elapsed time.
			_ = screen.PostEvent(tcell.NewEventInterrupt(t))
		}
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		now := time.Now()
		g.advance(ctx, now.Sub(g.lastTick))
		g.lastTick = now
	case nil:
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.moveCursor(0, 1)
	case tcell.KeyDown:
		g.moveCursor(0, -1)
	case tcell.KeyLeft:
		g.moveCursor(-1, 0)
	case tcell.KeyRight:
		g.moveCursor(1, 0)

	case tcell.KeyEnter:
		g.travel(ctx, g.cursor)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'p', 'P':
			opts := g.finder.Options()
			opts.ObserveMovementPenalties = !opts.ObserveMovementPenalties
			if err := g.setOptions(ctx, opts); err != nil {
				g.message = err.Error()
			}
		}
	}
}

// moveCursor shifts the cursor in grid coordinates, staying inside the scene.
func (g *Game) moveCursor(dx, dy int) {
	next := world.GridCoordinate{X: g.cursor.X + dx, Y: g.cursor.Y + dy}
	if g.dims.Contains(next) {
		g.cursor = next
	}
}

// travel sends the NPC towards target, starting at the current game time.
func (g *Game) travel(ctx context.Context, target world.GridCoordinate) {
	now := g.clock.Now()
	g.follow(ctx, npc.ScheduleEvent{
		Hour:             int(now / time.Hour),
		Minute:           int(now % time.Hour / time.Minute),
		ToScene:          g.scene,
		ToGridCoordinate: target,
	})
}

// follow plans the NPC's walk to an event's destination from the current
// game time.
func (g *Game) follow(ctx context.Context, event npc.ScheduleEvent) {
	target := event.ToGridCoordinate
	err := g.path.BuildPath(ctx, event, g.clock.Now())
	switch {
	case errors.Is(err, pathfind.ErrUnreachable):
		g.state = StateIdle
		g.message = fmt.Sprintf("%s cannot reach %s", g.villager.Name, target)
	case err != nil:
		g.state = StateIdle
		g.message = err.Error()
	case g.path.Steps().Len() == 0:
		g.state = StateIdle
		g.message = fmt.Sprintf("%s is already at %s", g.villager.Name, target)
	default:
		g.state = StateTravelling
		last := g.path.Steps().Steps()[g.path.Steps().Len()-1]
		g.message = fmt.Sprintf("%s walking to %s, %d steps, arriving %s",
			g.villager.Name, target, g.path.Steps().Len(), gametime.Format(last.Time()))
	}
}

// advance runs the clock by real elapsed time, starts any schedule event the
// clock passed and walks the NPC.
func (g *Game) advance(ctx context.Context, elapsed time.Duration) {
	prev := g.clock.Now()
	now := g.clock.Tick(elapsed)
	if event, ok := g.schedule.Due(prev, now, g.day(), g.cfg.Season, g.cfg.Weather); ok {
		g.logger.V(1).Info("schedule event due", "npc", g.villager.Name,
			"at", gametime.Format(event.Time()), "to", event.ToGridCoordinate)
		g.follow(ctx, event)
	}
	if g.state != StateTravelling {
		return
	}
	g.mover.Advance(now)
	if g.mover.Arrived() {
		g.state = StateIdle
		g.message = fmt.Sprintf("%s arrived at %s", g.villager.Name, g.villager.Position)
	}
}

// day returns the day of the season, counting midnights the clock passed.
func (g *Game) day() int {
	return g.cfg.Day + g.clock.Days()
}

// render draws the current frame.
func (g *Game) render() {
	g.renderer.Render(ui.View{
		Tiles:  g.store,
		Scene:  g.scene,
		Dims:   g.dims,
		NPC:    g.villager,
		Cursor: g.cursor,
		Steps:  g.path.Steps().Steps(),
		Status: g.status(),
	})
}

// status returns the lines shown below the scene.
func (g *Game) status() []string {
	penalties := "off"
	if g.finder.Options().ObserveMovementPenalties {
		penalties = "on"
	}
	return []string{
		fmt.Sprintf("day %d %s %s  %s  %s  %s %s  cursor %s  penalties %s",
			g.day(), g.cfg.Season, g.cfg.Weather, g.clock, g.state,
			g.villager.Name, g.villager.Position, g.cursor, penalties),
		g.message,
		"arrows: cursor  enter: walk  p: penalties  q: quit",
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
