package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/economy"
	"github.com/lixenwraith/skyhook/event"
	"github.com/lixenwraith/skyhook/input"
	"github.com/lixenwraith/skyhook/parameter"
)

// EnterHook runs once on each entry into Playing, after world reset and system Init
type EnterHook func(w *World) error

// Game owns the mode state machine and the tick schedule
// Menu -> Playing is the only transition
type Game struct {
	World *World

	router  *event.Router
	mode    core.GameMode
	onEnter []EnterHook
}

// NewGame creates a game in Menu mode
func NewGame(w *World) *Game {
	return &Game{
		World:  w,
		router: event.NewRouter(w.Resource.Event),
		mode:   core.ModeMenu,
	}
}

// AddSystem registers a system, and its event handler if it implements event.Handler
func (g *Game) AddSystem(s System) {
	g.World.AddSystem(s)
	if h, ok := s.(event.Handler); ok {
		g.router.Register(h)
	}
}

// OnEnterPlaying registers a world setup hook
func (g *Game) OnEnterPlaying(fn EnterHook) {
	g.onEnter = append(g.onEnter, fn)
}

// Mode returns the current mode
func (g *Game) Mode() core.GameMode {
	return g.mode
}

// StartPlaying transitions Menu -> Playing: resets world and resources, initializes systems, runs hooks
// No-op when already Playing
func (g *Game) StartPlaying() error {
	if g.mode == core.ModePlaying {
		return nil
	}

	w := g.World
	res := w.Resource
	w.Clear()
	res.Event.Clear()
	res.Clock.Reset()
	*res.Score = economy.Score{}
	*res.Spend = SpendResource{}
	*res.Spawn = SpawnResource{}
	*res.Shop = ShopResource{}
	*res.Cursor = CursorResource{}
	*res.Hints = HintResource{}
	res.Time.SimElapsed = 0
	res.Time.SimDelta = 0
	res.Time.Paused = false

	for _, s := range w.systems {
		s.Init()
	}
	for _, fn := range g.onEnter {
		if err := fn(w); err != nil {
			return fmt.Errorf("enter %s: %w", core.ModePlaying, err)
		}
	}

	g.mode = core.ModePlaying
	res.Log.Info().Str("mode", g.mode.String()).Int("entities", w.EntityCount()).Msg("mode entered")
	return nil
}

// Tick advances one frame
// Menu: waits for a start action or primary click
// Playing: advances clocks, dispatches events queued last tick, runs systems by priority
func (g *Game) Tick(realDelta time.Duration, in input.Snapshot) error {
	if realDelta < 0 {
		realDelta = 0
	}
	if realDelta > parameter.MaxTickDelta {
		realDelta = parameter.MaxTickDelta
	}

	res := g.World.Resource
	*res.Input = in
	res.Time.RealDelta = realDelta
	res.Time.RealElapsed += realDelta
	res.Time.FrameNumber++

	if g.mode == core.ModeMenu {
		if in.Pressed(input.ActionStart) || in.ButtonPressed(input.ButtonPrimary) {
			return g.StartPlaying()
		}
		return nil
	}

	res.Time.SimDelta = res.Clock.Advance(realDelta)
	res.Time.SimElapsed = res.Clock.Elapsed()
	res.Time.Paused = res.Clock.IsPaused()

	g.router.DispatchAll()
	g.World.Update()
	return nil
}
