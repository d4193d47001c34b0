package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/event"
	"github.com/lixenwraith/skyhook/input"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/status"
)

// DiagnosticsSystem toggles the debug panel and publishes engine metrics
type DiagnosticsSystem struct {
	engine.SystemBase

	// FPS window over real time
	frames int
	window time.Duration

	enabled bool

	statTicks    *atomic.Int64
	statFPS      *status.AtomicFloat
	statPaused   *atomic.Bool
	statEntities *atomic.Int64
}

// NewDiagnosticsSystem creates the diagnostics stage
func NewDiagnosticsSystem(world *engine.World) engine.System {
	reg := world.Resource.Status
	s := &DiagnosticsSystem{
		SystemBase:   engine.NewSystemBase(world),
		statTicks:    reg.Ints.Get(status.KeyTicks),
		statFPS:      reg.Floats.Get(status.KeyFPS),
		statPaused:   reg.Bools.Get(status.KeyPaused),
		statEntities: reg.Ints.Get(status.KeyEntities),
	}
	s.Init()
	return s
}

func (s *DiagnosticsSystem) Init() {
	s.frames = 0
	s.window = 0
	s.enabled = true
}

func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventUpgradePurchased}
}

func (s *DiagnosticsSystem) HandleEvent(ev event.GameEvent) {
	if payload, ok := ev.Payload.(*event.UpgradePurchasedPayload); ok {
		s.Resource.Log.Info().
			Str("track", payload.Track).
			Uint32("level", payload.Level).
			Uint64("price", payload.Price).
			Int64("frame", ev.Frame).
			Msg("upgrade purchased")
	}
}

func (s *DiagnosticsSystem) Update() {
	if !s.enabled {
		return
	}

	res := s.Resource
	if res.Input.Pressed(input.ActionDebug) {
		res.Debug.Visible = !res.Debug.Visible
	}

	s.frames++
	s.window += res.Time.RealDelta
	if s.window >= parameter.FPSWindow {
		res.Debug.FPS = float64(s.frames) / s.window.Seconds()
		s.statFPS.Set(res.Debug.FPS)
		s.frames = 0
		s.window = 0
	}

	s.statTicks.Store(res.Time.FrameNumber)
	s.statPaused.Store(res.Clock.IsPaused())
	s.statEntities.Store(int64(s.World.EntityCount()))
}
