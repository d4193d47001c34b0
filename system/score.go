package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/event"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/status"
)

// ScoreSystem queues earned points from events and reveals them on a real-time timer
type ScoreSystem struct {
	engine.SystemBase

	// sinceReveal accumulates real time toward the next reveal
	sinceReveal time.Duration

	enabled bool

	statTotal *atomic.Int64
}

// NewScoreSystem creates the score stage
func NewScoreSystem(world *engine.World) engine.System {
	s := &ScoreSystem{
		SystemBase: engine.NewSystemBase(world),
		statTotal:  world.Resource.Status.Ints.Get(status.KeyScoreTotal),
	}
	s.Init()
	return s
}

func (s *ScoreSystem) Init() {
	s.sinceReveal = 0
	s.statTotal.Store(0)
	s.enabled = true
}

func (s *ScoreSystem) Name() string {
	return "score"
}

func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

func (s *ScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventHeightReached,
		event.EventSmash,
	}
}

func (s *ScoreSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventHeightReached:
		if payload, ok := ev.Payload.(*event.HeightReachedPayload); ok {
			s.Resource.Score.EarnHeight(payload.Points)
		}
	case event.EventSmash:
		if payload, ok := ev.Payload.(*event.SmashPayload); ok {
			s.Resource.Score.EarnDestruction(payload.Points)
		}
	}
}

// Update fires the reveal timer at most once per tick
func (s *ScoreSystem) Update() {
	if !s.enabled {
		return
	}

	interval := s.Resource.Config.Score.RevealInterval
	s.sinceReveal += s.Resource.Time.RealDelta
	if s.sinceReveal < interval {
		return
	}
	s.sinceReveal -= interval
	if s.sinceReveal >= interval {
		s.sinceReveal = 0
	}

	score := s.Resource.Score
	if score.Reveal() {
		s.statTotal.Store(int64(min(score.Current.Total(), uint64(1<<63-1))))
	}
}
