package system

import (
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/event"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/status"
)

// shopHintIcon marks hints that teach the shop key
const shopHintIcon = "key_tab"

// HintSystem fires each altitude hint once and shows queued hints one at a time in FIFO order
// Display time runs on real time
type HintSystem struct {
	engine.SystemBase

	fired []bool

	enabled bool

	statHint *status.AtomicString
}

// NewHintSystem creates the hint stage
func NewHintSystem(world *engine.World) engine.System {
	s := &HintSystem{
		SystemBase: engine.NewSystemBase(world),
		statHint:   world.Resource.Status.Strings.Get(status.KeyHint),
	}
	s.Init()
	return s
}

func (s *HintSystem) Init() {
	s.fired = make([]bool, len(s.Resource.Config.Hints))
	s.statHint.Store("")
	s.enabled = true
}

func (s *HintSystem) Name() string {
	return "hint"
}

func (s *HintSystem) Priority() int {
	return parameter.PriorityHint
}

func (s *HintSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventShopToggled}
}

// HandleEvent retires shop hints once the shop has been opened
func (s *HintSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.ShopToggledPayload)
	if !ok || !payload.Open {
		return
	}

	hints := s.Resource.Hints
	for i, h := range s.Resource.Config.Hints {
		if h.Icon == shopHintIcon && i < len(s.fired) {
			s.fired[i] = true
		}
	}
	kept := hints.Queue[:0]
	for _, h := range hints.Queue {
		if h.Icon != shopHintIcon {
			kept = append(kept, h)
		}
	}
	hints.Queue = kept
	if hints.Current != nil && hints.Current.Icon == shopHintIcon {
		hints.Current = nil
		hints.Remaining = 0
	}
}

func (s *HintSystem) Update() {
	if !s.enabled {
		return
	}

	hints := s.Resource.Hints
	if e, err := s.World.PlayerEntity(); err == nil {
		if t, ok := s.Component.Transform.Get(e); ok {
			for i, h := range s.Resource.Config.Hints {
				if i < len(s.fired) && !s.fired[i] && t.Position.Y() > h.AboveY {
					s.fired[i] = true
					hints.Push(engine.Hint{Text: h.Text, Icon: h.Icon, Duration: h.Duration})
				}
			}
		}
	}

	if hints.Current != nil {
		hints.Remaining -= s.Resource.Time.RealDelta
		if hints.Remaining <= 0 {
			hints.Current = nil
		}
	}
	if hints.Current == nil && len(hints.Queue) > 0 {
		next := hints.Queue[0]
		hints.Queue = hints.Queue[1:]
		hints.Current = &next
		hints.Remaining = next.Duration
	}

	if hints.Current != nil {
		s.statHint.Store(hints.Current.Text)
	} else {
		s.statHint.Store("")
	}
}
