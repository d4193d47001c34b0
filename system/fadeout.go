package system

import (
	"sync/atomic"

	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/status"
)

// FadeoutSystem fades material alpha linearly over simulation time and removes fully faded entities
// A fading composite parent drives the alpha of every member
type FadeoutSystem struct {
	engine.SystemBase

	enabled bool

	statFaded *atomic.Int64
}

// NewFadeoutSystem creates the fade-out stage
func NewFadeoutSystem(world *engine.World) engine.System {
	s := &FadeoutSystem{
		SystemBase: engine.NewSystemBase(world),
		statFaded:  world.Resource.Status.Ints.Get(status.KeyFaded),
	}
	s.Init()
	return s
}

func (s *FadeoutSystem) Init() {
	s.statFaded.Store(0)
	s.enabled = true
}

func (s *FadeoutSystem) Name() string {
	return "fadeout"
}

func (s *FadeoutSystem) Priority() int {
	return parameter.PriorityFadeout
}

func (s *FadeoutSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.Resource.Time.SimDelta
	if dt <= 0 {
		return
	}

	fades := s.Component.Fadeout
	for _, e := range fades.All() {
		f, ok := fades.Get(e)
		if !ok {
			continue
		}

		if f.Advance(dt) {
			s.World.DestroyEntity(e)
			s.statFaded.Add(1)
			continue
		}

		fades.Set(e, f)
		s.applyAlpha(e, f.Alpha)
	}
}

func (s *FadeoutSystem) applyAlpha(e core.Entity, alpha float64) {
	s.setAlpha(e, alpha)
	if header, ok := s.Component.Thingamajig.Get(e); ok {
		for _, m := range header.Members {
			s.setAlpha(m, alpha)
		}
	}
}

// setAlpha skips entities without material
func (s *FadeoutSystem) setAlpha(e core.Entity, alpha float64) {
	m, ok := s.Component.Material.Get(e)
	if !ok {
		return
	}
	m.Alpha = alpha
	s.Component.Material.Set(e, m)
}
