package system

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/status"
)

// DespawnSystem removes tagged objects that fell below the player by more than DespawnY
type DespawnSystem struct {
	engine.SystemBase

	doomed  []core.Entity
	enabled bool
	missing zerolog.Logger

	statDespawned *atomic.Int64
}

// NewDespawnSystem creates the altitude despawn stage
func NewDespawnSystem(world *engine.World) engine.System {
	s := &DespawnSystem{
		SystemBase:    engine.NewSystemBase(world),
		missing:       missingPlayerLogger(world.Resource, "despawn"),
		statDespawned: world.Resource.Status.Ints.Get(status.KeyDespawned),
	}
	s.Init()
	return s
}

func (s *DespawnSystem) Init() {
	s.statDespawned.Store(0)
	s.enabled = true
}

func (s *DespawnSystem) Name() string {
	return "despawn"
}

func (s *DespawnSystem) Priority() int {
	return parameter.PriorityDespawn
}

func (s *DespawnSystem) Update() {
	if !s.enabled {
		return
	}

	e, err := s.World.PlayerEntity()
	if err != nil {
		s.missing.Error().Err(err).Msg("despawn skipped")
		return
	}
	ptr, ok := s.Component.Transform.Get(e)
	if !ok {
		return
	}
	threshold := ptr.Position.Y() + s.Resource.Config.Spawn.DespawnY

	s.doomed = s.doomed[:0]
	for _, f := range s.Component.FallingObject.All() {
		t, ok := s.Component.Transform.Get(f)
		if ok && t.Position.Y() < threshold {
			s.doomed = append(s.doomed, f)
		}
	}
	if len(s.doomed) == 0 {
		return
	}

	s.World.DestroyEntities(s.doomed)
	s.statDespawned.Add(int64(len(s.doomed)))
}
