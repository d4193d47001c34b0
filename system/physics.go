// Package system implements the gameplay stages run once per Playing tick
package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/physics"
)

// Physics is the query surface gameplay systems consume
type Physics interface {
	// RayCast returns the first collider along dir within maxDist, ignoring exclude
	RayCast(origin, dir mgl64.Vec3, maxDist float64, exclude core.Entity) (physics.RayHit, bool)
	// GroundProbe reports a contact within dist below the entity
	GroundProbe(e core.Entity, dist float64) bool
	Velocity(e core.Entity) (mgl64.Vec3, bool)
	SetVelocity(e core.Entity, v mgl64.Vec3) bool
	IsDynamic(e core.Entity) bool
}

// Stepper advances the physics backend by simulation time
type Stepper interface {
	Step(dt time.Duration)
}

// PhysicsSystem integrates bodies by the simulation delta, frozen while paused
type PhysicsSystem struct {
	engine.SystemBase
	stepper Stepper

	enabled bool
}

// NewPhysicsSystem creates the integration stage over a backend
func NewPhysicsSystem(world *engine.World, stepper Stepper) engine.System {
	s := &PhysicsSystem{
		SystemBase: engine.NewSystemBase(world),
		stepper:    stepper,
	}
	s.Init()
	return s
}

func (s *PhysicsSystem) Init() {
	s.enabled = true
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	if !s.enabled {
		return
	}
	if dt := s.Resource.Time.SimDelta; dt > 0 {
		s.stepper.Step(dt)
	}
}

// missingPlayerLogger rate-limits the per-tick missing singleton report
func missingPlayerLogger(res *engine.Resource, system string) zerolog.Logger {
	return res.Log.With().Str("system", system).Logger().
		Sample(&zerolog.BurstSampler{Burst: 1, Period: time.Second})
}
