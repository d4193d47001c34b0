package system

import (
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyhook/component"
	"github.com/lixenwraith/skyhook/config"
	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/status"
	"github.com/lixenwraith/skyhook/vmath"
)

// maxAttemptsPerTick bounds accumulator catch-up; beyond it the accumulator resyncs
const maxAttemptsPerTick = 256

var staticSphereColor = mgl64.Vec3{0.5, 0.5, 0.5}

// SpawnSystem populates the world around the player on two accumulator-driven tiers
// Accumulators track simulation time, so a paused clock credits no attempts
type SpawnSystem struct {
	engine.SystemBase

	// Simulation time up to which each tier has attempted spawns
	tier1At time.Duration
	tier2At time.Duration

	enabled bool
	missing zerolog.Logger

	statTier1    *status.AtomicFloat
	statTier2    *status.AtomicFloat
	statSpawned  *atomic.Int64
	statRejected *atomic.Int64
}

// NewSpawnSystem creates the spawn director
func NewSpawnSystem(world *engine.World) engine.System {
	res := world.Resource
	s := &SpawnSystem{
		SystemBase: engine.NewSystemBase(world),
		missing:    missingPlayerLogger(res, "spawn"),

		statTier1:    res.Status.Floats.Get(status.KeyTier1Interval),
		statTier2:    res.Status.Floats.Get(status.KeyTier2Interval),
		statSpawned:  res.Status.Ints.Get(status.KeySpawned),
		statRejected: res.Status.Ints.Get(status.KeyRejected),
	}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.tier1At = s.Resource.Time.SimElapsed
	s.tier2At = s.Resource.Time.SimElapsed
	s.statSpawned.Store(0)
	s.statRejected.Store(0)
	s.enabled = true
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	e, err := s.World.PlayerEntity()
	if err != nil {
		s.missing.Error().Err(err).Msg("spawn skipped")
		return
	}
	ptr, ok := s.Component.Transform.Get(e)
	if !ok {
		return
	}
	player := ptr.Position

	settings := s.Resource.Spawn
	settings.Tier1, settings.Tier2 = TierIntervals(s.Resource.Config.Spawn.Tiers, player.Y())
	s.statTier1.Set(float64(settings.Tier1.Milliseconds()))
	s.statTier2.Set(float64(settings.Tier2.Milliseconds()))

	if s.Resource.Clock.IsPaused() {
		return
	}
	now := s.Resource.Time.SimElapsed
	s.tier1At = s.drain(s.tier1At, now, settings.Tier1, func() { s.attemptTier1(player) })
	s.tier2At = s.drain(s.tier2At, now, settings.Tier2, func() { s.attemptTier2(player) })
}

// TierIntervals returns the first table row whose threshold is below y
// Rows are ordered by descending AboveY; no matching row disables both tiers
func TierIntervals(tiers []config.TierConfig, y float64) (time.Duration, time.Duration) {
	for _, t := range tiers {
		if y > t.AboveY {
			return t.Tier1, t.Tier2
		}
	}
	return 0, 0
}

// drain runs one attempt per interval until the accumulator reaches now
// Non-positive interval resyncs to now without attempting
func (s *SpawnSystem) drain(at, now, interval time.Duration, attempt func()) time.Duration {
	if interval <= 0 {
		return now
	}
	for n := 0; at < now; n++ {
		if n == maxAttemptsPerTick {
			s.Resource.Log.Warn().Dur("behind", now-at).Dur("interval", interval).Msg("spawn accumulator resynced")
			return now
		}
		attempt()
		at += interval
	}
	return at
}

// attemptTier1 spawns a static sphere obstacle or a falling sphere
func (s *SpawnSystem) attemptTier1(player mgl64.Vec3) {
	cfg := &s.Resource.Config.Spawn
	rng := s.Resource.Rand

	if rng.Float64() < cfg.StaticSphereChance {
		pos := player.Add(mgl64.Vec3{
			s.uniform(parameter.StaticSphereSpread),
			s.uniform(parameter.StaticSphereSpread),
			s.uniform(parameter.StaticSphereSpread),
		})
		s.SpawnStaticSphere(pos)
		return
	}

	pos := player.Add(mgl64.Vec3{
		s.uniform(parameter.FallingSphereSpread),
		parameter.FallingSphereHeight,
		s.uniform(parameter.FallingSphereSpread),
	})
	s.spawnFallingSphere(pos)
}

// attemptTier2 gates on ThingamajigChance, then spawns a composite
func (s *SpawnSystem) attemptTier2(player mgl64.Vec3) {
	rng := s.Resource.Rand
	if rng.Float64() >= s.Resource.Config.Spawn.ThingamajigChance {
		return
	}
	center := player.Add(mgl64.Vec3{
		s.uniform(parameter.ThingamajigSpread),
		parameter.ThingamajigHeight,
		s.uniform(parameter.ThingamajigSpread),
	})
	shape := component.ShapeHollowBox
	if rng.IntN(2) == 1 {
		shape = component.ShapeSphereShell
	}
	s.SpawnThingamajig(center, shape)
}

// SpawnStaticSphere creates a large static obstacle unless another lies within MinSphereDistance
// Returns NoEntity on rejection
func (s *SpawnSystem) SpawnStaticSphere(pos mgl64.Vec3) core.Entity {
	minSq := s.Resource.Config.Spawn.MinSphereDistance
	spheres := s.Component.StaticSphere
	for _, other := range spheres.All() {
		if t, ok := s.Component.Transform.Get(other); ok && vmath.DistSq(t.Position, pos) < minSq {
			s.statRejected.Add(1)
			return core.NoEntity
		}
	}

	w := s.World
	e := engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		w.Components.Transform, component.NewTransform(pos)),
		w.Components.Collider, component.Sphere(parameter.StaticSphereRadius)),
		w.Components.Material, component.NewMaterial(staticSphereColor)),
		w.Components.FallingObject, component.FallingObjectComponent{Kind: component.FallingStaticSphere}),
		w.Components.StaticSphere, component.StaticSphereComponent{}).Build()
	s.statSpawned.Add(1)
	return e
}

func (s *SpawnSystem) spawnFallingSphere(pos mgl64.Vec3) core.Entity {
	w := s.World
	e := engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		w.Components.Transform, component.NewTransform(pos)),
		w.Components.Body, component.BodyComponent{
			Kind:         component.BodyDynamic,
			Velocity:     mgl64.Vec3{0, parameter.FallingSphereVelocity, 0},
			GravityScale: 1,
		}),
		w.Components.Collider, component.Sphere(parameter.FallingSphereRadius)),
		w.Components.Material, component.NewMaterial(s.randomColor())),
		w.Components.FallingObject, component.FallingObjectComponent{Kind: component.FallingSphere}).Build()
	s.statSpawned.Add(1)
	return e
}

// SpawnThingamajig builds a composite of static cuboids around center
// Rejected with NoEntity when another composite center lies within MinThingamajigDistance
func (s *SpawnSystem) SpawnThingamajig(center mgl64.Vec3, shape component.ThingamajigShape) core.Entity {
	minSq := s.Resource.Config.Spawn.MinThingamajigDistance
	for _, other := range s.Component.Thingamajig.All() {
		if t, ok := s.Component.Transform.Get(other); ok && vmath.DistSq(t.Position, center) < minSq {
			s.statRejected.Add(1)
			return core.NoEntity
		}
	}

	w := s.World
	offsets := thingamajigOffsets(shape)
	color := s.randomColor()
	half := mgl64.Vec3{parameter.ThingamajigCubeHalf, parameter.ThingamajigCubeHalf, parameter.ThingamajigCubeHalf}

	header := w.CreateEntity()
	members := make([]core.Entity, 0, len(offsets))
	for _, o := range offsets {
		m := engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
			w.Components.Transform, component.NewTransform(center.Add(o))),
			w.Components.Collider, component.Cuboid(half)),
			w.Components.Material, component.NewMaterial(color)),
			w.Components.Member, component.MemberComponent{Header: header}).Build()
		members = append(members, m)
	}

	w.Components.Transform.Set(header, component.NewTransform(center))
	w.Components.Thingamajig.Set(header, component.ThingamajigComponent{
		Shape:      shape,
		Members:    members,
		HalfExtent: boundingHalf(offsets, parameter.ThingamajigCubeHalf),
	})
	w.Components.FallingObject.Set(header, component.FallingObjectComponent{Kind: component.FallingThingamajig})

	s.statSpawned.Add(1)
	s.Resource.Log.Debug().
		Str("shape", shape.String()).
		Int("members", len(members)).
		Float64("y", center.Y()).
		Msg("thingamajig spawned")
	return header
}

// uniform returns a value in [-spread, spread)
func (s *SpawnSystem) uniform(spread float64) float64 {
	return (s.Resource.Rand.Float64()*2 - 1) * spread
}

func (s *SpawnSystem) randomColor() mgl64.Vec3 {
	rng := s.Resource.Rand
	channel := func() float64 {
		return vmath.Lerp(parameter.ColorMin, parameter.ColorMax, rng.Float64())
	}
	return mgl64.Vec3{channel(), channel(), channel()}
}
