package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyhook/component"
	"github.com/lixenwraith/skyhook/config"
	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/input"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/status"
)

func TestTierIntervals(t *testing.T) {
	tiers := config.Default().Spawn.Tiers
	ms := time.Millisecond

	tests := []struct {
		name         string
		y            float64
		tier1, tier2 time.Duration
	}{
		{"ground", 0.5, 20 * ms, 0},
		{"boundary 100 stays low", 100, 20 * ms, 0},
		{"above 100", 100.1, 40 * ms, 0},
		{"above 200", 250, 70 * ms, 0},
		{"boundary 300", 300, 70 * ms, 0},
		{"above 300", 301, 80 * ms, 400 * ms},
		{"very high", 1e300, 80 * ms, 400 * ms},
		{"deep below", -1e300, 20 * ms, 0},
		{"negative infinity", math.Inf(-1), 0, 0},
		{"nan", math.NaN(), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t1, t2 := TierIntervals(tiers, tt.y)
			if t1 != tt.tier1 || t2 != tt.tier2 {
				t.Errorf("TierIntervals(%v) = %v, %v; want %v, %v", tt.y, t1, t2, tt.tier1, tt.tier2)
			}
		})
	}
}

func spawnAttempts(w *engine.World) int64 {
	return w.Resource.Status.Ints.Get(status.KeySpawned).Load() +
		w.Resource.Status.Ints.Get(status.KeyRejected).Load()
}

func TestSpawnCadence(t *testing.T) {
	h := newHarness(t, nil, func(w *engine.World) []engine.System {
		return []engine.System{NewSpawnSystem(w)}
	})

	// 20ms tier 1 at ground level: one second of sim time makes 50 attempts
	h.idle(10, 100*time.Millisecond)
	if got := spawnAttempts(h.w); got != 50 {
		t.Errorf("attempts after 1s = %d, want 50", got)
	}
	if got := h.w.Components.Thingamajig.Count(); got != 0 {
		t.Errorf("thingamajigs at ground level = %d, want 0", got)
	}
}

func TestSpawnPauseGivesNoCredit(t *testing.T) {
	h := newHarness(t, nil, func(w *engine.World) []engine.System {
		return []engine.System{NewSpawnSystem(w)}
	})

	h.idle(5, 100*time.Millisecond)
	before := spawnAttempts(h.w)

	h.w.Resource.Clock.Pause(engine.PauseShop)
	h.idle(50, 100*time.Millisecond)
	if got := spawnAttempts(h.w); got != before {
		t.Fatalf("attempts while paused = %d, want %d", got, before)
	}

	h.w.Resource.Clock.Resume(engine.PauseShop)
	h.tick(tick, input.Snapshot{})
	if got := spawnAttempts(h.w) - before; got > 1 {
		t.Errorf("attempts on the first tick after resume = %d, want at most 1", got)
	}
}

func TestSpawnCatchUpBounded(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Spawn.Tiers = []config.TierConfig{{AboveY: -1e308, Tier1: time.Microsecond}}
	}, func(w *engine.World) []engine.System {
		return []engine.System{NewSpawnSystem(w)}
	})

	h.tick(100*time.Millisecond, input.Snapshot{})
	if got := spawnAttempts(h.w); got != maxAttemptsPerTick {
		t.Errorf("attempts = %d, want cap %d", got, maxAttemptsPerTick)
	}
}

// newSpawner returns a harness with despawn running and an unscheduled spawner for direct calls
func newSpawner(t *testing.T) (*harness, *SpawnSystem) {
	var spawner *SpawnSystem
	h := newHarness(t, nil, func(w *engine.World) []engine.System {
		spawner = NewSpawnSystem(w).(*SpawnSystem)
		return []engine.System{NewDespawnSystem(w)}
	})
	return h, spawner
}

func TestStaticSphereSpacing(t *testing.T) {
	_, s := newSpawner(t)
	base := mgl64.Vec3{0, 50, 0}

	if s.SpawnStaticSphere(base) == core.NoEntity {
		t.Fatal("first sphere rejected")
	}
	// 31^2 = 961 < 1000
	if s.SpawnStaticSphere(base.Add(mgl64.Vec3{31, 0, 0})) != core.NoEntity {
		t.Error("sphere within minimum distance accepted")
	}
	// 32^2 = 1024
	if s.SpawnStaticSphere(base.Add(mgl64.Vec3{32, 0, 0})) == core.NoEntity {
		t.Error("sphere outside minimum distance rejected")
	}
	if got := s.Component.StaticSphere.Count(); got != 2 {
		t.Errorf("static spheres = %d, want 2", got)
	}
}

func TestThingamajigSpacing(t *testing.T) {
	_, s := newSpawner(t)
	base := mgl64.Vec3{0, 100, 0}

	if s.SpawnThingamajig(base, component.ShapeHollowBox) == core.NoEntity {
		t.Fatal("first composite rejected")
	}
	// 70^2 = 4900 < 5000
	if s.SpawnThingamajig(base.Add(mgl64.Vec3{70, 0, 0}), component.ShapeSphereShell) != core.NoEntity {
		t.Error("composite within minimum distance accepted")
	}
	// 71^2 = 5041
	if s.SpawnThingamajig(base.Add(mgl64.Vec3{0, 0, 71}), component.ShapeSphereShell) == core.NoEntity {
		t.Error("composite outside minimum distance rejected")
	}
}

func TestThingamajigShapes(t *testing.T) {
	tests := []struct {
		shape   component.ThingamajigShape
		members int
	}{
		{component.ShapeHollowBox, 152},
		{component.ShapeSphereShell, 146},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			_, s := newSpawner(t)
			center := mgl64.Vec3{10, 120, -30}
			header := s.SpawnThingamajig(center, tt.shape)

			tc, ok := s.Component.Thingamajig.Get(header)
			if !ok {
				t.Fatal("header lacks composite state")
			}
			if len(tc.Members) != tt.members {
				t.Fatalf("members = %d, want %d", len(tc.Members), tt.members)
			}

			limit := tc.HalfExtent - parameter.ThingamajigCubeHalf
			for _, m := range tc.Members {
				if _, ok := s.Component.Body.Get(m); ok {
					t.Fatal("members must be static")
				}
				mc, _ := s.Component.Member.Get(m)
				if mc.Header != header {
					t.Fatalf("member header = %d, want %d", mc.Header, header)
				}
				tr, _ := s.Component.Transform.Get(m)
				d := tr.Position.Sub(center)
				for i := 0; i < 3; i++ {
					if math.Abs(d[i]) > limit+1e-9 {
						t.Fatalf("member offset %v outside half extent %v", d, tc.HalfExtent)
					}
				}
			}
		})
	}
}

func TestDespawnCompositeRemovesMembers(t *testing.T) {
	h, s := newSpawner(t)
	before := h.w.EntityCount()

	header := s.SpawnThingamajig(mgl64.Vec3{0, -200, 0}, component.ShapeHollowBox)
	keep := s.SpawnThingamajig(mgl64.Vec3{0, 50, 0}, component.ShapeSphereShell)
	if got := h.w.EntityCount() - before; got != 2+152+146 {
		t.Fatalf("spawned entities = %d, want %d", got, 2+152+146)
	}

	h.tick(tick, input.Snapshot{})
	if h.w.Alive(header) {
		t.Error("composite below the despawn line survived")
	}
	if got := h.w.EntityCount() - before; got != 1+146 {
		t.Errorf("entities after despawn = %d, want %d", got, 1+146)
	}
	if !h.w.Alive(keep) {
		t.Error("composite above the despawn line removed")
	}
	if got := h.w.Resource.Status.Ints.Get(status.KeyDespawned).Load(); got != 1 {
		t.Errorf("despawned = %d, want 1", got)
	}
}

func TestDespawnFollowsPlayer(t *testing.T) {
	h, s := newSpawner(t)
	s.SpawnStaticSphere(mgl64.Vec3{0, 150, 0})

	h.tick(tick, input.Snapshot{})
	if got := s.Component.StaticSphere.Count(); got != 1 {
		t.Fatalf("sphere removed while player on the ground")
	}

	h.setPlayerPos(mgl64.Vec3{0, 251, 0})
	h.tick(tick, input.Snapshot{})
	if got := s.Component.StaticSphere.Count(); got != 0 {
		t.Errorf("sphere 101 below player survived")
	}
}

func fallingSpheres(w *engine.World) int {
	n := 0
	for _, e := range w.Components.FallingObject.All() {
		if f, _ := w.Components.FallingObject.Get(e); f.Kind == component.FallingSphere {
			n++
		}
	}
	return n
}

func TestTier1StaticShare(t *testing.T) {
	h := newHarness(t, nil, func(w *engine.World) []engine.System {
		return []engine.System{NewSpawnSystem(w)}
	})

	// 10s at ground level: 500 tier 1 attempts, no tier 2
	h.idle(100, 100*time.Millisecond)
	attempts := spawnAttempts(h.w)
	if attempts != 500 {
		t.Fatalf("attempts = %d, want 500", attempts)
	}
	if got := h.w.Components.Thingamajig.Count(); got != 0 {
		t.Fatalf("thingamajigs at ground level = %d, want 0", got)
	}

	// Every attempt that did not make a falling sphere rolled a static sphere, accepted or rejected
	static := attempts - int64(fallingSpheres(h.w))
	share := float64(static) / float64(attempts)
	if share < 0.06 || share > 0.14 {
		t.Errorf("static share = %.3f (%d of %d), want near %v", share, static, attempts, parameter.StaticSphereChance)
	}
	if got := int64(h.w.Components.StaticSphere.Count()); got > static {
		t.Errorf("static spheres = %d exceed static rolls %d", got, static)
	}
}

func TestTier2ChanceGate(t *testing.T) {
	tests := []struct {
		name     string
		chance   float64
		min, max int64
	}{
		{"never", 0, 0, 0},
		{"default", parameter.ThingamajigChance, 5, 30},
		{"always", 1, 150, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, func(c *config.Config) {
				c.Spawn.StaticSphereChance = 0
				c.Spawn.ThingamajigChance = tt.chance
			}, func(w *engine.World) []engine.System {
				return []engine.System{NewSpawnSystem(w)}
			})
			h.setPlayerPos(mgl64.Vec3{0, 400, 0})

			// 60s above 300: 150 tier 2 attempts at 400ms
			h.idle(600, 100*time.Millisecond)

			// Without static spheres every rejection is a composite that passed the gate
			built := int64(h.w.Components.Thingamajig.Count())
			passed := built + h.w.Resource.Status.Ints.Get(status.KeyRejected).Load()
			if passed < tt.min || passed > tt.max {
				t.Errorf("gate passes = %d, want within [%d, %d]", passed, tt.min, tt.max)
			}
			if tt.chance > 0 && built == 0 {
				t.Error("no thingamajig built above 300")
			}
			for _, e := range h.w.Components.Thingamajig.All() {
				tr, _ := h.w.Components.Transform.Get(e)
				if tr.Position.Y() != 400+parameter.ThingamajigHeight {
					t.Fatalf("composite y = %v, want %v", tr.Position.Y(), 400+parameter.ThingamajigHeight)
				}
			}
		})
	}
}

func TestTier2StopsBelowThreshold(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Spawn.StaticSphereChance = 0
		c.Spawn.ThingamajigChance = 1
	}, func(w *engine.World) []engine.System {
		return []engine.System{NewSpawnSystem(w)}
	})
	rejected := h.w.Resource.Status.Ints.Get(status.KeyRejected)
	tier2 := func() int64 {
		return int64(h.w.Components.Thingamajig.Count()) + rejected.Load()
	}

	h.setPlayerPos(mgl64.Vec3{0, 400, 0})
	h.idle(20, 100*time.Millisecond)
	if got := tier2(); got != 5 {
		t.Fatalf("tier 2 attempts over 2s = %d, want 5", got)
	}
	if h.w.Components.Thingamajig.Count() == 0 {
		t.Fatal("no thingamajig built above 300")
	}

	h.setPlayerPos(mgl64.Vec3{0, 50, 0})
	h.idle(600, 100*time.Millisecond)
	if got := tier2(); got != 5 {
		t.Errorf("tier 2 attempts after descending = %d, want 5", got)
	}

	// Climbing back resumes at the normal cadence with no credit for the time below
	h.setPlayerPos(mgl64.Vec3{0, 400, 0})
	h.tick(100*time.Millisecond, input.Snapshot{})
	if got := tier2() - 5; got != 1 {
		t.Errorf("tier 2 attempts on the first tick back = %d, want 1", got)
	}
}
