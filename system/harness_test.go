package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyhook/config"
	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/input"
	"github.com/lixenwraith/skyhook/physics"
)

const tick = 16 * time.Millisecond

// fakePhysics is a scripted query surface for controller tests
type fakePhysics struct {
	vel      map[core.Entity]mgl64.Vec3
	dynamic  map[core.Entity]bool
	grounded bool
	hit      physics.RayHit
	hasHit   bool
	maxDist  float64
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{
		vel:     make(map[core.Entity]mgl64.Vec3),
		dynamic: make(map[core.Entity]bool),
	}
}

func (f *fakePhysics) RayCast(origin, dir mgl64.Vec3, maxDist float64, exclude core.Entity) (physics.RayHit, bool) {
	f.maxDist = maxDist
	if !f.hasHit || f.hit.Entity == exclude {
		return physics.RayHit{}, false
	}
	return f.hit, true
}

func (f *fakePhysics) GroundProbe(core.Entity, float64) bool { return f.grounded }

func (f *fakePhysics) Velocity(e core.Entity) (mgl64.Vec3, bool) { return f.vel[e], true }

func (f *fakePhysics) SetVelocity(e core.Entity, v mgl64.Vec3) bool {
	f.vel[e] = v
	return true
}

func (f *fakePhysics) IsDynamic(e core.Entity) bool { return f.dynamic[e] }

type harness struct {
	t *testing.T
	g *engine.Game
	w *engine.World
}

// newHarness starts a game in Playing with the given systems and the standard world setup
func newHarness(t *testing.T, tune func(*config.Config), build func(w *engine.World) []engine.System) *harness {
	t.Helper()
	w := engine.NewTestWorld(42)
	if tune != nil {
		tune(w.Resource.Config)
	}
	g := engine.NewGame(w)
	for _, s := range build(w) {
		g.AddSystem(s)
	}
	g.OnEnterPlaying(SetupWorld)
	if err := g.StartPlaying(); err != nil {
		t.Fatalf("StartPlaying: %v", err)
	}
	return &harness{t: t, g: g, w: w}
}

func (h *harness) tick(d time.Duration, in input.Snapshot) {
	h.t.Helper()
	if err := h.g.Tick(d, in); err != nil {
		h.t.Fatalf("Tick: %v", err)
	}
}

func (h *harness) idle(n int, d time.Duration) {
	h.t.Helper()
	for i := 0; i < n; i++ {
		h.tick(d, input.Snapshot{})
	}
}

func (h *harness) player() core.Entity {
	h.t.Helper()
	e, err := h.w.PlayerEntity()
	if err != nil {
		h.t.Fatalf("player: %v", err)
	}
	return e
}

func (h *harness) setPlayerPos(p mgl64.Vec3) {
	e := h.player()
	tr, _ := h.w.Components.Transform.Get(e)
	tr.Position = p
	h.w.Components.Transform.Set(e, tr)
}
