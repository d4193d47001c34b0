package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyhook/component"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/input"
	"github.com/lixenwraith/skyhook/parameter"
)

func newFadeHarness(t *testing.T) (*harness, *SpawnSystem) {
	var spawner *SpawnSystem
	h := newHarness(t, nil, func(w *engine.World) []engine.System {
		spawner = NewSpawnSystem(w).(*SpawnSystem)
		return []engine.System{NewFadeoutSystem(w)}
	})
	return h, spawner
}

func TestFadeoutLinear(t *testing.T) {
	h, _ := newFadeHarness(t)
	e := addTarget(h.w, mgl64.Vec3{0, 5, 0}, component.FallingSphere)
	h.w.Components.Fadeout.Set(e, component.NewFadeout(parameter.FadeoutDuration))

	h.idle(100, 10*time.Millisecond)
	m, ok := h.w.Components.Material.Get(e)
	if !ok {
		t.Fatal("entity removed before the end of the fade")
	}
	if m.Alpha != 0.5 {
		t.Errorf("alpha at 1s = %v, want 0.5", m.Alpha)
	}

	h.idle(99, 10*time.Millisecond)
	if !h.w.Alive(e) {
		t.Fatal("entity removed early")
	}
	h.tick(10*time.Millisecond, input.Snapshot{})
	if h.w.Alive(e) {
		t.Error("entity alive after the full fade")
	}
}

func TestFadeoutHoldsWhilePaused(t *testing.T) {
	h, _ := newFadeHarness(t)
	e := addTarget(h.w, mgl64.Vec3{0, 5, 0}, component.FallingSphere)
	h.w.Components.Fadeout.Set(e, component.NewFadeout(parameter.FadeoutDuration))

	h.w.Resource.Clock.Pause(engine.PauseShop)
	h.idle(50, 100*time.Millisecond)
	f, _ := h.w.Components.Fadeout.Get(e)
	if f.Elapsed != 0 || f.Alpha != 1 {
		t.Errorf("fade progressed while paused: %+v", f)
	}
}

func TestFadeoutComposite(t *testing.T) {
	h, s := newFadeHarness(t)
	before := h.w.EntityCount()
	header := s.SpawnThingamajig(mgl64.Vec3{0, 80, 0}, component.ShapeSphereShell)
	h.w.Components.Fadeout.Set(header, component.NewFadeout(parameter.FadeoutDuration))

	h.idle(10, 100*time.Millisecond)
	tc, _ := h.w.Components.Thingamajig.Get(header)
	for _, m := range tc.Members {
		mat, _ := h.w.Components.Material.Get(m)
		if mat.Alpha != 0.5 {
			t.Fatalf("member alpha = %v, want 0.5", mat.Alpha)
		}
	}

	h.idle(10, 100*time.Millisecond)
	if got := h.w.EntityCount(); got != before {
		t.Errorf("entities after fade = %d, want %d", got, before)
	}
}

func TestScoreRevealRunsOnRealTime(t *testing.T) {
	h := newHarness(t, nil, func(w *engine.World) []engine.System {
		return []engine.System{NewScoreSystem(w)}
	})
	score := h.w.Resource.Score
	score.EarnDestruction(3)
	score.EarnHeight(1)

	h.w.Resource.Clock.Pause(engine.PauseShop)
	// 200ms interval, one reveal per two 100ms ticks
	h.idle(2, 100*time.Millisecond)
	if score.Current.Destruction != 1 || score.Current.Height != 1 {
		t.Fatalf("after one reveal: %+v", score.Current)
	}
	h.idle(4, 100*time.Millisecond)
	if score.Current.Destruction != 3 || score.Pending() {
		t.Errorf("after three reveals: current %+v pending %v", score.Current, score.Pending())
	}
}
