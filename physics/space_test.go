package physics

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyhook/component"
	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/parameter"
)

func addStatic(w *engine.World, pos mgl64.Vec3, c component.ColliderComponent) core.Entity {
	return engine.With(engine.With(w.NewEntity(),
		w.Components.Transform, component.NewTransform(pos)),
		w.Components.Collider, c).Build()
}

func addDynamic(w *engine.World, pos mgl64.Vec3, c component.ColliderComponent, body component.BodyComponent) core.Entity {
	body.Kind = component.BodyDynamic
	e := addStatic(w, pos, c)
	w.Components.Body.Set(e, body)
	return e
}

func addGround(w *engine.World) core.Entity {
	return addStatic(w, mgl64.Vec3{0, parameter.GroundY, 0},
		component.Cuboid(mgl64.Vec3{parameter.GroundHalfX, parameter.GroundHalfY, parameter.GroundHalfZ}))
}

func TestRayCastNearestAndExclude(t *testing.T) {
	w := engine.NewTestWorld(1)
	s := NewSpace(w)

	near := addStatic(w, mgl64.Vec3{0, 0, -10}, component.Sphere(1))
	far := addStatic(w, mgl64.Vec3{0, 0, -20}, component.Cuboid(mgl64.Vec3{1, 1, 1}))

	hit, ok := s.RayCast(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 40, core.NoEntity)
	if !ok || hit.Entity != near {
		t.Fatalf("hit = %+v, want entity %d", hit, near)
	}
	if math.Abs(hit.Distance-9) > 1e-9 {
		t.Errorf("Distance = %v, want 9", hit.Distance)
	}

	hit, ok = s.RayCast(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 40, near)
	if !ok || hit.Entity != far || math.Abs(hit.Distance-19) > 1e-9 {
		t.Errorf("excluded cast = %+v, want cuboid at 19", hit)
	}

	if _, ok := s.RayCast(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 5, core.NoEntity); ok {
		t.Error("hit beyond max distance")
	}
	if _, ok := s.RayCast(mgl64.Vec3{}, mgl64.Vec3{}, 40, core.NoEntity); ok {
		t.Error("zero direction should not hit")
	}
}

func TestRayCastDiagonal(t *testing.T) {
	w := engine.NewTestWorld(1)
	s := NewSpace(w)

	target := addStatic(w, mgl64.Vec3{20, 20, 0}, component.Sphere(1))
	addStatic(w, mgl64.Vec3{20, 0, 0}, component.Cuboid(mgl64.Vec3{1, 1, 1}))

	hit, ok := s.RayCast(mgl64.Vec3{}, mgl64.Vec3{1, 1, 0}, 40, core.NoEntity)
	if !ok || hit.Entity != target {
		t.Fatalf("hit = %+v, want entity %d", hit, target)
	}
	if want := math.Sqrt(800) - 1; math.Abs(hit.Distance-want) > 1e-9 {
		t.Errorf("Distance = %v, want %v", hit.Distance, want)
	}

	if _, ok := s.RayCast(mgl64.Vec3{}, mgl64.Vec3{1, 1, 0}, 20, core.NoEntity); ok {
		t.Error("hit beyond max distance on a diagonal")
	}
}

func TestRayCastSkipsDestroyed(t *testing.T) {
	w := engine.NewTestWorld(1)
	s := NewSpace(w)
	e := addStatic(w, mgl64.Vec3{0, 0, -10}, component.Sphere(1))
	if _, ok := s.RayCast(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 40, core.NoEntity); !ok {
		t.Fatal("expected hit")
	}
	w.DestroyEntity(e)
	if _, ok := s.RayCast(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 40, core.NoEntity); ok {
		t.Error("destroyed entity still hit within the same frame")
	}
}

func TestGroundProbe(t *testing.T) {
	w := engine.NewTestWorld(1)
	s := NewSpace(w)
	addGround(w)

	player := addDynamic(w, mgl64.Vec3{0, parameter.PlayerSpawnY, 0},
		component.Capsule(parameter.PlayerRadius, parameter.PlayerHalfHeight),
		component.BodyComponent{GravityScale: parameter.PlayerGravityScale})

	if !s.GroundProbe(player, parameter.GroundProbeDistance) {
		t.Error("player resting on ground should be grounded")
	}

	tr, _ := w.Components.Transform.Get(player)
	tr.Position = mgl64.Vec3{0, 5, 0}
	w.Components.Transform.Set(player, tr)
	if s.GroundProbe(player, parameter.GroundProbeDistance) {
		t.Error("airborne player reported grounded")
	}
}

func TestStepGravityAndDamping(t *testing.T) {
	w := engine.NewTestWorld(1)
	s := NewSpace(w)
	e := addDynamic(w, mgl64.Vec3{0, 100, 0}, component.Sphere(1),
		component.BodyComponent{GravityScale: 2, Damping: 0})

	s.Step(100 * time.Millisecond)

	v, _ := s.Velocity(e)
	want := parameter.Gravity * 2 * 0.1
	if math.Abs(v.Y()-want) > 1e-9 {
		t.Errorf("vy = %v, want %v", v.Y(), want)
	}
	tr, _ := w.Components.Transform.Get(e)
	if math.Abs(tr.Position.Y()-(100+want*0.1)) > 1e-9 {
		t.Errorf("y = %v", tr.Position.Y())
	}

	damped := addDynamic(w, mgl64.Vec3{50, 100, 0}, component.Sphere(1),
		component.BodyComponent{Velocity: mgl64.Vec3{10, 0, 0}, Damping: 2})
	s.Step(500 * time.Millisecond)
	v, _ = s.Velocity(damped)
	if math.Abs(v.X()-5) > 1e-9 {
		t.Errorf("damped vx = %v, want 5", v.X())
	}
}

func TestStepRestsOnGround(t *testing.T) {
	w := engine.NewTestWorld(1)
	s := NewSpace(w)
	addGround(w)
	ball := addDynamic(w, mgl64.Vec3{0, 2, 0}, component.Sphere(1),
		component.BodyComponent{GravityScale: 1})

	for i := 0; i < 300; i++ {
		w.Resource.Time.FrameNumber++
		s.Step(16 * time.Millisecond)
	}

	tr, _ := w.Components.Transform.Get(ball)
	top := parameter.GroundY + parameter.GroundHalfY
	if tr.Position.Y() < top+1-0.05 || tr.Position.Y() > top+1+0.05 {
		t.Errorf("ball y = %v, want resting near %v", tr.Position.Y(), top+1)
	}
	if v, _ := s.Velocity(ball); v.Y() < -1 {
		t.Errorf("resting ball still sinking: vy = %v", v.Y())
	}
}

func TestSetVelocityStaticRejected(t *testing.T) {
	w := engine.NewTestWorld(1)
	s := NewSpace(w)
	e := addStatic(w, mgl64.Vec3{}, component.Sphere(1))
	w.Components.Body.Set(e, component.BodyComponent{Kind: component.BodyStatic})
	if s.SetVelocity(e, mgl64.Vec3{1, 0, 0}) {
		t.Error("static body accepted velocity")
	}
	if s.IsDynamic(e) {
		t.Error("static reported dynamic")
	}
}
