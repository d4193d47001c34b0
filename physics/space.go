// Package physics is the built-in rigid body backend: ray casts, ground probes,
// velocity access and a fixed integration step with static collision resolution
package physics

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyhook/component"
	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/vmath"
)

// RayHit is the first collider intersected by a ray
type RayHit struct {
	Entity   core.Entity
	Point    mgl64.Vec3
	Distance float64
}

// probeLift starts ground rays slightly inside the body so resting contact registers
const probeLift = 0.05

// Space answers physics queries over the world's collider and body stores
// Static colliders are indexed in a spatial hash rebuilt at most once per frame
// Dynamic bodies collide with statics only
type Space struct {
	world   *engine.World
	gravity mgl64.Vec3

	statics    *engine.SpatialHash
	indexedAt  int64
	indexed    bool
	candidates []core.Entity
}

// NewSpace creates a backend over the world
func NewSpace(w *engine.World) *Space {
	return &Space{
		world:   w,
		gravity: mgl64.Vec3{0, parameter.Gravity, 0},
		statics: engine.NewSpatialHash(parameter.StaticGridCell),
	}
}

// Invalidate forces the static index to rebuild on the next query
func (s *Space) Invalidate() {
	s.indexed = false
}

// RayCast returns the nearest collider hit along dir within maxDist, ignoring exclude
func (s *Space) RayCast(origin, dir mgl64.Vec3, maxDist float64, exclude core.Entity) (RayHit, bool) {
	dir = vmath.SafeNormalize(dir)
	if dir == (mgl64.Vec3{}) || maxDist <= 0 || !vmath.IsFinite(origin) {
		return RayHit{}, false
	}
	s.syncStatics()

	best := RayHit{Distance: math.Inf(1)}
	found := false
	test := func(e core.Entity) {
		if e == exclude || !s.world.Alive(e) {
			return
		}
		t, ok := s.rayCollider(e, origin, dir)
		if !ok || t > maxDist || t >= best.Distance {
			return
		}
		best = RayHit{Entity: e, Point: origin.Add(dir.Mul(t)), Distance: t}
		found = true
	}

	s.candidates = s.statics.QueryRay(origin, dir, maxDist, s.candidates[:0])
	for _, e := range s.candidates {
		test(e)
	}

	bodies := s.world.Components.Body
	for _, e := range bodies.All() {
		if b, _ := bodies.Get(e); b.IsDynamic() {
			test(e)
		}
	}
	return best, found
}

// GroundProbe reports a static or dynamic contact within dist below the entity's collider
// Casts a small fan of rays from the base of the shape
func (s *Space) GroundProbe(e core.Entity, dist float64) bool {
	t, ok := s.world.Components.Transform.Get(e)
	if !ok {
		return false
	}
	c, ok := s.world.Components.Collider.Get(e)
	if !ok {
		return false
	}

	var bottom, r float64
	switch c.Shape {
	case component.ShapeCapsule:
		bottom, r = c.HalfHeight+c.Radius, c.Radius
	case component.ShapeSphere:
		bottom, r = c.Radius, c.Radius
	default:
		bottom, r = c.Half.Y(), math.Min(c.Half.X(), c.Half.Z())
	}

	base := t.Position.Sub(mgl64.Vec3{0, bottom - probeLift, 0})
	spread := r * 0.7
	offsets := [...]mgl64.Vec3{
		{0, 0, 0},
		{spread, 0, 0},
		{-spread, 0, 0},
		{0, 0, spread},
		{0, 0, -spread},
	}
	for _, o := range offsets {
		if _, hit := s.RayCast(base.Add(o), vmath.Down, dist+probeLift, e); hit {
			return true
		}
	}
	return false
}

// Velocity returns the linear velocity of a body
func (s *Space) Velocity(e core.Entity) (mgl64.Vec3, bool) {
	b, ok := s.world.Components.Body.Get(e)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.Velocity, true
}

// SetVelocity writes the linear velocity of a dynamic body
// Returns false for static or missing bodies
func (s *Space) SetVelocity(e core.Entity, v mgl64.Vec3) bool {
	b, ok := s.world.Components.Body.Get(e)
	if !ok || !b.IsDynamic() {
		return false
	}
	b.Velocity = v
	s.world.Components.Body.Set(e, b)
	return true
}

// IsDynamic reports whether the entity is a dynamic body
func (s *Space) IsDynamic(e core.Entity) bool {
	b, ok := s.world.Components.Body.Get(e)
	return ok && b.IsDynamic()
}

// Step integrates dynamic bodies by dt and resolves penetration against statics
// Velocity: gravity then linear damping; position: explicit Euler
func (s *Space) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.syncStatics()
	sec := dt.Seconds()

	bodies := s.world.Components.Body
	transforms := s.world.Components.Transform
	for _, e := range bodies.All() {
		b, _ := bodies.Get(e)
		if !b.IsDynamic() {
			continue
		}
		t, ok := transforms.Get(e)
		if !ok {
			continue
		}

		b.Velocity = b.Velocity.Add(s.gravity.Mul(b.GravityScale * sec))
		if b.Damping > 0 {
			b.Velocity = b.Velocity.Mul(1 / (1 + b.Damping*sec))
		}
		t.Position = t.Position.Add(b.Velocity.Mul(sec))

		if c, ok := s.world.Components.Collider.Get(e); ok {
			t.Position, b.Velocity = s.resolve(e, t.Position, b.Velocity, c)
		}

		bodies.Set(e, b)
		transforms.Set(e, t)
	}
}

// syncStatics rebuilds the static index once per frame
func (s *Space) syncStatics() {
	frame := s.world.Resource.Time.FrameNumber
	if s.indexed && s.indexedAt == frame {
		return
	}
	s.statics.Clear()
	colliders := s.world.Components.Collider
	for _, e := range colliders.All() {
		if b, ok := s.world.Components.Body.Get(e); ok && b.IsDynamic() {
			continue
		}
		t, ok := s.world.Components.Transform.Get(e)
		if !ok {
			continue
		}
		c, _ := colliders.Get(e)
		s.statics.Insert(e, t.Position, boundsHalf(c))
	}
	s.indexed = true
	s.indexedAt = frame
}

func (s *Space) rayCollider(e core.Entity, origin, dir mgl64.Vec3) (float64, bool) {
	t, ok := s.world.Components.Transform.Get(e)
	if !ok {
		return 0, false
	}
	c, ok := s.world.Components.Collider.Get(e)
	if !ok {
		return 0, false
	}

	switch c.Shape {
	case component.ShapeSphere:
		return vmath.RaySphere(origin, dir, t.Position, c.Radius)
	case component.ShapeCuboid:
		return vmath.RayAABB(origin, dir, t.Position, c.Half)
	case component.ShapeCapsule:
		best, hit := math.Inf(1), false
		for _, p := range capsuleSpheres(t.Position, c) {
			if d, ok := vmath.RaySphere(origin, dir, p, c.Radius); ok && d < best {
				best, hit = d, true
			}
		}
		return best, hit
	}
	return 0, false
}

// resolve pushes a dynamic shape out of overlapping statics and removes inbound velocity
func (s *Space) resolve(self core.Entity, pos, vel mgl64.Vec3, c component.ColliderComponent) (mgl64.Vec3, mgl64.Vec3) {
	half := boundsHalf(c)
	s.candidates = s.statics.Query(pos.Sub(half), pos.Add(half), s.candidates[:0])

	for _, e := range s.candidates {
		if e == self || !s.world.Alive(e) {
			continue
		}
		ot, ok := s.world.Components.Transform.Get(e)
		if !ok {
			continue
		}
		oc, ok := s.world.Components.Collider.Get(e)
		if !ok {
			continue
		}

		for _, p := range shapeSpheres(pos, c) {
			var push mgl64.Vec3
			var hit bool
			switch oc.Shape {
			case component.ShapeCuboid:
				push, hit = vmath.SphereAABBPush(p, sphereRadius(c), ot.Position, oc.Half)
			case component.ShapeSphere:
				push, hit = vmath.SphereSpherePush(p, sphereRadius(c), ot.Position, oc.Radius)
			case component.ShapeCapsule:
				for _, q := range capsuleSpheres(ot.Position, oc) {
					if push, hit = vmath.SphereSpherePush(p, sphereRadius(c), q, oc.Radius); hit {
						break
					}
				}
			}
			if !hit {
				continue
			}
			pos = pos.Add(push)
			n := vmath.SafeNormalize(push)
			if into := vel.Dot(n); into < 0 {
				vel = vel.Sub(n.Mul(into))
			}
		}
	}
	return pos, vel
}

// boundsHalf returns conservative AABB half extents of a collider
func boundsHalf(c component.ColliderComponent) mgl64.Vec3 {
	switch c.Shape {
	case component.ShapeSphere:
		return mgl64.Vec3{c.Radius, c.Radius, c.Radius}
	case component.ShapeCapsule:
		return mgl64.Vec3{c.Radius, c.HalfHeight + c.Radius, c.Radius}
	default:
		return c.Half
	}
}

// capsuleSpheres approximates a vertical capsule by bottom, middle and top spheres
func capsuleSpheres(center mgl64.Vec3, c component.ColliderComponent) [3]mgl64.Vec3 {
	off := mgl64.Vec3{0, c.HalfHeight, 0}
	return [3]mgl64.Vec3{center.Sub(off), center, center.Add(off)}
}

func shapeSpheres(center mgl64.Vec3, c component.ColliderComponent) []mgl64.Vec3 {
	if c.Shape == component.ShapeCapsule {
		s := capsuleSpheres(center, c)
		return s[:]
	}
	return []mgl64.Vec3{center}
}

// sphereRadius is the radius used for a dynamic shape's collision spheres
// Dynamic cuboids collide as their inscribed sphere
func sphereRadius(c component.ColliderComponent) float64 {
	switch c.Shape {
	case component.ShapeSphere, component.ShapeCapsule:
		return c.Radius
	default:
		return math.Min(c.Half.X(), math.Min(c.Half.Y(), c.Half.Z()))
	}
}
