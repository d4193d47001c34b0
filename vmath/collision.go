package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RaySphere returns the distance along a unit-direction ray to the first intersection with a sphere
// An origin inside the sphere reports t = 0
func RaySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, true
	}
	b := oc.Dot(dir)
	if b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}

// RayAABB slab test against an axis-aligned box given by center and half extents
func RayAABB(origin, dir, center, half mgl64.Vec3) (float64, bool) {
	tMin := 0.0
	tMax := math.Inf(1)
	for i := 0; i < 3; i++ {
		lo := center[i] - half[i]
		hi := center[i] + half[i]
		if math.Abs(dir[i]) < Epsilon {
			if origin[i] < lo || origin[i] > hi {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo - origin[i]) * inv
		t2 := (hi - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// SphereSpherePush returns the displacement moving sphere a out of sphere b
func SphereSpherePush(a mgl64.Vec3, ra float64, b mgl64.Vec3, rb float64) (mgl64.Vec3, bool) {
	d := a.Sub(b)
	distSq := d.Dot(d)
	sum := ra + rb
	if distSq >= sum*sum {
		return mgl64.Vec3{}, false
	}
	dist := math.Sqrt(distSq)
	if dist < Epsilon {
		return Up.Mul(sum), true
	}
	return d.Mul((sum - dist) / dist), true
}

// SphereAABBPush returns the displacement moving a sphere out of an axis-aligned box
func SphereAABBPush(c mgl64.Vec3, r float64, center, half mgl64.Vec3) (mgl64.Vec3, bool) {
	var closest mgl64.Vec3
	inside := true
	for i := 0; i < 3; i++ {
		lo := center[i] - half[i]
		hi := center[i] + half[i]
		closest[i] = Clamp(c[i], lo, hi)
		if c[i] < lo || c[i] > hi {
			inside = false
		}
	}

	if inside {
		// Exit along the axis of least penetration
		best := math.Inf(1)
		var push mgl64.Vec3
		for i := 0; i < 3; i++ {
			toHi := center[i] + half[i] - c[i] + r
			toLo := c[i] - (center[i] - half[i]) + r
			if toHi < best {
				best = toHi
				push = mgl64.Vec3{}
				push[i] = toHi
			}
			if toLo < best {
				best = toLo
				push = mgl64.Vec3{}
				push[i] = -toLo
			}
		}
		return push, true
	}

	d := c.Sub(closest)
	distSq := d.Dot(d)
	if distSq >= r*r {
		return mgl64.Vec3{}, false
	}
	dist := math.Sqrt(distSq)
	if dist < Epsilon {
		return Up.Mul(r), true
	}
	return d.Mul((r - dist) / dist), true
}
