package component

import "github.com/go-gl/mathgl/mgl64"

// BodyKind selects how the physics step treats a body
type BodyKind uint8

const (
	BodyStatic BodyKind = iota
	BodyDynamic
)

// BodyComponent is a rigid body; static bodies never move
type BodyComponent struct {
	Kind         BodyKind
	Velocity     mgl64.Vec3
	GravityScale float64
	Damping      float64 // Linear damping coefficient per second
}

// IsDynamic reports whether the body integrates velocity
func (b BodyComponent) IsDynamic() bool {
	return b.Kind == BodyDynamic
}

// ShapeKind discriminates collider geometry
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeCuboid
	ShapeCapsule
)

// ColliderComponent is collision geometry centered on the entity transform
// Cuboids are axis-aligned; capsules are vertical
type ColliderComponent struct {
	Shape      ShapeKind
	Radius     float64    // Sphere, Capsule
	Half       mgl64.Vec3 // Cuboid half extents
	HalfHeight float64    // Capsule segment half length
}

// Sphere returns a sphere collider
func Sphere(radius float64) ColliderComponent {
	return ColliderComponent{Shape: ShapeSphere, Radius: radius}
}

// Cuboid returns an axis-aligned box collider
func Cuboid(half mgl64.Vec3) ColliderComponent {
	return ColliderComponent{Shape: ShapeCuboid, Half: half}
}

// Capsule returns a vertical capsule collider
func Capsule(radius, halfHeight float64) ColliderComponent {
	return ColliderComponent{Shape: ShapeCapsule, Radius: radius, HalfHeight: halfHeight}
}

// Extent returns the bounding half-size along Y, used for feet and probe placement
func (c ColliderComponent) Extent() float64 {
	switch c.Shape {
	case ShapeCuboid:
		return c.Half.Y()
	case ShapeCapsule:
		return c.HalfHeight + c.Radius
	default:
		return c.Radius
	}
}
