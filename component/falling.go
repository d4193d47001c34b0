package component

// FallingKind identifies the spawned obstacle variant
type FallingKind uint8

const (
	FallingSphere       FallingKind = iota // Small dynamic sphere
	FallingStaticSphere                    // Large static obstacle
	FallingThingamajig                     // Composite parent
)

// FallingObjectComponent tags spawned objects for altitude despawn
type FallingObjectComponent struct {
	Kind FallingKind
}

// Destructible reports whether smashing the object is allowed
func (f FallingObjectComponent) Destructible() bool {
	return f.Kind != FallingStaticSphere
}

// StaticSphereComponent tags large static spheres for spatial de-duplication
type StaticSphereComponent struct{}
