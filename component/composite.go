package component

import "github.com/lixenwraith/skyhook/core"

// ThingamajigShape is the lattice variant of a composite
type ThingamajigShape uint8

const (
	ShapeHollowBox ThingamajigShape = iota
	ShapeSphereShell
)

func (s ThingamajigShape) String() string {
	if s == ShapeSphereShell {
		return "sphere_shell"
	}
	return "hollow_box"
}

// ThingamajigComponent resides on the composite parent and owns its members
// Destroying the parent destroys every member in the same call
type ThingamajigComponent struct {
	Shape   ThingamajigShape
	Members []core.Entity
	// HalfExtent is the bounding cube half size around the parent center
	HalfExtent float64
}

// MemberComponent links a cuboid back to its composite parent
type MemberComponent struct {
	Header core.Entity
}
