package component

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent is the world placement of an entity
type TransformComponent struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform places an entity with identity rotation
func NewTransform(pos mgl64.Vec3) TransformComponent {
	return TransformComponent{Position: pos, Rotation: mgl64.QuatIdent()}
}
