package component

import "github.com/go-gl/mathgl/mgl64"

// MaterialComponent is the renderable surface state read by presentation
type MaterialComponent struct {
	Color   mgl64.Vec3 // Linear RGB, may exceed 1 for emissive tint
	Alpha   float64
	Outline bool // Hook candidate highlight
}

// NewMaterial returns an opaque material without outline
func NewMaterial(color mgl64.Vec3) MaterialComponent {
	return MaterialComponent{Color: color, Alpha: 1}
}
