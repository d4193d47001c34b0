package component

// GroundComponent tags the starting platform
type GroundComponent struct{}

// LightComponent is the directional sun marker
type LightComponent struct {
	Illuminance float64
	Shadows     bool
}

// ShopOverlayComponent tags the shop overlay entity, exists only while the shop is open
type ShopOverlayComponent struct{}
