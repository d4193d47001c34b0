package engine

import "github.com/lixenwraith/skyhook/component"

// ComponentStore provides typed component stores
// Tag components (FallingObject, StaticSphere, Thingamajig) double as tag indices
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Body      *Store[component.BodyComponent]
	Collider  *Store[component.ColliderComponent]
	Material  *Store[component.MaterialComponent]

	Player     *Store[component.PlayerComponent]
	CameraLook *Store[component.CameraLookComponent]

	FallingObject *Store[component.FallingObjectComponent]
	StaticSphere  *Store[component.StaticSphereComponent]
	Thingamajig   *Store[component.ThingamajigComponent]
	Member        *Store[component.MemberComponent]

	Fadeout *Store[component.FadeoutComponent]

	Ground      *Store[component.GroundComponent]
	Light       *Store[component.LightComponent]
	ShopOverlay *Store[component.ShopOverlayComponent]
}

// newComponentStore allocates every store and returns the uniform lifecycle list
func newComponentStore() (ComponentStore, []AnyStore) {
	c := ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Body:      NewStore[component.BodyComponent](),
		Collider:  NewStore[component.ColliderComponent](),
		Material:  NewStore[component.MaterialComponent](),

		Player:     NewStore[component.PlayerComponent](),
		CameraLook: NewStore[component.CameraLookComponent](),

		FallingObject: NewStore[component.FallingObjectComponent](),
		StaticSphere:  NewStore[component.StaticSphereComponent](),
		Thingamajig:   NewStore[component.ThingamajigComponent](),
		Member:        NewStore[component.MemberComponent](),

		Fadeout: NewStore[component.FadeoutComponent](),

		Ground:      NewStore[component.GroundComponent](),
		Light:       NewStore[component.LightComponent](),
		ShopOverlay: NewStore[component.ShopOverlayComponent](),
	}

	all := []AnyStore{
		c.Transform, c.Body, c.Collider, c.Material,
		c.Player, c.CameraLook,
		c.FallingObject, c.StaticSphere, c.Thingamajig, c.Member,
		c.Fadeout,
		c.Ground, c.Light, c.ShopOverlay,
	}
	return c, all
}
