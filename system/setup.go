package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyhook/component"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/parameter"
)

var (
	groundColor = mgl64.Vec3{0.3, 0.5, 0.3}
	playerColor = mgl64.Vec3{124.0 / 255, 144.0 / 255, 1}
)

// SetupWorld creates the ground plane, the sun and the player, and captures the cursor
// Registered as the enter-Playing hook
func SetupWorld(w *engine.World) error {
	engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		w.Components.Transform, component.NewTransform(mgl64.Vec3{0, parameter.GroundY, 0})),
		w.Components.Collider, component.Cuboid(mgl64.Vec3{parameter.GroundHalfX, parameter.GroundHalfY, parameter.GroundHalfZ})),
		w.Components.Material, component.NewMaterial(groundColor)),
		w.Components.Ground, component.GroundComponent{}).Build()

	engine.With(w.NewEntity(),
		w.Components.Light, component.LightComponent{Illuminance: 10000, Shadows: true}).Build()

	player := engine.With(engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		w.Components.Transform, component.NewTransform(mgl64.Vec3{0, parameter.PlayerSpawnY, 0})),
		w.Components.Body, component.BodyComponent{
			Kind:         component.BodyDynamic,
			GravityScale: parameter.PlayerGravityScale,
			Damping:      parameter.PlayerDamping,
		}),
		w.Components.Collider, component.Capsule(parameter.PlayerRadius, parameter.PlayerHalfHeight)),
		w.Components.Material, component.NewMaterial(playerColor)),
		w.Components.Player, component.PlayerComponent{DashAvailable: true}),
		w.Components.CameraLook, component.CameraLookComponent{}).Build()

	w.Resource.Player.Set(player)
	w.Resource.Cursor.Captured = true
	w.Resource.Log.Info().Uint64("player", uint64(player)).Msg("world setup")
	return nil
}
