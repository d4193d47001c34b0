package manifest

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/physics"
	"github.com/lixenwraith/skyhook/registry"
	"github.com/lixenwraith/skyhook/system"
)

var registerOnce sync.Once

// RegisterSystems registers all system factories with the registry
func RegisterSystems() {
	registerOnce.Do(func() {
		registry.RegisterSystem("player", func(d registry.Deps) engine.System {
			return system.NewPlayerSystem(d.World, d.Physics)
		})
		registry.RegisterSystem("physics", func(d registry.Deps) engine.System {
			return system.NewPhysicsSystem(d.World, d.Physics)
		})
		registry.RegisterSystem("spawn", func(d registry.Deps) engine.System {
			return system.NewSpawnSystem(d.World)
		})
		registry.RegisterSystem("despawn", func(d registry.Deps) engine.System {
			return system.NewDespawnSystem(d.World)
		})
		registry.RegisterSystem("fadeout", func(d registry.Deps) engine.System {
			return system.NewFadeoutSystem(d.World)
		})
		registry.RegisterSystem("score", func(d registry.Deps) engine.System {
			return system.NewScoreSystem(d.World)
		})
		registry.RegisterSystem("shop", func(d registry.Deps) engine.System {
			return system.NewShopSystem(d.World)
		})
		registry.RegisterSystem("hint", func(d registry.Deps) engine.System {
			return system.NewHintSystem(d.World)
		})
		registry.RegisterSystem("diagnostics", func(d registry.Deps) engine.System {
			return system.NewDiagnosticsSystem(d.World)
		})
	})
}

// ActiveSystems returns the systems to instantiate
// Run order is decided by priority, not by this list
func ActiveSystems() []string {
	return []string{
		"player",
		"physics",
		"spawn",
		"despawn",
		"fadeout",
		"score",
		"shop",
		"hint",
		"diagnostics",
	}
}

// Assemble wires every active system and the world setup hook into a game
// Returns the physics backend shared by the systems
func Assemble(g *engine.Game) (*physics.Space, error) {
	RegisterSystems()

	space := physics.NewSpace(g.World)
	deps := registry.Deps{World: g.World, Physics: space}
	for _, name := range ActiveSystems() {
		factory, ok := registry.GetSystem(name)
		if !ok {
			return nil, fmt.Errorf("system %q not registered", name)
		}
		g.AddSystem(factory(deps))
	}

	g.OnEnterPlaying(func(w *engine.World) error {
		space.Invalidate()
		return system.SetupWorld(w)
	})
	return space, nil
}
