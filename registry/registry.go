package registry

import (
	"slices"
	"sync"

	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/physics"
)

// Deps are the collaborators a system factory may wire
type Deps struct {
	World   *engine.World
	Physics *physics.Space
}

// SystemFactory creates a System from its dependencies
type SystemFactory func(d Deps) engine.System

var (
	systemsMu sync.RWMutex
	systems   = make(map[string]SystemFactory)
)

// RegisterSystem adds a system factory by name, replacing any previous one
func RegisterSystem(name string, factory SystemFactory) {
	systemsMu.Lock()
	defer systemsMu.Unlock()
	systems[name] = factory
}

// GetSystem retrieves a system factory by name
func GetSystem(name string) (SystemFactory, bool) {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	f, ok := systems[name]
	return f, ok
}

// SystemNames returns all registered system names in sorted order
func SystemNames() []string {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	names := make([]string, 0, len(systems))
	for name := range systems {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
