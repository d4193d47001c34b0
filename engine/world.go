package engine

import (
	"sort"

	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/event"
)

// World contains all entities and their components using typed stores
// Not synchronized; owned by the tick loop
type World struct {
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	// Global Resource
	Resource *Resource

	Components ComponentStore
	stores     []AnyStore

	systems []System
}

// NewWorld creates a new ECS world over the given resources
func NewWorld(res *Resource) *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Resource:     res,
		systems:      make([]System, 0),
	}
	w.Components, w.stores = newComponentStore()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether an entity exists
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// DestroyEntity removes all components associated with an entity
// A composite header takes every member with it in the same call
// A member destroyed alone is unlinked from its header
func (w *World) DestroyEntity(e core.Entity) {
	w.DestroyEntities([]core.Entity{e})
}

// DestroyEntities removes a batch of entities with the same composite rules as DestroyEntity
// Every store is compacted once for the whole batch
func (w *World) DestroyEntities(entities []core.Entity) {
	batch := make([]core.Entity, 0, len(entities))
	for _, e := range entities {
		if !w.Alive(e) {
			continue
		}
		if header, ok := w.Components.Thingamajig.Get(e); ok {
			batch = append(batch, header.Members...)
		} else if member, ok := w.Components.Member.Get(e); ok {
			w.unlinkMember(member.Header, e)
		}
		batch = append(batch, e)
	}
	w.removeFromAllStores(batch)
}

// Root returns the composite header for a member, or the entity itself
func (w *World) Root(e core.Entity) core.Entity {
	if member, ok := w.Components.Member.Get(e); ok && w.Alive(member.Header) {
		return member.Header
	}
	return e
}

// PlayerEntity returns the player, ErrNoPlayer if absent or destroyed
func (w *World) PlayerEntity() (core.Entity, error) {
	e, ok := w.Resource.Player.Get()
	if !ok || !w.Alive(e) {
		return core.NoEntity, ErrNoPlayer
	}
	return e, nil
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.nextEntityID = 1
	clear(w.alive)
	for _, s := range w.stores {
		s.Clear()
	}
	w.Resource.Player.Clear()
}

// AddSystem adds a system to the world and keeps systems ordered by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// PushEvent emits a game event tagged with the current frame
// Delivered at the start of the next tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resource.Event.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resource.Time.FrameNumber,
	})
}

func (w *World) removeFromAllStores(batch []core.Entity) {
	if len(batch) == 0 {
		return
	}
	for _, s := range w.stores {
		s.RemoveBatch(batch)
	}
	player, hasPlayer := w.Resource.Player.Get()
	for _, e := range batch {
		delete(w.alive, e)
		if hasPlayer && player == e {
			w.Resource.Player.Clear()
		}
		if w.Resource.Shop.Overlay == e {
			w.Resource.Shop.Overlay = core.NoEntity
		}
	}
}

func (w *World) unlinkMember(header, member core.Entity) {
	h, ok := w.Components.Thingamajig.Get(header)
	if !ok {
		return
	}
	for i, m := range h.Members {
		if m == member {
			h.Members = append(h.Members[:i:i], h.Members[i+1:]...)
			break
		}
	}
	w.Components.Thingamajig.Set(header, h)
}
