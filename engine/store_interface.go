package engine

import "github.com/lixenwraith/skyhook/core"

// AnyStore provides type-erased operations for lifecycle management
// World manages all stores uniformly for entity destruction without knowing the concrete type
type AnyStore interface {
	RemoveBatch(entities []core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
