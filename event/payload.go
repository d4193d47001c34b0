package event

import "github.com/lixenwraith/skyhook/core"

// HeightReachedPayload carries newly earned height points
type HeightReachedPayload struct {
	Points uint64
	Best   uint64 // Best floor(y/HeightPerPoint) so far
}

// SmashPayload carries the smashed entity and its destruction points
type SmashPayload struct {
	Entity core.Entity
	Points uint64
}

// UpgradePurchasedPayload describes a completed purchase
type UpgradePurchasedPayload struct {
	Track string
	Level uint32 // Level after purchase
	Price uint64
}

// ShopToggledPayload carries the shop state after toggling
type ShopToggledPayload struct {
	Open bool
}
