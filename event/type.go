package event

// EventType represents the type of game event
type EventType int

const (
	// EventHeightReached reports new height milestones
	// Trigger: PlayerSystem when floor(y/HeightPerPoint) exceeds the best so far
	// Consumer: ScoreSystem | Payload: *HeightReachedPayload
	EventHeightReached EventType = iota

	// EventSmash reports a destroyed object
	// Trigger: PlayerSystem when reeling into a destructible hook target
	// Consumer: ScoreSystem | Payload: *SmashPayload
	EventSmash

	// EventUpgradePurchased reports a successful shop purchase
	// Trigger: ShopSystem
	// Consumer: DiagnosticsSystem | Payload: *UpgradePurchasedPayload
	EventUpgradePurchased

	// EventShopToggled reports the shop state after a toggle edge
	// Trigger: ShopSystem
	// Consumer: HintSystem | Payload: *ShopToggledPayload
	EventShopToggled
)

func (t EventType) String() string {
	switch t {
	case EventHeightReached:
		return "height_reached"
	case EventSmash:
		return "smash"
	case EventUpgradePurchased:
		return "upgrade_purchased"
	case EventShopToggled:
		return "shop_toggled"
	default:
		return "unknown"
	}
}

// GameEvent is a queued event tagged with the frame it was emitted on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
