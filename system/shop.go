package system

import (
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyhook/component"
	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/economy"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/event"
	"github.com/lixenwraith/skyhook/input"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/status"
)

// buyBindings maps purchase actions to tracks, checked in order with one purchase per tick
var buyBindings = [...]struct {
	action input.Action
	track  economy.Track
}{
	{input.ActionBuyHookRange, economy.TrackHookRange},
	{input.ActionBuyHookStrength, economy.TrackHookStrength},
	{input.ActionBuyDashStrength, economy.TrackDashStrength},
}

// ShopSystem is the Closed/Open state machine over the upgrade economy
// Open holds the shop pause request and the overlay entity
type ShopSystem struct {
	engine.SystemBase

	enabled bool
	missing zerolog.Logger

	statSpent     *atomic.Int64
	statPurchases *atomic.Int64
}

// NewShopSystem creates the shop stage
func NewShopSystem(world *engine.World) engine.System {
	res := world.Resource
	s := &ShopSystem{
		SystemBase:    engine.NewSystemBase(world),
		missing:       missingPlayerLogger(res, "shop"),
		statSpent:     res.Status.Ints.Get(status.KeySpent),
		statPurchases: res.Status.Ints.Get(status.KeyPurchases),
	}
	s.Init()
	return s
}

func (s *ShopSystem) Init() {
	s.statSpent.Store(0)
	s.statPurchases.Store(0)
	s.enabled = true
}

func (s *ShopSystem) Name() string {
	return "shop"
}

func (s *ShopSystem) Priority() int {
	return parameter.PriorityShop
}

func (s *ShopSystem) Update() {
	if !s.enabled {
		return
	}

	in := s.Resource.Input
	if in.Pressed(input.ActionShop) {
		s.toggle()
	}
	if !s.Resource.Shop.Open {
		return
	}

	for _, b := range buyBindings {
		if in.Pressed(b.action) {
			s.buy(b.track)
			break
		}
	}
}

func (s *ShopSystem) toggle() {
	shop := s.Resource.Shop
	if shop.Open {
		shop.Open = false
		s.Resource.Clock.Resume(engine.PauseShop)
		if shop.Overlay != core.NoEntity {
			s.World.DestroyEntity(shop.Overlay)
			shop.Overlay = core.NoEntity
		}
	} else {
		shop.Open = true
		s.Resource.Clock.Pause(engine.PauseShop)
		shop.Overlay = engine.With(s.World.NewEntity(),
			s.Component.ShopOverlay, component.ShopOverlayComponent{}).Build()
	}
	s.World.PushEvent(event.EventShopToggled, &event.ShopToggledPayload{Open: shop.Open})
	s.Resource.Log.Debug().Bool("open", shop.Open).Msg("shop toggled")
}

func (s *ShopSystem) buy(track economy.Track) {
	e, err := s.World.PlayerEntity()
	if err != nil {
		s.missing.Error().Err(err).Msg("purchase skipped")
		return
	}
	pc, ok := s.Component.Player.Get(e)
	if !ok {
		return
	}

	spend := s.Resource.Spend
	price, err := economy.Purchase(s.Resource.Score.Current, &spend.Spent, &pc.Upgrades, track)
	if err != nil {
		if !errors.Is(err, economy.ErrInsufficientPoints) {
			s.Resource.Log.Error().Err(err).Msg("purchase failed")
		}
		return
	}
	s.Component.Player.Set(e, pc)
	spend.Purchases++

	s.statSpent.Store(int64(min(spend.Spent, uint64(1<<63-1))))
	s.statPurchases.Add(1)
	s.World.PushEvent(event.EventUpgradePurchased, &event.UpgradePurchasedPayload{
		Track: track.String(),
		Level: pc.Upgrades.Level(track),
		Price: price,
	})
}
