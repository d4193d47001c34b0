// Package hud builds the text surface the frontend draws over the world view
package hud

import (
	"fmt"

	"github.com/lixenwraith/skyhook/economy"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/status"
)

// ShopLine is one purchasable track as shown in the shop overlay
type ShopLine struct {
	Key       string
	Track     economy.Track
	NextLevel uint64
	Price     uint64
	// Affordable mirrors the purchase rule: available points strictly above price
	Affordable bool
}

func (l ShopLine) String() string {
	return fmt.Sprintf("[%s] %s %d - %d points", l.Key, l.Track, l.NextLevel, l.Price)
}

// View is a snapshot of everything the HUD shows for one frame
type View struct {
	Score uint64
	Spent uint64

	// Shop is nil while the shop is closed
	Shop      []ShopLine
	Available uint64

	// Debug is nil while the panel is hidden
	Debug []string

	Hint     string
	HintIcon string

	// CursorReleased asks the player to click back in
	CursorReleased bool
}

// ScoreLines returns the always-visible score block, points spent only once something was bought
func (v View) ScoreLines() []string {
	lines := []string{fmt.Sprintf("Score: %d", v.Score)}
	if v.Spent > 0 {
		lines = append(lines, fmt.Sprintf("Points spent: %d", v.Spent))
	}
	return lines
}

// ShopLines returns the overlay text, nil while closed
func (v View) ShopLines() []string {
	if v.Shop == nil {
		return nil
	}
	lines := make([]string, 0, len(v.Shop)+2)
	lines = append(lines, "UPGRADES", fmt.Sprintf("Available: %d", v.Available))
	for _, l := range v.Shop {
		lines = append(lines, l.String())
	}
	return lines
}

var shopKeys = [...]struct {
	key   string
	track economy.Track
}{
	{"1", economy.TrackHookRange},
	{"2", economy.TrackHookStrength},
	{"3", economy.TrackDashStrength},
}

// Build reads world resources and the player into a View
func Build(w *engine.World) View {
	res := w.Resource
	v := View{
		Score:          res.Score.Current.Total(),
		Spent:          res.Spend.Spent,
		CursorReleased: !res.Cursor.Captured,
	}

	if h := res.Hints.Current; h != nil {
		v.Hint = h.Text
		v.HintIcon = h.Icon
	}

	if res.Shop.Open {
		v.Available = economy.Available(res.Score.Current, res.Spend.Spent)
		var upgrades economy.Upgrades
		if e, err := w.PlayerEntity(); err == nil {
			if pc, ok := w.Components.Player.Get(e); ok {
				upgrades = pc.Upgrades
			}
		}
		v.Shop = make([]ShopLine, 0, len(shopKeys))
		for _, k := range shopKeys {
			level := uint64(upgrades.Level(k.track))
			price := economy.Price(level)
			v.Shop = append(v.Shop, ShopLine{
				Key:        k.key,
				Track:      k.track,
				NextLevel:  level + 1,
				Price:      price,
				Affordable: v.Available > price,
			})
		}
	}

	if res.Debug.Visible {
		v.Debug = debugLines(w)
	}
	return v
}

func debugLines(w *engine.World) []string {
	reg := w.Resource.Status
	lines := []string{
		fmt.Sprintf("FPS: %.0f", w.Resource.Debug.FPS),
		fmt.Sprintf("Entities: %d", w.EntityCount()),
		fmt.Sprintf("Player Y: %.1f", reg.Floats.Get(status.KeyPlayerY).Get()),
		fmt.Sprintf("Spawn: %.0fms / %.0fms",
			reg.Floats.Get(status.KeyTier1Interval).Get(),
			reg.Floats.Get(status.KeyTier2Interval).Get()),
	}
	if w.Resource.Clock.IsPaused() {
		reasons := w.Resource.Clock.Reasons()
		names := make([]string, len(reasons))
		for i, r := range reasons {
			names[i] = string(r)
		}
		lines = append(lines, fmt.Sprintf("Paused: %v", names))
	}
	return lines
}
