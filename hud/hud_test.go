package hud

import (
	"slices"
	"testing"

	"github.com/lixenwraith/skyhook/economy"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/system"
)

func newWorld(t *testing.T) *engine.World {
	t.Helper()
	w := engine.NewTestWorld(1)
	if err := system.SetupWorld(w); err != nil {
		t.Fatalf("SetupWorld: %v", err)
	}
	return w
}

func TestScoreLines(t *testing.T) {
	tests := []struct {
		name  string
		score economy.Points
		spent uint64
		want  []string
	}{
		{"fresh", economy.Points{}, 0, []string{"Score: 0"}},
		{"spent hidden at zero", economy.Points{Height: 4, Destruction: 5}, 0, []string{"Score: 9"}},
		{"spent shown", economy.Points{Height: 30}, 10, []string{"Score: 30", "Points spent: 10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			w.Resource.Score.Current = tt.score
			w.Resource.Spend.Spent = tt.spent

			got := Build(w).ScoreLines()
			if !slices.Equal(got, tt.want) {
				t.Errorf("ScoreLines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShopLines(t *testing.T) {
	w := newWorld(t)
	if got := Build(w).ShopLines(); got != nil {
		t.Fatalf("closed shop lines = %q", got)
	}

	w.Resource.Shop.Open = true
	w.Resource.Score.Current = economy.Points{Height: 20}
	w.Resource.Spend.Spent = 5
	e, _ := w.PlayerEntity()
	pc, _ := w.Components.Player.Get(e)
	pc.Upgrades.HookStrength = 2
	w.Components.Player.Set(e, pc)

	v := Build(w)
	if v.Available != 15 {
		t.Errorf("available = %d, want 15", v.Available)
	}
	want := []string{
		"UPGRADES",
		"Available: 15",
		"[1] Hook Range 1 - 10 points",
		"[2] Hook Strength 3 - 22 points",
		"[3] Dash Strength 1 - 10 points",
	}
	if got := v.ShopLines(); !slices.Equal(got, want) {
		t.Errorf("ShopLines = %q, want %q", got, want)
	}
	if !v.Shop[0].Affordable || v.Shop[1].Affordable {
		t.Errorf("affordability = %v %v, want true false", v.Shop[0].Affordable, v.Shop[1].Affordable)
	}
}

func TestDebugPanel(t *testing.T) {
	w := newWorld(t)
	if Build(w).Debug != nil {
		t.Fatal("hidden panel produced lines")
	}

	w.Resource.Debug.Visible = true
	w.Resource.Debug.FPS = 59.6
	lines := Build(w).Debug
	if len(lines) < 3 || lines[0] != "FPS: 60" || lines[1] != "Entities: 3" {
		t.Errorf("debug lines = %q", lines)
	}

	w.Resource.Clock.Pause(engine.PauseShop)
	lines = Build(w).Debug
	if last := lines[len(lines)-1]; last != "Paused: [shop]" {
		t.Errorf("pause line = %q", last)
	}
}

func TestHintAndCursor(t *testing.T) {
	w := newWorld(t)
	w.Resource.Hints.Current = &engine.Hint{Text: "Press Tab", Icon: "key_tab"}
	w.Resource.Cursor.Captured = false

	v := Build(w)
	if v.Hint != "Press Tab" || v.HintIcon != "key_tab" || !v.CursorReleased {
		t.Errorf("view = %+v", v)
	}
}
