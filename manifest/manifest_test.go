package manifest

import (
	"testing"
	"time"

	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/input"
	"github.com/lixenwraith/skyhook/registry"
)

func TestAssembleRegistersAllSystems(t *testing.T) {
	w := engine.NewTestWorld(7)
	g := engine.NewGame(w)
	if _, err := Assemble(g); err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	for _, name := range ActiveSystems() {
		if _, ok := registry.GetSystem(name); !ok {
			t.Errorf("system %q not registered", name)
		}
	}

	systems := w.Systems()
	if len(systems) != len(ActiveSystems()) {
		t.Fatalf("got %d systems, want %d", len(systems), len(ActiveSystems()))
	}
	for i := 1; i < len(systems); i++ {
		if systems[i-1].Priority() > systems[i].Priority() {
			t.Errorf("%s runs before %s despite higher priority", systems[i-1].Name(), systems[i].Name())
		}
	}
	if systems[0].Name() != "player" || systems[len(systems)-1].Name() != "diagnostics" {
		t.Errorf("order = %s .. %s, want player .. diagnostics", systems[0].Name(), systems[len(systems)-1].Name())
	}
}

func TestAssembledGameRuns(t *testing.T) {
	w := engine.NewTestWorld(7)
	g := engine.NewGame(w)
	if _, err := Assemble(g); err != nil {
		t.Fatal(err)
	}

	if err := g.Tick(16*time.Millisecond, input.Snapshot{}.WithPressed(input.ActionStart)); err != nil {
		t.Fatal(err)
	}
	if g.Mode() != core.ModePlaying {
		t.Fatal("game did not start")
	}
	if _, err := w.PlayerEntity(); err != nil {
		t.Fatalf("no player after setup: %v", err)
	}

	for i := 0; i < 120; i++ {
		if err := g.Tick(16*time.Millisecond, input.Snapshot{}); err != nil {
			t.Fatal(err)
		}
	}

	if w.Components.FallingObject.Count() == 0 {
		t.Error("nothing spawned after two seconds of play")
	}
	p, _ := w.PlayerEntity()
	tr, _ := w.Components.Transform.Get(p)
	if tr.Position.Y() < 0 || tr.Position.Y() > 1 {
		t.Errorf("idle player drifted to y=%v, want resting on ground", tr.Position.Y())
	}
}
