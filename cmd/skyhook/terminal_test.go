package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyhook/input"
)

func newTestPump(t *testing.T) (*eventPump, *input.Collector) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	collector := input.NewCollector(input.DefaultHoldTimeout)
	return newEventPump(screen, input.DefaultKeyTable(), collector), collector
}

func TestEventPumpKeys(t *testing.T) {
	p, c := newTestPump(t)

	if !p.handle(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift)) {
		t.Fatal("movement key treated as quit")
	}
	if !p.handle(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)) {
		t.Fatal("tab treated as quit")
	}
	s := c.Snapshot(time.Now())
	if !s.Held(input.ActionForward) || !s.Pressed(input.ActionShop) {
		t.Errorf("snapshot missing key actions")
	}

	if p.handle(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)) {
		t.Error("ctrl-q should request quit")
	}
}

func TestEventPumpMouse(t *testing.T) {
	p, c := newTestPump(t)

	p.handle(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	p.handle(tcell.NewEventMouse(12, 4, tcell.Button1, tcell.ModNone))
	s := c.Snapshot(time.Now())
	if !s.ButtonPressed(input.ButtonPrimary) || s.ButtonHeld(input.ButtonSecondary) {
		t.Error("primary press not recorded")
	}
	if d := s.MouseDelta(); d.X() != 2*pointerScale || d.Y() != -2*pointerScale {
		t.Errorf("mouse delta = %v", d)
	}

	p.handle(tcell.NewEventMouse(12, 4, tcell.ButtonNone, tcell.ModNone))
	s = c.Snapshot(time.Now())
	if s.ButtonHeld(input.ButtonPrimary) {
		t.Error("release not recorded")
	}
}

func TestEventPumpStopsOnQuit(t *testing.T) {
	p, _ := newTestPump(t)
	go p.run()

	p.screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("pump did not stop on ctrl-c")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(options{debug: true, seed: 9, metricsAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.Log.Enabled || cfg.Log.Level != "debug" || cfg.Seed != 9 || cfg.Metrics.Addr != "127.0.0.1:0" {
		t.Errorf("overrides not applied: %+v %+v", cfg.Log, cfg.Metrics)
	}

	if _, err := loadConfig(options{configPath: "does-not-exist.yaml"}); err == nil {
		t.Error("expected error for missing config file")
	}
}
