package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestCollectorKeyEdges(t *testing.T) {
	c := NewCollector(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	c.KeyEvent(ActionJump, t0)
	s := c.Snapshot(t0)
	if !s.Pressed(ActionJump) || !s.Held(ActionJump) {
		t.Fatalf("first event should press and hold, got pressed=%v held=%v", s.Pressed(ActionJump), s.Held(ActionJump))
	}

	// Auto-repeat within the hold window keeps the level without a new edge
	c.KeyEvent(ActionJump, t0.Add(50*time.Millisecond))
	s = c.Snapshot(t0.Add(60 * time.Millisecond))
	if s.Pressed(ActionJump) {
		t.Error("repeat should not produce a second edge")
	}
	if !s.Held(ActionJump) {
		t.Error("repeat should keep the action held")
	}

	s = c.Snapshot(t0.Add(400 * time.Millisecond))
	if s.Held(ActionJump) {
		t.Error("hold should expire after timeout")
	}

	c.KeyEvent(ActionJump, t0.Add(500*time.Millisecond))
	s = c.Snapshot(t0.Add(500 * time.Millisecond))
	if !s.Pressed(ActionJump) {
		t.Error("event after expiry should be a new edge")
	}

	c.KeyRelease(ActionJump)
	s = c.Snapshot(t0.Add(510 * time.Millisecond))
	if s.Held(ActionJump) {
		t.Error("explicit release should end the hold")
	}
}

func TestCollectorButtons(t *testing.T) {
	c := NewCollector(0)
	now := time.Now()

	c.ButtonEvent(ButtonPrimary, true)
	c.ButtonEvent(ButtonPrimary, false)
	s := c.Snapshot(now)
	if !s.ButtonPressed(ButtonPrimary) || !s.ButtonHeld(ButtonPrimary) {
		t.Error("click within a tick should still report press")
	}

	s = c.Snapshot(now)
	if s.ButtonPressed(ButtonPrimary) || s.ButtonHeld(ButtonPrimary) {
		t.Error("released button should report nothing on next tick")
	}

	c.ButtonEvent(ButtonSecondary, true)
	c.Snapshot(now)
	c.ButtonEvent(ButtonSecondary, true)
	s = c.Snapshot(now)
	if s.ButtonPressed(ButtonSecondary) {
		t.Error("repeated down state should not be a new edge")
	}
	if !s.ButtonHeld(ButtonSecondary) {
		t.Error("button should stay held")
	}
}

func TestCollectorPointer(t *testing.T) {
	c := NewCollector(0)
	c.PointerEvent(10, 10)
	c.PointerEvent(14, 7)
	c.MouseMotion(1, 1)

	d := c.Snapshot(time.Now()).MouseDelta()
	if d.X() != 5 || d.Y() != -2 {
		t.Errorf("delta = %v, want [5 -2]", d)
	}
	if d := c.Snapshot(time.Now()).MouseDelta(); d.X() != 0 || d.Y() != 0 {
		t.Errorf("delta not reset: %v", d)
	}
}

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionForward},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), ActionRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionJump},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionShop},
		{"f3", tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), ActionDebug},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}
