package input

import (
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultHoldTimeout is how long a key stays held after its last repeat event
// Terminals report key repeats but no key releases
const DefaultHoldTimeout = 150 * time.Millisecond

// Collector accumulates frontend events between ticks
// Event reader goroutines write; the tick loop drains with Snapshot
type Collector struct {
	mu sync.Mutex

	holdTimeout time.Duration

	lastSeen     [actionCount]time.Time
	released     [actionCount]bool
	pendingPress [actionCount]bool

	buttonDown    [buttonCount]bool
	pendingButton [buttonCount]bool

	mouse     mgl64.Vec2
	lastPoint mgl64.Vec2
	hasPoint  bool
}

// NewCollector creates a collector, non-positive timeout uses DefaultHoldTimeout
func NewCollector(holdTimeout time.Duration) *Collector {
	if holdTimeout <= 0 {
		holdTimeout = DefaultHoldTimeout
	}
	c := &Collector{holdTimeout: holdTimeout}
	for i := range c.released {
		c.released[i] = true
	}
	return c
}

// KeyEvent records a key press or auto-repeat for an action
// A rising edge is registered only when the action was not already held
func (c *Collector) KeyEvent(a Action, now time.Time) {
	if a == ActionNone || a >= actionCount {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.heldLocked(a, now) {
		c.pendingPress[a] = true
	}
	c.lastSeen[a] = now
	c.released[a] = false
}

// KeyRelease ends a hold immediately, for frontends that report releases
func (c *Collector) KeyRelease(a Action) {
	if a >= actionCount {
		return
	}
	c.mu.Lock()
	c.released[a] = true
	c.mu.Unlock()
}

// ButtonEvent records the current state of a mouse button
func (c *Collector) ButtonEvent(b Button, down bool) {
	if b >= buttonCount {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if down && !c.buttonDown[b] {
		c.pendingButton[b] = true
	}
	c.buttonDown[b] = down
}

// PointerEvent records an absolute pointer position and accumulates motion
func (c *Collector) PointerEvent(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := mgl64.Vec2{x, y}
	if c.hasPoint {
		c.mouse = c.mouse.Add(p.Sub(c.lastPoint))
	}
	c.lastPoint = p
	c.hasPoint = true
}

// MouseMotion accumulates relative pointer motion
func (c *Collector) MouseMotion(dx, dy float64) {
	c.mu.Lock()
	c.mouse = c.mouse.Add(mgl64.Vec2{dx, dy})
	c.mu.Unlock()
}

// Snapshot builds the state for one tick and resets edges and motion
func (c *Collector) Snapshot(now time.Time) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var s Snapshot
	for a := Action(0); a < actionCount; a++ {
		s.pressed[a] = c.pendingPress[a]
		s.held[a] = c.pendingPress[a] || c.heldLocked(a, now)
		c.pendingPress[a] = false
	}
	for b := Button(0); b < buttonCount; b++ {
		s.buttonPressed[b] = c.pendingButton[b]
		s.buttonHeld[b] = c.pendingButton[b] || c.buttonDown[b]
		c.pendingButton[b] = false
	}
	s.mouse = c.mouse
	c.mouse = mgl64.Vec2{}
	return s
}

func (c *Collector) heldLocked(a Action, now time.Time) bool {
	if c.released[a] {
		return false
	}
	return now.Sub(c.lastSeen[a]) <= c.holdTimeout
}
