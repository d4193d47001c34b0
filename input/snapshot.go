package input

import "github.com/go-gl/mathgl/mgl64"

// Snapshot is the input state for one tick
// Held is level state, Pressed is the rising edge observed since the previous snapshot
type Snapshot struct {
	held          [actionCount]bool
	pressed       [actionCount]bool
	buttonHeld    [buttonCount]bool
	buttonPressed [buttonCount]bool
	mouse         mgl64.Vec2
}

// Held reports level state of an action
func (s Snapshot) Held(a Action) bool {
	return a < actionCount && s.held[a]
}

// Pressed reports a rising edge of an action this tick
func (s Snapshot) Pressed(a Action) bool {
	return a < actionCount && s.pressed[a]
}

// ButtonHeld reports level state of a mouse button
func (s Snapshot) ButtonHeld(b Button) bool {
	return b < buttonCount && s.buttonHeld[b]
}

// ButtonPressed reports a rising edge of a mouse button this tick
func (s Snapshot) ButtonPressed(b Button) bool {
	return b < buttonCount && s.buttonPressed[b]
}

// MouseDelta returns accumulated pointer motion in pixels, x right and y down
func (s Snapshot) MouseDelta() mgl64.Vec2 {
	return s.mouse
}

// WithHeld returns a copy with the actions held
func (s Snapshot) WithHeld(actions ...Action) Snapshot {
	for _, a := range actions {
		if a < actionCount {
			s.held[a] = true
		}
	}
	return s
}

// WithPressed returns a copy with the actions pressed this tick, press implies held
func (s Snapshot) WithPressed(actions ...Action) Snapshot {
	for _, a := range actions {
		if a < actionCount {
			s.pressed[a] = true
			s.held[a] = true
		}
	}
	return s
}

// WithButtonHeld returns a copy with the button held but not newly pressed
func (s Snapshot) WithButtonHeld(b Button) Snapshot {
	if b < buttonCount {
		s.buttonHeld[b] = true
	}
	return s
}

// WithButtonPressed returns a copy with a rising edge on the button
func (s Snapshot) WithButtonPressed(b Button) Snapshot {
	if b < buttonCount {
		s.buttonHeld[b] = true
		s.buttonPressed[b] = true
	}
	return s
}

// WithMouse returns a copy with the given pointer motion
func (s Snapshot) WithMouse(dx, dy float64) Snapshot {
	s.mouse = mgl64.Vec2{dx, dy}
	return s
}
