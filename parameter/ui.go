package parameter

import "time"

// HintDef is a one-shot altitude-triggered hint
type HintDef struct {
	AboveY   float64
	Text     string
	Icon     string
	Duration time.Duration
}

// DefaultHints fire in table order as the player first climbs past each threshold
var DefaultHints = []HintDef{
	{AboveY: 0, Text: "Hold left click on an object to grapple", Icon: "mouse_left", Duration: 4 * time.Second},
	{AboveY: 10, Text: "Right click to dash, hooking something recharges it", Icon: "mouse_right", Duration: 4 * time.Second},
	{AboveY: 30, Text: "Reel into falling spheres to smash them for points", Icon: "mouse_left", Duration: 4 * time.Second},
	{AboveY: 50, Text: "Press Tab to open the upgrade shop", Icon: "key_tab", Duration: 5 * time.Second},
	{AboveY: 300, Text: "Something big is falling from above", Icon: "warning", Duration: 5 * time.Second},
}

// Event queue
const (
	EventQueueSize = 256
)
