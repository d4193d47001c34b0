// Package input turns frontend key and mouse events into per-tick snapshots
package input

// Action is a logical keyboard action, independent of the physical binding
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
	ActionShop   // Tab
	ActionDebug  // F3
	ActionCancel // Escape, releases the cursor
	ActionBuyHookRange
	ActionBuyHookStrength
	ActionBuyDashStrength
	ActionStart
	ActionQuit

	actionCount
)

// Button is a mouse button
type Button uint8

const (
	ButtonPrimary   Button = iota // grapple
	ButtonSecondary               // dash

	buttonCount
)

var actionNames = [actionCount]string{
	ActionNone:            "none",
	ActionForward:         "forward",
	ActionBack:            "back",
	ActionLeft:            "left",
	ActionRight:           "right",
	ActionJump:            "jump",
	ActionShop:            "shop",
	ActionDebug:           "debug",
	ActionCancel:          "cancel",
	ActionBuyHookRange:    "buy_hook_range",
	ActionBuyHookStrength: "buy_hook_strength",
	ActionBuyDashStrength: "buy_dash_strength",
	ActionStart:           "start",
	ActionQuit:            "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}
