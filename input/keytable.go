package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (Tab, Escape, arrows, function keys)
	Keys map[tcell.Key]Action

	// Printable runes, matched case-insensitively for letters
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionForward,
			tcell.KeyDown:   ActionBack,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyTab:    ActionShop,
			tcell.KeyF3:     ActionDebug,
			tcell.KeyEscape: ActionCancel,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBack,
			'a': ActionLeft,
			'd': ActionRight,
			' ': ActionJump,
			'1': ActionBuyHookRange,
			'2': ActionBuyHookStrength,
			'3': ActionBuyDashStrength,
		},
	}
}

// Lookup resolves a key event to an action, ActionNone if unbound
func (t *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return t.Runes[r]
	}
	return t.Keys[ev.Key()]
}
