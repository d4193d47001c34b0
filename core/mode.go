package core

// GameMode is the top-level process mode
// Menu -> Playing is the only transition wired
type GameMode uint8

const (
	ModeMenu GameMode = iota
	ModePlaying
)

func (m GameMode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	default:
		return "unknown"
	}
}
