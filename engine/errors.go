package engine

import "errors"

// ErrNoPlayer is returned when a system needs the player entity and none exists
var ErrNoPlayer = errors.New("no player entity")
