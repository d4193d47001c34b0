package parameter

import "time"

// Physics
const (
	Gravity = -5.0

	GroundHalfX = 5.0
	GroundHalfY = 0.5
	GroundHalfZ = 5.0
	GroundY     = -1.0

	// StaticGridCell is the spatial hash cell size for static colliders
	StaticGridCell = 16.0
)

// Engine
const (
	DefaultTickRate = 60
	// MaxTickDelta clamps a single frame delta after stalls
	MaxTickDelta = 100 * time.Millisecond
	// FPSWindow is the diagnostics averaging window
	FPSWindow = 1 * time.Second
)
