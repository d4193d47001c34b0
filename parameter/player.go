package parameter

import "time"

// Locomotion
const (
	// Acceleration is applied per second along held movement directions, velocity is uncapped
	Acceleration = 30.0
	// JumpVelocity is added to vertical velocity on a grounded jump press
	JumpVelocity = 10.0
	// LookSensitivity converts mouse delta units to radians
	LookSensitivity = 0.001
)

// Player body
const (
	PlayerRadius       = 0.5
	PlayerHalfHeight   = 0.5
	PlayerSpawnY       = 0.5
	PlayerGravityScale = 2.0
	PlayerDamping      = 2.0

	// GroundProbeDistance is the max downward cast from the feet for the grounded test
	GroundProbeDistance = 0.25
)

// Grapple hook
const (
	HookBaseRange     = 40.0
	HookRangePerLevel = 10.0

	// HookSpeed is the pull applied per second toward the hook target
	HookSpeed = 40.0
	// HookStrengthPerLevel scales HookSpeed by (1 + level*HookStrengthPerLevel)
	HookStrengthPerLevel = 0.25
	// HookReactionFactor is the share of the pull applied to a dynamic target in the opposite direction
	HookReactionFactor = 0.2

	// SmashDistance is the center distance at which a hooked destructible target is smashed
	SmashDistance = 2.5
)

// Dash
const (
	DashPower            = 25.0
	DashStrengthPerLevel = 0.25
	DashCooldown         = 1 * time.Second
)

// Score
const (
	// HeightPerPoint is the altitude covered by one height point
	HeightPerPoint = 10.0

	SmashPointsSphere      = 1
	SmashPointsThingamajig = 5

	// ScoreRevealInterval is the repeating reveal timer period
	ScoreRevealInterval = 200 * time.Millisecond
)
