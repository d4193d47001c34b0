package parameter

import "time"

// Lifecycle thresholds
const (
	// DespawnY is added to player altitude; tagged objects below it are removed
	DespawnY = -100.0

	// FadeoutDuration is the smash fade time
	FadeoutDuration = 2 * time.Second
)

// Spatial de-duplication (squared distances)
const (
	MinSphereDistance      = 1000.0
	MinThingamajigDistance = 5000.0
)

// Tier 1 spawn shapes
const (
	StaticSphereChance = 0.1
	StaticSphereRadius = 3.0
	StaticSphereSpread = 100.0

	FallingSphereRadius   = 1.0
	FallingSphereSpread   = 200.0
	FallingSphereHeight   = 100.0
	FallingSphereVelocity = -10.0
)

// Tier 2 composite shapes
const (
	ThingamajigChance   = 0.1
	ThingamajigSpread   = 200.0
	ThingamajigHeight   = 100.0
	ThingamajigSpacing  = 2.0
	ThingamajigCubeHalf = 0.5

	// Hollow cube shell lattice, cells per side
	ThingamajigBoxCells = 6
	// Sphere shell lattice radius and shell half-thickness, in cells
	ThingamajigShellRadius    = 3.0
	ThingamajigShellThickness = 0.7
)

// Color channel range for spawned materials (linear, HDR)
const (
	ColorMin = 0.3
	ColorMax = 10.0
)

// SpawnTier is one row of the altitude step table
// Rows are evaluated top-down, the first row with AboveY < y wins
type SpawnTier struct {
	AboveY float64
	Tier1  time.Duration
	Tier2  time.Duration
}

// DefaultSpawnTiers is the altitude step function, higher rows first
// Tier2 of zero disables composite spawning at that altitude
var DefaultSpawnTiers = []SpawnTier{
	{AboveY: 300, Tier1: 80 * time.Millisecond, Tier2: 400 * time.Millisecond},
	{AboveY: 200, Tier1: 70 * time.Millisecond},
	{AboveY: 100, Tier1: 40 * time.Millisecond},
	{AboveY: -1e308, Tier1: 20 * time.Millisecond},
}
