package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/economy"
	"github.com/lixenwraith/skyhook/vmath"
)

// PlayerComponent holds controller state for the single player entity
type PlayerComponent struct {
	// HookedOnto is NoEntity unless the grapple button is held with a committed target
	HookedOnto core.Entity
	// Candidate is the current ray-cast hook target, NoEntity if none
	Candidate core.Entity

	// DashAvailable is consumed by a dash and restored by a new hook attachment
	DashAvailable bool
	// LastDash is the simulation time of the last dash, valid when HasDashed
	LastDash  time.Duration
	HasDashed bool

	Grounded bool

	// BestHeight is the highest floor(y/HeightPerPoint) reached, never decreases
	BestHeight uint64

	Upgrades economy.Upgrades
}

// IsHooked reports whether a hook is attached
func (p PlayerComponent) IsHooked() bool {
	return p.HookedOnto != core.NoEntity
}

// CameraLookComponent is the aim orientation, decoupled from the yaw-only body
type CameraLookComponent struct {
	Yaw   float64
	Pitch float64
}

// Rotation returns the yaw-then-pitch aim rotation
func (c CameraLookComponent) Rotation() mgl64.Quat {
	return vmath.LookRotation(c.Yaw, c.Pitch)
}

// Forward returns the aim direction
func (c CameraLookComponent) Forward() mgl64.Vec3 {
	return vmath.ForwardOf(c.Rotation())
}
