package system

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyhook/component"
	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/economy"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/event"
	"github.com/lixenwraith/skyhook/input"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/status"
	"github.com/lixenwraith/skyhook/vmath"
)

// PlayerSystem runs the player controller: cursor capture, look, locomotion,
// jump, grapple targeting and pull, smash, dash and height scoring
type PlayerSystem struct {
	engine.SystemBase
	phys Physics

	// highlighted is the entity currently carrying the candidate outline
	highlighted core.Entity

	enabled bool
	missing zerolog.Logger

	statY       *status.AtomicFloat
	statSpeed   *status.AtomicFloat
	statHooked  *atomic.Bool
	statMissing *atomic.Bool
}

// NewPlayerSystem creates the controller over a physics query surface
func NewPlayerSystem(world *engine.World, phys Physics) engine.System {
	res := world.Resource
	s := &PlayerSystem{
		SystemBase: engine.NewSystemBase(world),
		phys:       phys,
		missing:    missingPlayerLogger(res, "player"),

		statY:       res.Status.Floats.Get(status.KeyPlayerY),
		statSpeed:   res.Status.Floats.Get(status.KeyPlayerSpeed),
		statHooked:  res.Status.Bools.Get(status.KeyPlayerHooked),
		statMissing: res.Status.Bools.Get(status.KeyPlayerMissing),
	}
	s.Init()
	return s
}

func (s *PlayerSystem) Init() {
	s.highlighted = core.NoEntity
	s.enabled = true
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) Update() {
	if !s.enabled {
		return
	}

	e, err := s.World.PlayerEntity()
	if err != nil {
		s.statMissing.Store(true)
		s.missing.Error().Err(err).Msg("player controller skipped")
		return
	}
	s.statMissing.Store(false)

	pc, ok := s.Component.Player.Get(e)
	if !ok {
		s.missing.Error().Uint64("entity", uint64(e)).Msg("player entity lacks controller state")
		return
	}
	tr, ok := s.Component.Transform.Get(e)
	if !ok {
		s.missing.Error().Uint64("entity", uint64(e)).Msg("player entity lacks transform")
		return
	}
	look, _ := s.Component.CameraLook.Get(e)

	in := s.Resource.Input
	s.updateCursor(in)

	// Button release always clears the hook, even while paused
	if pc.IsHooked() && !in.ButtonHeld(input.ButtonPrimary) {
		s.release(&pc)
	}

	if !s.Resource.Clock.IsPaused() {
		s.updateLook(in, &tr, &look)

		vel, _ := s.phys.Velocity(e)
		vel = s.locomotion(in, e, tr, &pc, vel)
		vel = s.grapple(in, e, tr, look, &pc, vel)
		vel = s.dash(in, look, &pc, vel)
		s.phys.SetVelocity(e, vel)
		s.statSpeed.Set(vel.Len())
	}

	s.scoreHeight(tr.Position.Y(), &pc)

	s.Component.Player.Set(e, pc)
	s.Component.Transform.Set(e, tr)
	s.Component.CameraLook.Set(e, look)

	s.statY.Set(tr.Position.Y())
	s.statHooked.Store(pc.IsHooked())
}

// updateCursor captures on primary press and releases on cancel
// A released cursor holds the cursor pause request
func (s *PlayerSystem) updateCursor(in *input.Snapshot) {
	cur := s.Resource.Cursor
	switch {
	case in.Pressed(input.ActionCancel) && cur.Captured:
		cur.Captured = false
		s.Resource.Clock.Pause(engine.PauseCursor)
	case in.ButtonPressed(input.ButtonPrimary) && !cur.Captured && !s.Resource.Shop.Open:
		cur.Captured = true
		s.Resource.Clock.Resume(engine.PauseCursor)
	}
}

// updateLook applies mouse delta: yaw to body and aim, pitch to aim only
func (s *PlayerSystem) updateLook(in *input.Snapshot, tr *component.TransformComponent, look *component.CameraLookComponent) {
	if !s.Resource.Cursor.Captured {
		return
	}
	d := in.MouseDelta()
	sens := s.Resource.Config.Player.LookSensitivity
	look.Yaw -= d.X() * sens
	look.Pitch = vmath.Clamp(look.Pitch-d.Y()*sens, -vmath.MaxPitch, vmath.MaxPitch)
	tr.Rotation = vmath.YawRotation(look.Yaw)
}

// locomotion adds uncapped acceleration along held body-relative directions and a grounded jump
func (s *PlayerSystem) locomotion(in *input.Snapshot, e core.Entity, tr component.TransformComponent, pc *component.PlayerComponent, vel mgl64.Vec3) mgl64.Vec3 {
	cfg := &s.Resource.Config.Player
	forward := vmath.ForwardOf(tr.Rotation)
	right := vmath.RightOf(tr.Rotation)

	var dir mgl64.Vec3
	if in.Held(input.ActionForward) {
		dir = dir.Add(forward)
	}
	if in.Held(input.ActionBack) {
		dir = dir.Sub(forward)
	}
	if in.Held(input.ActionRight) {
		dir = dir.Add(right)
	}
	if in.Held(input.ActionLeft) {
		dir = dir.Sub(right)
	}
	vel = vel.Add(dir.Mul(cfg.Acceleration * s.Resource.Time.SimDelta.Seconds()))

	pc.Grounded = s.phys.GroundProbe(e, parameter.GroundProbeDistance)
	if in.Pressed(input.ActionJump) && pc.Grounded {
		vel = vel.Add(mgl64.Vec3{0, cfg.JumpVelocity, 0})
	}
	return vel
}

// grapple updates the candidate, commits or holds the hook, applies pull and smash
func (s *PlayerSystem) grapple(in *input.Snapshot, e core.Entity, tr component.TransformComponent, look component.CameraLookComponent, pc *component.PlayerComponent, vel mgl64.Vec3) mgl64.Vec3 {
	cfg := &s.Resource.Config.Player
	hookRange := cfg.HookBaseRange + cfg.HookRangePerLevel*float64(pc.Upgrades.HookRange)

	pc.Candidate = core.NoEntity
	if hit, ok := s.phys.RayCast(tr.Position, look.Forward(), hookRange, e); ok {
		if !s.Component.Fadeout.Has(s.World.Root(hit.Entity)) {
			pc.Candidate = hit.Entity
		}
	}
	s.highlight(pc.Candidate)

	if in.ButtonPressed(input.ButtonPrimary) && pc.Candidate != core.NoEntity {
		pc.HookedOnto = pc.Candidate
		pc.DashAvailable = true
	}
	if !pc.IsHooked() {
		return vel
	}

	target, ok := s.Component.Transform.Get(pc.HookedOnto)
	if !ok || !s.World.Alive(pc.HookedOnto) {
		s.release(pc)
		return vel
	}

	toTarget := target.Position.Sub(tr.Position)
	dir := vmath.SafeNormalize(toTarget)
	pull := cfg.HookSpeed * economy.Multiplier(pc.Upgrades.HookStrength, cfg.HookStrengthPerLevel) * s.Resource.Time.SimDelta.Seconds()
	vel = vel.Add(dir.Mul(pull))

	if s.phys.IsDynamic(pc.HookedOnto) {
		if tv, ok := s.phys.Velocity(pc.HookedOnto); ok {
			s.phys.SetVelocity(pc.HookedOnto, tv.Sub(dir.Mul(pull*cfg.HookReactionFactor)))
		}
	}

	if toTarget.Len() <= cfg.SmashDistance {
		s.smash(pc)
	}
	return vel
}

// smash fades a destructible hook target, awards points and releases the hook
func (s *PlayerSystem) smash(pc *component.PlayerComponent) {
	root := s.World.Root(pc.HookedOnto)
	fo, ok := s.Component.FallingObject.Get(root)
	if !ok || !fo.Destructible() || s.Component.Fadeout.Has(root) {
		return
	}

	s.Component.Fadeout.Set(root, component.NewFadeout(s.Resource.Config.Spawn.FadeoutDuration))
	points := uint64(parameter.SmashPointsSphere)
	if fo.Kind == component.FallingThingamajig {
		points = parameter.SmashPointsThingamajig
	}
	s.World.PushEvent(event.EventSmash, &event.SmashPayload{Entity: root, Points: points})
	s.Resource.Log.Debug().Uint64("entity", uint64(root)).Uint64("points", points).Msg("smash")
	s.release(pc)
}

// dash applies the aim-forward impulse when available and off cooldown
func (s *PlayerSystem) dash(in *input.Snapshot, look component.CameraLookComponent, pc *component.PlayerComponent, vel mgl64.Vec3) mgl64.Vec3 {
	if !in.ButtonPressed(input.ButtonSecondary) || !pc.DashAvailable {
		return vel
	}
	cfg := &s.Resource.Config.Player
	now := s.Resource.Time.SimElapsed
	if pc.HasDashed && now-pc.LastDash < cfg.DashCooldown {
		return vel
	}

	power := cfg.DashPower * economy.Multiplier(pc.Upgrades.DashStrength, cfg.DashStrengthPerLevel)
	pc.DashAvailable = false
	pc.LastDash = now
	pc.HasDashed = true
	return vel.Add(look.Forward().Mul(power))
}

// scoreHeight raises the best height milestone and reports the gain
func (s *PlayerSystem) scoreHeight(y float64, pc *component.PlayerComponent) {
	points := vmath.FloorDivPositive(y, s.Resource.Config.Score.HeightPerPoint)
	if points <= pc.BestHeight {
		return
	}
	s.World.PushEvent(event.EventHeightReached, &event.HeightReachedPayload{
		Points: points - pc.BestHeight,
		Best:   points,
	})
	pc.BestHeight = points
}

// release drops the hook and the highlight
func (s *PlayerSystem) release(pc *component.PlayerComponent) {
	pc.HookedOnto = core.NoEntity
	pc.Candidate = core.NoEntity
	s.highlight(core.NoEntity)
}

// highlight moves the outline to e; targets without material are skipped
func (s *PlayerSystem) highlight(e core.Entity) {
	if e == s.highlighted {
		return
	}
	materials := s.Component.Material
	if m, ok := materials.Get(s.highlighted); ok {
		m.Outline = false
		materials.Set(s.highlighted, m)
	}
	s.highlighted = core.NoEntity
	if m, ok := materials.Get(e); ok {
		m.Outline = true
		materials.Set(e, m)
		s.highlighted = e
	}
}
