package engine

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyhook/config"
	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/economy"
	"github.com/lixenwraith/skyhook/event"
	"github.com/lixenwraith/skyhook/input"
	"github.com/lixenwraith/skyhook/parameter"
	"github.com/lixenwraith/skyhook/status"
)

// Resource holds singleton game state, accessed via World.Resource
// Each field is owned by one system per tick phase
type Resource struct {
	// World Resource
	Time   *TimeResource
	Clock  *SimClock
	Config *config.Config
	Input  *input.Snapshot
	Event  *event.Queue
	Rand   *rand.Rand

	// Gameplay
	Player *PlayerResource
	Score  *economy.Score
	Spend  *SpendResource
	Spawn  *SpawnResource
	Shop   *ShopResource
	Cursor *CursorResource
	Hints  *HintResource
	Debug  *DebugResource

	// Telemetry
	Status *status.Registry
	Log    zerolog.Logger
}

// NewResource creates resources from a validated config
// Seed 0 derives the RNG seed from wall time
func NewResource(cfg *config.Config, log zerolog.Logger) *Resource {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Resource{
		Time:   &TimeResource{},
		Clock:  NewSimClock(),
		Config: cfg,
		Input:  &input.Snapshot{},
		Event:  event.NewQueue(parameter.EventQueueSize),
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Player: &PlayerResource{},
		Score:  &economy.Score{},
		Spend:  &SpendResource{},
		Spawn:  &SpawnResource{},
		Shop:   &ShopResource{},
		Cursor: &CursorResource{},
		Hints:  &HintResource{},
		Debug:  &DebugResource{},
		Status: status.NewRegistry(),
		Log:    log,
	}
}

// === World Resources ===

// TimeResource wraps time data for systems
// Updated by Game at the start of a tick
type TimeResource struct {
	// SimElapsed and SimDelta follow the pausable simulation clock
	SimElapsed time.Duration
	SimDelta   time.Duration

	// RealElapsed and RealDelta follow wall time (unaffected by pause)
	RealElapsed time.Duration
	RealDelta   time.Duration

	FrameNumber int64
	Paused      bool
}

// === Gameplay Resources ===

// PlayerResource holds the single optional player entity
type PlayerResource struct {
	entity core.Entity
}

// Get returns the player entity, false if none exists
func (p *PlayerResource) Get() (core.Entity, bool) {
	return p.entity, p.entity != core.NoEntity
}

// Set records the player entity
func (p *PlayerResource) Set(e core.Entity) {
	p.entity = e
}

// Clear forgets the player entity
func (p *PlayerResource) Clear() {
	p.entity = core.NoEntity
}

// SpendResource tracks points spent in the shop, never exceeds the revealed total
type SpendResource struct {
	Spent     uint64
	Purchases int
}

// SpawnResource is the current spawn settings, recomputed each tick from altitude
// Zero interval disables the tier
type SpawnResource struct {
	Tier1 time.Duration
	Tier2 time.Duration
}

// ShopResource is the shop state machine, Closed unless Open
type ShopResource struct {
	Open    bool
	Overlay core.Entity
}

// CursorResource tracks pointer capture for mouse-look
type CursorResource struct {
	Captured bool
}

// Hint is a queued (text, icon, duration) triple
type Hint struct {
	Text     string
	Icon     string
	Duration time.Duration
}

// HintResource is the FIFO of pending hints and the one on display
type HintResource struct {
	Queue     []Hint
	Current   *Hint
	Remaining time.Duration
}

// Push appends a hint to the queue
func (h *HintResource) Push(hint Hint) {
	h.Queue = append(h.Queue, hint)
}

// DebugResource toggles the diagnostics panel
type DebugResource struct {
	Visible bool
	FPS     float64
}
