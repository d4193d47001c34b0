package economy

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/skyhook/vmath"
)

var (
	// ErrInsufficientPoints is returned when available points do not exceed the price
	ErrInsufficientPoints = errors.New("insufficient points")
	// ErrUnknownTrack is returned for an out-of-range track
	ErrUnknownTrack = errors.New("unknown upgrade track")
)

// Track identifies an independent upgrade line
type Track uint8

const (
	TrackHookRange Track = iota
	TrackHookStrength
	TrackDashStrength
)

// Tracks lists every track in shop order
var Tracks = [...]Track{TrackHookRange, TrackHookStrength, TrackDashStrength}

func (t Track) String() string {
	switch t {
	case TrackHookRange:
		return "Hook Range"
	case TrackHookStrength:
		return "Hook Strength"
	case TrackDashStrength:
		return "Dash Strength"
	default:
		return "Unknown"
	}
}

// Upgrades holds the level of each track
type Upgrades struct {
	HookRange    uint32
	HookStrength uint32
	DashStrength uint32
}

// Level returns the current level of a track
func (u *Upgrades) Level(t Track) uint32 {
	switch t {
	case TrackHookRange:
		return u.HookRange
	case TrackHookStrength:
		return u.HookStrength
	case TrackDashStrength:
		return u.DashStrength
	default:
		return 0
	}
}

func (u *Upgrades) level(t Track) *uint32 {
	switch t {
	case TrackHookRange:
		return &u.HookRange
	case TrackHookStrength:
		return &u.HookStrength
	case TrackDashStrength:
		return &u.DashStrength
	default:
		return nil
	}
}

// Multiplier returns 1 + level*perLevel
func Multiplier(level uint32, perLevel float64) float64 {
	return 1 + float64(level)*perLevel
}

// Price returns level^2 * 3 + 10, saturating at MaxUint64
func Price(level uint64) uint64 {
	// 3*l^2 + 10 overflows once l^2 > (MaxUint64-10)/3
	if level > 0 && level > (math.MaxUint64-10)/3/level {
		return math.MaxUint64
	}
	return level*level*3 + 10
}

// Available returns points that can still be spent
func Available(score Points, spent uint64) uint64 {
	return vmath.SaturatingSub(score.Total(), spent)
}

// Purchase buys the next level of track if available points strictly exceed its price
// On success spent is increased by the price and the level incremented; returns the price paid
func Purchase(score Points, spent *uint64, upgrades *Upgrades, track Track) (uint64, error) {
	lvl := upgrades.level(track)
	if lvl == nil {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTrack, track)
	}
	if *lvl == math.MaxUint32 {
		return 0, fmt.Errorf("%s at max level: %w", track, ErrInsufficientPoints)
	}

	price := Price(uint64(*lvl))
	if Available(score, *spent) <= price {
		return 0, fmt.Errorf("%s costs %d: %w", track, price, ErrInsufficientPoints)
	}

	*spent += price
	*lvl++
	return price, nil
}
