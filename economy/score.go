// Package economy implements score accounting, upgrade pricing and purchases
package economy

import "github.com/lixenwraith/skyhook/vmath"

// Points is a pair of height and destruction points
type Points struct {
	Height      uint64
	Destruction uint64
}

// Total returns the saturating sum of both kinds
func (p Points) Total() uint64 {
	return vmath.SaturatingAdd(p.Height, p.Destruction)
}

// Score separates revealed points from earned-but-unrevealed points
// Current never decreases; ToBeAdded only decreases through Reveal
type Score struct {
	Current   Points
	ToBeAdded Points
}

// EarnHeight queues height points for reveal
func (s *Score) EarnHeight(n uint64) {
	s.ToBeAdded.Height = vmath.SaturatingAdd(s.ToBeAdded.Height, n)
}

// EarnDestruction queues destruction points for reveal
func (s *Score) EarnDestruction(n uint64) {
	s.ToBeAdded.Destruction = vmath.SaturatingAdd(s.ToBeAdded.Destruction, n)
}

// Reveal transfers at most one unit of each kind from ToBeAdded to Current
// Returns true if anything moved
func (s *Score) Reveal() bool {
	moved := false
	if s.ToBeAdded.Height > 0 {
		s.ToBeAdded.Height--
		s.Current.Height = vmath.SaturatingAdd(s.Current.Height, 1)
		moved = true
	}
	if s.ToBeAdded.Destruction > 0 {
		s.ToBeAdded.Destruction--
		s.Current.Destruction = vmath.SaturatingAdd(s.Current.Destruction, 1)
		moved = true
	}
	return moved
}

// Pending reports whether unrevealed points remain
func (s *Score) Pending() bool {
	return s.ToBeAdded.Height > 0 || s.ToBeAdded.Destruction > 0
}
