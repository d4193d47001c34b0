package component

import "time"

// FadeoutComponent linearly fades material alpha from 1 to 0 over Duration, then the entity is removed
// Owned by the entity it decorates; on a composite parent it fades every member
type FadeoutComponent struct {
	Duration time.Duration
	Elapsed  time.Duration
	Alpha    float64
}

// NewFadeout starts a fade at full opacity
func NewFadeout(d time.Duration) FadeoutComponent {
	return FadeoutComponent{Duration: d, Alpha: 1}
}

// Advance moves the fade forward and reports whether it has completed
func (f *FadeoutComponent) Advance(dt time.Duration) bool {
	f.Elapsed += dt
	if f.Duration <= 0 || f.Elapsed >= f.Duration {
		f.Alpha = 0
		return true
	}
	f.Alpha = 1 - f.Elapsed.Seconds()/f.Duration.Seconds()
	return false
}
