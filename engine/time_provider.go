package engine

import "time"

// TimeProvider abstracts wall-clock reads so loops can be driven in tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually advanced time source
type MockTimeProvider struct {
	now time.Time
}

// NewMockTimeProvider creates a mock starting at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// Advance moves the mocked time forward
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// FrameTimer measures real delta between successive ticks
type FrameTimer struct {
	provider TimeProvider
	last     time.Time
	started  bool
}

// NewFrameTimer creates a timer over the given provider
func NewFrameTimer(provider TimeProvider) *FrameTimer {
	return &FrameTimer{provider: provider}
}

// Tick returns time since the previous call, zero on the first call
func (f *FrameTimer) Tick() time.Duration {
	now := f.provider.Now()
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}
	d := now.Sub(f.last)
	f.last = now
	if d < 0 {
		return 0
	}
	return d
}
