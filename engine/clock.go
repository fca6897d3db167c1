package engine

import (
	"sync"
	"time"
)

// TimeSource is the clock a session reads once per Tick to derive the frame delta
// The lifecycle log stamps its records from the same source
type TimeSource interface {
	Now() time.Time
}

// TimeProvider is the wall clock used by the terminal frontend
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now keeps the monotonic reading, frame deltas stay positive across wall clock jumps
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a hand-cranked clock, frames only advance when a test moves it
// Safe for a test goroutine to advance while a session loop reads it
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime jumps the clock, a jump backwards yields a zero frame delta
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the clock by one frame of length d and returns the new reading
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	return m.currentTime
}
