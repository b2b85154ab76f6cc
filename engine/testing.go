package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/volleyball/core"
)

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FixedRandom replays a fixed sequence of draws, cycling when exhausted
// An empty sequence always yields 0
type FixedRandom struct {
	Values []float64
	next   int
}

// Float64 returns the next value of the sequence
func (f *FixedRandom) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}

// StaticInput reports a fixed set of held actions
type StaticInput map[core.Action]bool

// Held implements InputState
func (s StaticInput) Held(action core.Action) bool {
	return s[action]
}

// RecordingAudio records every cue it is asked to play
type RecordingAudio struct {
	Played []core.SoundType
}

// Play implements AudioPlayer
func (r *RecordingAudio) Play(st core.SoundType) bool {
	r.Played = append(r.Played, st)
	return true
}

// Count returns how many times a cue was played
func (r *RecordingAudio) Count(st core.SoundType) int {
	n := 0
	for _, p := range r.Played {
		if p == st {
			n++
		}
	}
	return n
}

// NewTestGameContext creates a context on a mock clock with recording audio
// The returned mock drives the frame clock; the first Step reports zero delta
func NewTestGameContext(rng RandomSource) (*GameContext, *MockTimeProvider, *RecordingAudio) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if rng == nil {
		rng = &FixedRandom{Values: []float64{0.5}}
	}
	ctx := NewGameContext(clock, rng)
	audio := &RecordingAudio{}
	ctx.Audio = audio
	return ctx, clock, audio
}
