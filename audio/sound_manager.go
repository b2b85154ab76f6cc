package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/core"
)

// SoundManager plays game cues and the music loop through one speaker mixer
// Every method is safe to call before Initialize or after Cleanup, they do nothing
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	music       *beep.Ctrl
	samples     map[core.SoundType]*beep.Buffer
	loadErrors  []error
	initialized bool

	muted atomic.Bool
}

// NewSoundManager creates a new sound manager, nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config:  cfg,
		mixer:   &beep.Mixer{},
		samples: make(map[core.SoundType]*beep.Buffer),
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the music loop
// A missing audio device is returned as an error, the caller may continue silently
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.loadSamples(rate)

	sm.music = &beep.Ctrl{
		Streamer: newVolume(NewMusicGenerator(rate), clampVolume(sm.config.MusicVolume*sm.config.MasterVolume)),
		Paused:   sm.muted.Load(),
	}
	sm.mixer.Add(sm.music)

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// loadSamples decodes configured WAV overrides, failures fall back to synthesis
func (sm *SoundManager) loadSamples(rate beep.SampleRate) {
	for st, path := range sm.config.SoundFiles {
		if path == "" {
			continue
		}
		buffer, err := LoadWAV(path, rate)
		if err != nil {
			sm.loadErrors = append(sm.loadErrors, fmt.Errorf("%s cue: %w", st, err))
			continue
		}
		sm.samples[st] = buffer
	}
}

// LoadErrors returns the WAV overrides that could not be used
func (sm *SoundManager) LoadErrors() []error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return append([]error(nil), sm.loadErrors...)
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.music = nil
	sm.initialized = false
}

// Play queues a cue on the mixer, returns false if nothing was queued
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return false
	}

	streamer := sm.streamerFor(st)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// streamerFor returns a fresh streamer for one playback of the cue
func (sm *SoundManager) streamerFor(st core.SoundType) beep.Streamer {
	if buffer, ok := sm.samples[st]; ok {
		vol := sm.config.EffectVolumes[st] * sm.config.MasterVolume
		return newVolume(buffer.Streamer(0, buffer.Len()), vol)
	}
	return GetSoundEffect(st, sm.config)
}

// ToggleMute flips mute state, returns true if sound is now enabled
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	muted := !sm.muted.Load()
	sm.muted.Store(muted)

	if sm.initialized && sm.music != nil {
		speaker.Lock()
		sm.music.Paused = muted
		speaker.Unlock()
	}
	return !muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsRunning returns true once the speaker has been opened
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// AudioPlayer defines the audio interface used by the game loop
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

var _ AudioPlayer = (*SoundManager)(nil)
