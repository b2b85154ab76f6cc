package audio

import (
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/core"
)

// AudioConfig holds mixer levels and optional file-based cues
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64 // 0.0-1.0
	MusicVolume   float64 // 0.0-1.0, relative to master
	EffectVolumes map[core.SoundType]float64

	// WAV files replacing the synthesized cues, empty means synthesize
	SoundFiles map[core.SoundType]string
}

// DefaultAudioConfig returns unmuted audio with the music bed at a quarter volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.SampleRate,
		MasterVolume: 1.0,
		MusicVolume:  0.25,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundBounce: 0.5,
			core.SoundScore:  0.6,
		},
		SoundFiles: map[core.SoundType]string{},
	}
}

// clampVolume bounds a volume to 0.0-1.0
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
