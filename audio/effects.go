package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/core"
)

// oscillator generates a square wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewOscillator creates a square-wave oscillator, smooth tones come from generators.SineTone
func NewOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly
// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateBounceSound generates a short square-wave blip with a sine body
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	blip := NewOscillator(660.0, constants.BounceSoundDuration, rate)
	blipShaped := NewEnvelope(blip, constants.BounceSoundDuration, constants.BounceSoundAttack, constants.BounceSoundRelease, rate)

	var body beep.Streamer = beep.Silence(rate.N(constants.BounceSoundDuration))
	if sine, err := generators.SineTone(rate, 330.0); err == nil {
		body = NewEnvelope(beep.Take(rate.N(constants.BounceSoundDuration), sine),
			constants.BounceSoundDuration, constants.BounceSoundAttack, constants.BounceSoundRelease, rate)
	}

	mixed := beep.Mix(
		newVolume(blipShaped, 0.4),
		newVolume(body, 0.6),
	)

	vol := cfg.EffectVolumes[core.SoundBounce] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateScoreSound generates a two-note falling chime
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (E6)
	n1 := NewOscillator(1318.51, constants.ScoreSoundNote1Duration, rate)
	n1Shaped := NewEnvelope(n1, constants.ScoreSoundNote1Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote1Release, rate)

	// Second note (B5)
	n2 := NewOscillator(987.77, constants.ScoreSoundNote2Duration, rate)
	n2Shaped := NewEnvelope(n2, constants.ScoreSoundNote2Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	vol := cfg.EffectVolumes[core.SoundScore] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// GetSoundEffect returns the synthesized streamer for a cue, nil if unknown
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundBounce:
		return CreateBounceSound(cfg)
	case core.SoundScore:
		return CreateScoreSound(cfg)
	default:
		return nil
	}
}
