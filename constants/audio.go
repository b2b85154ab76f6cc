package constants

import "time"

// Audio Engine
const (
	// SampleRate is the mixer and speaker rate in Hz
	SampleRate = 48000

	// SpeakerBufferDuration is the latency budget handed to speaker.Init
	SpeakerBufferDuration = 100 * time.Millisecond

	// WAVResampleQuality is passed to beep.Resample for file-based cues
	WAVResampleQuality = 4
)

// Bounce Sound Timing
const (
	BounceSoundDuration = 70 * time.Millisecond
	BounceSoundAttack   = 3 * time.Millisecond
	BounceSoundRelease  = 50 * time.Millisecond
)

// Score Sound Timing
const (
	ScoreSoundNote1Duration = 90 * time.Millisecond
	ScoreSoundNote2Duration = 260 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 40 * time.Millisecond
	ScoreSoundNote2Release  = 200 * time.Millisecond
)

// Music loop
const (
	// MusicBeatDuration is one step of the background loop (~100 BPM)
	MusicBeatDuration = 600 * time.Millisecond

	// MusicKickDuration is the decay window of the kick on each beat
	MusicKickDuration = 100 * time.Millisecond
)
