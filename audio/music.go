package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/volleyball/constants"
)

// bassline cycles one note per beat (A2, A2, F2, G2)
var bassline = [...]float64{110.0, 110.0, 87.31, 98.0}

// MusicGenerator synthesizes an endless kick and bass loop
// It never drains, pausing is done through the surrounding beep.Ctrl
type MusicGenerator struct {
	sr          beep.SampleRate
	pos         int
	beatSamples int
	kickSamples int
}

// NewMusicGenerator creates the background loop generator
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:          sr,
		beatSamples: sr.N(constants.MusicBeatDuration),
		kickSamples: sr.N(constants.MusicKickDuration),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beat := g.pos / g.beatSamples
		beatPos := g.pos % g.beatSamples
		t := float64(beatPos) / float64(g.sr)

		// Kick drum at the start of every beat
		kick := 0.0
		if beatPos < g.kickSamples {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kickSamples)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.4 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		freq := bassline[beat%len(bassline)]
		bassEnv := math.Exp(-t * 3)
		bass := 0.2 * bassEnv * math.Sin(2*math.Pi*freq*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample

		g.pos++
		// Wrap on a whole bar to keep pos bounded
		if g.pos >= g.beatSamples*len(bassline) {
			g.pos = 0
		}
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
