package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/lixenwraith/volleyball/constants"
)

// LoadWAV decodes a WAV file into memory at the mixer's sample rate
// The returned buffer can be replayed any number of times
func LoadWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(constants.WAVResampleQuality, format.SampleRate, rate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buffer.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if buffer.Len() == 0 {
		return nil, fmt.Errorf("decode %s: no samples", path)
	}
	return buffer, nil
}
