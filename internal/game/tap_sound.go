package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// click is a short decaying sine burst. It implements beep.Streamer and
// ends once length has been produced.
type click struct {
	sampleRate beep.SampleRate
	freq       float64
	volume     float64
	pos        int
	total      int
}

func newClick(sr beep.SampleRate, freq float64, length time.Duration, volume float64) *click {
	return &click{
		sampleRate: sr,
		freq:       freq,
		volume:     volume,
		total:      sr.N(length),
	}
}

func (c *click) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.pos >= c.total {
			break
		}
		progress := float64(c.pos) / float64(c.total)
		env := math.Exp(-5*progress) * (1 - progress)
		t := float64(c.pos) / float64(c.sampleRate)
		v := c.volume * env * math.Sin(2*math.Pi*c.freq*t)
		samples[i] = [2]float64{v, v}
		c.pos++
		n++
	}
	return n, true
}

func (c *click) Err() error { return nil }

// tapSound plays a click through the system speaker.
type tapSound struct {
	sampleRate beep.SampleRate
	freq       float64
	length     time.Duration
	volume     float64
}

func newTapSound(sr beep.SampleRate, freq float64, length time.Duration, volume float64) (*tapSound, error) {
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &tapSound{sampleRate: sr, freq: freq, length: length, volume: volume}, nil
}

func (s *tapSound) play() {
	speaker.Play(newClick(s.sampleRate, s.freq, s.length, s.volume))
}
