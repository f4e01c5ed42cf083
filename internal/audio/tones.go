package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator produces a sine tone that glides linearly from one frequency
// to another over its duration, shaped by a short attack and a linear fade.
type ToneGenerator struct {
	sr       beep.SampleRate
	from, to float64
	gain     float64
	total    int
	attack   int
	pos      int
	phase    float64
}

// NewToneGenerator creates a tone of the given length. Equal from and to give
// a steady pitch.
func NewToneGenerator(sr beep.SampleRate, from, to float64, d time.Duration, gain float64) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		gain:   gain,
		total:  sr.N(d),
		attack: sr.N(5 * time.Millisecond),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress

		sample := g.gain * envelope(g.pos, g.attack, g.total) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// NoiseGenerator produces an exponentially decaying noise burst over a low
// rumble.
type NoiseGenerator struct {
	sr    beep.SampleRate
	gain  float64
	total int
	pos   int
	seed  uint32
}

// NewNoiseGenerator creates a burst of the given length. The noise sequence
// is fixed, so every burst sounds the same.
func NewNoiseGenerator(sr beep.SampleRate, d time.Duration, gain float64) *NoiseGenerator {
	return &NoiseGenerator{
		sr:    sr,
		gain:  gain,
		total: sr.N(d),
		seed:  0x2545f491,
	}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// xorshift32
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		rumble := math.Sin(2 * math.Pi * 70 * t)
		sample := g.gain * math.Exp(-t*9) * (0.6*noise + 0.4*rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}

// envelope returns the gain at pos for a linear attack followed by a linear
// fade to zero at total.
func envelope(pos, attack, total int) float64 {
	if attack > 0 && pos < attack {
		return float64(pos) / float64(attack)
	}
	return float64(total-pos) / float64(total)
}

// streamerFor builds a fresh streamer for one cue.
func streamerFor(s Sound, sr beep.SampleRate) beep.Streamer {
	switch s {
	case SoundStart:
		return beep.Seq(
			NewToneGenerator(sr, 440, 440, 70*time.Millisecond, 0.5),
			NewToneGenerator(sr, 660, 880, 120*time.Millisecond, 0.5),
		)
	case SoundSpawn:
		return NewToneGenerator(sr, 220, 200, 30*time.Millisecond, 0.15)
	case SoundDodge:
		return NewToneGenerator(sr, 988, 1319, 60*time.Millisecond, 0.35)
	case SoundCrash:
		return NewNoiseGenerator(sr, 450*time.Millisecond, 0.8)
	}
	return nil
}
