package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-volley/parameter"
	"github.com/lixenwraith/vi-volley/vmath"
)

// WaveType selects the raw waveform of a cue layer
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue is one enveloped layer of a one-shot sound
// Attack ramps up from silence, Release ramps down to the end of Length
type Cue struct {
	Wave    WaveType
	ToneHz  float64 // Ignored by WaveNoise
	Gain    float64 // Linear layer gain before the channel volume
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
}

var (
	killNoiseCue = Cue{
		Wave:    WaveNoise,
		Gain:    parameter.EnemyDestroyedNoiseMix,
		Length:  parameter.EnemyDestroyedDuration,
		Attack:  parameter.EnemyDestroyedAttack,
		Release: parameter.EnemyDestroyedRelease,
	}
	killThumpCue = Cue{
		Wave:    WaveSine,
		ToneHz:  parameter.EnemyDestroyedToneHz,
		Gain:    1 - parameter.EnemyDestroyedNoiseMix,
		Length:  parameter.EnemyDestroyedDuration,
		Attack:  parameter.EnemyDestroyedAttack,
		Release: parameter.EnemyDestroyedRelease,
	}
	shotCue = Cue{
		Wave:    WaveSquare,
		ToneHz:  parameter.ShotToneHz,
		Gain:    1,
		Length:  parameter.ShotDuration,
		Attack:  parameter.ShotAttack,
		Release: parameter.ShotRelease,
	}
)

// burst renders a Cue at a fixed sample rate, ending after Length
type burst struct {
	cue     Cue
	total   int
	attack  int
	release int
	pos     int
	phase   float64
	step    float64 // Phase advance per sample
	rng     *vmath.FastRand
}

// NewBurst returns a finite streamer for c
// Stream reports false once every sample has been written
func NewBurst(c Cue, rate beep.SampleRate) beep.Streamer {
	total := rate.N(c.Length)
	return &burst{
		cue:     c,
		total:   total,
		attack:  min(rate.N(c.Attack), total),
		release: min(rate.N(c.Release), total),
		step:    c.ToneHz / float64(rate),
		rng:     vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

// level is the envelope gain at the current sample
func (b *burst) level() float64 {
	if b.pos < b.attack {
		return float64(b.pos) / float64(b.attack)
	}
	if left := b.total - b.pos; left <= b.release {
		return float64(left) / float64(b.release)
	}
	return 1
}

func (b *burst) wave() float64 {
	switch b.cue.Wave {
	case WaveSquare:
		if b.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (b.phase - 0.5)
	case WaveNoise:
		return b.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * b.phase)
	}
}

func (b *burst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}

		val := b.wave() * b.level() * b.cue.Gain
		samples[i][0] = val
		samples[i][1] = val

		b.phase += b.step
		b.phase -= math.Floor(b.phase)
		b.pos++
	}
	return len(samples), true
}

func (b *burst) Err() error { return nil }

// newVolume wraps s with a linear gain; zero or below is silent (Log2(0) is -Inf)
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// render mixes cue layers and applies the channel volume
func render(rate beep.SampleRate, vol float64, layers ...Cue) beep.Streamer {
	streams := make([]beep.Streamer, len(layers))
	for i, c := range layers {
		streams[i] = NewBurst(c, rate)
	}
	return newVolume(beep.Mix(streams...), vol)
}

// CreateEnemyDestroyedSound is a short noise burst over a low thump
func CreateEnemyDestroyedSound(cfg Config) beep.Streamer {
	return render(beep.SampleRate(cfg.SampleRate), cfg.KillVolume*cfg.MasterVolume, killNoiseCue, killThumpCue)
}

// CreateShotSound is a clipped square click for an accepted volley
func CreateShotSound(cfg Config) beep.Streamer {
	return render(beep.SampleRate(cfg.SampleRate), cfg.ShotVolume*cfg.MasterVolume, shotCue)
}
