package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// SoundType — игровой звуковой эффект.
type SoundType int

const (
	SoundNone SoundType = iota
	SoundShot
	SoundKill
	SoundBuild
	SoundUpgrade
	SoundFenceBreak
	SoundWave
	SoundGameOver
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // держим фазу в [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope of the given total duration.
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
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; vol <= 0 gives silence
// (math.Log2(0) is -Inf).
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// NewSound builds a fresh streamer for the effect. Unknown types return nil.
func NewSound(sound SoundType, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case SoundShot:
		// короткий «пшик»
		s = newVolume(tone(0, 80*time.Millisecond, WaveNoise, rate), 0.4)
	case SoundKill:
		s = beep.Seq(
			tone(987.77, 60*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 120*time.Millisecond, WaveSquare, rate),
		)
	case SoundBuild:
		s = tone(220, 200*time.Millisecond, WaveSaw, rate)
	case SoundUpgrade:
		s = beep.Seq(
			tone(440, 80*time.Millisecond, WaveSine, rate),
			tone(660, 80*time.Millisecond, WaveSine, rate),
			tone(880, 120*time.Millisecond, WaveSine, rate),
		)
	case SoundFenceBreak:
		s = tone(0, 300*time.Millisecond, WaveNoise, rate)
	case SoundWave:
		s = beep.Mix(
			newVolume(tone(523.25, 400*time.Millisecond, WaveSine, rate), 0.7),
			newVolume(tone(1046.5, 400*time.Millisecond, WaveSine, rate), 0.3),
		)
	case SoundGameOver:
		s = beep.Seq(
			tone(392, 250*time.Millisecond, WaveSaw, rate),
			tone(311.13, 250*time.Millisecond, WaveSaw, rate),
			tone(196, 600*time.Millisecond, WaveSaw, rate),
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
