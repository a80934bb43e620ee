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

// SoundType identifies a one-shot cue
type SoundType int

const (
	SoundRateUp SoundType = iota
	SoundRateDown
	SoundQuit
)

const (
	blipDuration = 60 * time.Millisecond
	blipAttack   = 5 * time.Millisecond
	blipRelease  = 40 * time.Millisecond

	quitDuration = 250 * time.Millisecond
	quitAttack   = 10 * time.Millisecond
	quitRelease  = 200 * time.Millisecond
)

// oscillator generates raw audio waves, optionally gliding in pitch
type oscillator struct {
	freq     float64
	glide    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite wave of the given shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates a wave sweeping linearly from one frequency to another
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	glide := 0.0
	if samples > 0 {
		glide = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		glide:    glide,
		duration: samples,
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000) + int64(samples))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := o.sample()
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.glide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) sample() float64 {
	switch o.wave {
	case WaveSquare:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (o.phase - 0.5)
	case WaveNoise:
		return o.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release over duration
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

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; e.releaseSamples > 0 && remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// thruster is an endless low rumble: filtered noise under a wobbling tone
type thruster struct {
	rate  beep.SampleRate
	pos   int
	last  float64
	noise *rand.Rand
}

// NewThruster creates the endless engine rumble
func NewThruster(rate beep.SampleRate) beep.Streamer {
	return &thruster{rate: rate, noise: rand.New(rand.NewSource(1))}
}

func (t *thruster) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		sec := float64(t.pos) / float64(t.rate)

		// One-pole low-pass keeps the noise dull
		t.last += 0.08 * ((t.noise.Float64()*2 - 1) - t.last)
		wobble := 55 + 10*math.Sin(2*math.Pi*3*sec)
		tone := 0.3 * math.Sin(2*math.Pi*wobble*sec)

		val := 0.6*t.last + tone
		samples[i][0] = val
		samples[i][1] = val
		t.pos++
	}
	return len(samples), true
}

func (t *thruster) Err() error { return nil }

// newVolume scales s linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateRateUpSound is a short rising blip
func CreateRateUpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewGlide(660, 990, blipDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, blipDuration, blipAttack, blipRelease, rate), vol*0.5)
}

// CreateRateDownSound is a short falling blip
func CreateRateDownSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewGlide(990, 660, blipDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, blipDuration, blipAttack, blipRelease, rate), vol*0.5)
}

// CreateQuitSound is a two-note descending chime
func CreateQuitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	half := quitDuration / 2
	n1 := NewEnvelope(NewOscillator(880, half, WaveSine, rate), half, quitAttack, half/2, rate)
	n2 := NewEnvelope(NewOscillator(440, half, WaveSine, rate), half, quitAttack, quitRelease/2, rate)
	tail := NewEnvelope(NewOscillator(220, half, WaveSine, rate), half, quitAttack, quitRelease/2, rate)

	chord := beep.Mix(newVolume(n2, 0.7), newVolume(tail, 0.3))
	return newVolume(beep.Seq(n1, chord), vol)
}

// GetSoundEffect returns the streamer for a cue, nil when unknown
func GetSoundEffect(sound SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch sound {
	case SoundRateUp:
		return CreateRateUpSound(rate, vol)
	case SoundRateDown:
		return CreateRateDownSound(rate, vol)
	case SoundQuit:
		return CreateQuitSound(rate, vol)
	default:
		return nil
	}
}
