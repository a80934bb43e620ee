package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func collect(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		got := collect(NewOscillator(440, 100*time.Millisecond, wave, rate))
		if len(got) != 800 {
			t.Errorf("Wave %d: expected 800 samples, got %d", wave, len(got))
		}
		for i, s := range got {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("Wave %d: sample %d out of range or unbalanced: %v", wave, i, s)
			}
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant +1
	got := collect(NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate))

	if len(got) != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", len(got))
	}
	if got[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", got[0][0])
	}
	if math.Abs(got[50][0]-0.5) > 1e-9 {
		t.Errorf("Expected half volume mid-attack, got %v", got[50][0])
	}
	if got[500][0] != 1 {
		t.Errorf("Expected full sustain, got %v", got[500][0])
	}
	if got[999][0] > 0.02 {
		t.Errorf("Expected release near silence, got %v", got[999][0])
	}
}

func TestGlideSweepsPitch(t *testing.T) {
	rate := beep.SampleRate(48000)
	got := collect(NewGlide(100, 2000, 200*time.Millisecond, WaveSquare, rate))

	crossings := func(part [][2]float64) int {
		c := 0
		for i := 1; i < len(part); i++ {
			if (part[i-1][0] < 0) != (part[i][0] < 0) {
				c++
			}
		}
		return c
	}
	quarter := len(got) / 4
	if crossings(got[:quarter]) >= crossings(got[len(got)-quarter:]) {
		t.Error("Expected more zero crossings at the end of a rising glide")
	}
}

func TestGetSoundEffect(t *testing.T) {
	for _, s := range []SoundType{SoundRateUp, SoundRateDown, SoundQuit} {
		if GetSoundEffect(s, sampleRate, 1) == nil {
			t.Errorf("Expected streamer for sound %d", s)
		}
	}
	if GetSoundEffect(SoundType(99), sampleRate, 1) != nil {
		t.Error("Expected nil for unknown sound")
	}
	if n := len(collect(GetSoundEffect(SoundQuit, sampleRate, 1))); n == 0 || n > sampleRate.N(quitDuration) {
		t.Errorf("Expected a finite quit cue of at most %d samples, got %d", sampleRate.N(quitDuration), n)
	}
}
