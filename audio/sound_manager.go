// Package audio plays the demo's synthesized cues through the system speaker
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Speaker buffer; larger values trade latency for fewer underruns
	bufferDuration = 100 * time.Millisecond

	thrustVolume = 0.35
)

// SoundManager owns the speaker mixer, the thruster loop and one-shot cues
// Every method is a no-op until Initialize succeeds, so the runtime works without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	thrust      *beep.Ctrl
	volume      float64
	muted       bool
	initialized bool

	// Guards streamer mutation while the speaker goroutine reads them
	lock   func()
	unlock func()
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1,
		lock:   func() {},
		unlock: func() {},
	}
}

// Initialize opens the speaker and starts the mixer; calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferDuration)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(sm.mixer)

	sm.lock, sm.unlock = speaker.Lock, speaker.Unlock
	sm.initialized = true
	log.Printf("audio: speaker open at %d Hz", sampleRate)
	return nil
}

// Cleanup silences everything; the speaker stays open for the process lifetime
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	if sm.thrust != nil {
		sm.thrust.Paused = true
	}
	sm.mixer.Clear()
	sm.unlock()

	sm.thrust = nil
	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted stops new cues and pauses the thruster while muted
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if muted && sm.thrust != nil {
		sm.lock()
		sm.thrust.Paused = true
		sm.unlock()
	}
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetVolume sets the master volume, 0 to 1
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = min(max(vol, 0), 1)
}

// SetThrust starts or pauses the thruster rumble; repeated calls are cheap
func (sm *SoundManager) SetThrust(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if on && sm.muted {
		return
	}

	if sm.thrust == nil {
		if !on {
			return
		}
		sm.thrust = &beep.Ctrl{Streamer: newVolume(NewThruster(sampleRate), thrustVolume*sm.volume), Paused: false}
		sm.lock()
		sm.mixer.Add(sm.thrust)
		sm.unlock()
		return
	}

	sm.lock()
	sm.thrust.Paused = !on
	sm.unlock()
}

// Thrusting reports whether the thruster is audible
func (sm *SoundManager) Thrusting() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.thrust != nil && !sm.thrust.Paused
}

// Play mixes in a one-shot cue
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := GetSoundEffect(sound, sampleRate, sm.volume)
	if s == nil {
		return
	}

	sm.lock()
	sm.mixer.Add(s)
	sm.unlock()
}

// Active returns the number of streamers in the mixer
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.lock()
	defer sm.unlock()
	return sm.mixer.Len()
}
