// Package audio synthesizes the bridge's sound cues with beep.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays the game's sound cues. Implementations must not block.
type Player interface {
	Step()
	Error()
	Sacrifice()
	Fall()
	Win()
}

// Silent is a Player that plays nothing.
type Silent struct{}

func (Silent) Step()      {}
func (Silent) Error()     {}
func (Silent) Sacrifice() {}
func (Silent) Fall()      {}
func (Silent) Win()       {}

// SoundManager mixes cues onto the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize before playing.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Without an audio device it returns the
// error and the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) Step()      { sm.play(stepSound(sampleRate)) }
func (sm *SoundManager) Error()     { sm.play(errorSound(sampleRate)) }
func (sm *SoundManager) Sacrifice() { sm.play(sacrificeSound(sampleRate)) }
func (sm *SoundManager) Fall()      { sm.play(fallSound(sampleRate)) }
func (sm *SoundManager) Win()       { sm.play(winSound(sampleRate)) }

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
