package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-volley/component"
	"github.com/lixenwraith/vi-volley/event"
	"github.com/lixenwraith/vi-volley/parameter"
)

// SoundManager plays one-shot gameplay cues through a shared mixer
// Every Play is a no-op until Initialize succeeds, so the game runs silently without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	played      int
	dropped     int
}

func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer; beep has no speaker close
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

func (sm *SoundManager) PlayEnemyDestroyed() {
	sm.play(func() beep.Streamer { return CreateEnemyDestroyedSound(sm.cfg) })
}

func (sm *SoundManager) PlayShot() {
	sm.play(func() beep.Streamer { return CreateShotSound(sm.cfg) })
}

// play adds a cue unless the mixer already holds MaxCues streams
func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= sm.cfg.MaxCues {
		sm.dropped++
		return
	}
	sm.mixer.Add(build())
	sm.played++
}

// Stats returns cues played and cues dropped at the concurrency cap
func (sm *SoundManager) Stats() (played, dropped int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played, sm.dropped
}

func (sm *SoundManager) Name() string { return "audio" }

func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventVolleySpawned,
	}
}

// HandleEvent plays one destroyed cue per kill and a shot per accepted volley
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.BatchPayload[component.Impact]); ok {
			for range p.Entries {
				sm.PlayEnemyDestroyed()
			}
		}
	case event.EventVolleySpawned:
		sm.PlayShot()
	}
}
