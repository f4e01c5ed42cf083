package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays cues through the system speaker. All cues share one
// mixer behind a master volume.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates a manager at the given master volume in [0, 1].
// Nothing is audible until Initialize succeeds.
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: masterVolume(mixer, volume),
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: open speaker: %w", err)
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Play queues a cue on the mixer. It is a no-op before Initialize.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	st := streamerFor(s, sampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// Close silences every queued cue. The speaker itself stays open for the
// life of the process.
func (sm *SoundManager) Close() {
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

// New returns a speaker-backed player, or Silent when muted. An error is
// returned together with Silent when the speaker cannot be opened, so the
// caller can log it and keep going.
func New(muted bool, volume float64) (Player, error) {
	if muted {
		return Silent{}, nil
	}
	sm := NewSoundManager(volume)
	if err := sm.Initialize(); err != nil {
		return Silent{}, err
	}
	return sm, nil
}

// masterVolume wraps s in a linear gain. Zero or less silences it.
func masterVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1))}
}
