// Package audio plays short synthesized cues for simulation events. Sounds are
// generated on the fly, so there are no asset files to ship or load.
package audio

import "github.com/vovakirdan/tui-dodger/internal/game"

// Sound identifies one cue.
type Sound int

const (
	SoundStart Sound = iota // Rising chirp on a new run
	SoundSpawn              // Soft tick when an obstacle enters
	SoundDodge              // Bright blip for each dodged obstacle
	SoundCrash              // Noise burst on collision
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundSpawn:
		return "spawn"
	case SoundDodge:
		return "dodge"
	case SoundCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Player plays cues. Implementations must be safe to call from the UI loop
// and must not block.
type Player interface {
	Play(s Sound)
	Close()
}

// ForEvent returns the cue for an event.
func ForEvent(e game.Event) (Sound, bool) {
	switch e.Kind {
	case game.EventGameStart:
		return SoundStart, true
	case game.EventObstacleSpawned:
		return SoundSpawn, true
	case game.EventObstacleDodged:
		return SoundDodge, true
	case game.EventCollision:
		return SoundCrash, true
	}
	return 0, false
}

// PlayEvents plays one cue per event, in order.
func PlayEvents(p Player, events []game.Event) {
	for _, e := range events {
		if s, ok := ForEvent(e); ok {
			p.Play(s)
		}
	}
}

// Silent is a Player that discards every cue. It stands in when audio is
// muted or the output device cannot be opened.
type Silent struct{}

func (Silent) Play(Sound) {}
func (Silent) Close()     {}
