package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/geom"
)

// Session owns everything one run of the game mutates: the world, the time
// controller, the event buffer and the random source. Platform code drives
// it one frame at a time and drains its events after each frame.
type Session struct {
	state  *State
	time   *TimeController
	events Buffer
	rng    *rand.Rand
}

// NewSession creates a session for an arena of the given size. The same
// seed and the same sequence of frames reproduce the same run.
func NewSession(bounds geom.Size, cfg config.GameConfig, seed int64) *Session {
	s := &Session{
		state: NewState(bounds, cfg.Player),
		time:  NewTimeController(cfg.SpawnPolicy()),
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.events.Push(Event{Kind: EventGameStart})
	return s
}

// Frame runs one simulation frame: integration first, then collisions.
func (s *Session) Frame(delta float64, actions core.ActionSet) {
	s.time.UpdateSeconds(delta, actions, s.state, &s.events, s.rng)
	HandleCollisions(s.state, s.time, &s.events)
}

// Restart resets the timers and the world and announces a new run.
func (s *Session) Restart() {
	s.time.Reset()
	s.state.Reset()
	s.events.Push(Event{Kind: EventGameStart})
}

// Drain returns the events produced since the last drain.
func (s *Session) Drain() []Event {
	return s.events.Drain()
}

// State returns the world for read access.
func (s *Session) State() *State {
	return s.state
}
