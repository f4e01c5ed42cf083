// Package game implements the dodger simulation: the authoritative world
// state, the per-frame time integrator, the collision pass and the events
// they emit for the presentation layer. Nothing in this package performs
// I/O or reads the clock; time and randomness are passed in by the caller.
package game

import (
	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/geom"
)

// GameOverMessage is shown once the player has collided with an obstacle.
const GameOverMessage = "Game over! Press any key to play again"

// State is the authoritative world: the arena, the player, the live
// obstacles and the terminal message. Presentation code reads it through
// the accessor methods; only the controllers in this package mutate it.
type State struct {
	bounds    geom.Size
	playerCfg config.PlayerConfig
	player    Player
	obstacles []*Obstacle // Spawn order
	score     int
	elapsed   float64 // Seconds survived in the current run
	message   string
	over      bool
}

// NewState builds an arena of the given size with the player at its
// canonical start position, no obstacles and no message. Placement is fixed,
// so it takes no random source; randomness enters only through
// TimeController.UpdateSeconds.
func NewState(bounds geom.Size, playerCfg config.PlayerConfig) *State {
	s := &State{
		bounds:    bounds,
		playerCfg: playerCfg,
	}
	s.Reset()
	return s
}

// Reset returns the world to the state produced by NewState.
func (s *State) Reset() {
	s.player = Player{
		Pos:    s.StartPosition(),
		Radius: s.playerCfg.Radius,
		Speed:  s.playerCfg.Speed,
	}
	s.player.ClampTo(s.bounds)
	s.obstacles = s.obstacles[:0]
	s.score = 0
	s.elapsed = 0
	s.message = ""
	s.over = false
}

// StartPosition returns the canonical player start: a fixed fraction of the
// width from the left edge, vertically centered.
func (s *State) StartPosition() geom.Point {
	return geom.Point{
		X: s.bounds.W * s.playerCfg.StartXRatio,
		Y: s.bounds.H / 2,
	}
}

// Bounds returns the arena size.
func (s *State) Bounds() geom.Size {
	return s.bounds
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacles returns copies of the obstacles in spawn order.
func (s *State) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	for i, o := range s.obstacles {
		out[i] = *o
	}
	return out
}

// ObstacleCount returns the number of obstacles in the arena.
func (s *State) ObstacleCount() int {
	return len(s.obstacles)
}

// Score returns the number of obstacles dodged in the current run.
func (s *State) Score() int {
	return s.score
}

// Elapsed returns the seconds survived in the current run.
func (s *State) Elapsed() float64 {
	return s.elapsed
}

// Message returns the terminal message and whether one is set. While a
// message is set the world is frozen until Reset.
func (s *State) Message() (string, bool) {
	return s.message, s.over
}

// IsOver reports whether the run has ended.
func (s *State) IsOver() bool {
	return s.over
}

// finish freezes the world with the given message.
func (s *State) finish(msg string) {
	s.message = msg
	s.over = true
}

// addObstacle appends a freshly spawned obstacle.
func (s *State) addObstacle(o *Obstacle) {
	s.obstacles = append(s.obstacles, o)
}

// advanceObstacles moves every obstacle and retires the ones that left the
// arena, crediting a dodge for each.
func (s *State) advanceObstacles(dt float64, events *Buffer) {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Advance(dt)
		if o.exited() {
			s.score++
			events.Push(Event{Kind: EventObstacleDodged, ObstacleID: o.ID, Score: s.score})
			continue
		}
		kept = append(kept, o)
	}
	// Drop references held past the new length.
	for i := len(kept); i < len(s.obstacles); i++ {
		s.obstacles[i] = nil
	}
	s.obstacles = kept
}
