package game

import "github.com/vovakirdan/tui-dodger/internal/geom"

// HandleCollisions tests the player against every live obstacle, in spawn
// order, and ends the run on the first overlap: the world is frozen with
// GameOverMessage, the spawn cadence is halted and a single EventCollision
// is emitted. It must run after TimeController.UpdateSeconds in each frame.
//
// Obstacles pass through each other. A finished world is left untouched,
// so calling this repeatedly never emits a second collision.
func HandleCollisions(st *State, tc *TimeController, events *Buffer) {
	if st.IsOver() {
		return
	}

	hitbox := st.player.Shape()
	for _, o := range st.obstacles {
		if !o.Alive {
			continue
		}
		if !geom.Overlaps(hitbox, o.Shape()) {
			continue
		}

		o.Alive = false
		st.finish(GameOverMessage)
		tc.Halt()
		events.Push(Event{Kind: EventCollision, ObstacleID: o.ID, Score: st.score})
		return
	}
}
