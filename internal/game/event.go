package game

// EventKind identifies what happened during a frame.
type EventKind int

const (
	// EventGameStart is emitted when a run begins or restarts.
	EventGameStart EventKind = iota
	// EventObstacleSpawned is emitted when a new obstacle enters play.
	EventObstacleSpawned
	// EventObstacleDodged is emitted when an obstacle leaves the arena on the
	// trailing side. Score carries the updated score.
	EventObstacleDodged
	// EventCollision is emitted once when the player hits an obstacle and the
	// run ends.
	EventCollision
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGameStart:
		return "GameStart"
	case EventObstacleSpawned:
		return "ObstacleSpawned"
	case EventObstacleDodged:
		return "ObstacleDodged"
	case EventCollision:
		return "Collision"
	default:
		return "Unknown"
	}
}

// Event is a notification produced by the simulation for the presentation
// layer. It carries no behavior.
type Event struct {
	Kind       EventKind
	ObstacleID int // Obstacle involved, 0 when none
	Score      int // Score at the time of the event
}

// Buffer accumulates the events of one frame in the order they were
// produced. The owner drains it exactly once per frame.
type Buffer struct {
	events []Event
}

// Push appends an event.
func (b *Buffer) Push(e Event) {
	b.events = append(b.events, e)
}

// Len returns the number of pending events.
func (b *Buffer) Len() int {
	return len(b.events)
}

// Drain returns all pending events and empties the buffer.
func (b *Buffer) Drain() []Event {
	if len(b.events) == 0 {
		return nil
	}
	out := b.events
	b.events = nil
	return out
}
