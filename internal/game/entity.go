package game

import (
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/geom"
)

// Entity is anything simulated in the arena. The variants are *Player and
// *Obstacle.
type Entity interface {
	Position() geom.Point
	Shape() geom.Shape
	Advance(dt float64)
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Obstacle)(nil)
)

// Player is the input-driven circle the user steers.
type Player struct {
	Pos      geom.Point
	Radius   float64
	Speed    float64     // World units per second at full input
	Velocity geom.Vector // Derived from the held actions each frame
}

// Position returns the player's center.
func (p *Player) Position() geom.Point {
	return p.Pos
}

// Shape returns the player's hitbox.
func (p *Player) Shape() geom.Shape {
	return geom.NewCircle(p.Pos, p.Radius)
}

// Advance moves the player by its velocity over dt seconds.
func (p *Player) Advance(dt float64) {
	p.Pos = p.Pos.Add(p.Velocity.Scale(dt))
}

// Steer sets the velocity from the held actions. Opposite directions cancel
// and diagonals are normalized so every direction moves at Speed.
func (p *Player) Steer(actions core.ActionSet) {
	var dir geom.Vector
	if actions.Has(core.ActionUp) {
		dir.Y--
	}
	if actions.Has(core.ActionDown) {
		dir.Y++
	}
	if actions.Has(core.ActionLeft) {
		dir.X--
	}
	if actions.Has(core.ActionRight) {
		dir.X++
	}
	p.Velocity = dir.Normalized().Scale(p.Speed)
}

// ClampTo keeps the whole hitbox inside the arena. Hitting a wall stops
// movement along that axis; there is no bounce.
func (p *Player) ClampTo(bounds geom.Size) {
	p.Pos.X = geom.Clamp(p.Pos.X, p.Radius, bounds.W-p.Radius)
	p.Pos.Y = geom.Clamp(p.Pos.Y, p.Radius, bounds.H-p.Radius)
}

// ObstacleKind is the shape family of an obstacle.
type ObstacleKind int

const (
	// KindRock is a circular obstacle.
	KindRock ObstacleKind = iota
	// KindSlab is an upright rectangular obstacle.
	KindSlab
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindSlab:
		return "slab"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard that crosses the arena at a constant velocity chosen
// when it spawned.
type Obstacle struct {
	ID       int
	Kind     ObstacleKind
	Pos      geom.Point // Center
	Velocity geom.Vector
	Radius   float64   // KindRock only
	Size     geom.Size // KindSlab only
	Alive    bool      // False once the obstacle has hit the player
}

// Position returns the obstacle's center.
func (o *Obstacle) Position() geom.Point {
	return o.Pos
}

// Shape returns the obstacle's hitbox.
func (o *Obstacle) Shape() geom.Shape {
	if o.Kind == KindSlab {
		return geom.RectAround(o.Pos, o.Size)
	}
	return geom.NewCircle(o.Pos, o.Radius)
}

// Advance moves the obstacle by its velocity over dt seconds.
func (o *Obstacle) Advance(dt float64) {
	o.Pos = o.Pos.Add(o.Velocity.Scale(dt))
}

// exited reports whether the obstacle has fully left the arena on the
// trailing (left) side.
func (o *Obstacle) exited() bool {
	return o.Shape().Bounds().Right() <= 0
}
