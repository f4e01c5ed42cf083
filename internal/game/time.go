package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/geom"
)

// TimeController advances the world as time passes: it applies input to the
// player, moves obstacles and spawns new ones on a randomized cadence.
type TimeController struct {
	policy     config.SpawnPolicy
	sinceSpawn float64 // Seconds accumulated towards the next spawn
	nextSpawn  float64 // Threshold for the next spawn
	lastID     int     // Last obstacle ID handed out
}

// NewTimeController creates a controller with zeroed timers.
func NewTimeController(policy config.SpawnPolicy) *TimeController {
	tc := &TimeController{policy: policy}
	tc.Reset()
	return tc
}

// Reset zeroes all timers. The first spawn after a reset always comes after
// exactly one base interval; later thresholds are randomized.
func (tc *TimeController) Reset() {
	tc.sinceSpawn = 0
	tc.nextSpawn = tc.policy.Interval
	tc.lastID = 0
}

// NextSpawnIn returns the seconds left until the next spawn.
func (tc *TimeController) NextSpawnIn() float64 {
	return tc.nextSpawn - tc.sinceSpawn
}

// Halt restarts the spawn cadence. Called when the run ends so a frozen
// world carries no partially elapsed spawn timer.
func (tc *TimeController) Halt() {
	tc.sinceSpawn = 0
}

// UpdateSeconds advances the world by delta seconds.
//
// Order within a frame: the player moves and is clamped to the arena,
// obstacles move and the ones that left are retired, then the spawn timer
// runs. Events are appended to events in that order. A finished world is
// left untouched, and a zero, negative or non-finite delta is a no-op.
func (tc *TimeController) UpdateSeconds(delta float64, actions core.ActionSet, st *State, events *Buffer, rng *rand.Rand) {
	if st.IsOver() {
		return
	}
	delta = sanitizeDelta(delta)
	if delta == 0 {
		return
	}

	st.player.Steer(actions)
	st.player.Advance(delta)
	st.player.ClampTo(st.bounds)

	st.advanceObstacles(delta, events)

	tc.sinceSpawn += delta
	for tc.nextSpawn > 0 && tc.sinceSpawn >= tc.nextSpawn {
		tc.sinceSpawn -= tc.nextSpawn
		tc.nextSpawn = tc.drawThreshold(rng)

		if st.ObstacleCount() >= tc.policy.MaxObstacles {
			// Nothing can spawn for the rest of the frame, so the remaining
			// crossings are folded instead of stepped one by one.
			tc.sinceSpawn = foldRemainder(tc.sinceSpawn, tc.nextSpawn)
			break
		}
		o := tc.spawn(st.bounds, rng)
		st.addObstacle(o)
		events.Push(Event{Kind: EventObstacleSpawned, ObstacleID: o.ID, Score: st.score})
	}

	st.elapsed += delta
}

// sanitizeDelta maps negative and non-finite values to zero.
func sanitizeDelta(delta float64) float64 {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		return 0
	}
	return delta
}

// foldRemainder reduces elapsed spawn time to what is left after every whole
// threshold has passed.
func foldRemainder(since, threshold float64) float64 {
	if threshold <= 0 {
		return 0
	}
	return math.Mod(since, threshold)
}

// drawThreshold picks the next spawn threshold uniformly within the
// policy's jitter band.
func (tc *TimeController) drawThreshold(rng *rand.Rand) float64 {
	return uniform(rng, tc.policy.MinThreshold(), tc.policy.MaxThreshold())
}

// spawn creates an obstacle just beyond the right edge of the arena, moving
// left. Random draws happen in a fixed order: kind, dimensions, y, speed.
func (tc *TimeController) spawn(bounds geom.Size, rng *rand.Rand) *Obstacle {
	p := tc.policy
	tc.lastID++

	o := &Obstacle{
		ID:    tc.lastID,
		Alive: true,
	}

	var halfW, halfH float64
	if rng.Float64() < p.SlabChance {
		o.Kind = KindSlab
		o.Size = geom.NewSize(uniform(rng, p.MinSlabW, p.MaxSlabW), uniform(rng, p.MinSlabH, p.MaxSlabH))
		halfW, halfH = o.Size.W/2, o.Size.H/2
	} else {
		o.Kind = KindRock
		o.Radius = uniform(rng, p.MinRadius, p.MaxRadius)
		halfW, halfH = o.Radius, o.Radius
	}

	y := bounds.H / 2
	if bounds.H > 2*halfH {
		y = uniform(rng, halfH, bounds.H-halfH)
	}
	o.Pos = geom.Point{X: bounds.W + halfW, Y: y}
	o.Velocity = geom.Vector{X: -uniform(rng, p.MinSpeed, p.MaxSpeed)}

	return o
}

// uniform returns a value drawn uniformly from [lo, hi). A degenerate range
// returns lo without consuming randomness.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
