package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/geom"
)

// fixedPolicy spawns exactly every interval seconds, with obstacles slow
// enough to stay in the arena for several seconds.
func fixedPolicy(interval float64) config.SpawnPolicy {
	p := config.DefaultGameConfig().SpawnPolicy()
	p.Interval = interval
	p.Jitter = 0
	p.MinSpeed = 100
	p.MaxSpeed = 100
	return p
}

func newWorld(t *testing.T, policy config.SpawnPolicy) (*State, *TimeController, *Buffer, *rand.Rand) {
	t.Helper()
	st := NewState(geom.NewSize(800, 600), config.DefaultGameConfig().Player)
	return st, NewTimeController(policy), &Buffer{}, rand.New(rand.NewSource(42))
}

// Scenario C: holding "up" for one second moves the player up by its speed,
// clamped to the arena.
func TestMoveUpOneSecond(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
	}{
		{"within bounds", 100},
		{"clamped at top wall", 320},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pcfg := config.DefaultGameConfig().Player
			pcfg.Speed = tc.speed
			st := NewState(geom.NewSize(800, 600), pcfg)
			ctrl := NewTimeController(fixedPolicy(10))
			events := &Buffer{}

			start := st.Player().Pos
			ctrl.UpdateSeconds(1.0, core.NewActionSet(core.ActionUp), st, events, rand.New(rand.NewSource(1)))

			got := st.Player().Pos
			wantY := geom.Clamp(start.Y-tc.speed, pcfg.Radius, 600-pcfg.Radius)
			if got.X != start.X || got.Y != wantY {
				t.Errorf("position = %+v, expected (%f, %f)", got, start.X, wantY)
			}
		})
	}
}

func TestOppositeActionsCancel(t *testing.T) {
	st, ctrl, events, rng := newWorld(t, fixedPolicy(10))
	start := st.Player().Pos

	actions := core.NewActionSet(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight)
	ctrl.UpdateSeconds(0.5, actions, st, events, rng)

	if st.Player().Pos != start {
		t.Errorf("opposite actions should cancel, moved from %+v to %+v", start, st.Player().Pos)
	}
}

func TestDiagonalIsNormalized(t *testing.T) {
	st, ctrl, events, rng := newWorld(t, fixedPolicy(10))
	start := st.Player().Pos
	speed := st.Player().Speed

	ctrl.UpdateSeconds(0.1, core.NewActionSet(core.ActionDown, core.ActionRight), st, events, rng)

	moved := geom.Vector{X: st.Player().Pos.X - start.X, Y: st.Player().Pos.Y - start.Y}
	if math.Abs(moved.Len()-speed*0.1) > 1e-9 {
		t.Errorf("diagonal distance = %f, expected %f", moved.Len(), speed*0.1)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	st, ctrl, events, rng := newWorld(t, fixedPolicy(0.3))
	inputRng := rand.New(rand.NewSource(7))
	all := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	deltas := []float64{0, 0.001, 0.016, 0.1, 0.5, 3}

	for i := 0; i < 2000; i++ {
		var actions core.ActionSet
		for _, a := range all {
			if inputRng.Intn(2) == 0 {
				actions.Set(a)
			}
		}
		ctrl.UpdateSeconds(deltas[inputRng.Intn(len(deltas))], actions, st, events, rng)
		events.Drain()

		p := st.Player()
		if p.Pos.X < p.Radius || p.Pos.X > 800-p.Radius || p.Pos.Y < p.Radius || p.Pos.Y > 600-p.Radius {
			t.Fatalf("frame %d: player %+v left the arena", i, p.Pos)
		}
	}
}

func TestZeroDeltaIsIdempotent(t *testing.T) {
	st, ctrl, events, rng := newWorld(t, fixedPolicy(0.2))

	// Get some obstacles in flight first.
	for i := 0; i < 30; i++ {
		ctrl.UpdateSeconds(0.016, core.NewActionSet(core.ActionRight), st, events, rng)
	}
	events.Drain()

	player := st.Player()
	obstacles := st.Obstacles()
	score, elapsed := st.Score(), st.Elapsed()
	timers := *ctrl

	for i := 0; i < 10; i++ {
		ctrl.UpdateSeconds(0, core.NewActionSet(core.ActionUp, core.ActionLeft), st, events, rng)
	}

	if st.Player() != player {
		t.Errorf("player changed: %+v -> %+v", player, st.Player())
	}
	after := st.Obstacles()
	if len(after) != len(obstacles) {
		t.Fatalf("obstacle count changed: %d -> %d", len(obstacles), len(after))
	}
	for i := range after {
		if after[i] != obstacles[i] {
			t.Errorf("obstacle %d changed: %+v -> %+v", i, obstacles[i], after[i])
		}
	}
	if st.Score() != score || st.Elapsed() != elapsed {
		t.Error("score or elapsed changed on zero delta")
	}
	if *ctrl != timers {
		t.Errorf("time controller changed: %+v -> %+v", timers, *ctrl)
	}
	if events.Len() != 0 {
		t.Errorf("zero delta should emit no events, got %v", events.Drain())
	}
}

func TestInvalidDeltaTreatedAsZero(t *testing.T) {
	for _, delta := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		st, ctrl, events, rng := newWorld(t, fixedPolicy(0.01))
		start := st.Player().Pos

		ctrl.UpdateSeconds(delta, core.NewActionSet(core.ActionDown), st, events, rng)

		if st.Player().Pos != start || st.ObstacleCount() != 0 || events.Len() != 0 || st.Elapsed() != 0 {
			t.Errorf("delta %v should be a no-op", delta)
		}
	}
}

func TestSpawnCadence(t *testing.T) {
	st, ctrl, events, rng := newWorld(t, fixedPolicy(1))

	ctrl.UpdateSeconds(0.999, core.ActionSet{}, st, events, rng)
	if st.ObstacleCount() != 0 {
		t.Fatalf("no spawn expected before the threshold, got %d", st.ObstacleCount())
	}

	ctrl.UpdateSeconds(0.002, core.ActionSet{}, st, events, rng)
	if st.ObstacleCount() != 1 {
		t.Fatalf("exactly one spawn expected after crossing the threshold, got %d", st.ObstacleCount())
	}

	got := events.Drain()
	if len(got) != 1 || got[0].Kind != EventObstacleSpawned || got[0].ObstacleID != 1 {
		t.Errorf("expected one spawn event for obstacle 1, got %v", got)
	}

	// A long frame crosses several thresholds at once.
	ctrl.UpdateSeconds(3.5, core.ActionSet{}, st, events, rng)
	if st.ObstacleCount() != 4 {
		t.Errorf("expected 4 obstacles after 3 more thresholds, got %d", st.ObstacleCount())
	}
	if math.Abs(ctrl.NextSpawnIn()-0.499) > 1e-9 {
		t.Errorf("remainder should carry over, next spawn in %f", ctrl.NextSpawnIn())
	}
}

func TestRandomizedThresholdsStayInBand(t *testing.T) {
	policy := config.DefaultGameConfig().SpawnPolicy()
	ctrl := NewTimeController(policy)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		th := ctrl.drawThreshold(rng)
		if th < policy.MinThreshold() || th >= policy.MaxThreshold() {
			t.Fatalf("threshold %f outside [%f, %f)", th, policy.MinThreshold(), policy.MaxThreshold())
		}
	}
}

func TestSpawnedObstaclesStartOffscreenRight(t *testing.T) {
	policy := fixedPolicy(0.05)
	policy.SlabChance = 0.5
	st, ctrl, events, rng := newWorld(t, policy)

	ctrl.UpdateSeconds(0.05*20+0.001, core.ActionSet{}, st, events, rng)

	kinds := map[ObstacleKind]int{}
	for _, o := range st.Obstacles() {
		kinds[o.Kind]++
		b := o.Shape().Bounds()
		if b.X < 800 {
			t.Errorf("obstacle %d should spawn beyond the right edge, bounds %+v", o.ID, b)
		}
		if b.Y < 0 || b.Bottom() > 600 {
			t.Errorf("obstacle %d should spawn vertically inside the arena, bounds %+v", o.ID, b)
		}
		if o.Velocity.X >= 0 || o.Velocity.Y != 0 {
			t.Errorf("obstacle %d should move left, velocity %+v", o.ID, o.Velocity)
		}
		if !o.Alive {
			t.Errorf("obstacle %d should spawn alive", o.ID)
		}
	}
	if kinds[KindRock] == 0 || kinds[KindSlab] == 0 {
		t.Errorf("expected both kinds with slab_chance 0.5, got %v", kinds)
	}
}

func TestMaxObstaclesCapsSpawns(t *testing.T) {
	policy := fixedPolicy(1)
	policy.MaxObstacles = 2
	st, ctrl, events, rng := newWorld(t, policy)

	ctrl.UpdateSeconds(10, core.ActionSet{}, st, events, rng)

	if st.ObstacleCount() != 2 {
		t.Errorf("expected spawns capped at 2, got %d", st.ObstacleCount())
	}
	// 7 seconds were left after two spawns and the capped crossing; the
	// remainder of whole intervals is dropped.
	if got := ctrl.NextSpawnIn(); got != 1 {
		t.Errorf("NextSpawnIn() = %f, expected 1", got)
	}
}

func TestHugeDeltaFillsToCap(t *testing.T) {
	policy := config.DefaultGameConfig().SpawnPolicy()
	st, ctrl, events, rng := newWorld(t, policy)

	done := make(chan struct{})
	go func() {
		ctrl.UpdateSeconds(1e17, core.ActionSet{}, st, events, rng)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("UpdateSeconds did not return")
	}

	if st.ObstacleCount() != policy.MaxObstacles {
		t.Errorf("ObstacleCount() = %d, expected %d", st.ObstacleCount(), policy.MaxObstacles)
	}
	if got := events.Len(); got != policy.MaxObstacles {
		t.Errorf("expected %d spawn events, got %d", policy.MaxObstacles, got)
	}
	if next := ctrl.NextSpawnIn(); next <= 0 || next > policy.MaxThreshold() {
		t.Errorf("NextSpawnIn() = %f, expected within (0, %f]", next, policy.MaxThreshold())
	}
	if st.Elapsed() != 1e17 {
		t.Errorf("Elapsed() = %g, expected 1e17", st.Elapsed())
	}
}

func TestObstacleExitScoresDodge(t *testing.T) {
	st, ctrl, events, rng := newWorld(t, fixedPolicy(10))
	st.addObstacle(&Obstacle{
		ID:       7,
		Kind:     KindRock,
		Pos:      geom.Point{X: -5, Y: 50},
		Velocity: geom.Vector{X: -100},
		Radius:   10,
		Alive:    true,
	})

	ctrl.UpdateSeconds(0.1, core.ActionSet{}, st, events, rng)

	if st.ObstacleCount() != 0 {
		t.Errorf("obstacle past the left edge should be removed")
	}
	if st.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", st.Score())
	}
	got := events.Drain()
	if len(got) != 1 || got[0] != (Event{Kind: EventObstacleDodged, ObstacleID: 7, Score: 1}) {
		t.Errorf("expected one dodge event, got %v", got)
	}
}

func TestPartiallyVisibleObstacleIsKept(t *testing.T) {
	st, ctrl, events, rng := newWorld(t, fixedPolicy(10))
	st.addObstacle(&Obstacle{
		ID:       1,
		Kind:     KindSlab,
		Pos:      geom.Point{X: 5, Y: 50},
		Velocity: geom.Vector{X: -10},
		Size:     geom.NewSize(20, 40),
		Alive:    true,
	})

	ctrl.UpdateSeconds(0.1, core.ActionSet{}, st, events, rng)

	if st.ObstacleCount() != 1 || st.Score() != 0 {
		t.Errorf("obstacle still overlapping the arena must stay, count=%d score=%d", st.ObstacleCount(), st.Score())
	}
	if got := st.Obstacles()[0].Pos.X; got != 4 {
		t.Errorf("obstacle x = %f, expected 4", got)
	}
}

// Scenario A: 100 idle frames leave the player in place and only spawn
// events are produced, one per crossed threshold.
func TestIdleFramesOnlySpawn(t *testing.T) {
	policy := config.DefaultGameConfig().SpawnPolicy()
	st, ctrl, events, rng := newWorld(t, policy)
	start := st.Player().Pos
	const dt = 0.016

	crossed := 0
	for i := 0; i < 100; i++ {
		if ctrl.sinceSpawn+dt >= ctrl.nextSpawn {
			crossed++
		}
		ctrl.UpdateSeconds(dt, core.ActionSet{}, st, events, rng)
	}

	if st.Player().Pos != start {
		t.Errorf("player moved without input: %+v -> %+v", start, st.Player().Pos)
	}
	if crossed == 0 {
		t.Fatal("1.6s should cross at least the first 0.9s threshold")
	}
	if st.ObstacleCount() != crossed {
		t.Errorf("ObstacleCount() = %d, expected %d", st.ObstacleCount(), crossed)
	}
	if st.IsOver() {
		t.Error("run should not be over")
	}

	got := events.Drain()
	if len(got) != crossed {
		t.Fatalf("expected %d events, got %v", crossed, got)
	}
	for i, e := range got {
		if e.Kind != EventObstacleSpawned || e.ObstacleID != i+1 {
			t.Errorf("event %d = %+v, expected spawn of obstacle %d", i, e, i+1)
		}
	}
	if events.Len() != 0 {
		t.Error("buffer should be empty after drain")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() []Obstacle {
		st, ctrl, events, _ := newWorld(t, config.DefaultGameConfig().SpawnPolicy())
		rng := rand.New(rand.NewSource(99))
		for i := 0; i < 300; i++ {
			ctrl.UpdateSeconds(0.016, core.ActionSet{}, st, events, rng)
		}
		return st.Obstacles()
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs differ in obstacle count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
