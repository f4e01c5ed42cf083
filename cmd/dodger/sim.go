package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/game"
	"github.com/vovakirdan/tui-dodger/internal/geom"
)

var (
	flagFrames  int
	flagHold    string
	flagQuiet   bool
	flagRestart bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the simulation without a terminal UI at a fixed frame rate and print
every event it produces, followed by a summary. The same seed, flags and
config always print the same output.

Examples:
  dodger sim --seed 42
  dodger sim --seed 42 --frames 3600 --hold up --quiet
  dodger sim --seed 1 --difficulty hard --restart`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simCmd.Flags().StringVar(&flagHold, "hold", "", "Direction held for the whole run: up, down, left, right")
	simCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Print only the summary")
	simCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new run after each crash instead of stopping")
}

func runSim(cmd *cobra.Command, _ []string) error {
	rt, err := runtimeConfig()
	if err != nil {
		return err
	}
	if rt.Seed == 0 {
		rt.Seed = 1
	}
	hold, err := parseAction(flagHold)
	if err != nil {
		return err
	}
	gameCfg, source, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source, "preset", gameCfg.Difficulty.Preset, "seed", rt.Seed)

	session := game.NewSession(geom.NewSize(rt.ArenaW, rt.ArenaH), gameCfg, rt.Seed)
	res := simulate(cmd.OutOrStdout(), session, simOptions{
		Frames:  flagFrames,
		Delta:   1 / float64(rt.TickRate),
		Hold:    hold,
		Quiet:   flagQuiet,
		Restart: flagRestart,
	})
	res.print(cmd.OutOrStdout())
	return nil
}

type simOptions struct {
	Frames  int
	Delta   float64
	Hold    core.Action
	Quiet   bool
	Restart bool
}

type simResult struct {
	Frames   int
	Runs     int
	Crashes  int
	Best     int     // Highest score over all runs
	Survived float64 // Seconds survived in the last run
	Dodged   int     // Score of the last run
	Alive    int     // Obstacles in the arena at the end
	Over     bool
}

// simulate drives session for opts.Frames frames, writing one line per
// event unless quiet. Without Restart it stops at the first crash.
func simulate(w io.Writer, session *game.Session, opts simOptions) simResult {
	actions := core.NewActionSet(opts.Hold)
	res := simResult{Runs: 1}

	for res.Frames < opts.Frames {
		st := session.State()
		if st.IsOver() {
			if !opts.Restart {
				break
			}
			session.Restart()
			res.Runs++
		} else {
			session.Frame(opts.Delta, actions)
			res.Frames++
		}

		for _, e := range session.Drain() {
			if e.Kind == game.EventCollision {
				res.Crashes++
			}
			if !opts.Quiet {
				printEvent(w, res.Frames, st.Elapsed(), e)
			}
		}
		res.Best = max(res.Best, st.Score())
	}

	st := session.State()
	res.Survived = st.Elapsed()
	res.Dodged = st.Score()
	res.Alive = st.ObstacleCount()
	res.Over = st.IsOver()
	return res
}

func printEvent(w io.Writer, frame int, elapsed float64, e game.Event) {
	switch e.Kind {
	case game.EventGameStart:
		fmt.Fprintf(w, "%6d %9.3fs  %s\n", frame, elapsed, e.Kind)
	default:
		fmt.Fprintf(w, "%6d %9.3fs  %-16s obstacle=%d score=%d\n", frame, elapsed, e.Kind, e.ObstacleID, e.Score)
	}
}

func (r simResult) print(w io.Writer) {
	result := "alive"
	if r.Over {
		result = "crashed"
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "frames:    %d\n", r.Frames)
	fmt.Fprintf(w, "runs:      %d (%d crashed)\n", r.Runs, r.Crashes)
	fmt.Fprintf(w, "best:      %d\n", r.Best)
	fmt.Fprintf(w, "last run:  %s after %.3fs, dodged %d, %d obstacles in the arena\n", result, r.Survived, r.Dodged, r.Alive)
}

// parseAction maps a --hold value to a movement action.
func parseAction(name string) (core.Action, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return core.ActionNone, nil
	case "up":
		return core.ActionUp, nil
	case "down":
		return core.ActionDown, nil
	case "left":
		return core.ActionLeft, nil
	case "right":
		return core.ActionRight, nil
	}
	return core.ActionNone, fmt.Errorf("invalid --hold %q: want up, down, left or right", name)
}
