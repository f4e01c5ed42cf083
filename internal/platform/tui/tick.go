package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation frame. It carries the wall-clock time the
// tick fired at; frame deltas are measured between consecutive ticks.
type TickMsg time.Time

// maxFrameDelta caps a single frame so a stalled terminal (suspend, resize
// storm) does not teleport obstacles through the player.
const maxFrameDelta = 100 * time.Millisecond

// tickCmd schedules the next tick at the given rate in frames per second.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, capped at maxFrameDelta.
// The first tick of a run (zero prev) and clock steps backwards yield zero.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() || !now.After(prev) {
		return 0
	}
	return min(now.Sub(prev), maxFrameDelta).Seconds()
}
