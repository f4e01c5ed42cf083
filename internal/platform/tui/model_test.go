package tui

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodger/internal/audio"
	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type recorder struct {
	played []audio.Sound
}

func (r *recorder) Play(s audio.Sound) { r.played = append(r.played, s) }
func (r *recorder) Close()             {}

func (r *recorder) last() audio.Sound {
	if len(r.played) == 0 {
		return -1
	}
	return r.played[len(r.played)-1]
}

type harness struct {
	m     Model
	sound *recorder
	clock time.Time
}

func newHarness(t *testing.T, cfg config.GameConfig) *harness {
	t.Helper()
	h := &harness{sound: &recorder{}, clock: t0}
	h.m = NewModel(Options{
		Runtime: core.RuntimeConfig{
			ArenaW: 400, ArenaH: 100,
			ScreenW: 42, ScreenH: 14,
			TickRate: 60,
			Seed:     1,
		},
		Game:          cfg,
		Sound:         h.sound,
		ScreenshotDir: t.TempDir(),
	})
	h.m.now = func() time.Time { return h.clock }
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) press(k string) tea.Cmd {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

// tick advances the clock by d and delivers a tick at the new time.
func (h *harness) tick(d time.Duration) {
	h.clock = h.clock.Add(d)
	h.send(TickMsg(h.clock))
}

func TestFirstTickAnnouncesStart(t *testing.T) {
	h := newHarness(t, config.DefaultGameConfig())
	h.tick(0)

	if len(h.sound.played) != 1 || h.sound.played[0] != audio.SoundStart {
		t.Errorf("played %v, expected a single start cue", h.sound.played)
	}
	if h.m.Session().State().Elapsed() != 0 {
		t.Error("first tick should not advance time")
	}
}

func TestHeldKeyMovesPlayer(t *testing.T) {
	h := newHarness(t, config.DefaultGameConfig())
	h.tick(0)
	start := h.m.Session().State().Player().Pos

	h.press("d")
	h.tick(50 * time.Millisecond)

	got := h.m.Session().State().Player().Pos
	want := start.X + config.DefaultGameConfig().Player.Speed*0.05
	if math.Abs(got.X-want) > 1e-9 || got.Y != start.Y {
		t.Errorf("player at %v, expected x %f", got, want)
	}

	// Past the hold window without a repeat the key is released.
	h.tick(100 * time.Millisecond)
	h.tick(100 * time.Millisecond)
	h.tick(100 * time.Millisecond)
	before := h.m.Session().State().Player().Pos
	h.tick(16 * time.Millisecond)
	if h.m.Session().State().Player().Pos != before {
		t.Error("player kept moving after the hold window")
	}
}

func TestBlurPausesSimulation(t *testing.T) {
	h := newHarness(t, config.DefaultGameConfig())
	h.tick(0)

	h.send(tea.BlurMsg{})
	h.tick(50 * time.Millisecond)
	if e := h.m.Session().State().Elapsed(); e != 0 {
		t.Errorf("elapsed %f while unfocused", e)
	}
	if !strings.Contains(h.m.View(), "Focus the terminal") {
		t.Error("unfocused view should explain the pause")
	}

	h.send(tea.FocusMsg{})
	h.tick(5 * time.Second) // First tick after focus carries no time
	h.tick(50 * time.Millisecond)
	if e := h.m.Session().State().Elapsed(); math.Abs(e-0.05) > 1e-9 {
		t.Errorf("elapsed %f after refocus, expected 0.05", e)
	}
}

func TestPauseToggle(t *testing.T) {
	h := newHarness(t, config.DefaultGameConfig())
	h.tick(0)

	h.press("p")
	h.tick(50 * time.Millisecond)
	if e := h.m.Session().State().Elapsed(); e != 0 {
		t.Errorf("elapsed %f while paused", e)
	}
	if !strings.Contains(h.m.View(), "PAUSED") {
		t.Error("paused view should show the pause box")
	}

	h.press("p")
	h.tick(50 * time.Millisecond)
	h.tick(50 * time.Millisecond)
	if e := h.m.Session().State().Elapsed(); math.Abs(e-0.05) > 1e-9 {
		t.Errorf("elapsed %f after resume, expected 0.05", e)
	}
}

func TestKeyRestartsAfterGameOver(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Player = config.PlayerConfig{Radius: 45, Speed: 0, StartXRatio: 0.5}
	cfg.Spawn.Interval = 0.1
	h := newHarness(t, cfg)

	h.tick(0)
	for i := 0; i < 1000 && !h.m.Session().State().IsOver(); i++ {
		h.tick(16 * time.Millisecond)
	}
	if !h.m.Session().State().IsOver() {
		t.Fatal("expected the run to end")
	}
	if h.sound.last() != audio.SoundCrash {
		t.Errorf("last cue = %v, expected crash", h.sound.last())
	}

	h.press("x")
	if !h.m.Session().State().IsOver() {
		t.Fatal("a key right after the crash should not restart")
	}

	h.clock = h.clock.Add(restartDelay)
	h.press("x")
	if h.m.Session().State().IsOver() {
		t.Fatal("a key after the delay should restart")
	}
	h.tick(16 * time.Millisecond)
	if h.sound.last() != audio.SoundStart {
		t.Errorf("last cue = %v, expected start", h.sound.last())
	}
}

func TestRestartKeySteersNewRun(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Player = config.PlayerConfig{Radius: 45, Speed: 100, StartXRatio: 0.5}
	cfg.Spawn.Interval = 0.1
	h := newHarness(t, cfg)

	h.tick(0)
	for i := 0; i < 1000 && !h.m.Session().State().IsOver(); i++ {
		h.tick(16 * time.Millisecond)
	}
	if !h.m.Session().State().IsOver() {
		t.Fatal("expected the run to end")
	}

	h.clock = h.clock.Add(restartDelay)
	h.press("d")
	if h.m.Session().State().IsOver() {
		t.Fatal("a key after the delay should restart")
	}
	start := h.m.Session().State().Player().Pos

	h.tick(16 * time.Millisecond) // First tick after a restart carries no time
	h.tick(50 * time.Millisecond)

	got := h.m.Session().State().Player().Pos
	if math.Abs(got.X-(start.X+5)) > 1e-9 {
		t.Errorf("player at %v, expected the restart key to move it to x %f", got, start.X+5)
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t, config.DefaultGameConfig())

	cmd := h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if h.m.View() != "" {
		t.Error("view should be empty after quitting")
	}
	h.tick(16 * time.Millisecond)
	if h.m.Session().State().Elapsed() != 0 {
		t.Error("ticks after quitting should be ignored")
	}
}

func TestWindowResize(t *testing.T) {
	h := newHarness(t, config.DefaultGameConfig())
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})

	if h.m.screen.Width() != 80 || h.m.screen.Height() != 23 {
		t.Errorf("screen = %dx%d, expected 80x23", h.m.screen.Width(), h.m.screen.Height())
	}
}

func TestFullHelpFitsTerminal(t *testing.T) {
	h := newHarness(t, config.DefaultGameConfig())
	h.tick(0)

	for _, full := range []bool{false, true} {
		if h.m.help.ShowAll != full {
			h.press("?")
		}
		out := h.m.View()
		if got := lipgloss.Height(out); got != 14 {
			t.Errorf("full help %v: view is %d rows, expected 14", full, got)
		}
		if first := strings.SplitN(out, "\n", 2)[0]; !strings.Contains(first, "Dodged") {
			t.Errorf("full help %v: first row lost the HUD: %q", full, first)
		}
	}
	if h.m.screen.Height() >= 13 {
		t.Errorf("screen height %d, expected room for the full help", h.m.screen.Height())
	}
}

func TestHelpToggle(t *testing.T) {
	h := newHarness(t, config.DefaultGameConfig())
	if strings.Contains(h.m.View(), "screenshot") {
		t.Error("short help should not list the screenshot key")
	}

	h.press("?")
	if !strings.Contains(h.m.View(), "screenshot") {
		t.Error("full help should list the screenshot key")
	}
}

func TestScreenshot(t *testing.T) {
	h := newHarness(t, config.DefaultGameConfig())
	h.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(h.m.shotDir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "dodger_") {
		t.Fatalf("expected one screenshot, got %v", entries)
	}

	data, err := os.ReadFile(filepath.Join(h.m.shotDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "Dodged: 0") {
		t.Errorf("screenshot should contain the HUD:\n%s", data)
	}
}

func TestFrameDelta(t *testing.T) {
	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first tick", time.Time{}, t0, 0},
		{"clock went back", t0, t0.Add(-time.Second), 0},
		{"same instant", t0, t0, 0},
		{"normal frame", t0, t0.Add(16 * time.Millisecond), 0.016},
		{"stall is capped", t0, t0.Add(5 * time.Second), maxFrameDelta.Seconds()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.prev, tt.now); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("frameDelta() = %f, expected %f", got, tt.want)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(20, 2)
	scr.DrawText(0, 0, "Dodged: 3", core.ColorWhite)
	scr.DrawText(0, 1, "hit", core.ColorBrightRed)

	out := RenderScreen(scr)
	if !strings.Contains(out, "Dodged: 3") || !strings.Contains(out, "hit") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if styleFor(core.Color(200)).Render("x") != "x" {
		t.Error("unknown colors should render unstyled")
	}
}
