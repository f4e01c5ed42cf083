// Package tui runs the dodger simulation inside a Bubble Tea program. It owns
// the frame loop, routes keys to the input controller, pauses on focus loss
// and hands drained simulation events to the sound player.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodger/internal/audio"
	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/game"
	"github.com/vovakirdan/tui-dodger/internal/geom"
	"github.com/vovakirdan/tui-dodger/internal/input"
	"github.com/vovakirdan/tui-dodger/internal/view"
)

// restartDelay is how long keys are ignored after a run ends, so a key still
// auto-repeating from play does not dismiss the game-over message at once.
const restartDelay = 400 * time.Millisecond

// Options configures one interactive run.
type Options struct {
	Runtime       core.RuntimeConfig
	Game          config.GameConfig
	Sound         audio.Player // nil plays nothing
	Logger        *log.Logger  // nil discards
	ScreenshotDir string       // empty uses ~/.dodger/screenshots
}

// Model is the application state: the simulation session plus everything the
// terminal needs around it.
type Model struct {
	session  *game.Session
	input    *input.Controller
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	sound    audio.Player
	logger   *log.Logger
	cfg      core.RuntimeConfig
	preset   string
	shotDir  string
	now      func() time.Time
	lastTick time.Time
	overAt   time.Time // When the current run ended
	hasFocus bool
	paused   bool
	quitting bool
}

// NewModel creates the application model. A zero seed is replaced by the
// current time.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		session:  game.NewSession(geom.NewSize(cfg.ArenaW, cfg.ArenaH), opts.Game, cfg.Seed),
		input:    input.NewController(opts.Game.Input.Hold()),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     DefaultKeyMap(),
		help:     h,
		sound:    sound,
		logger:   logger,
		cfg:      cfg,
		preset:   opts.Game.Difficulty.Preset,
		shotDir:  opts.ScreenshotDir,
		now:      time.Now,
		hasFocus: true,
	}
	m.fitScreen()
	return m
}

// Session returns the simulation session.
func (m Model) Session() *game.Session {
	return m.session
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "seed", m.cfg.Seed, "arena", fmt.Sprintf("%.0fx%.0f", m.cfg.ArenaW, m.cfg.ArenaH), "preset", m.preset)
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.FocusMsg:
		m.hasFocus = true
		m.lastTick = time.Time{}
		return m, nil

	case tea.BlurMsg:
		m.hasFocus = false
		m.input.Clear()
		return m, nil

	case tea.WindowSizeMsg:
		m.cfg.ScreenW, m.cfg.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. While the game-over message is shown,
// any key other than quit and screenshot starts a new run.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.sound.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.session.State().IsOver() {
		if m.now().Sub(m.overAt) < restartDelay {
			return m, nil
		}
		m.session.Restart()
		m.input.Clear()
		m.paused = false
		m.lastTick = time.Time{}
		m.logger.Debug("run restarted")
		// The restarting key counts as the first press of the new run.
		m.input.KeyPress(msg.String(), m.now())
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.input.Clear()
		m.lastTick = time.Time{}
	default:
		m.input.KeyPress(msg.String(), m.now())
	}
	return m, nil
}

// handleTick runs one frame. The simulation only advances while the
// terminal has focus and the player has not paused, but events are drained
// every tick so none outlive the frame they were produced in.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	delta := frameDelta(m.lastTick, now)
	m.lastTick = now

	if m.hasFocus && !m.paused {
		m.session.Frame(delta, m.input.Actions(now))
	}

	events := m.session.Drain()
	for _, e := range events {
		if e.Kind == game.EventCollision {
			m.overAt = now
		}
	}
	audio.PlayEvents(m.sound, events)
	m.logEvents(events)

	return m, tickCmd(m.cfg.TickRate)
}

func (m Model) logEvents(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventCollision:
			m.logger.Info("game over",
				"score", e.Score,
				"obstacle", e.ObstacleID,
				"survived", fmt.Sprintf("%.1fs", m.session.State().Elapsed()),
			)
		case game.EventGameStart:
			m.logger.Debug("game start")
		default:
			m.logger.Debug("event", "kind", e.Kind, "obstacle", e.ObstacleID, "score", e.Score)
		}
	}
}

func (m Model) hud() view.HUD {
	return view.HUD{
		Preset:    m.preset,
		Paused:    m.paused,
		Unfocused: !m.hasFocus,
	}
}

// saveScreenshot writes the current frame as plain text. Failures are
// logged and otherwise ignored.
func (m Model) saveScreenshot() {
	view.Render(m.screen, m.session.State(), m.hud())

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".dodger", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("dodger_%s.txt", m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// helpView renders the help bar below the game screen.
func (m Model) helpView() string {
	return helpStyle.Render(m.help.View(m.keys))
}

// fitScreen sizes the game screen to the terminal rows left above the help
// bar, which grows when full help is shown.
func (m Model) fitScreen() {
	rows := m.cfg.ScreenH - lipgloss.Height(m.helpView())
	m.screen.Resize(m.cfg.ScreenW, max(rows, 0))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view.Render(m.screen, m.session.State(), m.hud())
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
