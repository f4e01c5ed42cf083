package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodger/internal/config"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// menuKeys are the bindings of the difficulty picker.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// DifficultyModel lets the player pick a difficulty preset before a run.
type DifficultyModel struct {
	presets  []string
	scales   map[string]config.PresetConfig
	cursor   int
	width    int
	height   int
	keys     menuKeys
	chosen   string
	quitting bool
}

// NewDifficultyModel lists the presets of cfg from easiest to hardest with
// the cursor on the configured preset.
func NewDifficultyModel(cfg config.GameConfig, width, height int) DifficultyModel {
	presets := cfg.PresetNames()
	scales := cfg.Difficulty.Presets
	sort.SliceStable(presets, func(i, j int) bool {
		return difficultyRank(scales[presets[i]]) < difficultyRank(scales[presets[j]])
	})

	m := DifficultyModel{
		presets: presets,
		scales:  scales,
		width:   width,
		height:  height,
		keys:    defaultMenuKeys(),
	}
	for i, name := range presets {
		if name == cfg.Difficulty.Preset {
			m.cursor = i
		}
	}
	return m
}

// difficultyRank orders presets: shorter spawn intervals and faster
// obstacles rank harder.
func difficultyRank(p config.PresetConfig) float64 {
	if p.IntervalScale <= 0 {
		return p.SpeedScale
	}
	return p.SpeedScale / p.IntervalScale
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.presets) > 0 {
				m.chosen = m.presets[m.cursor]
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("D O D G E R"), lipgloss.Width("D O D G E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", 0, m.width))
	b.WriteString("\n\n")

	for i, name := range m.presets {
		p := m.scales[name]
		line := fmt.Sprintf("%-8s spawns x%.2f  speed x%.2f", name, 1/p.IntervalScale, p.SpeedScale)
		if i == m.cursor {
			b.WriteString(centerText(cursorStyle.Render("> "+line), lipgloss.Width("> "+line), m.width))
		} else {
			b.WriteString(centerText("  "+line, 0, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Q: Quit", 0, m.width))
	return b.String()
}

// Chosen returns the selected preset, or "" if none was selected.
func (m DifficultyModel) Chosen() string {
	return m.chosen
}

// centerText pads text to center it in width. visible is the printed width
// of text, or 0 to measure it.
func centerText(text string, visible, width int) string {
	if visible == 0 {
		visible = lipgloss.Width(text)
	}
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// RunDifficultySelector shows the difficulty picker and returns the chosen
// preset, or "" when the player quit.
func RunDifficultySelector(cfg config.GameConfig, width, height int) (string, error) {
	p := tea.NewProgram(
		NewDifficultyModel(cfg, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(DifficultyModel)
	if !ok {
		return "", nil
	}
	return m.Chosen(), nil
}
