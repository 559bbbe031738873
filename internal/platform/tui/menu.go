package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/achievements"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// menuItem is one row of the main menu.
type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemSkin
	itemScores
	itemQuit
	itemCount
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	env            *Env
	cursor         menuItem
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	best           int
	unlocked       int
	quitting       bool
	play           bool // set when the user picks Play
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(env *Env, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		env:       env,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.refresh()
	return m
}

// refresh reloads the figures shown under the menu.
func (m *MenuModel) refresh() {
	m.best, m.unlocked = 0, 0
	if m.env.Store == nil {
		return
	}

	best, err := m.env.Store.HighScore(string(m.env.Preset))
	if err != nil {
		m.env.log().Warn("could not load high score", "error", err)
	}
	m.best = best

	list, err := m.env.Store.Achievements(m.env.Player)
	if err != nil {
		m.env.log().Warn("could not load achievements", "error", err)
	}
	m.unlocked = len(list)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + itemCount - 1) % itemCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % itemCount

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionScoreboard:
		m.openScoreboard = true

	case MenuActionSelect:
		switch m.cursor {
		case itemPlay:
			m.play = true
		case itemDifficulty, itemSkin:
			m.cycle(1)
		case itemScores:
			m.openScoreboard = true
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// cycle steps the option under the cursor.
func (m *MenuModel) cycle(step int) {
	switch m.cursor {
	case itemDifficulty:
		if step > 0 {
			m.env.SetPreset(m.env.Preset.Next())
		} else {
			m.env.SetPreset(m.env.Preset.Prev())
		}
		m.refresh()
	case itemSkin:
		if step > 0 {
			m.env.SetSkin(m.env.Skin.Next())
		} else {
			m.env.SetSkin(m.env.Skin.Prev())
		}
	}
}

func (m MenuModel) label(it menuItem) string {
	switch it {
	case itemPlay:
		return "Play"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty  < %s >", m.env.Preset)
	case itemSkin:
		return fmt.Sprintf("Pipes       < %s >", m.env.Skin.Title())
	case itemScores:
		return "High Scores"
	default:
		return "Quit"
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F L A P P Y"), m.width))
	b.WriteString("\n\n")

	for it := menuItem(0); it < itemCount; it++ {
		line := "  " + m.label(it)
		if it == m.cursor {
			line = menuCurStyle.Render("> " + m.label(it))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	stats := fmt.Sprintf("Best (%s): %d   Achievements: %d/%d",
		m.env.Preset, m.best, m.unlocked, len(achievements.All()))
	b.WriteString(centerText(menuDimStyle.Render(stats), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// WantsPlay returns true once the user picked Play.
func (m MenuModel) WantsPlay() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
