package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const (
	statsPanelMinWidth = 80 // below this the stats move under the tabs
	statsPanelWidth    = 22
	scoreboardRows     = 100
)

// ScoreboardKeys are the scoreboard bindings; they double as the help line.
type ScoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k ScoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k ScoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultScoreboardKeys() ScoreboardKeys {
	return ScoreboardKeys{
		// Scrolling is handled by the table; the binding only documents it.
		Scroll: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next difficulty")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "previous")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// scoreboardStyles groups every style the scoreboard paints with.
type scoreboardStyles struct {
	title, dim, active, panel, empty lipgloss.Style
	table                            table.Styles
}

func newScoreboardStyles() scoreboardStyles {
	accent, border := lipgloss.Color("229"), lipgloss.Color("240")
	ts := table.DefaultStyles()
	ts.Header = ts.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(border).BorderBottom(true).Bold(true)
	ts.Selected = ts.Selected.Foreground(accent).Background(lipgloss.Color("57")).Bold(false)
	return scoreboardStyles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		active: lipgloss.NewStyle().Bold(true).Foreground(accent).Background(lipgloss.Color("57")).Padding(0, 1),
		panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
		table:  ts,
	}
}

// ScoreboardModel browses stored rounds one difficulty preset at a time.
type ScoreboardModel struct {
	store   *storage.Store
	presets []config.DifficultyPreset
	current int

	rows  int // rounds shown for the current preset
	stats *storage.Stats

	table  table.Model
	help   help.Model
	keys   ScoreboardKeys
	styles scoreboardStyles

	width, height int
	standalone    bool // back quits the program
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the scoreboard on preset. A nil store shows an
// empty board.
func NewScoreboardModel(store *storage.Store, preset config.DifficultyPreset, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:   store,
		presets: config.Presets(),
		help:    help.New(),
		keys:    defaultScoreboardKeys(),
		styles:  newScoreboardStyles(),
	}
	for i, p := range m.presets {
		if p == preset {
			m.current = i
		}
	}
	m.table = table.New(table.WithFocused(true))
	m.table.SetStyles(m.styles.table)
	m.resize(width, height)
	m.reload()
	return m
}

func (m *ScoreboardModel) wide() bool { return m.width >= statsPanelMinWidth }

// resize fits the table columns: the date column takes whatever is left.
func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	avail := width - 4
	if m.wide() {
		avail -= statsPanelWidth + 4
	}
	date := min(max(avail-26, 12), 20)
	m.table.SetColumns([]table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Pipes", Width: 8},
		{Title: "Date", Width: date},
	})
	m.table.SetHeight(max(height-8, 3))
}

// reload reads the current preset's rounds. Storage errors show as an empty board.
func (m *ScoreboardModel) reload() {
	var entries []storage.ScoreEntry
	m.stats = nil
	if m.store != nil {
		preset := string(m.Preset())
		entries, _ = m.store.TopScores(preset, scoreboardRows)
		if all, err := m.store.Stats(); err == nil {
			m.stats = all[preset]
		}
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			skinTitle(e.Skin),
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.rows = len(rows)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func skinTitle(name string) string {
	s, err := flappy.ParseSkin(name)
	if err != nil {
		return "-"
	}
	return s.Title()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) step(d int) {
	n := len(m.presets)
	m.current = (m.current + d + n) % n
	m.reload()
}

// Preset returns the difficulty currently shown.
func (m ScoreboardModel) Preset() config.DifficultyPreset {
	return m.presets[m.current]
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := m.styles.title.Render(centerText("HIGH SCORES - "+strings.ToUpper(string(m.Preset())), m.width))
	board := m.styles.panel.Render(m.boardContent())

	var body string
	if m.wide() {
		side := m.styles.panel.Width(statsPanelWidth).Render(m.presetList() + "\n" + m.statsText())
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", board)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, centerText(m.tabs(), m.width), "", board, m.statsText())
	}

	return title + "\n\n" + body + "\n" + m.styles.dim.Render(m.help.View(m.keys))
}

func (m ScoreboardModel) boardContent() string {
	if m.rows == 0 {
		return m.styles.empty.Render("No rounds recorded yet.\nPlay one to set a high score!")
	}
	return m.table.View()
}

// presetList is the vertical selector of the wide layout.
func (m ScoreboardModel) presetList() string {
	var b strings.Builder
	b.WriteString("Difficulty\n")
	for i, p := range m.presets {
		if i == m.current {
			b.WriteString(m.styles.title.Render("> " + string(p)))
		} else {
			b.WriteString("  " + string(p))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// tabs is the horizontal selector of the narrow layout.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.presets))
	for i, p := range m.presets {
		if i == m.current {
			tabs[i] = m.styles.active.Render(string(p))
		} else {
			tabs[i] = m.styles.dim.Render(" " + string(p) + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.Preset())
	}
	return line
}

func (m ScoreboardModel) statsText() string {
	st := m.stats
	if st == nil {
		return ""
	}
	return fmt.Sprintf("Best:  %d\nGames: %d\nAvg:   %.1f\nLast:  %s",
		st.HighScore, st.Games, st.AvgScore, st.LastPlayed.Format("Jan 02"))
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store *storage.Store, preset config.DifficultyPreset, width, height int) error {
	m := NewScoreboardModel(store, preset, width, height)
	m.standalone = true

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
