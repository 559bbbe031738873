package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// hud receives simulation events. Bubble Tea copies models by value, so the
// machine holds a pointer to this.
type hud struct {
	score   int
	ready   bool // RestartReady seen
	pending bool // game over not yet recorded
}

func (h *hud) ScoreChanged(score int) { h.score = score }

func (h *hud) GameOver(finalScore int) {
	h.score = finalScore
	h.pending = true
}

func (h *hud) RestartReady() { h.ready = true }

func (h *hud) reset() { *h = hud{} }

// takeGameOver reports a finished round exactly once.
func (h *hud) takeGameOver() bool {
	if !h.pending {
		return false
	}
	h.pending = false
	return true
}

// GameModel is the Bubble Tea model that runs rounds of the game.
type GameModel struct {
	env      *Env
	machine  *flappy.Machine
	hud      *hud
	screen   *core.Screen
	clock    *FrameClock
	keys     *KeyMapper
	help     help.Model
	helpKeys GameKeyMap
	config   core.RuntimeConfig
	notes    []string
	status   string
	round    int
	loop     int64

	standalone bool // back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model in the Idle phase. The last terminal row
// is kept for the help line.
func NewGameModel(env *Env, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := &hud{}
	m := GameModel{
		env:      env,
		hud:      h,
		screen:   core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		clock:    &FrameClock{},
		keys:     NewKeyMapper(),
		help:     help.New(),
		helpKeys: DefaultGameKeyMap(),
		config:   cfg,
		loop:     newTickLoop(),
	}
	m.help.Width = cfg.ScreenW
	m.machine = flappy.New(env.GameConfig(), m.simRuntime(), h)
	return m
}

func playRows(termH int) int {
	return max(termH-1, 2)
}

// simRuntime is the runtime config as seen by the simulation.
func (m GameModel) simRuntime() core.RuntimeConfig {
	rt := m.config
	rt.ScreenH = playRows(rt.ScreenH)
	return rt
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)

	case roundRecordedMsg:
		if msg.err != nil {
			m.env.log().Warn("could not record round", "error", msg.err)
		}
		for _, a := range msg.unlocked {
			m.env.log().Info("achievement unlocked", "id", a.ID)
		}
		// A late result from an earlier round must not label this one
		if msg.round == m.round {
			m.notes = msg.notes()
		}
		return m, nil

	case screenshotSavedMsg:
		if msg.err != nil {
			m.env.log().Warn("screenshot failed", "error", msg.err)
			m.status = "screenshot failed"
		} else {
			m.env.log().Info("screenshot saved", "path", msg.path)
			m.status = "saved " + msg.path
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		switch m.machine.Phase() {
		case flappy.PhasePlaying:
			m.machine.RequestJump()
		case flappy.PhaseIdle:
			m.start()
		}

	case core.ActionConfirm, core.ActionRestart:
		m.start()

	case core.ActionBack:
		if m.machine.Phase() == flappy.PhasePlaying {
			return m, nil
		}
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true

	case core.ActionScreenshot:
		if m.env.ScreenshotDir == "" {
			return m, nil
		}
		m.draw()
		return m, screenshotCmd(m.env.ScreenshotDir, m.screen.String(), time.Now())
	}

	return m, nil
}

// start begins a round. After a game over it waits for RestartReady.
func (m *GameModel) start() {
	if m.machine.Phase() == flappy.PhaseGameOver && !m.hud.ready {
		return
	}
	if !m.machine.Start() {
		return
	}
	m.hud.reset()
	m.round++
	m.notes = nil
	m.status = ""
	m.clock.Reset()
	m.env.log().Debug("round started",
		"difficulty", m.env.Preset,
		"skin", m.env.Skin,
	)
}

// handleResize processes window resize events. The playfield is only
// rebuilt between rounds; a running round is rescaled by the renderer.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	m.machine.Resize(m.simRuntime())
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	playing := m.machine.Phase() == flappy.PhasePlaying
	delta := m.clock.Delta(now)
	if playing {
		m.machine.Update(delta)
	}

	next := tickCmd(m.config.TickRate, m.loop)
	if !m.hud.takeGameOver() {
		return m, next
	}

	score := m.machine.Score()
	m.env.log().Info("round over", "score", score, "difficulty", m.env.Preset)
	entry := storage.ScoreEntry{
		Player:     m.env.Player,
		Difficulty: string(m.env.Preset),
		Score:      score,
		Skin:       m.env.Skin.String(),
	}
	return m, tea.Batch(next, recordRoundCmd(m.env.Store, entry, m.round))
}

func (m GameModel) draw() {
	flappy.Render(m.screen, m.machine.Snapshot(), flappy.RenderOptions{
		Skin:  m.env.Skin,
		Notes: m.notes,
	})
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	footer := m.help.View(m.helpKeys)
	if m.status != "" {
		footer = m.status
	}
	return m.env.painter().Render(m.screen) + "\n" + footer
}

// Phase returns the simulation phase.
func (m GameModel) Phase() flappy.Phase {
	return m.machine.Phase()
}

// Score returns the score of the current or last round.
func (m GameModel) Score() int {
	return m.hud.score
}

// Notes returns the extra game over lines from the last recorded round.
func (m GameModel) Notes() []string {
	return m.notes
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame starts a standalone game where back exits.
func RunGame(env *Env, cfg core.RuntimeConfig) error {
	model := NewGameModel(env, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
