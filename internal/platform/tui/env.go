package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Env is the state every screen of one session shares: storage, the loaded
// config and the player's current choices.
type Env struct {
	Store  *storage.Store // nil runs without persistence
	Config config.FlappyConfig
	Preset config.DifficultyPreset
	Skin   flappy.Skin
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes; empty disables screenshots.
	ScreenshotDir string

	// Player names whose rounds, achievements and preferences these are.
	// Empty for the local player; the SSH user name for remote sessions.
	Player string

	Painter *Painter
}

// GameConfig returns the config with the current difficulty applied.
func (e *Env) GameConfig() config.FlappyConfig {
	cfg := e.Config
	config.ApplyFlappyPreset(&cfg, e.Preset)
	return cfg
}

func (e *Env) log() *log.Logger {
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	return e.Logger
}

func (e *Env) painter() *Painter {
	if e.Painter == nil {
		e.Painter = defaultPainter
	}
	return e.Painter
}

func (e *Env) prefKey(k string) string {
	if e.Player == "" {
		return k
	}
	return e.Player + ":" + k
}

// LoadPreferences restores the saved skin and difficulty. Missing or
// unreadable values keep the current ones.
func (e *Env) LoadPreferences() {
	if e.Store == nil {
		return
	}

	if v, ok, err := e.Store.Preference(e.prefKey(storage.PrefSkin)); err != nil {
		e.log().Warn("could not read skin preference", "error", err)
	} else if ok {
		if skin, err := flappy.ParseSkin(v); err == nil {
			e.Skin = skin
		} else {
			e.log().Warn("ignoring saved skin", "value", v)
		}
	}

	if v, ok, err := e.Store.Preference(e.prefKey(storage.PrefDifficulty)); err != nil {
		e.log().Warn("could not read difficulty preference", "error", err)
	} else if ok {
		if p, err := config.ParsePreset(v); err == nil {
			e.Preset = p
		} else {
			e.log().Warn("ignoring saved difficulty", "value", v)
		}
	}
}

// SetSkin changes and persists the skin.
func (e *Env) SetSkin(s flappy.Skin) {
	e.Skin = s
	e.persist(storage.PrefSkin, s.String())
}

// SetPreset changes and persists the difficulty.
func (e *Env) SetPreset(p config.DifficultyPreset) {
	e.Preset = p
	e.persist(storage.PrefDifficulty, string(p))
}

func (e *Env) persist(key, value string) {
	if e.Store == nil {
		return
	}
	if err := e.Store.SetPreference(e.prefKey(key), value); err != nil {
		e.log().Warn("could not save preference", "key", key, "error", err)
	}
}
