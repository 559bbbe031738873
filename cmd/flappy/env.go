package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// newLogger builds the process logger. Interactive commands log to a file
// so output does not tear the alternate screen.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens --log-file for appending. The returned closer is never nil.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	path, err := storage.ExpandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// buildEnv loads config, opens storage and restores preferences. An explicit
// --difficulty wins over the saved one. The caller closes env.Store.
func buildEnv(logger *log.Logger) (*tui.Env, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return nil, err
	}

	env := &tui.Env{
		Config: cfg,
		Preset: config.DifficultyNormal,
		Logger: logger,
	}

	if dir, err := storage.ExpandHome("~/.flappy/screenshots"); err == nil {
		env.ScreenshotDir = dir
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, playing without persistence", "error", err)
	} else {
		env.Store = store
	}

	env.LoadPreferences()

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			if env.Store != nil {
				env.Store.Close()
			}
			return nil, err
		}
		env.Preset = preset
	}

	logger.Debug("environment ready",
		"difficulty", env.Preset,
		"skin", env.Skin,
		"db", flagDBPath,
	)
	return env, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}

// interactive runs fn with a file logger and a ready environment.
func interactive(fn func(env *tui.Env, rt core.RuntimeConfig) error) error {
	w, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(w, "flappy")
	if err != nil {
		return err
	}

	env, err := buildEnv(logger)
	if err != nil {
		return err
	}
	if env.Store != nil {
		defer env.Store.Close()
	}

	return fn(env, runtimeConfig())
}
