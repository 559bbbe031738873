package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// screenshotSavedMsg reports where a screenshot went.
type screenshotSavedMsg struct {
	path string
	err  error
}

// screenshotCmd writes an already captured frame to dir.
func screenshotCmd(dir, frame string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := saveScreenshot(dir, frame, now)
		return screenshotSavedMsg{path: path, err: err}
	}
}

func saveScreenshot(dir, frame string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("flappy_%s.txt", now.Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(frame), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}
