package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHostKeyPathCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := hostKeyPath(path)
	if err != nil {
		t.Fatalf("hostKeyPath: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, expected %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestSSHServerLifecycle(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, *newTestEnv(t, false))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" || srv.ActiveSessions() != 0 {
		t.Errorf("addr = %q, active = %d", srv.Addr(), srv.ActiveSessions())
	}
	if srv.base.ScreenshotDir != "" {
		t.Error("remote sessions must not write screenshots")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe after cancel: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
