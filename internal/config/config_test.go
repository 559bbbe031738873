package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parseFlappy(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML differs from DefaultFlappyConfig():\n got %+v\nwant %+v", cfg, DefaultFlappyConfig())
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Physics.JumpVelocity = 3
	cfg.Obstacles.GapMax = 100 // below gap_min
	cfg.Difficulty.MinInterval = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{"jump_velocity", "gap_max", "min_interval"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should mention %q, got: %v", want, msg)
		}
	}
}

func TestValidateGapMustFitPlayfield(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Obstacles.GapTopMax = 500

	if err := cfg.Validate(); err == nil {
		t.Error("gap range exceeding the playfield should be rejected")
	}
}

func TestLoadFlappyCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := "physics:\n  gravity: 0.35\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.35 {
		t.Errorf("gravity = %g, expected 0.35", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpVelocity != DefaultFlappyConfig().Physics.JumpVelocity {
		t.Errorf("unset keys should keep defaults, jump_velocity = %g", cfg.Physics.JumpVelocity)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(invalid); err == nil {
		t.Error("invalid values should be rejected")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := DefaultFlappyConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(out), "jump_velocity: -6") {
		t.Errorf("marshaled YAML should use snake_case keys, got:\n%s", out)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyFlappyPreset(t *testing.T) {
	base := DefaultFlappyConfig()

	fixed := base
	ApplyFlappyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.IntervalAccel != 0 || fixed.Difficulty.VelocityAccel != 0 {
		t.Error("fixed preset should disable the ramp")
	}

	hard := base
	ApplyFlappyPreset(&hard, DifficultyHard)
	if hard.Difficulty.VelocityAccel != base.Difficulty.VelocityAccel*2 {
		t.Errorf("hard preset should double velocity accel, got %g", hard.Difficulty.VelocityAccel)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	easy := base
	ApplyFlappyPreset(&easy, DifficultyEasy)
	if easy.Difficulty.IntervalAccel != base.Difficulty.IntervalAccel*0.5 {
		t.Errorf("easy preset should halve interval accel, got %g", easy.Difficulty.IntervalAccel)
	}

	normal := base
	ApplyFlappyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}
}

func TestPresetCycling(t *testing.T) {
	if DifficultyEasy.Next() != DifficultyNormal {
		t.Error("easy.Next() should be normal")
	}
	if DifficultyFixed.Next() != DifficultyEasy {
		t.Error("Next() should wrap around")
	}
	if DifficultyEasy.Prev() != DifficultyFixed {
		t.Error("Prev() should wrap around")
	}
	if DifficultyPreset("bogus").Next() != DifficultyNormal {
		t.Error("unknown preset should fall back to normal")
	}
}
