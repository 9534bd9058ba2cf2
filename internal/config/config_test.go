package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-rubiks/internal/core"
	"gopkg.in/yaml.v3"
)

// isolate points the home directory and working directory at empty temp
// dirs so that no real config files are picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg RubiksConfig
	if err := yaml.Unmarshal(GetDefaultYAML("rubiks"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultRubiksConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultRubiksConfig())
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML for unknown game should be nil")
	}
}

func TestLoadRubiksDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadRubiks("")
	if err != nil {
		t.Fatalf("LoadRubiks() error = %v", err)
	}
	if cfg != DefaultRubiksConfig() {
		t.Errorf("LoadRubiks() = %+v, expected defaults", cfg)
	}
}

func TestLoadRubiksCustomPathPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "gameplay:\n  shuffle_moves: 7\ncolors:\n  front: magenta\n")

	cfg, err := LoadRubiks(path)
	if err != nil {
		t.Fatalf("LoadRubiks() error = %v", err)
	}
	if cfg.Gameplay.ShuffleMoves != 7 {
		t.Errorf("ShuffleMoves = %d, expected 7", cfg.Gameplay.ShuffleMoves)
	}
	if cfg.Gameplay.HistoryCapacity != 100 {
		t.Errorf("HistoryCapacity = %d, expected default 100", cfg.Gameplay.HistoryCapacity)
	}
	if cfg.Colors.Front != "magenta" || cfg.Colors.Back != "orange" {
		t.Errorf("Colors = %+v, expected front override and default back", cfg.Colors)
	}
}

func TestLoadRubiksCustomPathMissing(t *testing.T) {
	isolate(t)
	if _, err := LoadRubiks(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadRubiks with a missing custom path should fail")
	}
}

func TestLoadRubiksSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join("configs", "rubiks.yaml"), "gameplay:\n  shuffle_moves: 11\n")
	cfg, err := LoadRubiks("")
	if err != nil {
		t.Fatalf("LoadRubiks() error = %v", err)
	}
	if cfg.Gameplay.ShuffleMoves != 11 {
		t.Errorf("local config: ShuffleMoves = %d, expected 11", cfg.Gameplay.ShuffleMoves)
	}

	writeFile(t, filepath.Join(home, ".rubiks", "configs", "rubiks.yaml"), "gameplay:\n  shuffle_moves: 22\n")
	cfg, err = LoadRubiks("")
	if err != nil {
		t.Fatalf("LoadRubiks() error = %v", err)
	}
	if cfg.Gameplay.ShuffleMoves != 22 {
		t.Errorf("user config should win over local: ShuffleMoves = %d, expected 22", cfg.Gameplay.ShuffleMoves)
	}
}

func TestLoadRubiksEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("RUBIKS_SHUFFLE_MOVES", "3")
	t.Setenv("RUBIKS_HISTORY_CAPACITY", "12")
	t.Setenv("RUBIKS_COUNT_UNDO", "false")
	t.Setenv("RUBIKS_RECORD_NOOP", "false")

	cfg, err := LoadRubiks("")
	if err != nil {
		t.Fatalf("LoadRubiks() error = %v", err)
	}

	expected := RubiksGameplay{ShuffleMoves: 3, HistoryCapacity: 12, CountUndo: false, RecordNoOp: false}
	if cfg.Gameplay != expected {
		t.Errorf("Gameplay = %+v, expected %+v", cfg.Gameplay, expected)
	}
}

func TestLoadRubiksEnvInvalid(t *testing.T) {
	isolate(t)
	t.Setenv("RUBIKS_SHUFFLE_MOVES", "lots")

	_, err := LoadRubiks("")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RubiksConfig)
		wantErr bool
	}{
		{"defaults", func(*RubiksConfig) {}, false},
		{"zero shuffle", func(c *RubiksConfig) { c.Gameplay.ShuffleMoves = 0 }, false},
		{"negative shuffle", func(c *RubiksConfig) { c.Gameplay.ShuffleMoves = -1 }, true},
		{"zero capacity", func(c *RubiksConfig) { c.Gameplay.HistoryCapacity = 0 }, true},
		{"unknown color", func(c *RubiksConfig) { c.Colors.Left = "purple" }, true},
		{"empty color", func(c *RubiksConfig) { c.Colors.Top = "" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRubiksConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	palette, err := DefaultRubiksConfig().Colors.Palette()
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}

	expected := [6]core.Color{
		core.ColorBrightWhite,
		core.ColorBrightYellow,
		core.ColorGreen,
		core.ColorBlue,
		core.ColorRed,
		core.ColorOrange,
	}
	if palette != expected {
		t.Errorf("Palette() = %v, expected %v", palette, expected)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   string
		valid    bool
		expected int
	}{
		{"easy", true, 10},
		{"normal", true, 25},
		{"hard", true, 50},
		{"fixed", true, 33},
		{"insane", false, 33},
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			cfg := DefaultRubiksConfig()
			cfg.Gameplay.ShuffleMoves = 33

			preset, ok := ParseDifficultyPreset(tc.preset)
			if ok != tc.valid {
				t.Fatalf("ParseDifficultyPreset(%q) ok = %v, expected %v", tc.preset, ok, tc.valid)
			}
			ApplyRubiksPreset(&cfg, preset)
			if cfg.Gameplay.ShuffleMoves != tc.expected {
				t.Errorf("ShuffleMoves = %d, expected %d", cfg.Gameplay.ShuffleMoves, tc.expected)
			}
		})
	}
}
