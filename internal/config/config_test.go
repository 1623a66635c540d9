package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("parse embedded defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := []byte("grid:\n  width: 30\n  height: 15\ntiming:\n  base_interval: 80ms\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg.Grid.Width != 30 || cfg.Grid.Height != 15 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.Timing.BaseInterval != 80*time.Millisecond {
		t.Errorf("interval = %v", cfg.Timing.BaseInterval)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Food.Weights.Sum() != 100 || cfg.Effects.Speed.Duration != 10*time.Second {
		t.Errorf("defaults lost: %+v", cfg.Food)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "grid: [unterminated"},
		{"bad weights", "food:\n  weights:\n    normal: 10\n"},
		{"bad interval", "timing:\n  base_interval: 0s\n"},
		{"bad direction", "snake:\n  direction: sideways\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSnake(path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadSnakeFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadSnakeLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("grid:\n  width: 25\n  height: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg.Grid.Width != 25 {
		t.Errorf("width = %d, want 25", cfg.Grid.Width)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		base   time.Duration
		want   time.Duration
	}{
		{DifficultyEasy, 100 * time.Millisecond, 150 * time.Millisecond},
		{DifficultyNormal, 100 * time.Millisecond, 100 * time.Millisecond},
		{DifficultyHard, 100 * time.Millisecond, 70 * time.Millisecond},
		{DifficultyHard, 25 * time.Millisecond, minInterval},
	}
	for _, tt := range tests {
		cfg := DefaultSnakeConfig()
		cfg.Timing.BaseInterval = tt.base
		ApplySnakePreset(&cfg, tt.preset)
		if cfg.Timing.BaseInterval != tt.want {
			t.Errorf("%s on %v = %v, want %v", tt.preset, tt.base, cfg.Timing.BaseInterval, tt.want)
		}
	}
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}
