package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gridsnake/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSetupStartupErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yaml") }},
		{"invalid grid", func(t *testing.T) string { return writeConfig(t, "columns: 0\n") }},
		{"food on snake", func(t *testing.T) string { return writeConfig(t, "food_start: {x: 19, y: 0}\n") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, err := setup(tt.path(t), 0, 1)
			if err == nil || g != nil {
				t.Fatalf("setup = %v, %v; want an error", g, err)
			}
		})
	}
}

func TestSetupFoodOnSnakeIsInvalid(t *testing.T) {
	_, _, err := setup(writeConfig(t, "food_start: {x: 19, y: 0}\n"), 0, 1)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestSetupFlagsOverrideConfig(t *testing.T) {
	g, cfg, err := setup("", 120, 42)
	if err != nil {
		t.Fatal(err)
	}
	if g == nil {
		t.Fatal("nil game")
	}
	if cfg.MoveInterval != 120*time.Millisecond || cfg.Seed != 42 {
		t.Errorf("interval %v seed %d, want 120ms and 42", cfg.MoveInterval, cfg.Seed)
	}
}
