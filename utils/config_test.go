package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 12, "height": 9, "seed": 42, "frame_rate": 1000000}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Width != 12 || config.Height != 9 || config.Seed != 42 {
		t.Fatalf("loaded %dx%d seed %d, expected 12x9 seed 42", config.Width, config.Height, config.Seed)
	}
	if config.FrameRate != time.Millisecond {
		t.Fatalf("FrameRate = %v, expected 1ms", config.FrameRate)
	}
	if config.RandomDensity != DefaultConfig().RandomDensity {
		t.Fatalf("RandomDensity = %v, expected the default", config.RandomDensity)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("LoadConfig error = %v, expected a not-exist cause", err)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"width": 2}`)); !errors.Is(err, model.ErrInvalidDimension) {
		t.Fatalf("LoadConfig error = %v, expected ErrInvalidDimension", err)
	}
	if _, err := LoadConfig(writeConfig(t, `{"random_density": 1.5}`)); err == nil {
		t.Fatal("LoadConfig accepted random_density 1.5")
	}
	if _, err := LoadConfig(writeConfig(t, `{not json`)); err == nil {
		t.Fatal("LoadConfig accepted malformed JSON")
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 500*time.Millisecond)
	if s.GenerationsPerSecond != 2 || s.AveragePopulation != 100 {
		t.Fatalf("after first update: %.1f gen/sec, %.1f avg", s.GenerationsPerSecond, s.AveragePopulation)
	}

	s.Update(2, 200, 0)
	if s.TotalGenerations != 2 || s.AveragePopulation != 110 {
		t.Fatalf("after second update: gen %d, %.1f avg", s.TotalGenerations, s.AveragePopulation)
	}
}
