package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRulesMatchEmbedded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree.
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded != DefaultRules() {
		t.Errorf("Embedded defaults diverge from DefaultRules():\n%+v\nvs\n%+v", loaded, DefaultRules())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rules.yaml")

	custom := `
world:
  width: 500
  height: 400
  food_count: 13
cell:
  initial_radius: 10
  min_radius: 2
  base_speed: 3.5
  min_speed: 0.5
food:
  radius: 2
caption:
  seconds: 1.0
  pending_seconds: 0.5
  error_seconds: 0.5
  timeout_seconds: 2.0
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if r.World.Width != 500 || r.World.Height != 400 {
		t.Errorf("World = %+v, expected 500x400", r.World)
	}
	if r.World.FoodCount != 13 {
		t.Errorf("FoodCount = %d, expected 13", r.World.FoodCount)
	}
	if r.Cell.BaseSpeed != 3.5 {
		t.Errorf("BaseSpeed = %v, expected 3.5", r.Cell.BaseSpeed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/rules.yaml")
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name      string
		preset    DifficultyPreset
		foodCount int
		baseSpeed float64
	}{
		{"easy", DifficultyEasy, 300, 7.5},
		{"normal is identity", DifficultyNormal, 200, 6.0},
		{"hard", DifficultyHard, 133, 4.8},
		{"unknown is identity", DifficultyPreset("bogus"), 200, 6.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := DefaultRules()
			ApplyPreset(&r, tc.preset)

			if r.World.FoodCount != tc.foodCount {
				t.Errorf("FoodCount = %d, expected %d", r.World.FoodCount, tc.foodCount)
			}
			// Multipliers like 0.8 are inexact in binary, so compare
			// with a tolerance.
			if math.Abs(r.Cell.BaseSpeed-tc.baseSpeed) > 1e-9 {
				t.Errorf("BaseSpeed = %v, expected %v", r.Cell.BaseSpeed, tc.baseSpeed)
			}
		})
	}
}
