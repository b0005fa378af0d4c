// Package config provides YAML-based rule configuration and difficulty
// presets for the petri simulation.
package config

// Rules contains all tunable parameters of the simulation.
type Rules struct {
	World   WorldConfig   `yaml:"world"`
	Cell    CellConfig    `yaml:"cell"`
	Food    FoodConfig    `yaml:"food"`
	Caption CaptionConfig `yaml:"caption"`
}

// WorldConfig defines the arena dimensions and food population.
type WorldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	FoodCount int     `yaml:"food_count"`
}

// CellConfig defines the player cell parameters.
type CellConfig struct {
	InitialRadius float64 `yaml:"initial_radius"`
	MinRadius     float64 `yaml:"min_radius"`
	BaseSpeed     float64 `yaml:"base_speed"` // World units per tick at initial size
	MinSpeed      float64 `yaml:"min_speed"`  // Speed floor as the cell grows
}

// FoodConfig defines the food pellet parameters.
type FoodConfig struct {
	Radius float64 `yaml:"radius"`
}

// CaptionConfig defines caption display timers, in seconds.
type CaptionConfig struct {
	Seconds        float64 `yaml:"seconds"`         // How long a generated caption stays visible
	PendingSeconds float64 `yaml:"pending_seconds"` // How long the "thinking" message stays visible
	ErrorSeconds   float64 `yaml:"error_seconds"`   // How long the error placeholder stays visible
	TimeoutSeconds float64 `yaml:"timeout_seconds"` // Request deadline for the caption service
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the rules for a named difficulty.
// Easy packs the arena with food and speeds the cell up; hard thins the
// food out and slows the cell down. Unknown presets leave the rules as-is.
func ApplyPreset(r *Rules, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		r.World.FoodCount = r.World.FoodCount * 3 / 2
		r.Cell.BaseSpeed *= 1.25
	case DifficultyHard:
		r.World.FoodCount = r.World.FoodCount * 2 / 3
		r.Cell.BaseSpeed *= 0.8
	}
}
