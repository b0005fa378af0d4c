package config

import (
	_ "embed"
)

//go:embed defaults/petri.yaml
var defaultRulesYAML []byte

// DefaultRules returns the default simulation rules.
func DefaultRules() Rules {
	return Rules{
		World: WorldConfig{
			Width:     2000,
			Height:    2000,
			FoodCount: 200,
		},
		Cell: CellConfig{
			InitialRadius: 20,
			MinRadius:     5,
			BaseSpeed:     6.0,
			MinSpeed:      1.0,
		},
		Food: FoodConfig{
			Radius: 5,
		},
		Caption: CaptionConfig{
			Seconds:        5.0,
			PendingSeconds: 2.0,
			ErrorSeconds:   2.0,
			TimeoutSeconds: 10.0,
		},
	}
}
