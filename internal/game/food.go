package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-petri/internal/core"
)

// Food is a stationary pellet the player cell can consume. Pellets carry no
// behavior of their own; consumption logic lives on the cell.
type Food struct {
	core.Circle
	Color core.Color
}

// NewFood places a pellet uniformly at random within the bounds, keeping its
// full radius inside.
func NewFood(rng *rand.Rand, bounds core.Bounds, radius float64) Food {
	pos := core.Vec2{
		X: (rng.Float64()*2 - 1) * bounds.HalfW,
		Y: (rng.Float64()*2 - 1) * bounds.HalfH,
	}
	return Food{
		Circle: core.Circle{Pos: bounds.ClampCircle(pos, radius), R: radius},
		Color:  core.RandomFoodColor(rng),
	}
}
