package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-petri/internal/core"
)

// World is the bounded arena. It owns the food population; the population
// size is fixed for the lifetime of the simulation because consumed pellets
// are replaced, never removed.
type World struct {
	Bounds core.Bounds

	rng        *rand.Rand
	foodRadius float64
	food       []Food
}

// NewWorld creates an arena with the given bounds. The RNG is passed in
// explicitly so food placement is deterministic under a fixed seed.
func NewWorld(rng *rand.Rand, bounds core.Bounds, foodRadius float64) *World {
	return &World{
		Bounds:     bounds,
		rng:        rng,
		foodRadius: foodRadius,
	}
}

// SpawnFood populates the arena with n pellets at independent uniform
// random positions.
func (w *World) SpawnFood(n int) {
	w.food = make([]Food, n)
	for i := range w.food {
		w.food[i] = NewFood(w.rng, w.Bounds, w.foodRadius)
	}
}

// Food returns the current pellet population. The slice is owned by the
// world; callers must not mutate it.
func (w *World) Food() []Food {
	return w.food
}

// ResolveConsumption tests every pellet against the cell and replaces each
// consumed pellet with a fresh one in place. Pellets never interact with
// each other, so the test order cannot matter. Returns the number consumed.
func (w *World) ResolveConsumption(cell *Cell) int {
	consumed := 0
	for i := range w.food {
		if cell.TryConsume(w.food[i]) {
			w.food[i] = NewFood(w.rng, w.Bounds, w.foodRadius)
			consumed++
		}
	}
	return consumed
}
