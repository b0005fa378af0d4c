// Package game implements the petri simulation: a player-controlled cell
// roams a bounded arena, consumes food pellets, and grows. The package is
// pure simulation logic; rendering and input live in the platform layer.
package game

import (
	"math"

	"github.com/vovakirdan/tui-petri/internal/config"
	"github.com/vovakirdan/tui-petri/internal/core"
)

// restThreshold is the distance, in world units, below which the cell stops
// chasing its target. Prevents jitter when the pointer sits on the cell.
const restThreshold = 1.0

// Cell is the player-controlled entity. Mass is the source of truth for
// size: the radius is always derived as sqrt(mass) with a minimum floor,
// never set directly.
type Cell struct {
	core.Circle
	Name  string
	Color core.Color
	Mass  float64

	Caption Caption

	target        core.Vec2
	initialRadius float64
	minRadius     float64
	baseSpeed     float64
	minSpeed      float64
}

// NewCell creates the player cell at the center of the arena.
func NewCell(name string, color core.Color, cfg config.CellConfig) *Cell {
	c := &Cell{
		Circle: core.Circle{
			Pos: core.Vec2{},
			R:   math.Max(cfg.InitialRadius, cfg.MinRadius),
		},
		Name:          name,
		Color:         color,
		Mass:          cfg.InitialRadius * cfg.InitialRadius,
		initialRadius: cfg.InitialRadius,
		minRadius:     cfg.MinRadius,
		baseSpeed:     cfg.BaseSpeed,
		minSpeed:      cfg.MinSpeed,
	}
	c.target = c.Pos
	return c
}

// SetTarget stores the desired destination in world coordinates. The target
// may lie outside the arena; movement clamping keeps the cell inside.
func (c *Cell) SetTarget(x, y float64) {
	c.target = core.Vec2{X: x, Y: y}
}

// Target returns the current movement target.
func (c *Cell) Target() core.Vec2 {
	return c.target
}

// Speed returns the per-tick movement speed in world units. Speed falls off
// inversely with radius, so growth trades maneuverability for mass, down to
// a configured floor.
func (c *Cell) Speed() float64 {
	return math.Max(c.baseSpeed*(c.initialRadius/c.R), c.minSpeed)
}

// Advance moves the cell one tick toward its target and clamps the result
// so the full radius stays inside the bounds. Displacement is a fixed
// per-tick amount, not scaled by wall-clock time; the platform drives ticks
// at a fixed rate.
func (c *Cell) Advance(bounds core.Bounds) {
	delta := c.target.Sub(c.Pos)
	dist := delta.Len()
	if dist <= restThreshold {
		return
	}

	c.Pos = c.Pos.Add(delta.Scale(c.Speed() / dist))
	c.Pos = bounds.ClampCircle(c.Pos, c.R)
}

// Grow adds mass and recomputes the radius. Negative deltas are ignored;
// no legitimate path shrinks the cell.
func (c *Cell) Grow(delta float64) {
	if delta < 0 {
		return
	}
	c.Mass += delta
	c.R = math.Max(math.Sqrt(c.Mass), c.minRadius)
}

// TryConsume consumes the pellet if its center lies within the cell's
// radius. The pellet's own radius does not extend the reach: the larger
// body alone determines it, so small food is eaten consistently. On success
// the cell gains the pellet's area as mass.
func (c *Cell) TryConsume(f Food) bool {
	if !c.ContainsPoint(f.Pos) {
		return false
	}
	c.Grow(f.R * f.R)
	return true
}
