package game

import (
	"math"

	"github.com/vovakirdan/tui-petri/internal/core"
)

// World units covered by one terminal cell. Terminal cells are roughly
// twice as tall as they are wide, so the vertical scale doubles to keep
// circles looking circular.
const (
	UnitsPerCol = 10.0
	UnitsPerRow = 20.0
)

// Camera maps world coordinates to a viewport of terminal cells. Offset is
// the world-space position of the viewport's top-left corner.
type Camera struct {
	Offset core.Vec2
	Cols   int
	Rows   int
}

// NewCamera creates a camera for a viewport of the given size in cells.
func NewCamera(cols, rows int) Camera {
	return Camera{Cols: cols, Rows: rows}
}

// ViewW returns the viewport width in world units.
func (c Camera) ViewW() float64 {
	return float64(c.Cols) * UnitsPerCol
}

// ViewH returns the viewport height in world units.
func (c Camera) ViewH() float64 {
	return float64(c.Rows) * UnitsPerRow
}

// Follow recenters the viewport on pos, then clamps the offset so the
// viewport never extends beyond the bounds. When the world is smaller than
// the viewport on an axis, the world is centered instead.
func (c *Camera) Follow(pos core.Vec2, bounds core.Bounds) {
	c.Offset = core.Vec2{
		X: clampAxis(pos.X-c.ViewW()/2, -bounds.HalfW, bounds.HalfW-c.ViewW()),
		Y: clampAxis(pos.Y-c.ViewH()/2, -bounds.HalfH, bounds.HalfH-c.ViewH()),
	}
}

// clampAxis restricts an offset to [min, max], centering when the range is
// inverted (viewport larger than the world).
func clampAxis(v, min, max float64) float64 {
	if max < min {
		return (min + max) / 2
	}
	return core.ClampF(v, min, max)
}

// ScreenToWorld converts a viewport cell position to the world coordinate
// of that cell's center. Used to turn pointer positions into movement
// targets.
func (c Camera) ScreenToWorld(col, row int) core.Vec2 {
	return core.Vec2{
		X: c.Offset.X + (float64(col)+0.5)*UnitsPerCol,
		Y: c.Offset.Y + (float64(row)+0.5)*UnitsPerRow,
	}
}

// WorldToScreen converts a world coordinate to viewport cell coordinates.
// The result may lie outside the viewport; callers clip when drawing.
func (c Camera) WorldToScreen(p core.Vec2) (col, row int) {
	col = int(math.Floor((p.X - c.Offset.X) / UnitsPerCol))
	row = int(math.Floor((p.Y - c.Offset.Y) / UnitsPerRow))
	return col, row
}

// Resize adjusts the viewport size in cells, preserving the offset until
// the next Follow.
func (c *Camera) Resize(cols, rows int) {
	c.Cols = cols
	c.Rows = rows
}
