package game

import "github.com/vovakirdan/tui-petri/internal/core"

// FoodSnapshot is the read-only view of one pellet.
type FoodSnapshot struct {
	X, Y  float64
	R     float64
	Color core.Color
}

// CellSnapshot is the read-only view of the player cell.
type CellSnapshot struct {
	X, Y          float64
	Radius        float64
	Mass          float64
	Name          string
	Color         core.Color
	Caption       string
	CaptionActive bool
}

// Snapshot captures everything the renderer needs for one frame, plus
// enough state for determinism tests. The simulation is never mutated
// through a snapshot.
type Snapshot struct {
	Tick    uint64
	Cell    CellSnapshot
	Food    []FoodSnapshot
	CameraX float64
	CameraY float64
	WorldW  float64
	WorldH  float64
}

// Snapshot returns the current frame's read-only view.
func (g *Game) Snapshot() Snapshot {
	food := make([]FoodSnapshot, len(g.world.food))
	for i, f := range g.world.food {
		food[i] = FoodSnapshot{
			X:     f.Pos.X,
			Y:     f.Pos.Y,
			R:     f.R,
			Color: f.Color,
		}
	}

	return Snapshot{
		Tick: g.tick,
		Cell: CellSnapshot{
			X:             g.cell.Pos.X,
			Y:             g.cell.Pos.Y,
			Radius:        g.cell.R,
			Mass:          g.cell.Mass,
			Name:          g.cell.Name,
			Color:         g.cell.Color,
			Caption:       g.cell.Caption.Text(),
			CaptionActive: g.cell.Caption.Active(),
		},
		Food:    food,
		CameraX: g.camera.Offset.X,
		CameraY: g.camera.Offset.Y,
		WorldW:  g.world.Bounds.Width(),
		WorldH:  g.world.Bounds.Height(),
	}
}
