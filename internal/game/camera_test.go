package game

import (
	"testing"

	"github.com/vovakirdan/tui-petri/internal/core"
)

func TestCameraFollowCenters(t *testing.T) {
	bounds := core.NewBounds(2000, 2000)
	cam := NewCamera(80, 24) // 800x480 world units

	cam.Follow(core.Vec2{X: 0, Y: 0}, bounds)

	if cam.Offset.X != -400 || cam.Offset.Y != -240 {
		t.Errorf("Offset = %v, expected (-400, -240)", cam.Offset)
	}
}

func TestCameraFollowClampsToBounds(t *testing.T) {
	bounds := core.NewBounds(2000, 2000)
	cam := NewCamera(80, 24)

	tests := []struct {
		name    string
		pos     core.Vec2
		offsetX float64
		offsetY float64
	}{
		{"bottom-right corner", core.Vec2{X: 1000, Y: 1000}, 200, 520},
		{"top-left corner", core.Vec2{X: -1000, Y: -1000}, -1000, -1000},
		{"right edge only", core.Vec2{X: 1000, Y: 0}, 200, -240},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam.Follow(tc.pos, bounds)
			if cam.Offset.X != tc.offsetX || cam.Offset.Y != tc.offsetY {
				t.Errorf("Offset = %v, expected (%v, %v)", cam.Offset, tc.offsetX, tc.offsetY)
			}

			// The viewport must stay fully inside the world
			if cam.Offset.X < -bounds.HalfW || cam.Offset.X+cam.ViewW() > bounds.HalfW {
				t.Errorf("Viewport escapes horizontally at offset %v", cam.Offset)
			}
			if cam.Offset.Y < -bounds.HalfH || cam.Offset.Y+cam.ViewH() > bounds.HalfH {
				t.Errorf("Viewport escapes vertically at offset %v", cam.Offset)
			}
		})
	}
}

func TestCameraSmallWorldCentered(t *testing.T) {
	// World smaller than the viewport: the world is centered instead of
	// clamped.
	bounds := core.NewBounds(400, 300)
	cam := NewCamera(80, 24)

	cam.Follow(core.Vec2{X: 100, Y: -50}, bounds)

	centerX := cam.Offset.X + cam.ViewW()/2
	centerY := cam.Offset.Y + cam.ViewH()/2
	if centerX != 0 || centerY != 0 {
		t.Errorf("Viewport center = (%v, %v), expected the world origin", centerX, centerY)
	}
}

func TestScreenToWorld(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.Offset = core.Vec2{X: -400, Y: -240}

	// Cell (0,0) maps to the center of the top-left cell
	got := cam.ScreenToWorld(0, 0)
	if got.X != -395 || got.Y != -230 {
		t.Errorf("ScreenToWorld(0,0) = %v, expected (-395, -230)", got)
	}

	// The middle of the viewport lands near the followed position
	got = cam.ScreenToWorld(40, 12)
	if got.X != 5 || got.Y != 10 {
		t.Errorf("ScreenToWorld(40,12) = %v, expected (5, 10)", got)
	}
}

func TestWorldToScreenRoundTrip(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.Offset = core.Vec2{X: -400, Y: -240}

	for _, cell := range []struct{ col, row int }{
		{0, 0}, {40, 12}, {79, 23}, {13, 7},
	} {
		p := cam.ScreenToWorld(cell.col, cell.row)
		col, row := cam.WorldToScreen(p)
		if col != cell.col || row != cell.row {
			t.Errorf("Round trip (%d,%d) -> %v -> (%d,%d)", cell.col, cell.row, p, col, row)
		}
	}
}

func TestCameraResize(t *testing.T) {
	bounds := core.NewBounds(2000, 2000)
	cam := NewCamera(80, 24)
	cam.Follow(core.Vec2{}, bounds)

	cam.Resize(100, 30)
	if cam.Cols != 100 || cam.Rows != 30 {
		t.Errorf("Resize() = %dx%d, expected 100x30", cam.Cols, cam.Rows)
	}

	cam.Follow(core.Vec2{}, bounds)
	if cam.Offset.X != -500 || cam.Offset.Y != -300 {
		t.Errorf("Offset after resize = %v, expected (-500, -300)", cam.Offset)
	}
}
