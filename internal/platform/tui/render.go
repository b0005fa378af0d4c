package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-petri/internal/core"
	"github.com/vovakirdan/tui-petri/internal/game"
)

// Viewport glyphs.
const (
	foodRune   = '•'
	cellRune   = '█'
	gridRune   = '·'
	borderRune = '#'
)

// gridSpacing is the world-unit interval between background grid dots.
const gridSpacing = 100.0

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Draw renders one simulation frame into the screen buffer: background grid,
// dish border, pellets, the player cell with its name and caption, and the
// HUD. The screen must be cleared by the caller.
func Draw(s *core.Screen, snap game.Snapshot, describeEnabled bool) {
	cam := game.Camera{
		Offset: core.Vec2{X: snap.CameraX, Y: snap.CameraY},
		Cols:   s.Width(),
		Rows:   s.Height(),
	}
	bounds := core.NewBounds(snap.WorldW, snap.WorldH)

	drawGrid(s, cam, bounds)
	drawBorder(s, cam, bounds)

	for _, f := range snap.Food {
		col, row := cam.WorldToScreen(core.Vec2{X: f.X, Y: f.Y})
		s.SetColored(col, row, foodRune, f.Color)
	}

	drawCell(s, cam, snap.Cell)
	drawHUD(s, snap, describeEnabled)
}

// drawGrid scatters faint dots at fixed world intervals so movement is
// visible even when nothing else is on screen. When the dish is smaller
// than the viewport, no dots appear outside it.
func drawGrid(s *core.Screen, cam game.Camera, bounds core.Bounds) {
	startX := math.Ceil(cam.Offset.X/gridSpacing) * gridSpacing
	startY := math.Ceil(cam.Offset.Y/gridSpacing) * gridSpacing

	for wy := startY; wy < cam.Offset.Y+cam.ViewH(); wy += gridSpacing {
		for wx := startX; wx < cam.Offset.X+cam.ViewW(); wx += gridSpacing {
			p := core.Vec2{X: wx, Y: wy}
			if !bounds.Contains(p) {
				continue
			}
			col, row := cam.WorldToScreen(p)
			s.SetColored(col, row, gridRune, core.ColorGray)
		}
	}
}

// drawBorder marks the dish edges wherever they cross the viewport.
func drawBorder(s *core.Screen, cam game.Camera, bounds core.Bounds) {
	leftCol, topRow := cam.WorldToScreen(core.Vec2{X: -bounds.HalfW, Y: -bounds.HalfH})
	rightCol, bottomRow := cam.WorldToScreen(core.Vec2{X: bounds.HalfW, Y: bounds.HalfH})

	s.DrawVLine(leftCol, 0, s.Height(), borderRune)
	s.DrawVLine(rightCol, 0, s.Height(), borderRune)
	s.DrawHLine(0, topRow, s.Width(), borderRune)
	s.DrawHLine(0, bottomRow, s.Width(), borderRune)
}

// drawCell fills the cell's ellipse and attaches the name above it and the
// caption below it.
func drawCell(s *core.Screen, cam game.Camera, cell game.CellSnapshot) {
	// Radii in screen cells; the vertical radius shrinks because terminal
	// cells are taller than they are wide.
	rx := cell.Radius / game.UnitsPerCol
	ry := cell.Radius / game.UnitsPerRow

	centerCol := (cell.X - cam.Offset.X) / game.UnitsPerCol
	centerRow := (cell.Y - cam.Offset.Y) / game.UnitsPerRow

	minCol := int(math.Floor(centerCol - rx))
	maxCol := int(math.Ceil(centerCol + rx))
	minRow := int(math.Floor(centerRow - ry))
	maxRow := int(math.Ceil(centerRow + ry))

	for row := core.Max(minRow, 0); row <= core.Min(maxRow, s.Height()-1); row++ {
		for col := core.Max(minCol, 0); col <= core.Min(maxCol, s.Width()-1); col++ {
			dx := (float64(col) + 0.5 - centerCol) / rx
			dy := (float64(row) + 0.5 - centerRow) / ry
			if dx*dx+dy*dy <= 1 {
				s.SetColored(col, row, cellRune, cell.Color)
			}
		}
	}

	// A shrunken cell can slip between sample points; always mark its center.
	s.SetColored(int(math.Floor(centerCol)), int(math.Floor(centerRow)), cellRune, cell.Color)

	// Labels clamp to the screen edge instead of clipping away
	nameCol := core.Clamp(int(math.Floor(centerCol))-len(cell.Name)/2, 0, s.Width()-len(cell.Name))
	s.DrawTextColored(nameCol, minRow-1, cell.Name, core.ColorBrightWhite)

	if cell.CaptionActive {
		captionCol := core.Clamp(int(math.Floor(centerCol))-len(cell.Caption)/2, 0, s.Width()-len(cell.Caption))
		s.DrawTextColored(captionCol, maxRow+1, cell.Caption, core.ColorBrightYellow)
	}
}

// drawHUD blanks the top and bottom rows into status strips and writes the
// mass readout and key hints on them.
func drawHUD(s *core.Screen, snap game.Snapshot, describeEnabled bool) {
	s.DrawRect(core.NewRect(0, 0, s.Width(), 1), ' ')
	s.DrawRect(core.NewRect(0, s.Height()-1, s.Width(), 1), ' ')

	s.DrawTextColored(1, 0, fmt.Sprintf("Mass: %d", int(snap.Cell.Mass)), core.ColorBrightWhite)

	hints := "q: quit"
	if describeEnabled {
		hints = "g: describe  " + hints
	}
	s.DrawTextCentered(s.Height()-1, hints)
}
