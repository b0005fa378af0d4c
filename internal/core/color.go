package core

import "math/rand"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// String returns the color's display name. The caption service includes it
// in prompts, so the names read naturally in a sentence.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright red"
	case ColorBrightGreen:
		return "bright green"
	case ColorBrightYellow:
		return "bright yellow"
	case ColorBrightBlue:
		return "bright blue"
	case ColorBrightMagenta:
		return "bright magenta"
	case ColorBrightCyan:
		return "bright cyan"
	case ColorBrightWhite:
		return "bright white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "colorless"
	}
}

// cellPalette holds the colors the player cell may spawn with.
var cellPalette = []Color{
	ColorBrightRed, ColorBrightGreen, ColorBrightYellow,
	ColorBrightBlue, ColorBrightMagenta, ColorBrightCyan, ColorOrange,
}

// foodPalette holds the colors food pellets may spawn with.
var foodPalette = []Color{
	ColorRed, ColorGreen, ColorYellow, ColorBlue,
	ColorMagenta, ColorCyan, ColorWhite, ColorOrange,
}

// RandomCellColor picks a spawn color for the player cell.
func RandomCellColor(rng *rand.Rand) Color {
	return cellPalette[rng.Intn(len(cellPalette))]
}

// RandomFoodColor picks a spawn color for a food pellet.
func RandomFoodColor(rng *rand.Rand) Color {
	return foodPalette[rng.Intn(len(foodPalette))]
}
