package render

import "github.com/gdamore/tcell/v2"

// Theme colors the frame and HUD for one level.
type Theme struct {
	Name   string
	Border tcell.Color
	Accent tcell.Color
}

// Themes maps level number to its palette; levels past the end reuse the
// last entry.
var Themes = []Theme{
	{Name: "Morning Crossing", Border: tcell.ColorGray, Accent: tcell.ColorLightGreen},
	{Name: "Dusk Rush", Border: tcell.ColorDarkOrange, Accent: tcell.ColorGold},
}

// ThemeFor returns the palette for level n.
func ThemeFor(n int) Theme {
	if n < 0 {
		n = 0
	}
	if n >= len(Themes) {
		n = len(Themes) - 1
	}
	return Themes[n]
}
