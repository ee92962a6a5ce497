package render

import (
	"shadow-leap/internal/gamemap"
	"shadow-leap/internal/geom"
	"shadow-leap/internal/level"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the height reserved for the HUD under the board.
const hudRows = 5

// Renderer draws level snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen and field.
func NewRenderer(screen tcell.Screen, f gamemap.Field) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(f, w, h-hudRows),
		theme:  ThemeFor(0),
	}
}

// SetLevel switches the palette to level n.
func (r *Renderer) SetLevel(n int) { r.theme = ThemeFor(n) }

// Resize re-centers the board after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, h-hudRows
	r.camera.Center()
}

// WorldToScreen converts a pixel position to a screen cell.
func (r *Renderer) WorldToScreen(p geom.Position) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(p)
}

// DrawFrame clears the screen and draws the board. Sprites must already be
// in draw order.
func (r *Renderer) DrawFrame(sprites []level.Sprite) {
	r.screen.Clear()
	r.drawBorder()
	for _, s := range sprites {
		if s.Hidden {
			continue
		}
		r.drawSprite(s)
	}
}

// drawSprite fills every tile a sprite spans with its glyph.
func (r *Renderer) drawSprite(s level.Sprite) {
	f := r.camera.Field
	style := tcell.StyleDefault.Foreground(s.FG).Background(s.BG)
	span := f.Span(s.Width)
	left := s.X - float64(span)*f.Tile/2
	for k := range span {
		cx := left + f.Tile/2 + float64(k)*f.Tile
		sx, sy, onScreen := r.camera.WorldToScreen(geom.Pos(cx, s.Y))
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, s.Glyph, style)
	}
}

func (r *Renderer) drawBorder() {
	style := tcell.StyleDefault.Foreground(r.theme.Border)
	x0, y0 := r.camera.OffsetX-1, r.camera.OffsetY-1
	x1, y1 := r.camera.OffsetX+r.camera.BoardWidth(), r.camera.OffsetY+r.camera.BoardHeight()
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, style)
		r.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, style)
		r.screen.SetContent(x1, y, '│', nil, style)
	}
	r.screen.SetContent(x0, y0, '┌', nil, style)
	r.screen.SetContent(x1, y0, '┐', nil, style)
	r.screen.SetContent(x0, y1, '└', nil, style)
	r.screen.SetContent(x1, y1, '┘', nil, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
