package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is what the HUD shows under the board.
type Status struct {
	Lives    int
	Level    int // 0-indexed
	Levels   int
	State    string
	Messages []string
}

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(st Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, r.theme.Border)

	lives := strings.Repeat("🐸", max(st.Lives, 0))
	status := fmt.Sprintf("Lives: %s  Level: %d/%d  %s", lives, st.Level+1, st.Levels, r.theme.Name)
	if st.State != "" {
		status += "  [" + st.State + "]"
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	start := max(len(st.Messages)-3, 0)
	for i, msg := range st.Messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(r.theme.Accent))
	}
}

// DrawBanner writes text centered over the board.
func (r *Renderer) DrawBanner(text string) {
	w := runewidth.StringWidth(text)
	x := r.camera.OffsetX + (r.camera.BoardWidth()-w)/2
	y := r.camera.OffsetY + r.camera.BoardHeight()/2
	r.drawText(max(x, 0), y, text, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(r.theme.Accent).Bold(true))
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, advancing by each rune's display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
