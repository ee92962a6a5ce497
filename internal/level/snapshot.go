package level

import (
	"cmp"
	"slices"

	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Sprite is a read-only view of one drawable entity after a tick.
type Sprite struct {
	ID            ecs.EntityID
	Name          string
	X, Y          float64
	Width, Height float64
	Glyph         string
	FG, BG        tcell.Color
	Order         int
	Hidden        bool
	Player        bool
}

// Snapshot returns every drawable entity in draw order: by render layer,
// then creation order.
func (l *Level) Snapshot() []Sprite {
	w := l.space.World
	ids := w.Query(component.CRenderable, component.CPosition, component.CBody)
	out := make([]Sprite, 0, len(ids))
	for _, id := range ids {
		r := w.Get(id, component.CRenderable).(component.Renderable)
		p, _ := system.PositionOf(w, id)
		b, _ := system.BodyOf(w, id)
		out = append(out, Sprite{
			ID:     id,
			Name:   system.NameOf(w, id),
			X:      p.X,
			Y:      p.Y,
			Width:  b.Width,
			Height: b.Height,
			Glyph:  r.Glyph,
			FG:     r.FGColor,
			BG:     r.BGColor,
			Order:  r.RenderOrder,
			Hidden: r.Hidden,
			Player: id == l.player,
		})
	}
	slices.SortStableFunc(out, func(a, b Sprite) int { return cmp.Compare(a.Order, b.Order) })
	return out
}
