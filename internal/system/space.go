// Package system holds the per-frame rules of the simulation as free
// functions over a Space.
package system

import (
	"log/slog"

	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/gamemap"
	"shadow-leap/internal/geom"
)

// Listener receives the side-effect signals raised while systems mutate the
// world. Both callbacks run synchronously inside the mutating call.
type Listener interface {
	// BoundsExtended fires after a screen-bound entity moved so that its box
	// is no longer wholly inside the play area.
	BoundsExtended(id ecs.EntityID)
	// Unseated fires after a passenger was force-detached because its
	// carrier stopped being ridable.
	Unseated(id ecs.EntityID)
}

// Space bundles the entity store with the play field and the listener that
// owns gameplay consequences.
type Space struct {
	World    *ecs.World
	Field    gamemap.Field
	Listener Listener
	Logger   *slog.Logger
}

// NewSpace wires a Space. A nil listener or logger is replaced by a no-op.
func NewSpace(w *ecs.World, f gamemap.Field, l Listener, logger *slog.Logger) *Space {
	if l == nil {
		l = nopListener{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Space{World: w, Field: f, Listener: l, Logger: logger}
}

type nopListener struct{}

func (nopListener) BoundsExtended(ecs.EntityID) {}
func (nopListener) Unseated(ecs.EntityID)       {}

// PositionOf returns the center of id.
func PositionOf(w *ecs.World, id ecs.EntityID) (geom.Position, bool) {
	c, ok := w.Get(id, component.CPosition).(component.Position)
	return c.Position, ok
}

// BodyOf returns the visual size of id.
func BodyOf(w *ecs.World, id ecs.EntityID) (component.Body, bool) {
	b, ok := w.Get(id, component.CBody).(component.Body)
	return b, ok
}

// BoxOf returns the current collision box of id, derived from its position.
func BoxOf(w *ecs.World, id ecs.EntityID) (geom.Box, bool) {
	p, ok := PositionOf(w, id)
	if !ok {
		return geom.Box{}, false
	}
	b, ok := BodyOf(w, id)
	if !ok {
		return geom.Box{}, false
	}
	return b.Box(p), true
}

// NameOf returns the kind name of id, or "" when it has none.
func NameOf(w *ecs.World, id ecs.EntityID) string {
	n, _ := w.Get(id, component.CName).(component.Name)
	return n.Value
}

// Place moves id to p. Screen-bound entities are re-checked against the play
// area after every placement.
func Place(s *Space, id ecs.EntityID, p geom.Position) {
	if !s.World.Alive(id) {
		return
	}
	s.World.Add(id, component.Position{Position: p})
	if !s.World.Has(id, component.CTagScreenBound) {
		return
	}
	if box, ok := BoxOf(s.World, id); ok && !s.Field.Contains(box) {
		s.Listener.BoundsExtended(id)
	}
}

// Shift moves id by (dx, dy).
func Shift(s *Space, id ecs.EntityID, dx, dy float64) {
	p, ok := PositionOf(s.World, id)
	if !ok {
		return
	}
	Place(s, id, p.Add(dx, dy))
}
