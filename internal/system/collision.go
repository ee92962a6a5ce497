package system

import (
	"strings"

	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/geom"
)

// Predicate selects entities by capability.
type Predicate func(w *ecs.World, id ecs.EntityID) bool

// Has builds a predicate matching entities that hold component t.
func Has(t ecs.ComponentType) Predicate {
	return func(w *ecs.World, id ecs.EntityID) bool { return w.Has(id, t) }
}

var (
	IsCarrier   = Has(component.CCarrier)
	IsPassenger = Has(component.CPassenger)
	IsObstacle  = Has(component.CTagObstacle)
	IsSolid     = Has(component.CTagSolid)
	IsPowerUp   = Has(component.CPowerUp)
	IsMarker    = Has(component.CTagMarker)
	IsPlayer    = Has(component.CTagPlayer)
)

// NameContains matches entities whose kind name contains sub.
func NameContains(sub string) Predicate {
	return func(w *ecs.World, id ecs.EntityID) bool {
		return strings.Contains(NameOf(w, id), sub)
	}
}

// And matches entities accepted by every predicate.
func And(preds ...Predicate) Predicate {
	return func(w *ecs.World, id ecs.EntityID) bool {
		for _, p := range preds {
			if !p(w, id) {
				return false
			}
		}
		return true
	}
}

// Intersecting returns every live entity whose box overlaps box, in creation
// order.
func Intersecting(w *ecs.World, box geom.Box) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(component.CPosition, component.CBody) {
		if b, ok := BoxOf(w, id); ok && b.Intersects(box) {
			out = append(out, id)
		}
	}
	return out
}

// IntersectingWith returns the entities overlapping id that satisfy pred,
// never including id itself.
func IntersectingWith(w *ecs.World, id ecs.EntityID, pred Predicate) []ecs.EntityID {
	box, ok := BoxOf(w, id)
	if !ok {
		return nil
	}
	var out []ecs.EntityID
	for _, other := range Intersecting(w, box) {
		if other != id && (pred == nil || pred(w, other)) {
			out = append(out, other)
		}
	}
	return out
}

// FirstIntersecting returns the first entity in creation order overlapping id
// and satisfying pred.
func FirstIntersecting(w *ecs.World, id ecs.EntityID, pred Predicate) (ecs.EntityID, bool) {
	hits := IntersectingWith(w, id, pred)
	if len(hits) == 0 {
		return ecs.NilEntity, false
	}
	return hits[0], true
}

// Probe is the box used for point queries: one fuzzed tile centered on p.
func Probe(s *Space, p geom.Position) geom.Box {
	return geom.BoxAround(p, s.Field.Tile, s.Field.Tile)
}

// At returns the entities occupying the tile centered on p.
func At(s *Space, p geom.Position) []ecs.EntityID {
	return Intersecting(s.World, Probe(s, p))
}

// AnyAt reports whether an entity matching pred occupies the tile at p.
func AnyAt(s *Space, p geom.Position, pred Predicate) bool {
	for _, id := range At(s, p) {
		if pred(s.World, id) {
			return true
		}
	}
	return false
}
