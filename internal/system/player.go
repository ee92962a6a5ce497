package system

import (
	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
)

// DetectCarrier re-evaluates which ridable carrier the passenger stands on.
// The current carrier is kept while it still overlaps; otherwise the
// passenger moves to the first overlapping ridable carrier, or is detached
// when there is none. Returns the resulting carrier.
func DetectCarrier(s *Space, passenger ecs.EntityID) ecs.EntityID {
	w := s.World
	hits := IntersectingWith(w, passenger, IsRidable)
	current := CarrierOf(w, passenger)
	for _, c := range hits {
		if c == current {
			return current
		}
	}
	if len(hits) == 0 {
		Detach(s, passenger)
		return ecs.NilEntity
	}
	Attach(s, passenger, hits[0])
	return CarrierOf(w, passenger)
}

// FirstObstacleHit returns the first obstacle overlapping id in creation
// order. Simultaneous hits never compound.
func FirstObstacleHit(w *ecs.World, id ecs.EntityID) (ecs.EntityID, bool) {
	return FirstIntersecting(w, id, IsObstacle)
}

// TouchedPowerUps returns the power-ups overlapping id.
func TouchedPowerUps(w *ecs.World, id ecs.EntityID) []ecs.EntityID {
	return IntersectingWith(w, id, IsPowerUp)
}

// ApplyPowerUp grants pu to player and removes it from the world. A power-up
// already gone is ignored and reports false.
func ApplyPowerUp(s *Space, player, pu ecs.EntityID) (component.PowerUpKind, bool) {
	p, ok := s.World.Get(pu, component.CPowerUp).(component.PowerUp)
	if !ok {
		return 0, false
	}
	switch p.Kind {
	case component.PowerUpExtraLife:
		AddLife(s.World, player)
	}
	s.Logger.Info("power-up collected", "kind", p.Kind, "lives", LivesOf(s.World, player))
	Release(s, pu)
	return p.Kind, true
}
