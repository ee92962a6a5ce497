package system

import (
	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/geom"
)

// UpdateBlinker advances a blinking carrier. Surfacing makes it ridable and
// visible again; submerging unseats every rider.
func UpdateBlinker(s *Space, id ecs.EntityID, dtMs float64) {
	b, ok := s.World.Get(id, component.CBlinker).(component.Blinker)
	if !ok {
		return
	}
	b.Elapsed += dtMs
	limit := b.VisibleFor
	if b.Hidden {
		limit = b.HiddenFor
	}
	if b.Elapsed < limit {
		s.World.Add(id, b)
		return
	}
	b.Elapsed -= limit
	b.Hidden = !b.Hidden
	s.World.Add(id, b)
	setHidden(s.World, id, b.Hidden)
	SetRidable(s, id, !b.Hidden)
}

func setHidden(w *ecs.World, id ecs.EntityID, hidden bool) {
	if r, ok := w.Get(id, component.CRenderable).(component.Renderable); ok {
		r.Hidden = hidden
		w.Add(id, r)
	}
}

// UpdateBouncer reverses horizontal motion once id reaches a bound while
// heading toward it, snapping it back onto the bound.
func UpdateBouncer(s *Space, id ecs.EntityID, _ float64) {
	b, ok := s.World.Get(id, component.CBouncer).(component.Bouncer)
	if !ok {
		return
	}
	p, ok := PositionOf(s.World, id)
	if !ok {
		return
	}
	v := VelocityOf(s.World, id)
	switch {
	case p.X <= b.MinX && v.Horizontal < 0:
		Place(s, id, geom.Pos(b.MinX, p.Y))
	case p.X >= b.MaxX && v.Horizontal > 0:
		Place(s, id, geom.Pos(b.MaxX, p.Y))
	default:
		return
	}
	SetVelocity(s.World, id, v.Opposite(true, false))
}

// Push shoves every passenger-capable entity overlapping the pusher, and
// ahead of it in its direction of travel, by the pusher's own displacement.
func Push(s *Space, id ecs.EntityID, dtMs float64) {
	if !s.World.Has(id, component.CPusher) {
		return
	}
	v := VelocityOf(s.World, id)
	if v.Horizontal == 0 {
		return
	}
	p, ok := PositionOf(s.World, id)
	if !ok {
		return
	}
	dx, _ := v.Displacement(dtMs)
	for _, other := range IntersectingWith(s.World, id, IsPassenger) {
		op, _ := PositionOf(s.World, other)
		if (op.X-p.X)*v.Horizontal < 0 {
			continue
		}
		Shift(s, other, dx, 0)
	}
}

// UpdatePowerUp ages a power-up and shuffles it one tile along its carrier on
// every shuffle period. Returns true when the power-up expired and was
// removed.
func UpdatePowerUp(s *Space, id ecs.EntityID, dtMs float64) bool {
	pu, ok := s.World.Get(id, component.CPowerUp).(component.PowerUp)
	if !ok {
		return false
	}
	pu.Age += dtMs
	if pu.Age >= PowerUpExpiryMs {
		s.Logger.Debug("power-up expired", "entity", id)
		Release(s, id)
		return true
	}
	pu.ShuffleTimer += dtMs
	if pu.ShuffleTimer >= PowerUpShuffleMs {
		pu.ShuffleTimer -= PowerUpShuffleMs
		pu.ShuffleRight = shuffle(s, id, pu.ShuffleRight)
	}
	s.World.Add(id, pu)
	return false
}

// shuffle moves id one tile along its carrier, trying the other way when the
// preferred tile would leave the carrier. Returns the direction to try next.
func shuffle(s *Space, id ecs.EntityID, right bool) bool {
	carrier := CarrierOf(s.World, id)
	if carrier == ecs.NilEntity {
		return right
	}
	for range 2 {
		step := s.Field.Tile
		if !right {
			step = -step
		}
		if overCarrier(s, id, carrier, step) {
			Shift(s, id, step, 0)
			return right
		}
		right = !right
	}
	return right
}

func overCarrier(s *Space, id, carrier ecs.EntityID, dx float64) bool {
	p, ok := PositionOf(s.World, id)
	if !ok {
		return false
	}
	cp, _ := PositionOf(s.World, carrier)
	cb, _ := BodyOf(s.World, carrier)
	x := p.X + dx
	half := s.Field.Tile / 2
	return x-half >= cp.X-cb.Width/2-slotEpsilon && x+half <= cp.X+cb.Width/2+slotEpsilon
}
