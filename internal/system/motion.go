package system

import (
	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/geom"
)

// VelocityOf returns the velocity of id; entities without Motion are still.
func VelocityOf(w *ecs.World, id ecs.EntityID) geom.Velocity {
	m, _ := w.Get(id, component.CMotion).(component.Motion)
	return m.Velocity
}

// SetVelocity replaces the velocity of a moving entity.
func SetVelocity(w *ecs.World, id ecs.EntityID, v geom.Velocity) {
	if !w.Has(id, component.CMotion) {
		return
	}
	w.Add(id, component.Motion{Velocity: v})
}

// Advance moves id along its velocity for dtMs milliseconds. A still entity is
// never evaluated for respawn. An entity whose box has fully left the play
// area respawns instead of translating; the two never happen in one call.
// Carriers drag their passengers by the same displacement before moving.
func Advance(s *Space, id ecs.EntityID, dtMs float64) {
	v := VelocityOf(s.World, id)
	if v.Magnitude() == 0 {
		return
	}
	box, ok := BoxOf(s.World, id)
	if !ok {
		return
	}
	if s.Field.ExitOf(box) != geom.ExitNone {
		Respawn(s, id)
		return
	}
	dx, dy := v.Displacement(dtMs)
	Carry(s, id, dx, dy)
	Shift(s, id, dx, dy)
}

// Respawn wraps id to the opposite edge of every axis it has fully left. The
// center lands RespawnPadding of its half extent inside that edge, so the
// collision box sits wholly inside the area without touching the boundary.
// Passengers are relocated with their carrier as a unit.
func Respawn(s *Space, id ecs.EntityID) {
	old, ok := PositionOf(s.World, id)
	if !ok {
		return
	}
	body, _ := BodyOf(s.World, id)
	box := body.Box(old)
	area := s.Field.Area()

	next := old
	halfW, halfH := body.Width/2*RespawnPadding, body.Height/2*RespawnPadding
	switch box.ExitX(area) {
	case geom.ExitLeft:
		next.X = area.Right() - halfW
	case geom.ExitRight:
		next.X = area.Left + halfW
	}
	switch box.ExitY(area) {
	case geom.ExitTop:
		next.Y = area.Bottom() - halfH
	case geom.ExitBottom:
		next.Y = area.Top + halfH
	}
	if next == old {
		return
	}

	s.Logger.Debug("respawn", "entity", id, "name", NameOf(s.World, id), "from", old, "to", next)
	riders := Passengers(s.World, id)
	Place(s, id, next)
	for _, p := range riders {
		if CarrierOf(s.World, p) != id {
			continue
		}
		if pp, ok := PositionOf(s.World, p); ok {
			Place(s, p, next.Add(pp.X-old.X, pp.Y-old.Y))
		}
	}
}
