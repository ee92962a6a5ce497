package system

import (
	"errors"
	"fmt"
	"math"

	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/geom"
)

// CarrierOf returns the carrier id is riding, or NilEntity.
func CarrierOf(w *ecs.World, id ecs.EntityID) ecs.EntityID {
	p, _ := w.Get(id, component.CPassenger).(component.Passenger)
	return p.Carrier
}

// Passengers returns a copy of the carrier's current passenger list, safe to
// range over while passengers detach.
func Passengers(w *ecs.World, carrier ecs.EntityID) []ecs.EntityID {
	c, ok := w.Get(carrier, component.CCarrier).(component.Carrier)
	if !ok || len(c.Passengers) == 0 {
		return nil
	}
	out := make([]ecs.EntityID, len(c.Passengers))
	copy(out, c.Passengers)
	return out
}

// IsRidable reports whether carrier currently accepts riders.
func IsRidable(w *ecs.World, carrier ecs.EntityID) bool {
	c, ok := w.Get(carrier, component.CCarrier).(component.Carrier)
	return ok && c.Ridable
}

// Riding reports whether id is attached to a carrier that is ridable.
func Riding(w *ecs.World, id ecs.EntityID) bool {
	c := CarrierOf(w, id)
	return c != ecs.NilEntity && IsRidable(w, c)
}

// Attach puts passenger on carrier and snaps it to the nearest ride slot.
// A passenger riding another carrier is detached from it first. Returns
// false when either side lacks the needed capability.
func Attach(s *Space, passenger, carrier ecs.EntityID) bool {
	w := s.World
	if passenger == carrier || !w.Has(passenger, component.CPassenger) || !w.Has(carrier, component.CCarrier) {
		return false
	}
	current := CarrierOf(w, passenger)
	if current == carrier {
		return true
	}
	if current != ecs.NilEntity {
		Detach(s, passenger)
	}

	c := w.Get(carrier, component.CCarrier).(component.Carrier)
	c.Passengers = append(c.Passengers, passenger)
	w.Add(carrier, c)
	w.Add(passenger, component.Passenger{Carrier: carrier})

	s.Logger.Debug("attached", "passenger", NameOf(w, passenger), "carrier", NameOf(w, carrier))
	snapToSlot(s, passenger, carrier)
	return true
}

// Detach removes passenger from its carrier. Detaching a passenger that is
// on foot is a no-op.
func Detach(s *Space, passenger ecs.EntityID) {
	w := s.World
	carrier := CarrierOf(w, passenger)
	if carrier == ecs.NilEntity {
		return
	}
	w.Add(passenger, component.Passenger{})
	if c, ok := w.Get(carrier, component.CCarrier).(component.Carrier); ok {
		kept := make([]ecs.EntityID, 0, len(c.Passengers))
		for _, id := range c.Passengers {
			if id != passenger {
				kept = append(kept, id)
			}
		}
		c.Passengers = kept
		w.Add(carrier, c)
	}
	s.Logger.Debug("detached", "passenger", NameOf(w, passenger), "carrier", NameOf(w, carrier))
}

// Carry shifts every current passenger of carrier by (dx, dy).
func Carry(s *Space, carrier ecs.EntityID, dx, dy float64) {
	for _, p := range Passengers(s.World, carrier) {
		// An earlier passenger's move may have unseated this one.
		if CarrierOf(s.World, p) != carrier {
			continue
		}
		Shift(s, p, dx, dy)
	}
}

// SetRidable toggles whether carrier accepts riders. Turning it off unseats
// every passenger immediately and notifies the listener for each.
func SetRidable(s *Space, carrier ecs.EntityID, ridable bool) {
	c, ok := s.World.Get(carrier, component.CCarrier).(component.Carrier)
	if !ok || c.Ridable == ridable {
		return
	}
	c.Ridable = ridable
	s.World.Add(carrier, c)
	if ridable {
		return
	}
	for _, p := range Passengers(s.World, carrier) {
		Detach(s, p)
		s.Listener.Unseated(p)
	}
}

// Release severs every ride relation of id and destroys it.
func Release(s *Space, id ecs.EntityID) {
	if !s.World.Alive(id) {
		return
	}
	Detach(s, id)
	for _, p := range Passengers(s.World, id) {
		Detach(s, p)
	}
	s.World.DestroyEntity(id)
}

// RideSlots returns the x coordinates of the carrier's ride slots: one per
// tile along its width, measured from its current left edge.
func RideSlots(s *Space, carrier ecs.EntityID) []float64 {
	p, ok := PositionOf(s.World, carrier)
	if !ok {
		return nil
	}
	body, _ := BodyOf(s.World, carrier)
	tile := s.Field.Tile
	left := p.X - body.Width/2
	n := s.Field.Span(body.Width)
	slots := make([]float64, n)
	for i := range slots {
		slots[i] = left + tile/2 + float64(i)*tile
	}
	return slots
}

func snapToSlot(s *Space, passenger, carrier ecs.EntityID) {
	pp, ok := PositionOf(s.World, passenger)
	if !ok {
		return
	}
	slots := RideSlots(s, carrier)
	if len(slots) == 0 {
		return
	}
	best := slots[0]
	for _, x := range slots[1:] {
		if math.Abs(x-pp.X) < math.Abs(best-pp.X) {
			best = x
		}
	}
	Place(s, passenger, geom.Pos(best, pp.Y))
}

// CheckAttachments verifies that every carrier/passenger link is mirrored on
// the other side exactly once.
func CheckAttachments(w *ecs.World) error {
	var errs []error
	for _, p := range w.Query(component.CPassenger) {
		c := CarrierOf(w, p)
		if c == ecs.NilEntity {
			continue
		}
		cc, ok := w.Get(c, component.CCarrier).(component.Carrier)
		if !ok {
			errs = append(errs, fmt.Errorf("passenger %d rides %d which is not a live carrier", p, c))
			continue
		}
		if !cc.Has(p) {
			errs = append(errs, fmt.Errorf("passenger %d rides %d but is not listed", p, c))
		}
	}
	for _, c := range w.Query(component.CCarrier) {
		seen := make(map[ecs.EntityID]bool)
		for _, p := range w.Get(c, component.CCarrier).(component.Carrier).Passengers {
			if seen[p] {
				errs = append(errs, fmt.Errorf("carrier %d lists passenger %d twice", c, p))
			}
			seen[p] = true
			if CarrierOf(w, p) != c {
				errs = append(errs, fmt.Errorf("carrier %d lists %d which rides %d", c, p, CarrierOf(w, p)))
			}
		}
	}
	return errors.Join(errs...)
}
