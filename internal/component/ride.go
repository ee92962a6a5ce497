package component

import "shadow-leap/internal/ecs"

const (
	CCarrier   ecs.ComponentType = 5
	CPassenger ecs.ComponentType = 6
)

// Carrier ferries passengers. Passengers is ordered by attach time.
type Carrier struct {
	Passengers []ecs.EntityID
	Ridable    bool
}

func (Carrier) Type() ecs.ComponentType { return CCarrier }

// Has reports whether p is currently riding.
func (c Carrier) Has(p ecs.EntityID) bool {
	for _, id := range c.Passengers {
		if id == p {
			return true
		}
	}
	return false
}

// Passenger marks an entity that may ride a carrier. Carrier is NilEntity
// while the passenger is on foot.
type Passenger struct {
	Carrier ecs.EntityID
}

func (Passenger) Type() ecs.ComponentType { return CPassenger }
