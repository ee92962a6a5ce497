package system

import (
	"testing"

	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/gamemap"
	"shadow-leap/internal/geom"
)

type recorder struct {
	bounds   []ecs.EntityID
	unseated []ecs.EntityID
}

func (r *recorder) BoundsExtended(id ecs.EntityID) { r.bounds = append(r.bounds, id) }
func (r *recorder) Unseated(id ecs.EntityID)       { r.unseated = append(r.unseated, id) }

func newTestSpace(t *testing.T) (*Space, *recorder) {
	t.Helper()
	rec := &recorder{}
	return NewSpace(ecs.NewWorld(), gamemap.New(1024, 768, 48), rec, nil), rec
}

func spawn(s *Space, name string, x, y, w, h float64, comps ...ecs.Component) ecs.EntityID {
	id := s.World.CreateEntity()
	s.World.Add(id, component.Name{Value: name})
	s.World.Add(id, component.Body{Width: w, Height: h})
	s.World.Add(id, component.Position{Position: geom.Pos(x, y)})
	for _, c := range comps {
		s.World.Add(id, c)
	}
	return id
}

func spawnPlayer(s *Space, x, y float64) ecs.EntityID {
	return spawn(s, "frog", x, y, 48, 48,
		component.TagPlayer{}, component.Passenger{}, component.TagScreenBound{},
		component.Lives{Count: 3})
}

func spawnLog(s *Space, x, y, width, speed float64) ecs.EntityID {
	return spawn(s, "log", x, y, width, 48,
		component.Motion{Velocity: geom.Vel(speed, 0)}, component.Carrier{Ridable: true})
}

func pos(s *Space, id ecs.EntityID) geom.Position {
	p, _ := PositionOf(s.World, id)
	return p
}
