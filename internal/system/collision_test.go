package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/geom"
)

func TestIntersectingReturnsCreationOrder(t *testing.T) {
	s, _ := newTestSpace(t)
	a := spawn(s, "water", 300, 300, 48, 48, component.TagObstacle{})
	b := spawnLog(s, 310, 300, 144, 0.1)
	far := spawn(s, "water", 600, 300, 48, 48, component.TagObstacle{})

	got := Intersecting(s.World, geom.BoxAround(geom.Pos(305, 300), 48, 48))
	assert.Equal(t, []ecs.EntityID{a, b}, got)
	assert.NotContains(t, got, far)
}

func TestIntersectingTouchingEdgesDoNotOverlap(t *testing.T) {
	s, _ := newTestSpace(t)
	tree := spawn(s, "tree", 100, 100, 40, 40)
	box, _ := BoxOf(s.World, tree)
	assert.Empty(t, Intersecting(s.World, geom.Rect(box.Right(), 90, 10, 10)))
	assert.Len(t, Intersecting(s.World, geom.Rect(box.Right()-0.1, 90, 10, 10)), 1)
}

func TestIntersectingWithExcludesSelfAndFilters(t *testing.T) {
	s, _ := newTestSpace(t)
	frog := spawnPlayer(s, 300, 300)
	water := spawn(s, "water", 300, 300, 48, 48, component.TagObstacle{})
	log := spawnLog(s, 300, 300, 144, 0.1)

	assert.Equal(t, []ecs.EntityID{water, log}, IntersectingWith(s.World, frog, nil))
	assert.Equal(t, []ecs.EntityID{water}, IntersectingWith(s.World, frog, IsObstacle))
	assert.Equal(t, []ecs.EntityID{log}, IntersectingWith(s.World, frog, IsCarrier))
	assert.Equal(t, []ecs.EntityID{frog}, IntersectingWith(s.World, log, IsPlayer))
}

func TestIsRidableFiltersSubmergedCarriers(t *testing.T) {
	s, _ := newTestSpace(t)
	frog := spawnPlayer(s, 300, 300)
	turtles := spawn(s, "turtles", 300, 300, 144, 48, component.Carrier{})
	log := spawnLog(s, 310, 300, 144, 0.1)

	assert.Equal(t, []ecs.EntityID{log}, IntersectingWith(s.World, frog, IsRidable))
	SetRidable(s, turtles, true)
	assert.Equal(t, []ecs.EntityID{turtles, log}, IntersectingWith(s.World, frog, IsRidable))
}

func TestDestroyedEntitiesAreNotQueried(t *testing.T) {
	s, _ := newTestSpace(t)
	id := spawn(s, "bus", 300, 300, 96, 48, component.TagObstacle{})
	s.World.DestroyEntity(id)
	assert.Empty(t, At(s, geom.Pos(300, 300)))
}

func TestAtProbesOneTile(t *testing.T) {
	s, _ := newTestSpace(t)
	m := spawn(s, "filledhole", 504, 48, 48, 48, component.TagMarker{}, component.TagObstacle{})
	spawn(s, "tree", 416, 48, 48, 48, component.TagSolid{})

	assert.Equal(t, []ecs.EntityID{m}, At(s, geom.Pos(504, 48)))
	assert.True(t, AnyAt(s, geom.Pos(504, 48), IsMarker))
	assert.False(t, AnyAt(s, geom.Pos(696, 48), IsMarker))
}

func TestNameContains(t *testing.T) {
	s, _ := newTestSpace(t)
	long := spawn(s, "longlog", 0, 0, 48, 48)
	turtles := spawn(s, "turtles", 0, 0, 48, 48)
	pred := And(NameContains("log"), Has(component.CBody))
	assert.True(t, pred(s.World, long))
	assert.False(t, pred(s.World, turtles))
}
