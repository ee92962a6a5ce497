package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
)

func passengersOf(s *Space, c ecs.EntityID) []ecs.EntityID {
	return s.World.Get(c, component.CCarrier).(component.Carrier).Passengers
}

func TestAttachIsSymmetric(t *testing.T) {
	s, _ := newTestSpace(t)
	log := spawnLog(s, 300, 300, 144, 0.1)
	frog := spawnPlayer(s, 310, 300)

	require.True(t, Attach(s, frog, log))
	assert.Equal(t, log, CarrierOf(s.World, frog))
	assert.Equal(t, []ecs.EntityID{frog}, passengersOf(s, log))
	require.NoError(t, CheckAttachments(s.World))

	Detach(s, frog)
	assert.Equal(t, ecs.NilEntity, CarrierOf(s.World, frog))
	assert.Empty(t, passengersOf(s, log))
	require.NoError(t, CheckAttachments(s.World))
}

func TestAttachSnapsToNearestSlot(t *testing.T) {
	s, _ := newTestSpace(t)
	// Left edge at 228: slots at 252, 300, 348.
	log := spawnLog(s, 300, 300, 144, 0.1)
	assert.Equal(t, []float64{252, 300, 348}, RideSlots(s, log))

	frog := spawnPlayer(s, 335, 290)
	Attach(s, frog, log)
	assert.Equal(t, 348.0, pos(s, frog).X)
	assert.Equal(t, 290.0, pos(s, frog).Y, "snapping is horizontal only")
}

func TestReattachLeavesNoStaleLink(t *testing.T) {
	s, _ := newTestSpace(t)
	a := spawnLog(s, 300, 300, 144, 0.1)
	b := spawnLog(s, 600, 300, 144, 0.1)
	frog := spawnPlayer(s, 300, 300)

	Attach(s, frog, a)
	Attach(s, frog, b)
	Attach(s, frog, b)

	assert.Equal(t, b, CarrierOf(s.World, frog))
	assert.Empty(t, passengersOf(s, a))
	assert.Equal(t, []ecs.EntityID{frog}, passengersOf(s, b))
	require.NoError(t, CheckAttachments(s.World))
}

func TestAttachRequiresCapabilities(t *testing.T) {
	s, _ := newTestSpace(t)
	log := spawnLog(s, 300, 300, 144, 0.1)
	rock := spawn(s, "rock", 300, 300, 48, 48)
	assert.False(t, Attach(s, rock, log))
	assert.False(t, Attach(s, log, log))
}

func TestDetachWhenOnFootIsNoop(t *testing.T) {
	s, _ := newTestSpace(t)
	frog := spawnPlayer(s, 300, 300)
	Detach(s, frog)
	assert.Equal(t, ecs.NilEntity, CarrierOf(s.World, frog))
}

func TestCarryPropagatesDisplacement(t *testing.T) {
	s, _ := newTestSpace(t)
	log := spawnLog(s, 300, 300, 144, 0.1)
	a := spawn(s, "fly", 252, 300, 48, 48, component.Passenger{})
	b := spawn(s, "fly", 348, 300, 48, 48, component.Passenger{})
	Attach(s, a, log)
	Attach(s, b, log)

	before := []float64{pos(s, log).X, pos(s, a).X, pos(s, b).X}
	Advance(s, log, 40)

	assert.InDelta(t, before[0]+4, pos(s, log).X, 1e-9)
	assert.InDelta(t, before[1]+4, pos(s, a).X, 1e-9)
	assert.InDelta(t, before[2]+4, pos(s, b).X, 1e-9)
}

// unseatOnBounds detaches whatever crossed the edge, mutating the passenger
// list while Carry is iterating it.
type unseatOnBounds struct{ s *Space }

func (u unseatOnBounds) BoundsExtended(id ecs.EntityID) { Detach(u.s, id) }
func (unseatOnBounds) Unseated(ecs.EntityID)            {}

func TestCarryToleratesDetachDuringIteration(t *testing.T) {
	s, _ := newTestSpace(t)
	s.Listener = unseatOnBounds{s}
	log := spawnLog(s, 1000, 300, 144, 0.1)
	edge := spawnPlayer(s, 1000, 300)
	Attach(s, edge, log)
	tail := spawn(s, "fly", 952, 300, 48, 48, component.Passenger{})
	Attach(s, tail, log)

	Carry(s, log, 20, 0)

	assert.Equal(t, ecs.NilEntity, CarrierOf(s.World, edge))
	assert.Equal(t, 972.0, pos(s, tail).X, "later passengers still move")
	require.NoError(t, CheckAttachments(s.World))
}

func TestSetRidableFalseUnseatsAll(t *testing.T) {
	s, rec := newTestSpace(t)
	turtles := spawnLog(s, 300, 300, 144, -0.085)
	a := spawn(s, "fly", 252, 300, 48, 48, component.Passenger{})
	b := spawnPlayer(s, 348, 300)
	Attach(s, a, turtles)
	Attach(s, b, turtles)

	SetRidable(s, turtles, false)

	assert.Equal(t, ecs.NilEntity, CarrierOf(s.World, a))
	assert.Equal(t, ecs.NilEntity, CarrierOf(s.World, b))
	assert.False(t, Riding(s.World, b))
	assert.Equal(t, []ecs.EntityID{a, b}, rec.unseated)
	assert.Equal(t, ecs.NilEntity, DetectCarrier(s, b), "a submerged carrier is not picked up again")
	require.NoError(t, CheckAttachments(s.World))
}

func TestReleaseSeversLinks(t *testing.T) {
	s, _ := newTestSpace(t)
	log := spawnLog(s, 300, 300, 144, 0.1)
	fly := spawn(s, "fly", 300, 300, 48, 48, component.Passenger{})
	Attach(s, fly, log)

	Release(s, fly)
	assert.False(t, s.World.Alive(fly))
	assert.Empty(t, passengersOf(s, log))

	other := spawn(s, "fly", 300, 300, 48, 48, component.Passenger{})
	Attach(s, other, log)
	Release(s, log)
	assert.Equal(t, ecs.NilEntity, CarrierOf(s.World, other))
	require.NoError(t, CheckAttachments(s.World))
}

func TestCheckAttachmentsReportsAsymmetry(t *testing.T) {
	s, _ := newTestSpace(t)
	log := spawnLog(s, 300, 300, 144, 0.1)
	fly := spawn(s, "fly", 300, 300, 48, 48, component.Passenger{Carrier: log})
	err := CheckAttachments(s.World)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not listed")

	s.World.Add(fly, component.Passenger{})
	s.World.Add(log, component.Carrier{Ridable: true, Passengers: []ecs.EntityID{fly, fly}})
	err = CheckAttachments(s.World)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twice")
}
