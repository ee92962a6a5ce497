package component

import "shadow-leap/internal/ecs"

const (
	CTagPlayer      ecs.ComponentType = 7
	CTagSolid       ecs.ComponentType = 8
	CTagObstacle    ecs.ComponentType = 9
	CTagScreenBound ecs.ComponentType = 10
	CTagMarker      ecs.ComponentType = 11
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagSolid marks a non-traversable entity; steps onto it are refused.
type TagSolid struct{}

func (TagSolid) Type() ecs.ComponentType { return CTagSolid }

// TagObstacle marks an entity that is fatal to touch without a ride.
type TagObstacle struct{}

func (TagObstacle) Type() ecs.ComponentType { return CTagObstacle }

// TagScreenBound marks an entity whose location changes are checked against
// the play area.
type TagScreenBound struct{}

func (TagScreenBound) Type() ecs.ComponentType { return CTagScreenBound }

// TagMarker marks a filled win-hole.
type TagMarker struct{}

func (TagMarker) Type() ecs.ComponentType { return CTagMarker }
