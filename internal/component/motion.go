package component

import (
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/geom"
)

const CMotion ecs.ComponentType = 4

// Motion gives an entity constant-velocity translation with screen wrap.
type Motion struct {
	Velocity geom.Velocity
}

func (Motion) Type() ecs.ComponentType { return CMotion }
