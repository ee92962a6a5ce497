package component

import "shadow-leap/internal/ecs"

const CLives ecs.ComponentType = 12

type Lives struct {
	Count int
}

func (Lives) Type() ecs.ComponentType { return CLives }
