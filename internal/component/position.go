package component

import (
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/geom"
)

const CPosition ecs.ComponentType = 1

// Position is the entity's center in pixels. Write it through system.Place so
// bounds listeners observe every change.
type Position struct {
	geom.Position
}

func (Position) Type() ecs.ComponentType { return CPosition }

const CBody ecs.ComponentType = 2

// Body holds the visual size of a sprite. The collision box is always derived
// from Body and the current Position, never stored.
type Body struct {
	Width, Height float64
}

func (Body) Type() ecs.ComponentType { return CBody }

// Box returns the fuzzed collision box of a body centered at p.
func (b Body) Box(p geom.Position) geom.Box {
	return geom.BoxAround(p, b.Width, b.Height)
}

const CName ecs.ComponentType = 3

// Name is the asset kind of an entity. Two entities with the same name are the
// same kind; identity is the EntityID.
type Name struct {
	Value string
}

func (Name) Type() ecs.ComponentType { return CName }
