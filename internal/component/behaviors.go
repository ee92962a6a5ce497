package component

import "shadow-leap/internal/ecs"

const (
	CBlinker ecs.ComponentType = 14
	CBouncer ecs.ComponentType = 15
	CPusher  ecs.ComponentType = 16
)

// Blinker alternates a carrier between surfaced (ridable, drawn) and
// submerged. Durations are in milliseconds.
type Blinker struct {
	VisibleFor float64
	HiddenFor  float64
	Elapsed    float64
	Hidden     bool
}

func (Blinker) Type() ecs.ComponentType { return CBlinker }

// Bouncer reverses horizontal velocity at MinX/MaxX instead of wrapping.
type Bouncer struct {
	MinX, MaxX float64
}

func (Bouncer) Type() ecs.ComponentType { return CBouncer }

// Pusher shoves passenger-capable entities ahead of it as it moves.
type Pusher struct{}

func (Pusher) Type() ecs.ComponentType { return CPusher }
