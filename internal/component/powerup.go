package component

import "shadow-leap/internal/ecs"

const CPowerUp ecs.ComponentType = 13

// PowerUpKind describes what a power-up grants on pickup.
type PowerUpKind uint8

const (
	PowerUpExtraLife PowerUpKind = iota
)

// PowerUp is a pickup that rides a carrier, shuffles along it and expires.
// Timers are in milliseconds.
type PowerUp struct {
	Kind         PowerUpKind
	Age          float64
	ShuffleTimer float64
	ShuffleRight bool
}

func (PowerUp) Type() ecs.ComponentType { return CPowerUp }

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpExtraLife:
		return "extra-life"
	}
	return "unknown"
}
