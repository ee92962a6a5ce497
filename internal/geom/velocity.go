package geom

import (
	"fmt"
	"math"
)

// Velocity is a speed vector in px/ms.
type Velocity struct {
	Horizontal, Vertical float64
}

// Vel is shorthand for Velocity{Horizontal: h, Vertical: v}.
func Vel(h, v float64) Velocity { return Velocity{Horizontal: h, Vertical: v} }

// Magnitude returns the Euclidean norm.
func (v Velocity) Magnitude() float64 {
	return math.Hypot(v.Horizontal, v.Vertical)
}

// IsZero reports whether v has no magnitude.
func (v Velocity) IsZero() bool { return v.Horizontal == 0 && v.Vertical == 0 }

// Opposite negates the selected axes independently.
func (v Velocity) Opposite(flipX, flipY bool) Velocity {
	if flipX {
		v.Horizontal = -v.Horizontal
	}
	if flipY {
		v.Vertical = -v.Vertical
	}
	return v
}

// Displacement returns how far v travels in ms milliseconds.
func (v Velocity) Displacement(ms float64) (dx, dy float64) {
	return v.Horizontal * ms, v.Vertical * ms
}

func (v Velocity) String() string {
	return fmt.Sprintf("(x => %.2f px/ms, y => %.2f px/ms)", v.Horizontal, v.Vertical)
}
