package geom

import (
	"fmt"
	"math"
)

// Position is a point in pixel space. Equality is exact float equality.
type Position struct {
	X, Y float64
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y float64) Position { return Position{X: x, Y: y} }

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Position) DistanceTo(q Position) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Closest returns the candidate nearest to p. Ties keep the earliest
// candidate. ok is false when candidates is empty.
func (p Position) Closest(candidates []Position) (closest Position, ok bool) {
	if len(candidates) == 0 {
		return Position{}, false
	}
	closest = candidates[0]
	best := p.DistanceTo(closest)
	for _, c := range candidates[1:] {
		if d := p.DistanceTo(c); d < best {
			best = d
			closest = c
		}
	}
	return closest, true
}

func (p Position) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
