package system

import (
	"shadow-leap/internal/ecs"
)

// Direction is a one-tile step requested by input.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit step of d in tile units; y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// MoveResult describes the outcome of a TryStep call.
type MoveResult uint8

const (
	MoveOK          MoveResult = iota // position updated
	MoveBlocked                       // a solid entity occupies the destination tile
	MoveOutOfBounds                   // on foot and the step would leave the play area
	MoveIgnored                       // nothing to move
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveOutOfBounds:
		return "out-of-bounds"
	}
	return "ignored"
}

// TryStep moves id one tile in direction d. A solid entity at the destination
// refuses the step. Leaving the play area is refused only while id is not
// riding; a riding entity may be carried past the edge.
func TryStep(s *Space, id ecs.EntityID, d Direction) MoveResult {
	pos, ok := PositionOf(s.World, id)
	if !ok {
		return MoveIgnored
	}
	dx, dy := d.Delta()
	dest := pos.Add(float64(dx)*s.Field.Tile, float64(dy)*s.Field.Tile)

	for _, other := range At(s, dest) {
		if other != id && IsSolid(s.World, other) {
			return MoveBlocked
		}
	}
	if !Riding(s.World, id) {
		body, _ := BodyOf(s.World, id)
		if !s.Field.Contains(body.Box(dest)) {
			return MoveOutOfBounds
		}
	}
	Place(s, id, dest)
	return MoveOK
}
