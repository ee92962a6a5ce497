// Package gamemap describes the play field: a pixel-space rectangle divided
// into square tiles.
package gamemap

import (
	"math"

	"shadow-leap/internal/geom"
)

// Field is the play area. Entities live in pixel coordinates; the tile
// length is the unit of a player step and of carrier ride slots.
type Field struct {
	Width, Height float64
	Tile          float64
}

// New creates a Field of the given pixel size and tile length.
func New(width, height, tile float64) Field {
	return Field{Width: width, Height: height, Tile: tile}
}

// Area returns the play area as an unfuzzed box anchored at the origin.
func (f Field) Area() geom.Box {
	return geom.Rect(0, 0, f.Width, f.Height)
}

// Contains reports whether b lies wholly inside the play area.
func (f Field) Contains(b geom.Box) bool {
	return b.ContainedIn(f.Area())
}

// ExitOf reports which side of the play area b has fully left.
func (f Field) ExitOf(b geom.Box) geom.Exit {
	return b.ExitFrom(f.Area())
}

// Columns and Rows return the number of whole or partial tiles on each axis.
func (f Field) Columns() int { return int(math.Ceil(f.Width / f.Tile)) }
func (f Field) Rows() int    { return int(math.Ceil(f.Height / f.Tile)) }

// Cell returns the tile column/row whose cell contains pixel p. Tile centers
// sit on multiples of the tile length, so cell k spans [k-0.5, k+0.5) tiles.
func (f Field) Cell(p geom.Position) (col, row int) {
	return int(math.Floor(p.X/f.Tile + 0.5)), int(math.Floor(p.Y/f.Tile + 0.5))
}

// Span returns how many tiles a sprite of width w covers, at least one.
func (f Field) Span(w float64) int {
	n := int(math.Round(w / f.Tile))
	if n < 1 {
		n = 1
	}
	return n
}
