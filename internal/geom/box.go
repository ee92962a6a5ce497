package geom

import "fmt"

// Fuzz shrinks collision boxes relative to the visual sprite so overlap
// detection is slightly forgiving.
const Fuzz = 0.95

// Box is an axis-aligned rectangle in pixel space. Top is the smaller Y.
type Box struct {
	Left, Top, Width, Height float64
}

// BoxAround builds the fuzzed collision box of a w×h sprite centered at c.
func BoxAround(c Position, w, h float64) Box {
	fw, fh := w*Fuzz, h*Fuzz
	return Box{Left: c.X - fw/2, Top: c.Y - fh/2, Width: fw, Height: fh}
}

// Rect builds an unfuzzed box from its top-left corner.
func Rect(left, top, w, h float64) Box {
	return Box{Left: left, Top: top, Width: w, Height: h}
}

func (b Box) Right() float64  { return b.Left + b.Width }
func (b Box) Bottom() float64 { return b.Top + b.Height }

// Center returns the midpoint of b.
func (b Box) Center() Position {
	return Position{X: b.Left + b.Width/2, Y: b.Top + b.Height/2}
}

// Intersects reports strict overlap; boxes that only touch along an edge do
// not intersect.
func (b Box) Intersects(o Box) bool {
	return b.Left < o.Right() && o.Left < b.Right() &&
		b.Top < o.Bottom() && o.Top < b.Bottom()
}

// ContainedIn reports whether every edge of b lies within area.
func (b Box) ContainedIn(area Box) bool {
	return b.Left >= area.Left && b.Right() <= area.Right() &&
		b.Top >= area.Top && b.Bottom() <= area.Bottom()
}

// Exit names the side of an area a box has fully left.
type Exit uint8

const (
	ExitNone Exit = iota
	ExitLeft
	ExitRight
	ExitTop
	ExitBottom
)

// ExitFrom reports which side of area b lies entirely beyond. A box touching
// an edge from outside counts as outside. Horizontal exits win when a box is
// outside on both axes.
func (b Box) ExitFrom(area Box) Exit {
	if e := b.ExitX(area); e != ExitNone {
		return e
	}
	return b.ExitY(area)
}

// ExitX reports whether b lies entirely left or right of area.
func (b Box) ExitX(area Box) Exit {
	switch {
	case b.Right() <= area.Left:
		return ExitLeft
	case b.Left >= area.Right():
		return ExitRight
	}
	return ExitNone
}

// ExitY reports whether b lies entirely above or below area.
func (b Box) ExitY(area Box) Exit {
	switch {
	case b.Bottom() <= area.Top:
		return ExitTop
	case b.Top >= area.Bottom():
		return ExitBottom
	}
	return ExitNone
}

func (b Box) String() string {
	return fmt.Sprintf("Top = %.2f, Bottom = %.2f, Left = %.2f, Right = %.2f",
		b.Top, b.Bottom(), b.Left, b.Right())
}
