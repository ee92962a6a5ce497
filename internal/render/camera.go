package render

import (
	"shadow-leap/internal/gamemap"
	"shadow-leap/internal/geom"
)

// Camera translates between pixel positions and screen cells. Each tile is
// one row high and two columns wide because emoji occupy 2 terminal columns.
type Camera struct {
	Field      gamemap.Field
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera that centers the field inside the view.
func NewCamera(f gamemap.Field, viewW, viewH int) *Camera {
	c := &Camera{Field: f, ViewWidth: viewW, ViewHeight: viewH}
	c.Center()
	return c
}

// Center repositions the camera so the board sits in the middle of the view,
// pinned to the top-left when the view is too small.
func (c *Camera) Center() {
	c.OffsetX = max(0, (c.ViewWidth-c.BoardWidth())/2)
	c.OffsetY = max(0, (c.ViewHeight-c.BoardHeight())/2)
}

// BoardWidth and BoardHeight give the board size in screen cells.
func (c *Camera) BoardWidth() int  { return (c.Field.Columns() + 1) * 2 }
func (c *Camera) BoardHeight() int { return c.Field.Rows() + 1 }

// WorldToScreen converts a pixel position to a screen cell.
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p geom.Position) (sx, sy int, visible bool) {
	col, row := c.Field.Cell(p)
	sx = c.OffsetX + col*2
	sy = c.OffsetY + row
	visible = col >= 0 && row >= 0 && sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts a screen cell to the pixel center of its tile.
func (c *Camera) ScreenToWorld(sx, sy int) geom.Position {
	col := (sx - c.OffsetX) / 2
	row := sy - c.OffsetY
	return geom.Pos(float64(col)*c.Field.Tile, float64(row)*c.Field.Tile)
}
