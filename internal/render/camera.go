// Package render draws charts produced by the world layer onto a tcell
// screen using a fake-isometric hex projection.
package render

import "hexcrawl/internal/hexgrid"

// Camera translates chart offsets (hex vectors relative to the viewer)
// into terminal cells. The projection is the fake-isometric diamond:
//
//	col = 2*(x - y)    row = x + y
//
// North is straight up two rows, south straight down; the other four
// directions land on the diagonals. Each hex is 2 columns wide because
// the glyphs are emoji-width.
type Camera struct {
	Cols, Rows int // viewport size in terminal cells
}

// NewCamera returns a camera for a viewport of the given size. The
// viewer sits in the middle cell.
func NewCamera(cols, rows int) *Camera {
	return &Camera{Cols: cols, Rows: rows}
}

// Project converts a chart offset to screen coordinates. ok is false
// when the cell falls outside the viewport.
func (c *Camera) Project(off hexgrid.Vec) (col, row int, ok bool) {
	col = c.Cols/2 + 2*(off.X-off.Y)
	row = c.Rows/2 + off.X + off.Y
	ok = col >= 0 && col+1 < c.Cols && row >= 0 && row < c.Rows
	return
}

// Viewport is the scan bound matching the camera's visible rectangle;
// it implements world.Bounds so the chart never scans cells that could
// not be drawn.
func (c *Camera) Viewport() Viewport {
	return Viewport{Cols: c.Cols, Rows: c.Rows}
}

// Viewport bounds a chart scan to a centered screen rectangle under the
// camera projection.
type Viewport struct {
	Cols, Rows int
}

// Contains reports whether the offset projects inside the rectangle.
func (v Viewport) Contains(off hexgrid.Vec) bool {
	col := 2 * (off.X - off.Y)
	row := off.X + off.Y
	return col >= -v.Cols/2 && col <= v.Cols/2 &&
		row >= -v.Rows/2 && row <= v.Rows/2
}

// OuterRadius bounds the hex distance of any contained offset. For an
// offset with projected (col, row), x = (row + col/2)/2 and
// y = (row - col/2)/2, so |x|+|y| never exceeds max(|row|, |col|/2).
func (v Viewport) OuterRadius() int {
	r := v.Rows / 2
	if c := v.Cols / 4; c > r {
		r = c
	}
	return r + 1
}
