package world

import (
	"hexcrawl/internal/fov"
	"hexcrawl/internal/hexgrid"
)

// Bounds is the screen-shaped limit a renderer puts on a chart scan,
// replacing a plain numeric sight range. Contains prunes individual
// offsets; OuterRadius must bound the hex distance of every contained
// offset so the scan is guaranteed to terminate.
type Bounds interface {
	Contains(off hexgrid.Vec) bool
	OuterRadius() int
}

// Radius is the trivial Bounds: a hex disc of the given radius.
type Radius int

func (r Radius) Contains(off hexgrid.Vec) bool { return off.HexDist() <= int(r) }
func (r Radius) OuterRadius() int              { return int(r) }

// ChartCell is the accumulator for chart scans. Origins is the stack of
// frame origins crossed to reach the cell: the head is the active frame,
// older frames follow, the original viewer's frame last. The stack only
// ever grows; looking through a portal into a region that has a further
// portal in view layers a third frame on top.
type ChartCell struct {
	Origins []Location

	w      *World
	bounds Bounds
	edge   bool
}

// Loc resolves the world location drawn at the given chart offset.
func (c ChartCell) Loc(off hexgrid.Vec) Location {
	return c.Origins[0].Add(off)
}

func (c ChartCell) Advance(off hexgrid.Vec) (ChartCell, bool) {
	if !c.bounds.Contains(off) {
		return ChartCell{}, false
	}
	if c.edge {
		return ChartCell{}, false
	}

	ret := c
	if dest, ok := c.w.VisiblePortal(c.Origins[0].Add(off)); ok {
		origins := make([]Location, 0, len(c.Origins)+1)
		origins = append(origins, dest.Sub(off))
		origins = append(origins, c.Origins...)
		ret.Origins = origins
	}
	if c.w.BlocksSight(ret.Origins[0].Add(off)) {
		ret.edge = true
	}
	return ret, true
}

func (c ChartCell) Equal(o ChartCell) bool {
	if c.w != o.w || c.edge != o.edge || len(c.Origins) != len(o.Origins) {
		return false
	}
	for i := range c.Origins {
		if c.Origins[i] != o.Origins[i] {
			return false
		}
	}
	return true
}

// Chart maps screen-relative hex offsets to the cell that should be
// drawn there. Offsets not present were not visible.
type Chart map[hexgrid.Vec]ChartCell

// Loc resolves the location drawn at off, if the offset is in the chart.
func (ch Chart) Loc(off hexgrid.Vec) (Location, bool) {
	c, ok := ch[off]
	if !ok {
		return Location{}, false
	}
	return c.Loc(off), true
}

// IsVisible reports whether loc is drawn anywhere in the chart.
func (ch Chart) IsVisible(loc Location) bool {
	for off, c := range ch {
		if c.Loc(off) == loc {
			return true
		}
	}
	return false
}

// BuildChart scans outward from origin over every offset within bounds
// and returns the chart for a draw loop: each visible offset mapped to
// its portal-resolved frame stack, with the fake-isometric corner
// fix-up applied so acute wall corners draw closed.
//
// The chart is built fresh per call; the caller owns it.
func BuildChart(w *World, origin Location, bounds Bounds) Chart {
	init := ChartCell{
		Origins: []Location{origin},
		w:       w,
		bounds:  bounds,
	}
	field := fov.Scan(init, bounds.OuterRadius())
	fov.AddIsometricCorners(field, func(c ChartCell, off hexgrid.Vec) bool {
		return c.w.Terrain(c.Loc(off)).Form() == FormWall
	})
	return Chart(field)
}
