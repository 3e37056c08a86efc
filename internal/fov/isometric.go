package fov

import "hexcrawl/internal/hexgrid"

// Corner geometry in screen terms, with north pointing up:
//
//	   above
//	left   right
//	    pos
//
// Under the fake-isometric projection the cell two rows above pos
// projects straight up from it, with left and right wedged between.
var (
	cornerAbove = hexgrid.Vec{X: -1, Y: -1}
	cornerSides = [2]hexgrid.Vec{{X: -1, Y: 0}, {X: 0, Y: -1}}
)

// AddIsometricCorners patches a scan result so acute wall corners render
// correctly under the fake-isometric projection. When a visited cell and
// the cell above it are both in the map, the wall cells wedged between
// them are added even though strict shadow casting keeps them hidden;
// without them an acute room corner draws with a hole in it.
//
// wall reports whether the cell at the given offset, resolved through
// the given accumulator, is wall-form. Added cells reuse the accumulator
// of the visited cell below them, which is in the same frame.
//
// The pass only ever adds entries and runs to a fixed point, so applying
// it a second time changes nothing.
func AddIsometricCorners[T any](m map[hexgrid.Vec]T, wall func(acc T, offset hexgrid.Vec) bool) {
	for {
		type patch struct {
			pos hexgrid.Vec
			val T
		}
		var adds []patch

		for pos, val := range m {
			if _, ok := m[pos.Add(cornerAbove)]; !ok {
				continue
			}
			for _, side := range cornerSides {
				corner := pos.Add(side)
				if _, ok := m[corner]; ok {
					continue
				}
				if wall(val, corner) {
					adds = append(adds, patch{pos: corner, val: val})
				}
			}
		}

		if len(adds) == 0 {
			return
		}
		for _, p := range adds {
			if _, ok := m[p.pos]; !ok {
				m[p.pos] = p.val
			}
		}
	}
}
