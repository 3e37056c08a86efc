package world

import (
	"hexcrawl/internal/fov"
	"hexcrawl/internal/hexgrid"
)

// sightAcc is the scan accumulator for visible-set queries: the origin
// of the frame the scan is currently resolving offsets in, shifted every
// time the scan crosses a portal, plus an edge flag that is set on the
// first sight-blocking cell so the cell itself is seen but nothing
// beyond it is.
type sightAcc struct {
	w      *World
	rng    int
	origin Location
	edge   bool
}

func (a sightAcc) Advance(off hexgrid.Vec) (sightAcc, bool) {
	if off.HexDist() > a.rng {
		return sightAcc{}, false
	}
	if a.edge {
		return sightAcc{}, false
	}

	ret := a
	if dest, ok := a.w.VisiblePortal(a.origin.Add(off)); ok {
		// Keep the frame aligned: the far cell must resolve to dest
		// for this same offset.
		ret.origin = dest.Sub(off)
	}
	if ret.w.BlocksSight(ret.origin.Add(off)) {
		ret.edge = true
	}
	return ret, true
}

func (a sightAcc) Equal(b sightAcc) bool {
	return a.w == b.w && a.rng == b.rng && a.origin == b.origin && a.edge == b.edge
}

// SightSet is the set of locations visible from some origin.
type SightSet map[Location]bool

// Contains reports whether loc is in the set.
func (s SightSet) Contains(loc Location) bool {
	return s[loc]
}

// BuildSightSet returns every location visible from origin within rng
// steps, resolved through any portals the sight lines cross. Blocking
// cells on the boundary of the visible area are included; cells in
// their shadow are not. The origin and its six immediate neighbors are
// always included so that adjacent-cell checks stay stable regardless
// of scan edge effects right at the viewer.
//
// The result is built fresh on every call and two calls against an
// unchanged world return equal sets.
func BuildSightSet(w *World, origin Location, rng int) SightSet {
	field := fov.Scan(sightAcc{w: w, rng: rng, origin: origin}, rng)
	fov.AddIsometricCorners(field, func(a sightAcc, off hexgrid.Vec) bool {
		return a.w.Terrain(a.origin.Add(off)).Form() == FormWall
	})

	seen := make(SightSet, len(field)+7)
	for off, a := range field {
		seen[a.origin.Add(off)] = true
	}

	seen[origin] = true
	for _, d := range hexgrid.Directions {
		seen[w.Jump(origin.Add(d))] = true
	}
	return seen
}
