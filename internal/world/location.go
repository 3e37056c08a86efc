// Package world holds the game-world model the visibility engine scans
// over: locations across stacked regions, terrain, portals between
// regions, and the sight-set and chart queries built on top of the
// generic scan in internal/fov.
package world

import "hexcrawl/internal/hexgrid"

// Location is an unambiguous cell address in the game world: axial hex
// coordinates plus the region index Z. Regions are separate coordinate
// frames; plain offset arithmetic never leaves a region. Crossing into
// another region only happens through portals, so most code should
// displace locations with World.Jump rather than Add.
type Location struct {
	X, Y int16
	Z    int16
}

// Add offsets the location by a hex vector within its region.
func (l Location) Add(v hexgrid.Vec) Location {
	return Location{X: l.X + int16(v.X), Y: l.Y + int16(v.Y), Z: l.Z}
}

// Sub offsets the location by the negated hex vector.
func (l Location) Sub(v hexgrid.Vec) Location {
	return Location{X: l.X - int16(v.X), Y: l.Y - int16(v.Y), Z: l.Z}
}

// VecTo returns the hex vector pointing from l to other when both are in
// the same region.
func (l Location) VecTo(other Location) (hexgrid.Vec, bool) {
	if l.Z != other.Z {
		return hexgrid.Vec{}, false
	}
	return hexgrid.Vec{X: int(other.X) - int(l.X), Y: int(other.Y) - int(l.Y)}, true
}

// Distance returns the hex distance between two locations in the same
// region.
func (l Location) Distance(other Location) (int, bool) {
	v, ok := l.VecTo(other)
	if !ok {
		return 0, false
	}
	return v.HexDist(), true
}

// Less orders locations by region, then row, then column. The ordering
// is total, which keeps location-keyed output deterministic when sorted.
func (l Location) Less(other Location) bool {
	if l.Z != other.Z {
		return l.Z < other.Z
	}
	if l.Y != other.Y {
		return l.Y < other.Y
	}
	return l.X < other.X
}
