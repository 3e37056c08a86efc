package world

// World is the terrain and portal store the visibility queries read
// from. Cells that were never set read as void.
//
// World is safe for concurrent readers; visibility scans only read.
// Mutation (SetTerrain, SetPortal) must not race with readers.
type World struct {
	terrain map[Location]Terrain
	portals map[Location]Location
}

// New returns an empty world of void.
func New() *World {
	return &World{
		terrain: make(map[Location]Terrain),
		portals: make(map[Location]Location),
	}
}

// SetTerrain sets the terrain in one cell. Setting void deletes the
// entry, keeping the map sparse.
func (w *World) SetTerrain(loc Location, t Terrain) {
	if t == TerrainVoid {
		delete(w.terrain, loc)
		return
	}
	w.terrain[loc] = t
}

// Terrain returns the terrain at loc.
func (w *World) Terrain(loc Location) Terrain {
	return w.terrain[loc]
}

// BlocksSight reports whether the terrain at loc stops a line of sight.
func (w *World) BlocksSight(loc Location) bool {
	return w.Terrain(loc).BlocksSight()
}

// IsWalkable reports whether a mob can occupy loc.
func (w *World) IsWalkable(loc Location) bool {
	return w.Terrain(loc).IsWalkable()
}

// SetPortal installs a portal from loc to dest. If dest itself carries a
// portal the new portal is pointed straight at that portal's
// destination, so chains never form. A portal back to its own cell is a
// deletion.
func (w *World) SetPortal(loc, dest Location) {
	if far, ok := w.portals[dest]; ok {
		dest = far
	}
	if dest == loc {
		delete(w.portals, loc)
		return
	}
	w.portals[loc] = dest
}

// RemovePortal deletes the portal anchored at loc, if any.
func (w *World) RemovePortal(loc Location) {
	delete(w.portals, loc)
}

// Portal returns the far end of the portal anchored at loc.
func (w *World) Portal(loc Location) (Location, bool) {
	dest, ok := w.portals[loc]
	return dest, ok
}

// VisiblePortal returns the portal at loc only when the terrain there is
// void-form, meaning nothing solid occupies the cell and sight passes
// through to the far side. A portal buried under solid terrain is
// invisible: the near side is what you see.
func (w *World) VisiblePortal(loc Location) (Location, bool) {
	if w.Terrain(loc).Form() != FormVoid {
		return Location{}, false
	}
	return w.Portal(loc)
}

// Jump resolves loc through a visible portal, if one is there. Movement
// code displaces with Add and then Jumps the result, which is what
// carries a walker through a gate.
func (w *World) Jump(loc Location) Location {
	if dest, ok := w.VisiblePortal(loc); ok {
		return dest
	}
	return loc
}
