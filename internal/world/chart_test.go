package world

import (
	"testing"

	"hexcrawl/internal/hexgrid"
)

func TestChartOriginCell(t *testing.T) {
	w := New()
	origin := Location{Z: 0}
	openRegion(w, origin, 4)

	ch := BuildChart(w, origin, Radius(4))
	cell, ok := ch[hexgrid.Vec{}]
	if !ok {
		t.Fatal("chart missing the origin offset")
	}
	if len(cell.Origins) != 1 || cell.Origins[0] != origin {
		t.Errorf("origin cell has frame stack %v, want just %v", cell.Origins, origin)
	}
	if loc, _ := ch.Loc(hexgrid.Vec{}); loc != origin {
		t.Errorf("origin offset resolves to %v", loc)
	}
}

func TestChartStacksFramesAcrossPortal(t *testing.T) {
	// Looking SouthEast through a gate at offset (2,0): offsets beyond
	// it must resolve in the far region's frame, with the viewer's
	// own frame still recorded underneath.
	w := New()
	origin := Location{Z: 0}
	openRegion(w, origin, 8)

	gateOff := hexgrid.Vec{X: 2, Y: 0}
	dest := Location{X: 60, Y: 10, Z: 1}
	openRegion(w, dest, 8)
	w.SetTerrain(origin.Add(gateOff), TerrainVoid)
	w.SetPortal(origin.Add(gateOff), dest)

	ch := BuildChart(w, origin, Radius(6))

	beyond := hexgrid.Vec{X: 3, Y: 0}
	cell, ok := ch[beyond]
	if !ok {
		t.Fatal("offset past the gate missing from chart")
	}
	if len(cell.Origins) != 2 {
		t.Fatalf("frame stack depth %d, want 2", len(cell.Origins))
	}
	if want := dest.Sub(gateOff); cell.Origins[0] != want {
		t.Errorf("active frame origin %v, want %v", cell.Origins[0], want)
	}
	if cell.Origins[1] != origin {
		t.Errorf("underlying frame origin %v, want viewer's %v", cell.Origins[1], origin)
	}
	if got := cell.Loc(beyond); got != dest.Add(hexgrid.Vec{X: 1, Y: 0}) {
		t.Errorf("offset %v resolves to %v, want %v", beyond, got, dest.Add(hexgrid.Vec{X: 1, Y: 0}))
	}
}

func TestChartLayersSecondPortal(t *testing.T) {
	// The far region has its own gate further along the same ray. A
	// chart looking through both must carry all three frames; the
	// stack never pops.
	w := New()
	origin := Location{Z: 0}
	openRegion(w, origin, 10)

	firstOff := hexgrid.Vec{X: 2, Y: 0}
	mid := Location{X: 50, Y: 0, Z: 1}
	openRegion(w, mid, 10)
	w.SetTerrain(origin.Add(firstOff), TerrainVoid)
	w.SetPortal(origin.Add(firstOff), mid)

	// In the viewer's offset space the second gate sits at (4,0):
	// two steps past the first gate inside the middle region.
	secondOff := hexgrid.Vec{X: 4, Y: 0}
	far := Location{X: -80, Y: -80, Z: 2}
	openRegion(w, far, 10)
	w.SetTerrain(mid.Add(hexgrid.Vec{X: 2, Y: 0}), TerrainVoid)
	w.SetPortal(mid.Add(hexgrid.Vec{X: 2, Y: 0}), far)

	ch := BuildChart(w, origin, Radius(8))

	beyond := hexgrid.Vec{X: 5, Y: 0}
	cell, ok := ch[beyond]
	if !ok {
		t.Fatal("offset past the second gate missing from chart")
	}
	if len(cell.Origins) != 3 {
		t.Fatalf("frame stack depth %d, want 3", len(cell.Origins))
	}
	if want := far.Sub(secondOff); cell.Origins[0] != want {
		t.Errorf("active frame origin %v, want %v", cell.Origins[0], want)
	}
	if cell.Origins[2] != origin {
		t.Errorf("bottom of frame stack %v, want viewer's %v", cell.Origins[2], origin)
	}
	if got := cell.Loc(beyond); got != far.Add(hexgrid.Vec{X: 1, Y: 0}) {
		t.Errorf("offset %v resolves to %v", beyond, got)
	}
}

func TestChartIsVisible(t *testing.T) {
	w := New()
	origin := Location{Z: 0}
	openRegion(w, origin, 5)
	wallLoc := origin.Add(hexgrid.Vec{X: 1, Y: 0})
	w.SetTerrain(wallLoc, TerrainWall)

	ch := BuildChart(w, origin, Radius(5))
	if !ch.IsVisible(origin) {
		t.Error("viewer's own cell should be visible")
	}
	if !ch.IsVisible(wallLoc) {
		t.Error("the wall itself should be visible")
	}
	if ch.IsVisible(origin.Add(hexgrid.Vec{X: 3, Y: 0})) {
		t.Error("a cell in the wall's shadow should not be visible")
	}
}

func TestChartRespectsBoundsShape(t *testing.T) {
	// A non-circular bound: only offsets in the northern half-plane.
	w := New()
	origin := Location{Z: 0}
	openRegion(w, origin, 6)

	ch := BuildChart(w, origin, northHalf{reach: 4})
	for off := range ch {
		if off != (hexgrid.Vec{}) && off.X+off.Y > 0 {
			t.Errorf("offset %v is outside the bound but in the chart", off)
		}
	}
	if _, ok := ch[hexgrid.Vec{X: -1, Y: -1}]; !ok {
		t.Error("in-bound northern cell missing from chart")
	}
}

// northHalf keeps offsets on or above the viewer's row.
type northHalf struct {
	reach int
}

func (n northHalf) Contains(off hexgrid.Vec) bool {
	return off.HexDist() <= n.reach && off.X+off.Y <= 0
}

func (n northHalf) OuterRadius() int { return n.reach }
