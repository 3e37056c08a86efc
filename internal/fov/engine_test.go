package fov

import (
	"testing"

	"hexcrawl/internal/hexgrid"
)

// discAcc is the simplest accumulator: visit everything within rng
// steps of the origin, nothing blocks.
type discAcc struct {
	rng int
}

func (a discAcc) Advance(off hexgrid.Vec) (discAcc, bool) {
	if off.HexDist() > a.rng {
		return discAcc{}, false
	}
	return a, true
}

func (a discAcc) Equal(b discAcc) bool { return a == b }

// terrainAcc blocks sight at cells where opaque reports true. Blocking
// cells are visited but nothing beyond them is, mirroring how a real
// world-layer accumulator carries an edge flag.
type terrainAcc struct {
	rng    int
	opaque func(hexgrid.Vec) bool
	edge   bool
}

func (a terrainAcc) Advance(off hexgrid.Vec) (terrainAcc, bool) {
	if off.HexDist() > a.rng || a.edge {
		return terrainAcc{}, false
	}
	ret := a
	if a.opaque(off) {
		ret.edge = true
	}
	return ret, true
}

func (a terrainAcc) Equal(b terrainAcc) bool {
	return a.rng == b.rng && a.edge == b.edge
}

// hexDisc enumerates every offset within rng steps of the origin.
func hexDisc(rng int) map[hexgrid.Vec]bool {
	disc := make(map[hexgrid.Vec]bool)
	for x := -rng; x <= rng; x++ {
		for y := -rng; y <= rng; y++ {
			v := hexgrid.Vec{X: x, Y: y}
			if v.HexDist() <= rng {
				disc[v] = true
			}
		}
	}
	return disc
}

func TestScanOpenFieldCardinality(t *testing.T) {
	// An unobstructed scan of radius r is the full hex disc:
	// 1 + 3r(r+1) cells.
	for r := 0; r <= 5; r++ {
		field := Scan(discAcc{rng: r}, r)
		want := 1 + 3*r*(r+1)
		if len(field) != want {
			t.Errorf("radius %d: %d cells visited, want %d", r, len(field), want)
		}
		for v := range hexDisc(r) {
			if _, ok := field[v]; !ok {
				t.Errorf("radius %d: disc cell %v missing from scan", r, v)
			}
		}
	}
}

func TestScanOriginAlwaysVisited(t *testing.T) {
	// Even a zero-radius scan reports the origin with the initial
	// accumulator.
	field := Scan(discAcc{rng: 0}, 0)
	if len(field) != 1 {
		t.Fatalf("zero-radius scan visited %d cells, want 1", len(field))
	}
	if _, ok := field[hexgrid.Vec{}]; !ok {
		t.Fatal("origin missing from scan result")
	}
}

func TestScanWallCastsShadow(t *testing.T) {
	// A single wall one step SouthEast of the origin: the wall itself
	// is visible, the cells straight behind it are not, and cells on
	// unrelated rays are unaffected.
	wall := hexgrid.Vec{X: 1, Y: 0}
	field := Scan(terrainAcc{
		rng:    6,
		opaque: func(v hexgrid.Vec) bool { return v == wall },
	}, 6)

	if _, ok := field[wall]; !ok {
		t.Error("the wall cell itself should be visible")
	}
	for d := 2; d <= 6; d++ {
		behind := wall.Mul(d)
		if _, ok := field[behind]; ok {
			t.Errorf("cell %v in the wall's shadow should be hidden", behind)
		}
	}
	for d := 1; d <= 6; d++ {
		open := hexgrid.Vec{X: 0, Y: 1}.Mul(d) // SouthWest ray
		if _, ok := field[open]; !ok {
			t.Errorf("open cell %v away from the wall should be visible", open)
		}
	}
}

func TestScanRotationSymmetry(t *testing.T) {
	// Rotating the obstacle by 60 degrees must rotate the whole
	// visible field with it: the algorithm has no preferred direction.
	wall := hexgrid.Vec{X: 1, Y: 0}
	base := Scan(terrainAcc{
		rng:    5,
		opaque: func(v hexgrid.Vec) bool { return v == wall },
	}, 5)

	rotWall := hexgrid.RotateCW(wall)
	rotated := Scan(terrainAcc{
		rng:    5,
		opaque: func(v hexgrid.Vec) bool { return v == rotWall },
	}, 5)

	if len(base) != len(rotated) {
		t.Fatalf("rotated field has %d cells, base has %d", len(rotated), len(base))
	}
	for v := range base {
		if _, ok := rotated[hexgrid.RotateCW(v)]; !ok {
			t.Errorf("cell %v visible but its rotation %v is not", v, hexgrid.RotateCW(v))
		}
	}
}

func TestScanDeterministic(t *testing.T) {
	opaque := func(v hexgrid.Vec) bool {
		return v.X > 0 && (v.X+v.Y)%3 == 0
	}
	a := Scan(terrainAcc{rng: 7, opaque: opaque}, 7)
	b := Scan(terrainAcc{rng: 7, opaque: opaque}, 7)
	if len(a) != len(b) {
		t.Fatalf("two identical scans returned %d and %d cells", len(a), len(b))
	}
	for v, av := range a {
		bv, ok := b[v]
		if !ok {
			t.Errorf("cell %v missing from second scan", v)
			continue
		}
		if !av.Equal(bv) {
			t.Errorf("cell %v resolved differently across scans", v)
		}
	}
}

func TestScanPanicsOnNegativeLimit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative radius limit should panic")
		}
	}()
	Scan(discAcc{rng: 1}, -1)
}
