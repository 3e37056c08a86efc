// Package hexgrid provides axial hex coordinate math: integer offset
// vectors, the six-direction neighborhood, and the polar angle
// representation used by the field-of-view scan.
//
// The axial basis here uses the unit vectors listed in Directions; the
// third cube coordinate is implicit. North is (-1, -1) and the directions
// wind clockwise.
package hexgrid

// Vec is an integer offset on the axial hex grid.
type Vec struct {
	X, Y int
}

// Add returns v + o component-wise.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o component-wise.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by k.
func (v Vec) Mul(k int) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// HexDist returns the hex grid distance represented by v: the number of
// single-cell steps needed to walk it. When both components point the
// same way the diagonal axis covers them together, otherwise each must
// be walked separately.
func (v Vec) HexDist() int {
	if (v.X >= 0) == (v.Y >= 0) || v.X == 0 || v.Y == 0 {
		return max(abs(v.X), abs(v.Y))
	}
	return abs(v.X) + abs(v.Y)
}

// Dir6 is one of the six hex directions, in clockwise order from North.
type Dir6 uint8

const (
	DirNorth Dir6 = iota
	DirNorthEast
	DirSouthEast
	DirSouth
	DirSouthWest
	DirNorthWest
)

// Directions lists the six unit vectors in the clockwise cyclic order
// used by the ring walk in Angle.Vec.
var Directions = [6]Vec{
	{-1, -1}, // N
	{0, -1},  // NE
	{1, 0},   // SE
	{1, 1},   // S
	{0, 1},   // SW
	{-1, 0},  // NW
}

// DirFromInt converts an integer to a direction using floored modular
// arithmetic, so negative indices wind backwards.
func DirFromInt(i int) Dir6 {
	return Dir6(mod(i, 6))
}

// Vec returns the unit vector for the direction.
func (d Dir6) Vec() Vec {
	return Directions[d]
}

// Rotate returns the direction n sixths of a turn clockwise from d.
func (d Dir6) Rotate(n int) Dir6 {
	return DirFromInt(int(d) + n)
}

// RotateCW rotates a vector 60 degrees clockwise around the origin.
// In this axial basis the rotation is the linear map (x, y) -> (x-y, x),
// which carries each unit direction to the next one in Directions.
func RotateCW(v Vec) Vec {
	return Vec{X: v.X - v.Y, Y: v.X}
}

// Neighbors returns the six cells adjacent to v in direction order.
func (v Vec) Neighbors() [6]Vec {
	var out [6]Vec
	for i, d := range Directions {
		out[i] = v.Add(d)
	}
	return out
}

// mod is the floored modulo: the result has the sign of m.
func mod(i, m int) int {
	r := i % m
	if r < 0 {
		r += m
	}
	return r
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
