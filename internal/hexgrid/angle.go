package hexgrid

import "math"

// Angle is a point on a widening hexagonal ring, expressed in polar-ish
// coordinates: a continuous position along the ring and the integer ring
// radius. Position p covers six "sectors" of the ring per full turn at
// radius 1, twelve at radius 2 and so on; one unit of position always
// spans one cell of the current ring.
//
// Radius must never be negative; that is a caller bug, not a handled
// condition.
type Angle struct {
	Pos    float64
	Radius int
}

// NewAngle returns the angle at position pos on the ring of the given radius.
func NewAngle(pos float64, radius int) Angle {
	return Angle{Pos: pos, Radius: radius}
}

// WindingIndex is the index of the discrete ring cell nearest this angle.
func (a Angle) WindingIndex() int {
	return int(math.Floor(a.Pos + 0.5))
}

// EndIndex is the first ring cell index not covered when this angle is
// used as the end of a half-open span.
func (a Angle) EndIndex() int {
	return int(math.Ceil(a.Pos + 0.5))
}

// IsBelow reports whether a, used as a sweep cursor, has not yet covered
// the span ending at end.
func (a Angle) IsBelow(end Angle) bool {
	return a.WindingIndex() < end.EndIndex()
}

// Vec returns the hex offset of the ring cell this angle points at.
// Radius 0 is the origin regardless of position. For larger radii the
// ring decomposes into six straight sides: walk to the corner of the
// side's sector, then along the side's tangent. Consecutive winding
// indices yield hex-adjacent cells, so a ring walk has no gaps.
func (a Angle) Vec() Vec {
	if a.Radius == 0 {
		return Vec{}
	}
	index := a.WindingIndex()
	sector := mod(index, a.Radius*6) / a.Radius
	offset := mod(index, a.Radius)

	rod := DirFromInt(sector).Vec()
	tangent := DirFromInt(sector + 2).Vec()
	return rod.Mul(a.Radius).Add(tangent.Mul(offset))
}

// Further returns the angle in the same true direction on the next ring
// out. Position scales with the radius so that spans keep their angular
// extent as they widen.
func (a Angle) Further() Angle {
	return Angle{
		Pos:    a.Pos * float64(a.Radius+1) / float64(a.Radius),
		Radius: a.Radius + 1,
	}
}

// Next returns the angle at the next cell boundary along the same ring.
func (a Angle) Next() Angle {
	return Angle{Pos: math.Floor(a.Pos+0.5) + 0.5, Radius: a.Radius}
}
