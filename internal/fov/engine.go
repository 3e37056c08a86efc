// Package fov implements recursive shadow casting on a hexagonal grid.
//
// The scan is generic over a caller-defined accumulator value that is
// carried outward from the origin. The engine itself knows nothing about
// maps, terrain or portals; everything world-specific lives behind the
// accumulator's Advance method. A world layer can make the scan cross
// portals simply by returning an accumulator that resolves offsets in a
// different frame from there on.
package fov

import "hexcrawl/internal/hexgrid"

// Value is the accumulator carried through a scan.
//
// Advance produces the value for the cell at offset from the origin,
// derived from the value of the span the cell was reached through. It
// returns false to stop the scan along this branch: the cell is not
// visited and nothing beyond it is either. Advance must be pure; calling
// it twice with the same receiver and offset must give the same result.
//
// Equal partitions a ring sweep into runs of equivalent cells. The scan
// only continues outward through a run as a unit, so Equal must
// distinguish values whenever sight should treat the cells differently:
// at minimum, sight-blocking cells must compare unequal to open ones,
// and cells resolved through a portal unequal to cells that were not.
type Value[T any] interface {
	Advance(offset hexgrid.Vec) (T, bool)
	Equal(other T) bool
}

// span is one pending unit of work: a half-open angular interval on a
// single ring, plus the accumulator of the run it was reached through.
type span[T any] struct {
	begin, end hexgrid.Angle
	acc        T
}

// Scan sweeps the full circle around the origin out to the given ring
// limit and returns the offsets visited, each mapped to its resolved
// accumulator. The origin offset is always present and maps to init.
//
// Scan panics on a negative limit; that is a caller bug. With limit 0
// only the origin is reported.
func Scan[T Value[T]](init T, limit int) map[hexgrid.Vec]T {
	if limit < 0 {
		panic("fov: negative radius limit")
	}

	out := make(map[hexgrid.Vec]T)
	out[hexgrid.Vec{}] = init

	stack := []span[T]{{
		begin: hexgrid.NewAngle(0, 1),
		end:   hexgrid.NewAngle(6, 1),
		acc:   init,
	}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = sweep(s, limit, out, stack)
	}
	return out
}

// sweep processes one span, records its cells in out and returns the
// work stack with any derived spans pushed.
//
// The span is walked cell by cell. While consecutive cells produce equal
// accumulators they form a single run; when the value changes the run so
// far is closed and expanded one ring outward, and the remainder of the
// interval is re-queued starting a fresh run. A run that reaches the end
// of the interval (or a cell where Advance stops the branch) is expanded
// outward as well. Expansion of a blocked run terminates immediately
// because Advance keeps refusing, which is what casts the shadow.
func sweep[T Value[T]](s span[T], limit int, out map[hexgrid.Vec]T, stack []span[T]) []span[T] {
	if s.begin.Radius > limit {
		return stack
	}

	var group T
	haveGroup := false
	angle := s.begin
	for angle.IsBelow(s.end) {
		off := angle.Vec()
		val, ok := s.acc.Advance(off)
		if !ok {
			break
		}
		if !haveGroup {
			group = val
			haveGroup = true
		} else if !group.Equal(val) {
			// Value boundary. The remainder keeps this span's
			// parent accumulator; the closed run expands outward
			// over exactly the arc it covered.
			stack = append(stack, span[T]{begin: angle, end: s.end, acc: s.acc})
			return append(stack, span[T]{
				begin: s.begin.Further(),
				end:   angle.Further(),
				acc:   group,
			})
		}
		out[off] = val
		angle = angle.Next()
	}

	if haveGroup {
		stack = append(stack, span[T]{
			begin: s.begin.Further(),
			end:   s.end.Further(),
			acc:   group,
		})
	}
	return stack
}
