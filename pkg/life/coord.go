package life

import "math"

// Coord identifies one cell on the unbounded plane. Coords are plain values,
// comparable and usable as map keys.
type Coord struct {
	X, Y int64
}

// satAdd adds two offsets and clamps at the int64 bounds. The plane has no
// edges, so the only failure mode near the extremes is wraparound; clamping
// keeps neighbor arithmetic deterministic instead of silently wrapping.
func satAdd(a, b int64) int64 {
	s := a + b
	if b > 0 && s < a {
		return math.MaxInt64
	}
	if b < 0 && s > a {
		return math.MinInt64
	}
	return s
}

// Translate returns the coord shifted by (dx, dy), saturating at the
// coordinate bounds.
func (c Coord) Translate(dx, dy int64) Coord {
	return Coord{X: satAdd(c.X, dx), Y: satAdd(c.Y, dy)}
}

// Neighbors returns the Moore neighborhood: the 8 coords at Chebyshev
// distance 1, excluding c itself. The result never depends on which cells
// are alive.
func (c Coord) Neighbors() [8]Coord {
	return [8]Coord{
		c.Translate(-1, -1),
		c.Translate(0, -1),
		c.Translate(1, -1),
		c.Translate(-1, 0),
		c.Translate(1, 0),
		c.Translate(-1, 1),
		c.Translate(0, 1),
		c.Translate(1, 1),
	}
}

// SelfAndNeighbors returns c together with its Moore neighborhood as a set of
// distinct coords. That is 9 coords everywhere except at the coordinate
// bounds, where saturated neighbors collapse.
func (c Coord) SelfAndNeighbors() []Coord {
	out := make([]Coord, 0, 9)
	out = append(out, c)
	for _, n := range c.Neighbors() {
		dup := false
		for _, seen := range out {
			if n == seen {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, n)
		}
	}
	return out
}
