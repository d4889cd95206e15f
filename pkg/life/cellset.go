package life

import (
	"iter"
	"maps"
)

// CellSet is a sparse set of live cells. Membership means alive; anything not
// in the set is dead. There is no bounding box and no stored dead state.
//
// A CellSet handed to Step, or returned from it, is a snapshot: the engine
// never mutates a set after it escapes this package, so snapshots may be read
// from any number of goroutines.
type CellSet struct {
	cells map[Coord]struct{}
}

// NewCellSet returns an empty population.
func NewCellSet() CellSet {
	return CellSet{cells: make(map[Coord]struct{})}
}

// CellSetOf builds a population from the given coords. Duplicates collapse.
func CellSetOf(coords ...Coord) CellSet {
	s := CellSet{cells: make(map[Coord]struct{}, len(coords))}
	for _, c := range coords {
		s.cells[c] = struct{}{}
	}
	return s
}

func (s CellSet) add(c Coord) {
	s.cells[c] = struct{}{}
}

// Contains reports whether the cell at c is alive.
func (s CellSet) Contains(c Coord) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the live population count.
func (s CellSet) Len() int { return len(s.cells) }

// All iterates over the live cells in unspecified order. The sequence is
// finite, restartable, and reflects exactly the snapshot it was taken from.
func (s CellSet) All() iter.Seq[Coord] {
	return maps.Keys(s.cells)
}

// Coords materializes the live cells as a slice, order unspecified.
func (s CellSet) Coords() []Coord {
	out := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	return out
}

// NeighborCount returns how many of c's 8 Moore neighbors are alive, in
// [0, 8]. The cell at c itself is never counted, alive or not.
func (s CellSet) NeighborCount(c Coord) int {
	count := 0
	for _, n := range c.Neighbors() {
		// Saturation at the coordinate bounds can clamp a neighbor onto c
		// itself; the queried cell never counts.
		if n != c && s.Contains(n) {
			count++
		}
	}
	return count
}

// Equal reports whether two populations contain exactly the same cells.
func (s CellSet) Equal(other CellSet) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}
