package life

import (
	"sparselife/pkg/core"
)

// Builder assembles starting populations out of named shapes, random scatter,
// and solid or hollow rectangles. Each shape is drafted at the origin; calls
// chain, and starting a new shape commits the previous draft into the
// accumulated population. Translate shifts only the current draft, so a shape
// can be placed before the next one begins:
//
//	cells := life.NewBuilder().
//		Glider().Translate(10, 0).
//		Blinker().Translate(-5, 3).
//		Build()
type Builder struct {
	committed CellSet
	draft     []Coord
}

// NewBuilder returns a builder with an empty population.
func NewBuilder() *Builder {
	return &Builder{committed: NewCellSet()}
}

func (b *Builder) commit() {
	for _, c := range b.draft {
		b.committed.add(c)
	}
	b.draft = b.draft[:0]
}

func (b *Builder) shape(coords ...Coord) *Builder {
	b.commit()
	b.draft = append(b.draft, coords...)
	return b
}

// Blinker drafts the period-2 oscillator: three cells in a row.
func (b *Builder) Blinker() *Builder {
	return b.shape(Coord{-1, 0}, Coord{0, 0}, Coord{1, 0})
}

// Glider drafts the 5-cell diagonal spaceship.
func (b *Builder) Glider() *Builder {
	return b.shape(Coord{-1, 0}, Coord{0, 0}, Coord{1, 0}, Coord{1, -1}, Coord{0, -2})
}

// Block drafts the 2x2 still life.
func (b *Builder) Block() *Builder {
	return b.shape(Coord{0, 0}, Coord{1, 0}, Coord{0, 1}, Coord{1, 1})
}

// Pentadecathlon drafts the seed that settles into the period-15 oscillator.
func (b *Builder) Pentadecathlon() *Builder {
	return b.shape(
		Coord{0, 0}, Coord{0, -1}, Coord{1, -1}, Coord{1, -2},
		Coord{3, 0},
		Coord{6, 0}, Coord{6, -1}, Coord{6, -2}, Coord{7, -1},
	)
}

// SolidRect drafts a filled w-by-h rectangle with its lower corner at (x, y).
func (b *Builder) SolidRect(x, y, w, h int64) *Builder {
	b.commit()
	for ix := x; ix < x+w; ix++ {
		for iy := y; iy < y+h; iy++ {
			b.draft = append(b.draft, Coord{ix, iy})
		}
	}
	return b
}

// HollowRect drafts a w-by-h rectangle outline with walls `wall` cells thick.
// Interior cells would die of overpopulation on the first step anyway, so
// only the frame is generated.
func (b *Builder) HollowRect(wall, x, y, w, h int64) *Builder {
	b.commit()
	for ix := x; ix < x+w; ix++ {
		for iy := y; iy < y+h; iy++ {
			inner := ix >= x+wall && ix < x+w-wall &&
				iy >= y+wall && iy < y+h-wall
			if !inner {
				b.draft = append(b.draft, Coord{ix, iy})
			}
		}
	}
	return b
}

// Random drafts n cells drawn uniformly from the w-by-h region at (x, y).
// Draws landing on an occupied cell collapse, so the draft may hold fewer
// than n distinct cells. Deterministic for a given RNG state.
func (b *Builder) Random(rng *core.RNG, n int, x, y, w, h int64) *Builder {
	b.commit()
	for i := 0; i < n; i++ {
		b.draft = append(b.draft, Coord{
			X: x + rng.Int64n(w),
			Y: y + rng.Int64n(h),
		})
	}
	return b
}

// Translate shifts the current draft by (dx, dy). Cells already committed are
// not moved.
func (b *Builder) Translate(dx, dy int64) *Builder {
	for i, c := range b.draft {
		b.draft[i] = c.Translate(dx, dy)
	}
	return b
}

// Build commits the final draft and returns the accumulated population.
func (b *Builder) Build() CellSet {
	b.commit()
	return b.committed
}
