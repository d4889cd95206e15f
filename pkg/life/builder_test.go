package life

import (
	"testing"

	"sparselife/pkg/core"
)

func TestBuilderCommitsShapesOnChaining(t *testing.T) {
	cells := NewBuilder().
		Glider().Translate(20, 0).
		Glider().
		Build()

	if cells.Len() != 10 {
		t.Fatalf("two disjoint gliders must yield 10 cells, got %d", cells.Len())
	}
	if !cells.Contains(Coord{19, 0}) {
		t.Fatal("translated glider missing from population")
	}
	if !cells.Contains(Coord{-1, 0}) {
		t.Fatal("origin glider missing from population")
	}
}

func TestTranslateOnlyMovesCurrentDraft(t *testing.T) {
	cells := NewBuilder().
		Blinker().Translate(0, 10).
		Blinker().Translate(0, -10).
		Build()

	if !cells.Contains(Coord{0, 10}) || !cells.Contains(Coord{0, -10}) {
		t.Fatalf("expected blinkers at y=10 and y=-10, got %v", cells.Coords())
	}
	if cells.Contains(Coord{0, 0}) {
		t.Fatal("translate leaked into a committed shape")
	}
}

func TestSolidRect(t *testing.T) {
	cells := NewBuilder().SolidRect(-2, -2, 4, 3).Build()
	if cells.Len() != 12 {
		t.Fatalf("4x3 rect must have 12 cells, got %d", cells.Len())
	}
	if !cells.Contains(Coord{-2, -2}) || !cells.Contains(Coord{1, 0}) {
		t.Fatal("rect corners missing")
	}
	if cells.Contains(Coord{2, 0}) {
		t.Fatal("rect extends past its width")
	}
}

func TestHollowRectKeepsOnlyTheFrame(t *testing.T) {
	cells := NewBuilder().HollowRect(1, 0, 0, 6, 5).Build()

	// 6*5 outer minus 4*3 interior.
	if cells.Len() != 18 {
		t.Fatalf("expected 18 frame cells, got %d", cells.Len())
	}
	if cells.Contains(Coord{2, 2}) {
		t.Fatal("interior cell present in hollow rect")
	}
	if !cells.Contains(Coord{0, 0}) || !cells.Contains(Coord{5, 4}) {
		t.Fatal("frame corner missing")
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	build := func(seed int64) CellSet {
		return NewBuilder().Random(core.NewRNG(seed), 200, -50, -50, 100, 100).Build()
	}

	a := build(5)
	b := build(5)
	if !a.Equal(b) {
		t.Fatal("same seed must scatter identically")
	}
	if a.Equal(build(6)) {
		t.Fatal("different seeds should scatter differently")
	}

	for c := range a.All() {
		if c.X < -50 || c.X >= 50 || c.Y < -50 || c.Y >= 50 {
			t.Fatalf("cell %v scattered outside the requested region", c)
		}
	}
}

func TestBlockShapeIsTheStillLife(t *testing.T) {
	block := NewBuilder().Block().Build()
	if !Step(block).Equal(block) {
		t.Fatal("block shape must survive a step unchanged")
	}
}

func TestPentadecathlonSeed(t *testing.T) {
	cells := NewBuilder().Pentadecathlon().Build()
	if cells.Len() != 9 {
		t.Fatalf("pentadecathlon seed must have 9 cells, got %d", cells.Len())
	}
}
