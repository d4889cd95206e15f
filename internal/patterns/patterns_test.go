package patterns

import (
	"testing"

	"sparselife/internal/core"
	"sparselife/pkg/life"
)

func TestRegistryHasAllPatterns(t *testing.T) {
	names := []string{
		"blinker", "glider", "block", "pentadecathlon",
		"gliders", "random", "rect", "hollow-rect",
	}
	for _, name := range names {
		factory, ok := core.Patterns()[name]
		if !ok {
			t.Fatalf("pattern %q not registered", name)
		}
		cells := factory(nil)
		if cells.Len() == 0 {
			t.Fatalf("pattern %q built an empty population", name)
		}
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"seed":    "7",
		"n":       "25",
		"w":       "64",
		"rows":    "3",
		"cols":    "4",
		"spacing": "8",
	})

	if cfg.Seed != 7 || cfg.Count != 25 || cfg.Width != 64 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Rows != 3 || cfg.Cols != 4 || cfg.Spacing != 8 {
		t.Fatalf("grid overrides not applied: %+v", cfg)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Fatalf("untouched keys must keep defaults, got height %d", cfg.Height)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	cfg := FromMap(map[string]string{"n": "nope", "w": "-4"})
	def := DefaultConfig()
	if cfg.Count != def.Count || cfg.Width != def.Width {
		t.Fatalf("invalid values must keep defaults, got %+v", cfg)
	}
}

func TestGlidersBuildsFullGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 4
	cfg.Cols = 5
	cfg.Spacing = 10

	cells := Gliders(cfg)
	// Spacing 10 keeps the gliders disjoint, so no cells collapse.
	if want := int(cfg.Rows*cfg.Cols) * 5; cells.Len() != want {
		t.Fatalf("expected %d cells, got %d", want, cells.Len())
	}
}

func TestRandomPatternDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 11
	cfg.Count = 300

	if !Random(cfg).Equal(Random(cfg)) {
		t.Fatal("random pattern must be deterministic for a fixed seed")
	}
}

func TestHollowRectHasNoInterior(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 10
	cfg.Wall = 2

	cells := HollowRect(cfg)
	if cells.Contains(life.Coord{X: 0, Y: 0}) {
		t.Fatal("center of hollow rect must be empty")
	}
	if !cells.Contains(life.Coord{X: -10, Y: -5}) {
		t.Fatal("frame corner missing")
	}
}
