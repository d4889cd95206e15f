// Package patterns registers the named starting populations selectable from
// the command line. Each factory builds a fresh CellSet from a flag-style
// configuration map.
package patterns

import (
	"strconv"

	"sparselife/internal/core"
	rng "sparselife/pkg/core"
	"sparselife/pkg/life"
)

// Config holds the tunables shared by the pattern factories. Not every
// pattern reads every field.
type Config struct {
	Seed    int64
	Count   int
	Width   int64
	Height  int64
	Rows    int64
	Cols    int64
	Spacing int64
	Wall    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:    42,
		Count:   1000,
		Width:   100,
		Height:  100,
		Rows:    10,
		Cols:    10,
		Spacing: 10,
		Wall:    2,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Count = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Spacing = parsed
		}
	}
	if v, ok := cfg["wall"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Wall = parsed
		}
	}
	return c
}

func init() {
	core.Register("blinker", func(cfg map[string]string) life.CellSet {
		return life.NewBuilder().Blinker().Build()
	})
	core.Register("glider", func(cfg map[string]string) life.CellSet {
		return life.NewBuilder().Glider().Build()
	})
	core.Register("block", func(cfg map[string]string) life.CellSet {
		return life.NewBuilder().Block().Build()
	})
	core.Register("pentadecathlon", func(cfg map[string]string) life.CellSet {
		return life.NewBuilder().Pentadecathlon().Build()
	})
	core.Register("gliders", func(cfg map[string]string) life.CellSet {
		return Gliders(FromMap(cfg))
	})
	core.Register("random", func(cfg map[string]string) life.CellSet {
		return Random(FromMap(cfg))
	})
	core.Register("rect", func(cfg map[string]string) life.CellSet {
		return Rect(FromMap(cfg))
	})
	core.Register("hollow-rect", func(cfg map[string]string) life.CellSet {
		return HollowRect(FromMap(cfg))
	})
}

// Gliders builds a rows-by-cols field of gliders centered on the origin,
// one per grid point, spaced Spacing cells apart.
func Gliders(c Config) life.CellSet {
	b := life.NewBuilder()
	for row := -c.Rows / 2; row < (c.Rows+1)/2; row++ {
		for col := -c.Cols / 2; col < (c.Cols+1)/2; col++ {
			b = b.Glider().Translate(col*c.Spacing, row*c.Spacing)
		}
	}
	return b.Build()
}

// Random scatters Count cells over a Width-by-Height region centered on the
// origin, deterministically for a given seed.
func Random(c Config) life.CellSet {
	r := rng.NewRNG(c.Seed)
	return life.NewBuilder().
		Random(r, c.Count, -c.Width/2, -c.Height/2, c.Width, c.Height).
		Build()
}

// Rect builds a solid Width-by-Height rectangle centered on the origin.
func Rect(c Config) life.CellSet {
	return life.NewBuilder().
		SolidRect(-c.Width/2, -c.Height/2, c.Width, c.Height).
		Build()
}

// HollowRect builds a Width-by-Height rectangle outline centered on the
// origin with walls Wall cells thick.
func HollowRect(c Config) life.CellSet {
	return life.NewBuilder().
		HollowRect(c.Wall, -c.Width/2, -c.Height/2, c.Width, c.Height).
		Build()
}
