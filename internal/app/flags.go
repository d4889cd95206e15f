package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern string
	View    int
	Scale   int
	TPS     int
	Seed    int64
	Count   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Pattern: "gliders", View: 256, Scale: 3, TPS: 10, Seed: 42, Count: 1000}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting population to build")
	fs.IntVar(&c.View, "view", c.View, "viewport size in cells, centered on the origin")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random populations")
	fs.IntVar(&c.Count, "n", c.Count, "cell count for random populations")
}
