package core

import "sparselife/pkg/life"

// Factory constructs a starting population using an optional configuration map.
type Factory func(cfg map[string]string) life.CellSet

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available pattern factories.
func Patterns() map[string]Factory {
	return patterns
}
