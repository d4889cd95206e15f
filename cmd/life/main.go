//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"sparselife/internal/app"
	"sparselife/internal/core"
	_ "sparselife/internal/patterns"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Patterns()[cfg.Pattern]
	if !ok {
		log.Fatalf("unknown pattern %q", cfg.Pattern)
	}

	patternCfg := map[string]string{
		"seed": strconv.FormatInt(cfg.Seed, 10),
		"n":    strconv.Itoa(cfg.Count),
	}

	game := app.New(factory, patternCfg, cfg.View, cfg.Scale)

	ebiten.SetWindowTitle("sparselife — " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.View*cfg.Scale, cfg.View*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
