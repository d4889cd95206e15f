//go:build ebiten

package app

import (
	"image/color"
	"strconv"
	"time"

	"sparselife/internal/core"
	"sparselife/internal/render"
	"sparselife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the generation stepper to the ebiten.Game interface. It owns
// the current snapshot and replaces it wholesale each tick; the engine never
// sees a mutated set.
type Game struct {
	factory core.Factory
	cfg     map[string]string
	cells   life.CellSet
	painter *render.CellPainter

	onColor  color.Color
	offColor color.Color

	view       int
	scale      int
	paused     bool
	tickOnce   bool
	generation int
}

// New constructs a Game seeded from the provided pattern factory.
func New(factory core.Factory, cfg map[string]string, view, scale int) *Game {
	return &Game{
		factory:  factory,
		cfg:      cfg,
		cells:    factory(cfg),
		painter:  render.NewCellPainter(view, view),
		onColor:  color.White,
		offColor: color.Black,
		view:     view,
		scale:    scale,
	}
}

// Reset rebuilds the starting population from the pattern factory.
func (g *Game) Reset() {
	g.cells = g.factory(g.cfg)
	g.generation = 0
	g.tickOnce = false
}

// Generation returns how many steps have been applied since the last reset.
func (g *Game) Generation() int { return g.generation }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cfg["seed"] = strconv.FormatInt(time.Now().UnixNano(), 10)
		g.Reset()
	}

	if (!g.paused) || g.tickOnce {
		g.cells = life.Step(g.cells)
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current population.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view * g.scale, g.view * g.scale
}
