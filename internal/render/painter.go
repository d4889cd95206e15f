//go:build ebiten

package render

import (
	"image/color"

	"sparselife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellPainter updates a single RGBA image from a sparse cell population.
type CellPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewCellPainter allocates a painter with a w*h logical-pixel viewport.
func NewCellPainter(w, h int) *CellPainter {
	cp := &CellPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	cp.img = ebiten.NewImage(w, h)
	return cp
}

// Blit rasterizes the population into the painter image and draws it.
func (cp *CellPainter) Blit(dst *ebiten.Image, cells life.CellSet, on, off color.Color, scale int) {
	fillCellsRGBA(cp.buf, cp.w, cp.h, cells, on, off)
	cp.img.WritePixels(cp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(cp.img, op)
}

// Size returns the dimensions of the underlying image.
func (cp *CellPainter) Size() (int, int) { return cp.w, cp.h }
