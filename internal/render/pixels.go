package render

import (
	"image/color"

	"sparselife/pkg/life"
)

// fillCellsRGBA rasterizes the live population into an RGBA viewport of w*h
// logical pixels centered on the plane origin. Plane y grows upward, pixel y
// grows downward. Cells outside the viewport are skipped; the buffer is
// cleared to the off color first.
func fillCellsRGBA(buf []byte, w, h int, cells life.CellSet, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()

	for i := 0; i < w*h; i++ {
		base := i * 4
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}

	halfW := int64(w / 2)
	halfH := int64(h / 2)
	for c := range cells.All() {
		px := c.X + halfW
		py := halfH - 1 - c.Y
		if px < 0 || px >= int64(w) || py < 0 || py >= int64(h) {
			continue
		}
		base := (int(py)*w + int(px)) * 4
		buf[base+0] = uint8(rOn >> 8)
		buf[base+1] = uint8(gOn >> 8)
		buf[base+2] = uint8(bOn >> 8)
		buf[base+3] = uint8(aOn >> 8)
	}
}
