//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sandfall/internal/sand"
)

// GridPainter rasterizes a world into a single RGBA image and blits it
// scaled. One painter serves one grid size; callers rebuild it on resize.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit fills the image from the world's cells and particles and draws it
// scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, world *sand.World, scale int) {
	cells := world.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	fillGridRGBA(gp.buf, cells, gp.w, world.RainbowShift)
	drawParticlesRGBA(gp.buf, gp.w, gp.h, world.Particles())
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
