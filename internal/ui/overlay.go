//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"sandfall/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws pointer and spigot guides over the simulation view.
type Overlay struct {
	scale       int
	showSpigots bool
	pixel       *ebiten.Image
}

// NewOverlay constructs an overlay for the given cell-to-pixel scale.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the guide layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSpigots = !o.showSpigots
	}
}

// Draw renders the brush ring at the cursor cell and, when toggled, the
// spigot feed zones.
func (o *Overlay) Draw(screen *ebiten.Image, world *sand.World, cursorX, cursorY, radius int) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	size := world.Size()
	if cursorX >= 0 && cursorX < size.W && cursorY >= 0 && cursorY < size.H {
		cx := (float64(cursorX) + 0.5) * float64(scale)
		cy := (float64(cursorY) + 0.5) * float64(scale)
		r := (float64(radius) + 0.5) * float64(scale)
		o.drawRing(screen, cx, cy, r, color.RGBA{R: 240, G: 240, B: 240, A: 180})
	}

	if !o.showSpigots {
		return
	}
	band := float64(sand.SpigotBand * scale)
	for _, zone := range world.SpigotZones() {
		x0 := float64(zone[0] * scale)
		x1 := float64((zone[0] + zone[1]) * scale)
		col := color.RGBA{R: 120, G: 200, B: 255, A: 160}
		o.drawLine(screen, x0, 0, x0, band, 1, col)
		o.drawLine(screen, x1, 0, x1, band, 1, col)
		o.drawLine(screen, x0, band, x1, band, 1, col)
	}
}

func (o *Overlay) drawRing(screen *ebiten.Image, cx, cy, r float64, col color.RGBA) {
	const segments = 48
	prevX := cx + r
	prevY := cy
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		o.drawLine(screen, prevX, prevY, x, y, 1, col)
		prevX, prevY = x, y
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
