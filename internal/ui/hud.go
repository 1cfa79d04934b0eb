//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs the status panel.
func NewHUD() *HUD { return &HUD{} }

// Draw paints the panel anchored at offsetX with the given pixel height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, st Status) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(PanelWidth, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	head := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	body := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 140, G: 140, B: 150, A: 255}
	amber := color.RGBA{R: 230, G: 190, B: 90, A: 255}

	y := 18
	line := func(s string, col color.RGBA) {
		text.Draw(h.panel, s, face, 12, y, col)
		y += 16
	}

	line("sandfall", head)
	y += 8
	line(fmt.Sprintf("element   %s", st.Element), body)
	line(fmt.Sprintf("radius    %d", st.Radius), body)
	if st.Paused {
		line("speed     paused", amber)
	} else {
		line(fmt.Sprintf("speed     %.2f", st.Speed), body)
	}
	line(fmt.Sprintf("particles %d", st.Particles), body)
	if st.Void {
		line("floor     void", body)
	} else {
		line("floor     solid", body)
	}
	if st.Note != "" {
		y += 8
		line(st.Note, amber)
	}

	y = height - 16*10
	if y < 14 {
		y = 14
	}
	line("lmb  paint", dim)
	line("rmb  erase", dim)
	line("shift+lmb line", dim)
	line("wheel brush size", dim)
	line("[ ]  element", dim)
	line("up/dn speed", dim)
	line("space pause  n step", dim)
	line("c clear  x nuke", dim)
	line("v void  1 spigots", dim)
	line("f5 save  f9 load", dim)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
