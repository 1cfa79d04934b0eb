package render

import (
	"image/color"
	"math"

	"sandfall/internal/sand"
)

// fillGridRGBA converts element cells into RGBA pixels in buf. shift resolves
// the placement counter for rainbow grains; grains without a counter (and all
// grains when shift is nil) fall back to a position hash so their hue stays
// stable frame to frame.
func fillGridRGBA(buf []byte, cells []sand.Element, width int, shift func(int) (uint32, bool)) {
	for i, e := range cells {
		col := e.Color()
		if e == sand.RainbowSand {
			col = rainbowColor(rainbowShiftAt(i, width, shift))
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func rainbowShiftAt(i, width int, shift func(int) (uint32, bool)) uint8 {
	if shift != nil {
		if t, ok := shift(i); ok {
			return uint8(t % 256)
		}
	}
	x := uint32(i % width)
	y := uint32(i / width)
	return uint8((x*73856093 + y*19349663) % 256)
}

// rainbowColor maps an 8-bit shift onto the full hue circle at fixed
// saturation 0.8 and value 0.9.
func rainbowColor(shift uint8) color.RGBA {
	hue := float64(shift) / 255.0 * 360.0
	const (
		s = 0.8
		v = 0.9
	)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(hue/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}

func setPixel(buf []byte, w, h, x, y int, col color.RGBA) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	base := (y*w + x) * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

// fillCircleRGBA stamps a filled disc over the buffer, clipped to w*h. The
// cell nearest the center is always painted so sub-pixel radii stay visible.
func fillCircleRGBA(buf []byte, w, h int, cx, cy, r float64, col color.RGBA) {
	setPixel(buf, w, h, int(math.Floor(cx)), int(math.Floor(cy)), col)
	if r <= 0 {
		return
	}
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				setPixel(buf, w, h, x, y, col)
			}
		}
	}
}

// strokeLineRGBA draws a thick segment by sweeping a disc along it.
func strokeLineRGBA(buf []byte, w, h int, x0, y0, x1, y1, thickness float64, col color.RGBA) {
	r := math.Max(thickness, 1) / 2
	dist := math.Hypot(x1-x0, y1-y0)
	steps := int(dist*2) + 1
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		fillCircleRGBA(buf, w, h, x0+(x1-x0)*t, y0+(y1-y0)*t, r, col)
	}
}

// drawParticlesRGBA composites the live particles over an already-filled grid
// buffer. Line particles stroke from their previous position; the rest draw
// as filled discs.
func drawParticlesRGBA(buf []byte, w, h int, views []sand.ParticleView) {
	for _, pv := range views {
		if pv.Line {
			strokeLineRGBA(buf, w, h, pv.PrevX, pv.PrevY, pv.X, pv.Y, pv.Size, pv.Color)
			continue
		}
		fillCircleRGBA(buf, w, h, pv.X, pv.Y, pv.Size/2, pv.Color)
	}
}
