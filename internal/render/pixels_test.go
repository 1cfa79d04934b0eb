package render

import (
	"bytes"
	"image/color"
	"testing"

	"sandfall/internal/sand"
)

func TestFillGridUsesElementColors(t *testing.T) {
	cells := []sand.Element{sand.Background, sand.Wall, sand.Water, sand.Lava}
	buf := make([]byte, 4*len(cells))
	fillGridRGBA(buf, cells, len(cells), nil)

	for i, e := range cells {
		want := e.Color()
		base := i * 4
		got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
		if got != want {
			t.Fatalf("cell %d (%v): got %v, want %v", i, e, got, want)
		}
	}
}

func TestRainbowGrainsGetDistinctHues(t *testing.T) {
	cells := []sand.Element{sand.RainbowSand, sand.RainbowSand}
	counters := map[int]uint32{0: 0, 1: 128}
	shift := func(i int) (uint32, bool) {
		c, ok := counters[i]
		return c, ok
	}

	buf := make([]byte, 4*len(cells))
	fillGridRGBA(buf, cells, 2, shift)

	if bytes.Equal(buf[0:4], buf[4:8]) {
		t.Fatal("opposite counters produced the same hue")
	}
	if buf[3] != 255 || buf[7] != 255 {
		t.Fatal("rainbow pixels are not opaque")
	}
}

func TestRainbowFallbackIsStable(t *testing.T) {
	cells := []sand.Element{sand.RainbowSand, sand.RainbowSand, sand.RainbowSand}
	a := make([]byte, 4*len(cells))
	b := make([]byte, 4*len(cells))
	fillGridRGBA(a, cells, 3, nil)
	fillGridRGBA(b, cells, 3, nil)
	if !bytes.Equal(a, b) {
		t.Fatal("position-hash fallback is not deterministic")
	}
}

func TestRainbowColorSpansHueWheel(t *testing.T) {
	red := rainbowColor(0)
	if red.R <= red.G || red.R <= red.B {
		t.Fatalf("shift 0 should be red-dominant, got %v", red)
	}
	green := rainbowColor(85)
	if green.G <= green.R || green.G <= green.B {
		t.Fatalf("shift 85 should be green-dominant, got %v", green)
	}
	blue := rainbowColor(170)
	if blue.B <= blue.R || blue.B <= blue.G {
		t.Fatalf("shift 170 should be blue-dominant, got %v", blue)
	}
}

func TestFillCircleClipsToBuffer(t *testing.T) {
	const w, h = 8, 8
	buf := make([]byte, 4*w*h)
	col := color.RGBA{R: 200, A: 255}

	// Half the disc hangs off the top-left corner.
	fillCircleRGBA(buf, w, h, 0.5, 0.5, 3, col)
	if buf[3] == 0 {
		t.Fatal("disc center not painted")
	}
	if buf[(7*w+7)*4+3] != 0 {
		t.Fatal("far corner painted")
	}

	// Fully off-canvas centers must not touch the buffer.
	clean := make([]byte, 4*w*h)
	fillCircleRGBA(clean, w, h, -20, -20, 2, col)
	for _, b := range clean {
		if b != 0 {
			t.Fatal("off-canvas disc wrote pixels")
		}
	}
}

func TestFillCircleAlwaysMarksCenter(t *testing.T) {
	const w, h = 4, 4
	buf := make([]byte, 4*w*h)
	fillCircleRGBA(buf, w, h, 2.0, 2.0, 0.2, color.RGBA{G: 255, A: 255})
	if buf[(2*w+2)*4+3] != 255 {
		t.Fatal("sub-pixel radius left the center cell unpainted")
	}
}

func TestStrokeLineLeavesNoGaps(t *testing.T) {
	const w, h = 10, 10
	buf := make([]byte, 4*w*h)
	strokeLineRGBA(buf, w, h, 1, 1, 8, 5, 2, color.RGBA{B: 255, A: 255})

	painted := func(x, y int) bool { return buf[(y*w+x)*4+3] != 0 }
	if !painted(1, 1) || !painted(8, 5) {
		t.Fatal("stroke misses an endpoint")
	}
	for x := 1; x <= 8; x++ {
		found := false
		for y := 0; y < h; y++ {
			if painted(x, y) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("column %d has a gap in the stroke", x)
		}
	}
}

func TestDrawParticlesDispatch(t *testing.T) {
	const w, h = 12, 12
	buf := make([]byte, 4*w*h)
	views := []sand.ParticleView{
		{X: 3, Y: 3, Size: 4, Color: color.RGBA{R: 255, A: 255}},
		{X: 10, Y: 10, PrevX: 6, PrevY: 6, Size: 1, Color: color.RGBA{G: 255, A: 255}, Line: true},
	}
	drawParticlesRGBA(buf, w, h, views)

	if buf[(3*w+3)*4] != 255 {
		t.Fatal("disc particle not rasterized at its center")
	}
	if buf[(8*w+8)*4+1] != 255 {
		t.Fatal("line particle not stroked through its midpoint")
	}
}
