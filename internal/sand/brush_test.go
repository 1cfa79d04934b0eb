package sand

import "testing"

func TestPaintRespectsOverwriteFlag(t *testing.T) {
	w := New(Options{Width: 11, Height: 11, Seed: 6})
	disableSpigots(w)
	w.grid.Set(5, 5, Wall)

	w.Paint(5, 5, 2, Sand, false)
	if w.grid.Get(5, 5) != Wall {
		t.Fatal("non-overwrite paint replaced an occupied cell")
	}
	if w.grid.Get(5, 4) != Sand {
		t.Fatal("non-overwrite paint skipped an empty cell")
	}

	w.Paint(5, 5, 0, Water, true)
	if w.grid.Get(5, 5) != Water {
		t.Fatal("overwrite paint left the occupied cell alone")
	}
}

func TestPaintStaysInsideCircleAndGrid(t *testing.T) {
	w := New(Options{Width: 9, Height: 9, Seed: 10})
	disableSpigots(w)

	// Center near the corner so half the disc hangs off grid.
	w.Paint(0, 0, 3, Salt, true)

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			painted := w.grid.Get(x, y) == Salt
			inside := x*x+y*y <= 9
			if painted != inside {
				t.Fatalf("cell (%d,%d) painted=%v inside=%v", x, y, painted, inside)
			}
		}
	}
}

func TestPaintLineLeavesNoGaps(t *testing.T) {
	w := New(Options{Width: 30, Height: 30, Seed: 14})
	disableSpigots(w)

	w.PaintLine(2, 3, 27, 24, 1, Wall, true)

	// Every column the line crosses must contain wall; radius 1 makes the
	// stroke at least 8-connected even on steep diagonals.
	for x := 2; x <= 27; x++ {
		found := false
		for y := 0; y < 30; y++ {
			if w.grid.Get(x, y) == Wall {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("column %d has a gap in the stroke", x)
		}
	}
}

func TestEraseClearsAndForgetsRainbow(t *testing.T) {
	w := New(Options{Width: 9, Height: 9, Seed: 18})
	disableSpigots(w)
	w.Paint(4, 4, 2, RainbowSand, true)
	if len(w.rainbow) == 0 {
		t.Fatal("painting rainbow sand tracked no counters")
	}

	w.Erase(4, 4, 3)

	if n := countElement(w, RainbowSand); n != 0 {
		t.Fatalf("%d grains left after erase", n)
	}
	if len(w.rainbow) != 0 {
		t.Fatalf("%d counters leaked after erase", len(w.rainbow))
	}
}

func TestPaintRejectsUnknownElement(t *testing.T) {
	w := New(Options{Width: 5, Height: 5, Seed: 22})
	disableSpigots(w)
	w.Paint(2, 2, 2, NumElements, true)
	for i, e := range w.Cells() {
		if e != Background {
			t.Fatalf("cell %d painted with an invalid element: %v", i, e)
		}
	}
}
