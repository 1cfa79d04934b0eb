package sand

import "testing"

func TestGridOutOfRangeAccess(t *testing.T) {
	g := NewGrid(4, 3)

	if got := g.Get(-1, 0); got != Background {
		t.Fatalf("negative x read = %v, expected Background", got)
	}
	if got := g.Get(0, 3); got != Background {
		t.Fatalf("below-grid read = %v, expected Background", got)
	}
	if got := g.GetIndex(-5); got != Background {
		t.Fatalf("negative index read = %v, expected Background", got)
	}
	if got := g.GetIndex(12); got != Background {
		t.Fatalf("past-end index read = %v, expected Background", got)
	}

	g.Set(4, 0, Sand)
	g.Set(0, -1, Sand)
	g.SetIndex(99, Sand)
	for i, e := range g.Cells() {
		if e != Background {
			t.Fatalf("out-of-range write landed at cell %d", i)
		}
	}
}

func TestGridIndexCoordsRoundTrip(t *testing.T) {
	g := NewGrid(7, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			i := g.Index(x, y)
			gx, gy := g.Coords(i)
			if gx != x || gy != y {
				t.Fatalf("coords(%d) = (%d,%d), expected (%d,%d)", i, gx, gy, x, y)
			}
		}
	}
}

func TestGridClearIdempotent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Lava)
	g.Set(2, 2, Wall)

	g.Clear()
	for i, e := range g.Cells() {
		if e != Background {
			t.Fatalf("cell %d = %v after clear", i, e)
		}
	}

	g.Clear()
	for i, e := range g.Cells() {
		if e != Background {
			t.Fatalf("cell %d = %v after second clear", i, e)
		}
	}
}

func TestGridClampsDegenerateDimensions(t *testing.T) {
	g := NewGrid(0, -2)
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("degenerate grid = %dx%d, expected 1x1", g.Width(), g.Height())
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("degenerate grid has %d cells", len(g.Cells()))
	}
}
