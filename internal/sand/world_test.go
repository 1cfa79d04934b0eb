package sand

import (
	"slices"
	"testing"
)

func disableSpigots(w *World) {
	for slot := 0; slot < NumSpigots; slot++ {
		w.SetSpigot(slot, Water, 0)
	}
}

func countElement(w *World, e Element) int {
	n := 0
	for _, c := range w.Cells() {
		if c == e {
			n++
		}
	}
	return n
}

func TestSandReachesBottom(t *testing.T) {
	w := New(Options{Width: 10, Height: 10, Seed: 42})
	disableSpigots(w)
	w.grid.Set(5, 0, Sand)

	for tick := 0; tick < 60; tick++ {
		w.Tick()
	}

	if got := w.grid.Get(5, 9); got != Sand {
		t.Fatalf("bottom cell = %v, expected Sand", got)
	}
	if n := countElement(w, Sand); n != 1 {
		t.Fatalf("%d sand cells, expected exactly 1", n)
	}
}

func TestWalledSceneConservesMatter(t *testing.T) {
	w := New(Options{Width: 20, Height: 20, Seed: 7})
	disableSpigots(w)

	// Box the arena so nothing can leave, then drop sand into water.
	for x := 0; x < 20; x++ {
		w.grid.Set(x, 0, Wall)
		w.grid.Set(x, 19, Wall)
	}
	for y := 0; y < 20; y++ {
		w.grid.Set(0, y, Wall)
		w.grid.Set(19, y, Wall)
	}
	for x := 5; x < 15; x++ {
		for y := 14; y < 18; y++ {
			w.grid.Set(x, y, Water)
		}
	}
	for x := 8; x < 12; x++ {
		w.grid.Set(x, 2, Sand)
	}

	wantSand := countElement(w, Sand)
	wantWater := countElement(w, Water)
	wantWall := countElement(w, Wall)

	for tick := 0; tick < 300; tick++ {
		w.Tick()
	}

	if got := countElement(w, Sand); got != wantSand {
		t.Fatalf("sand count %d -> %d", wantSand, got)
	}
	if got := countElement(w, Water); got != wantWater {
		t.Fatalf("water count %d -> %d", wantWater, got)
	}
	if got := countElement(w, Wall); got != wantWall {
		t.Fatalf("wall count %d -> %d", wantWall, got)
	}

	// Sand is denser than water, so after settling every sand cell should
	// sit below every water cell in its column.
	for x := 1; x < 19; x++ {
		sawSand := false
		for y := 1; y < 19; y++ {
			switch w.grid.Get(x, y) {
			case Sand:
				sawSand = true
			case Water:
				if sawSand {
					t.Fatalf("water below sand in column %d", x)
				}
			}
		}
	}
}

func TestSameSeedSameHistory(t *testing.T) {
	run := func() []Element {
		w := New(Options{Width: 24, Height: 24, Seed: 1234})
		w.Paint(12, 2, 3, Sand, true)
		w.Paint(6, 2, 2, Water, true)
		w.Paint(18, 4, 2, Lava, true)
		for tick := 0; tick < 80; tick++ {
			w.Tick()
		}
		return slices.Clone(w.Cells())
	}

	if !slices.Equal(run(), run()) {
		t.Fatal("identical seeds diverged")
	}
}

func TestFireExtinguishRate(t *testing.T) {
	// Fire bordering water goes out at 80%, turning the water to steam.
	const trials = 2000
	extinguished := 0
	for seed := int64(0); seed < trials; seed++ {
		w := New(Options{Width: 3, Height: 3, Seed: seed})
		disableSpigots(w)
		w.grid.Set(1, 2, Water)
		w.grid.Set(1, 1, Fire)
		w.Tick()

		if w.grid.Get(1, 1) != Fire && w.grid.Get(1, 2) == Steam {
			extinguished++
		}
	}

	rate := float64(extinguished) / trials
	if rate < 0.76 || rate > 0.84 {
		t.Fatalf("extinguish rate = %.3f, expected about 0.80", rate)
	}
}

func TestFallIntoVoidSwallowsBottomRow(t *testing.T) {
	w := New(Options{Width: 5, Height: 5, Seed: 9, FallIntoVoid: true})
	disableSpigots(w)
	w.grid.Set(2, 4, Sand)

	for tick := 0; tick < 50; tick++ {
		w.Tick()
	}
	if n := countElement(w, Sand); n != 0 {
		t.Fatalf("%d sand cells remain, expected the void to take them", n)
	}
}

func TestResizeDiscardsIndexCoupledState(t *testing.T) {
	w := New(Options{Width: 10, Height: 10, Seed: 5})
	disableSpigots(w)
	w.Paint(5, 5, 2, RainbowSand, true)
	w.pool.Spawn(ArchetypeNukeFlash, 5, 5, w.grid.Index(5, 5))
	w.startTree(5, 8)

	w.Resize(16, 12)

	if got := w.Size(); got.W != 16 || got.H != 12 {
		t.Fatalf("size = %dx%d after resize", got.W, got.H)
	}
	for i, e := range w.Cells() {
		if e != Background {
			t.Fatalf("cell %d = %v in resized grid", i, e)
		}
	}
	if w.ParticleCount() != 0 {
		t.Fatalf("%d particles survived resize", w.ParticleCount())
	}
	if len(w.branches) != 0 {
		t.Fatalf("%d branches survived resize", len(w.branches))
	}
	if len(w.rainbow) != 0 {
		t.Fatalf("%d rainbow counters survived resize", len(w.rainbow))
	}
}

func TestClearEmptiesGridAndBranches(t *testing.T) {
	w := New(Options{Width: 8, Height: 8, Seed: 2})
	disableSpigots(w)
	w.Paint(4, 4, 3, Salt, true)
	w.startTree(4, 6)

	w.Clear()

	for i, e := range w.Cells() {
		if e != Background {
			t.Fatalf("cell %d = %v after clear", i, e)
		}
	}
	if len(w.branches) != 0 {
		t.Fatal("branches survived clear")
	}
}

func TestAdvanceRunsWholeTicks(t *testing.T) {
	w := New(Options{Width: 6, Height: 6, Seed: 11})
	disableSpigots(w)

	if n := w.Advance(0); n != 0 {
		t.Fatalf("paused advance ran %d ticks", n)
	}
	if n := w.Advance(0.5); n != 0 {
		t.Fatalf("first half-speed advance ran %d ticks", n)
	}
	if n := w.Advance(0.5); n != 1 {
		t.Fatalf("second half-speed advance ran %d ticks, expected 1", n)
	}
	if n := w.Advance(3); n != 3 {
		t.Fatalf("triple-speed advance ran %d ticks", n)
	}
}
