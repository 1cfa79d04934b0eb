package sand

import "testing"

func TestPoolSpawnExhaustionAndReuse(t *testing.T) {
	p := NewPool(3)

	ids := make([]int, 0, 3)
	for n := 0; n < 3; n++ {
		idx, ok := p.Spawn(ArchetypeMethanePuff, 1, 2, 7)
		if !ok {
			t.Fatalf("spawn %d failed with free slots remaining", n)
		}
		ids = append(ids, idx)
	}

	if _, ok := p.Spawn(ArchetypeMethanePuff, 0, 0, 0); ok {
		t.Fatal("spawn succeeded on an exhausted pool")
	}
	if p.Len() != 3 || p.CountOf(ArchetypeMethanePuff) != 3 {
		t.Fatalf("len=%d count=%d, expected 3/3", p.Len(), p.CountOf(ArchetypeMethanePuff))
	}

	p.Deactivate(ids[1])
	if p.Len() != 2 || p.CountOf(ArchetypeMethanePuff) != 2 {
		t.Fatalf("after deactivate len=%d count=%d, expected 2/2", p.Len(), p.CountOf(ArchetypeMethanePuff))
	}

	idx, ok := p.Spawn(ArchetypeTree, 5, 5, 0)
	if !ok {
		t.Fatal("spawn failed after a slot was freed")
	}
	if idx != ids[1] {
		t.Fatalf("reused slot %d, expected freed slot %d", idx, ids[1])
	}
	if p.CountOf(ArchetypeTree) != 1 {
		t.Fatalf("tree count = %d after reuse", p.CountOf(ArchetypeTree))
	}
}

func TestPoolDeactivateClearsSlotCompletely(t *testing.T) {
	p := NewPool(2)
	idx, ok := p.Spawn(ArchetypeNapalmBlob, 3, 4, 11)
	if !ok {
		t.Fatal("spawn failed")
	}

	slot := p.Get(idx)
	slot.SetVelocity(9, 1.5)
	slot.Size = 12
	slot.Iterations = 8
	slot.payload = &napalmPayload{lifespan: 10}
	slot.initialized = true

	p.Deactivate(idx)

	if slot.Active() {
		t.Fatal("slot still active after deactivate")
	}
	if slot.Payload() != nil {
		t.Fatal("payload survived deactivation")
	}
	if slot.Iterations != 0 || slot.Size != 0 || slot.VX != 0 || slot.VY != 0 {
		t.Fatal("kinematic state survived deactivation")
	}
	if slot.initialized {
		t.Fatal("initialized flag survived deactivation")
	}

	// A double deactivate must not corrupt the free list.
	p.Deactivate(idx)
	if got := len(p.free); got != 2 {
		t.Fatalf("free list has %d entries after double deactivate, expected 2", got)
	}
}

func TestPoolRetypeKeepsCountsExact(t *testing.T) {
	p := NewPool(4)
	idx, _ := p.Spawn(ArchetypeMethanePuff, 0, 0, 0)

	p.Get(idx).Iterations = 5
	p.Get(idx).payload = &napalmPayload{}
	p.Retype(idx, ArchetypeNukeFlash)

	if p.CountOf(ArchetypeMethanePuff) != 0 {
		t.Fatalf("old archetype count = %d", p.CountOf(ArchetypeMethanePuff))
	}
	if p.CountOf(ArchetypeNukeFlash) != 1 {
		t.Fatalf("new archetype count = %d", p.CountOf(ArchetypeNukeFlash))
	}
	slot := p.Get(idx)
	if slot.Iterations != 0 || slot.Payload() != nil || slot.initialized {
		t.Fatal("retype must restart iteration count and payload")
	}
	if !p.AnyAlive(ArchetypeNukeFlash) || p.AnyAlive(ArchetypeMethanePuff) {
		t.Fatal("AnyAlive disagrees with counts after retype")
	}
}

func TestMethanePuffProximityQuery(t *testing.T) {
	w := New(Options{Width: 32, Height: 32, Seed: 3})
	disableSpigots(w)

	if w.methanePuffNear(10, 10) {
		t.Fatal("no puffs alive, query should be false")
	}

	w.pool.Spawn(ArchetypeMethanePuff, 10, 10, w.grid.Index(10, 10))

	// The per-puff coin makes a single query stochastic; over many draws a
	// puff in range must fire sometimes and one out of range never.
	hit := false
	for n := 0; n < 200; n++ {
		if w.methanePuffNear(12, 12) {
			hit = true
			break
		}
	}
	if !hit {
		t.Fatal("puff within reach never triggered")
	}
	for n := 0; n < 200; n++ {
		if w.methanePuffNear(30, 30) {
			t.Fatal("puff far out of reach triggered")
		}
	}
}
