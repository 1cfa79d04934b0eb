package core

import "testing"

func TestChanceEdgeCasesConsumeNoDraws(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)

	// Forced outcomes on one stream must not desync it from a twin that
	// never saw them.
	for n := 0; n < 100; n++ {
		if a.Chance(0) {
			t.Fatal("Chance(0) fired")
		}
		if !a.Chance(1) {
			t.Fatal("Chance(1) missed")
		}
		if a.Chance(-0.5) {
			t.Fatal("negative probability fired")
		}
		if !a.Chance(1.5) {
			t.Fatal("probability above one missed")
		}
	}
	for n := 0; n < 50; n++ {
		if a.Float64() != b.Float64() {
			t.Fatal("forced-outcome coins consumed draws")
		}
	}
}

func TestSameSeedSameStream(t *testing.T) {
	a := NewRNG(12345)
	b := NewRNG(12345)
	for n := 0; n < 200; n++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatalf("streams diverged at draw %d", n)
		}
	}

	c := NewRNG(54321)
	same := true
	for n := 0; n < 20; n++ {
		if NewRNG(12345).IntN(1<<30) != c.IntN(1<<30) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical draws")
	}
}

func TestChanceRate(t *testing.T) {
	r := NewRNG(99)
	const trials = 100000
	hits := 0
	for n := 0; n < trials; n++ {
		if r.Chance(0.25) {
			hits++
		}
	}
	rate := float64(hits) / trials
	if rate < 0.24 || rate > 0.26 {
		t.Fatalf("Chance(0.25) rate = %.4f", rate)
	}
}

func TestIntNAndRangeBounds(t *testing.T) {
	r := NewRNG(5)
	if r.IntN(0) != 0 || r.IntN(-3) != 0 {
		t.Fatal("non-positive n should return 0")
	}
	for n := 0; n < 1000; n++ {
		if v := r.IntN(7); v < 0 || v >= 7 {
			t.Fatalf("IntN(7) = %d", v)
		}
		if v := r.Range(2, 5); v < 2 || v >= 5 {
			t.Fatalf("Range(2,5) = %f", v)
		}
	}
}
