package core

import "testing"

func TestStepAccumulatorPaused(t *testing.T) {
	var a StepAccumulator
	for n := 0; n < 10; n++ {
		if got := a.Add(0); got != 0 {
			t.Fatalf("Add(0) = %d", got)
		}
		if got := a.Add(-2); got != 0 {
			t.Fatalf("Add(-2) = %d", got)
		}
	}
}

func TestStepAccumulatorFractionCarries(t *testing.T) {
	var a StepAccumulator
	ticks := 0
	for frame := 0; frame < 10; frame++ {
		ticks += a.Add(0.3)
	}
	if ticks != 3 {
		t.Fatalf("10 frames at 0.3 ran %d ticks, expected 3", ticks)
	}
}

func TestStepAccumulatorFastForward(t *testing.T) {
	var a StepAccumulator
	if got := a.Add(2.5); got != 2 {
		t.Fatalf("Add(2.5) = %d", got)
	}
	if got := a.Add(2.5); got != 3 {
		t.Fatalf("second Add(2.5) = %d, expected the carried half-step", got)
	}
}

func TestStepAccumulatorReset(t *testing.T) {
	var a StepAccumulator
	a.Add(0.9)
	a.Reset()
	if got := a.Add(0.2); got != 0 {
		t.Fatalf("Add(0.2) after reset = %d", got)
	}
}
