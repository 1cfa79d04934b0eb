package core

// StepAccumulator converts a fractional steps-per-frame scalar into whole
// simulation ticks. Speed 0 pauses, 0.5 runs every other frame, 2 runs twice
// per frame. The fraction carries across frames so sub-real-time rates don't
// stall.
type StepAccumulator struct {
	pending float64
}

// Add accumulates the speed scalar for one frame and returns how many whole
// ticks should run now. Negative speeds are treated as paused.
func (a *StepAccumulator) Add(speed float64) int {
	if speed <= 0 {
		return 0
	}
	a.pending += speed
	n := int(a.pending)
	a.pending -= float64(n)
	return n
}

// Reset discards any accumulated fraction.
func (a *StepAccumulator) Reset() {
	a.pending = 0
}
