package app

import (
	"sandfall/internal/sand"
	"sandfall/internal/savestore"
)

// Options configures the interactive host.
type Options struct {
	Scale   int
	Element sand.Element
	Radius  int
	Speed   float64
	// Store enables the F5/F9 quicksave bindings when non-nil.
	Store *savestore.Store
}

const (
	maxBrushRadius = 16
	maxSpeed       = 8.0
	minSpeed       = 0.25
	speedStep      = 0.25

	// quicksaveSlot is the savestore name used by the F5/F9 bindings.
	quicksaveSlot = "quicksave"
)

func clampRadius(r int) int {
	if r < 0 {
		return 0
	}
	if r > maxBrushRadius {
		return maxBrushRadius
	}
	return r
}
