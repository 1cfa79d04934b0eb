package ui

// PanelWidth is the pixel width of the HUD column. It is defined outside the
// build tags so headless callers can do the same layout math as the GUI.
const PanelWidth = 168

// Status is the per-frame state the HUD prints.
type Status struct {
	Element   string
	Radius    int
	Speed     float64
	Paused    bool
	Particles int
	Void      bool
	// Note is a transient message, e.g. a quicksave outcome.
	Note string
}
