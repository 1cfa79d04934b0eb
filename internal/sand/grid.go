package sand

import "sandfall/internal/core"

// Grid stores the element at every cell in row-major order. Access is
// defensively clamped: reads outside the grid return Background and writes
// outside it are dropped, because the rule engine probes neighbors every
// tick and must never fail on the hot path.
type Grid struct {
	w, h  int
	cells []Element
}

// NewGrid allocates a cleared grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]Element, w*h)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []Element { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Coords converts a linear index back to (x, y).
func (g *Grid) Coords(i int) (int, int) { return i % g.w, i / g.w }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the element at (x, y), or Background when out of range.
func (g *Grid) Get(x, y int) Element {
	if !g.InBounds(x, y) {
		return Background
	}
	return g.cells[y*g.w+x]
}

// Set writes the element at (x, y). Out-of-range writes are dropped.
func (g *Grid) Set(x, y int, e Element) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.w+x] = e
}

// GetIndex returns the element at linear index i, or Background when out of
// range.
func (g *Grid) GetIndex(i int) Element {
	if i < 0 || i >= len(g.cells) {
		return Background
	}
	return g.cells[i]
}

// SetIndex writes the element at linear index i. Out-of-range writes are
// dropped.
func (g *Grid) SetIndex(i int, e Element) {
	if i < 0 || i >= len(g.cells) {
		return
	}
	g.cells[i] = e
}

// MaxX returns the last valid column index.
func (g *Grid) MaxX() int { return g.w - 1 }

// MaxY returns the last valid row index.
func (g *Grid) MaxY() int { return g.h - 1 }

// Clear resets every cell to Background.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Background
	}
}
