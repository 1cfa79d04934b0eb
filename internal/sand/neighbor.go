package sand

// Directional neighbor probes. Each returns the matching cell's linear index
// and whether a match exists. They take the coordinates and index together
// because every caller already has all three and the scan runs per cell per
// tick.

// pickEither breaks a two-candidate tie with a fair coin. Biased tie-breaking
// here shows up on screen as sideways drift, so both orders must be equally
// likely.
func (w *World) pickEither(a int, aok bool, b int, bok bool) (int, bool) {
	switch {
	case aok && bok:
		if w.rng.Bool() {
			return a, true
		}
		return b, true
	case aok:
		return a, true
	case bok:
		return b, true
	}
	return 0, false
}

// below tests the cell directly beneath (x, y).
func (w *World) below(y, i int, target Element) (int, bool) {
	if y >= w.grid.MaxY() {
		return 0, false
	}
	bi := i + w.grid.Width()
	if w.grid.GetIndex(bi) == target {
		return bi, true
	}
	return 0, false
}

// belowAdjacent tests the cell beneath first, then the two diagonals below
// with a fair tie-break.
func (w *World) belowAdjacent(x, y, i int, target Element) (int, bool) {
	if y >= w.grid.MaxY() {
		return 0, false
	}
	bi := i + w.grid.Width()
	if w.grid.GetIndex(bi) == target {
		return bi, true
	}
	lok := x > 0 && w.grid.GetIndex(bi-1) == target
	rok := x < w.grid.MaxX() && w.grid.GetIndex(bi+1) == target
	return w.pickEither(bi-1, lok, bi+1, rok)
}

// above tests the cell directly over (x, y).
func (w *World) above(y, i int, target Element) (int, bool) {
	if y == 0 {
		return 0, false
	}
	ai := i - w.grid.Width()
	if w.grid.GetIndex(ai) == target {
		return ai, true
	}
	return 0, false
}

// aboveAdjacent tests the cell over first, then the two diagonals above with
// a fair tie-break.
func (w *World) aboveAdjacent(x, y, i int, target Element) (int, bool) {
	if y == 0 {
		return 0, false
	}
	ai := i - w.grid.Width()
	if w.grid.GetIndex(ai) == target {
		return ai, true
	}
	lok := x > 0 && w.grid.GetIndex(ai-1) == target
	rok := x < w.grid.MaxX() && w.grid.GetIndex(ai+1) == target
	return w.pickEither(ai-1, lok, ai+1, rok)
}

// adjacent tests left and right with a fair tie-break.
func (w *World) adjacent(x, i int, target Element) (int, bool) {
	lok := x > 0 && w.grid.GetIndex(i-1) == target
	rok := x < w.grid.MaxX() && w.grid.GetIndex(i+1) == target
	return w.pickEither(i-1, lok, i+1, rok)
}

// bordering tests the 4-neighborhood in the order below, adjacent, above.
func (w *World) bordering(x, y, i int, target Element) (int, bool) {
	if bi, ok := w.below(y, i, target); ok {
		return bi, true
	}
	if ai, ok := w.adjacent(x, i, target); ok {
		return ai, true
	}
	return w.above(y, i, target)
}

// borderingAdjacent tests the full 8-neighborhood.
func (w *World) borderingAdjacent(x, y, i int, target Element) (int, bool) {
	if bi, ok := w.belowAdjacent(x, y, i, target); ok {
		return bi, true
	}
	if ai, ok := w.adjacent(x, i, target); ok {
		return ai, true
	}
	return w.aboveAdjacent(x, y, i, target)
}

// surroundedBy reports whether every in-bounds orthogonal neighbor holds
// target. Rules use it purely to skip no-op evaluation; it must never change
// observable behavior.
func (w *World) surroundedBy(x, y, i int, target Element) bool {
	width := w.grid.Width()
	if y < w.grid.MaxY() && w.grid.GetIndex(i+width) != target {
		return false
	}
	if y > 0 && w.grid.GetIndex(i-width) != target {
		return false
	}
	if x > 0 && w.grid.GetIndex(i-1) != target {
		return false
	}
	if x < w.grid.MaxX() && w.grid.GetIndex(i+1) != target {
		return false
	}
	return true
}

// surroundedByAdjacent is surroundedBy over the 8-neighborhood.
func (w *World) surroundedByAdjacent(x, y, i int, target Element) bool {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny > w.grid.MaxY() {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx > w.grid.MaxX() {
				continue
			}
			if w.grid.Get(nx, ny) != target {
				return false
			}
		}
	}
	return true
}
