package sand

// Movement primitives. Each draws its own weighted coin, so a rule may chain
// several in priority order and stop at the first that reports movement.

// moveRainbow migrates the placement counter of a RainbowSand grain so its
// hue travels with it.
func (w *World) moveRainbow(e Element, from, to int) {
	if e != RainbowSand {
		return
	}
	if t, ok := w.rainbow[from]; ok {
		delete(w.rainbow, from)
		w.rainbow[to] = t
	}
}

// dropRainbow forgets the counter for a grain that ceased to exist.
func (w *World) dropRainbow(e Element, i int) {
	if e == RainbowSand {
		delete(w.rainbow, i)
	}
}

// gravity moves the cell straight down, or down-diagonally and sideways when
// fallAdjacent is set. At the bottom row the cell either vanishes
// (fallIntoVoid) or stays put. Reports whether the cell moved or vanished.
func (w *World) gravity(x, y, i int, fallAdjacent bool, chance float64, fallIntoVoid bool) bool {
	if !w.rng.Chance(chance) {
		return false
	}
	if y >= w.grid.MaxY() {
		if fallIntoVoid {
			e := w.grid.GetIndex(i)
			w.grid.SetIndex(i, Background)
			w.dropRainbow(e, i)
			return true
		}
		return false
	}

	var ni int
	var ok bool
	if fallAdjacent {
		ni, ok = w.belowAdjacent(x, y, i, Background)
		if !ok {
			ni, ok = w.adjacent(x, i, Background)
		}
	} else {
		ni, ok = w.below(y, i, Background)
	}
	if !ok {
		return false
	}

	e := w.grid.GetIndex(i)
	w.grid.SetIndex(ni, e)
	w.grid.SetIndex(i, Background)
	w.moveRainbow(e, i, ni)
	return true
}

// densitySink drops the cell through a lighter element beneath it, swapping
// the lighter element into the vacated cell.
func (w *World) densitySink(x, y, i int, lighterThan Element, sinkAdjacent bool, chance float64) bool {
	if !w.rng.Chance(chance) {
		return false
	}
	if y >= w.grid.MaxY() {
		return false
	}

	var ni int
	var ok bool
	if sinkAdjacent {
		ni, ok = w.belowAdjacent(x, y, i, lighterThan)
	} else {
		ni, ok = w.below(y, i, lighterThan)
	}
	if !ok {
		return false
	}

	e := w.grid.GetIndex(i)
	w.grid.SetIndex(ni, e)
	w.grid.SetIndex(i, lighterThan)
	w.moveRainbow(e, i, ni)
	return true
}

// densityLiquid lets a denser liquid sink through a lighter one below, or
// failing that, equalize sideways into it. The two attempts draw independent
// coins; either way the displaced liquid swaps into the vacated cell.
func (w *World) densityLiquid(x, y, i int, heavierThan Element, sinkChance, equalizeChance float64) bool {
	ni, ok := 0, false
	if w.rng.Chance(sinkChance) {
		ni, ok = w.belowAdjacent(x, y, i, heavierThan)
	}
	if !ok && w.rng.Chance(equalizeChance) {
		ni, ok = w.adjacent(x, i, heavierThan)
	}
	if !ok {
		return false
	}

	e := w.grid.GetIndex(i)
	w.grid.SetIndex(ni, e)
	w.grid.SetIndex(i, heavierThan)
	return true
}

// transform converts the cell on 4-neighborhood contact with transformBy,
// optionally consuming the touching neighbor into the same product.
func (w *World) transform(x, y, i int, transformBy, transformInto Element, transformChance, consumeChance float64) bool {
	if !w.rng.Chance(transformChance) {
		return false
	}
	loc, ok := w.bordering(x, y, i, transformBy)
	if !ok {
		return false
	}
	w.grid.SetIndex(i, transformInto)
	if w.rng.Chance(consumeChance) {
		w.grid.SetIndex(loc, transformInto)
	}
	return true
}

// producer stamps produce into each orthogonal neighbor, skipping occupied
// cells unless overwriteAdjacent is set.
func (w *World) producer(x, y, i int, produce Element, overwriteAdjacent bool, chance float64) bool {
	if !w.rng.Chance(chance) {
		return false
	}
	width := w.grid.Width()
	if y > 0 {
		up := i - width
		if overwriteAdjacent || w.grid.GetIndex(up) == Background {
			w.grid.SetIndex(up, produce)
		}
	}
	if y < w.grid.MaxY() {
		down := i + width
		if overwriteAdjacent || w.grid.GetIndex(down) == Background {
			w.grid.SetIndex(down, produce)
		}
	}
	if x > 0 {
		if overwriteAdjacent || w.grid.GetIndex(i-1) == Background {
			w.grid.SetIndex(i-1, produce)
		}
	}
	if x < w.grid.MaxX() {
		if overwriteAdjacent || w.grid.GetIndex(i+1) == Background {
			w.grid.SetIndex(i+1, produce)
		}
	}
	return true
}

// rise is gravity's mirror for gases: up or up-diagonally, else sideways.
// At the top row the cell vanishes when fallIntoVoid is set, otherwise it
// stays.
func (w *World) rise(x, y, i int, riseChance, adjacentChance float64, fallIntoVoid bool) bool {
	ni, ok := 0, false
	if w.rng.Chance(riseChance) {
		if y == 0 {
			if fallIntoVoid {
				w.grid.SetIndex(i, Background)
				return true
			}
			return false
		}
		ni, ok = w.aboveAdjacent(x, y, i, Background)
	}
	if !ok && w.rng.Chance(adjacentChance) {
		ni, ok = w.adjacent(x, i, Background)
	}
	if !ok {
		return false
	}

	e := w.grid.GetIndex(i)
	w.grid.SetIndex(ni, e)
	w.grid.SetIndex(i, Background)
	return true
}
