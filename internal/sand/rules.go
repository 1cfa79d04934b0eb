package sand

import "math"

// The rule engine. One handler per element, evaluated once per occupied
// cell per tick by the zigzag scan. Handlers chain movement primitives in
// priority order and stop at the first that acts; every threshold below is
// a tuned constant, so treat them as part of the behavior, not as knobs.

// stepCell runs the handler for the element at (x, y, i).
func (w *World) stepCell(x, y, i int) {
	switch w.grid.GetIndex(i) {
	case Background, Wall, Fuse:
		// Inert. Fuse is lit by fire's own spread chain.
	case Sand, RainbowSand:
		w.stepSand(x, y, i)
	case Water:
		if !w.densityLiquid(x, y, i, Oil, 0.25, 0.50) {
			w.gravity(x, y, i, true, 0.95, w.fallIntoVoid)
		}
	case SaltWater:
		if !w.densityLiquid(x, y, i, Water, 0.50, 0.50) {
			w.gravity(x, y, i, true, 0.95, w.fallIntoVoid)
		}
	case Fire:
		w.stepFire(x, y, i)
	case Salt:
		w.stepSalt(x, y, i)
	case Oil:
		w.stepOil(x, y, i)
	case Rock:
		w.stepRock(x, y, i)
	case Ice:
		w.stepIce(x, y, i)
	case Lava:
		w.stepLava(x, y, i)
	case Steam:
		w.stepSteam(x, y, i)
	case Plant:
		w.stepPlant(x, y, i)
	case Gunpowder:
		w.stepGunpowder(x, y, i)
	case Wax:
		if w.rng.Chance(0.01) {
			if _, ok := w.bordering(x, y, i, Fire); ok {
				w.grid.SetIndex(i, FallingWax)
			}
		}
	case FallingWax:
		if !w.gravity(x, y, i, false, 1.0, w.fallIntoVoid) {
			w.grid.SetIndex(i, Wax)
		}
	case Concrete:
		w.stepConcrete(x, y, i)
	case Nitro:
		w.stepNitro(x, y, i)
	case Napalm:
		w.stepNapalm(x, y, i)
	case C4:
		if w.rng.Chance(0.60) {
			if _, ok := w.bordering(x, y, i, Fire); ok {
				w.spawnAt(ArchetypeC4Flash, x, y, i)
				w.grid.SetIndex(i, Fire)
			}
		}
	case Acid:
		w.stepAcid(x, y, i)
	case Cryo:
		w.stepCryo(x, y, i)
	case ChilledIce:
		w.stepChilledIce(x, y, i)
	case Methane:
		w.stepMethane(x, y, i)
	case Soil:
		w.stepSoil(x, y, i)
	case WetSoil:
		w.stepWetSoil(x, y, i)
	case Thermite:
		w.stepThermite(x, y, i)
	case BurningThermite:
		w.stepBurningThermite(x, y, i)
	case Mystery:
		w.stepMystery(x, y, i)
	case ChargedNitro:
		w.stepChargedNitro(x, y, i)
	case Spout:
		w.producer(x, y, i, Water, false, 0.05)
	case Well:
		w.producer(x, y, i, Oil, false, 0.10)
	case Torch:
		w.producer(x, y, i, Fire, true, 0.25)
	case Branch:
		if w.rng.Chance(0.03) {
			if _, ok := w.borderingAdjacent(x, y, i, Fire); ok {
				w.grid.SetIndex(i, Fire)
			}
		}
	case Leaf:
		w.stepLeaf(x, y, i)
	case Pollen:
		w.gravity(x, y, i, true, 0.95, w.fallIntoVoid)
	}
}

// spawnAt activates an effect particle at cell (x, y). A nil pool or an
// exhausted one reports false and the caller ignites in place instead.
func (w *World) spawnAt(a Archetype, x, y, i int) bool {
	if w.pool == nil {
		return false
	}
	_, ok := w.pool.Spawn(a, float64(x), float64(y), i)
	return ok
}

// igniteBorder stamps fire into the empty orthogonal neighbors and the cell
// itself. Oil and nitro flare this way.
func (w *World) igniteBorder(x, y, i int) {
	width := w.grid.Width()
	if y > 0 && w.grid.GetIndex(i-width) == Background {
		w.grid.SetIndex(i-width, Fire)
	}
	if y < w.grid.MaxY() && w.grid.GetIndex(i+width) == Background {
		w.grid.SetIndex(i+width, Fire)
	}
	if x > 0 && w.grid.GetIndex(i-1) == Background {
		w.grid.SetIndex(i-1, Fire)
	}
	if x < w.grid.MaxX() && w.grid.GetIndex(i+1) == Background {
		w.grid.SetIndex(i+1, Fire)
	}
	w.grid.SetIndex(i, Fire)
}

func (w *World) stepSand(x, y, i int) {
	if w.densitySink(x, y, i, Water, true, 0.25) {
		return
	}
	if w.densitySink(x, y, i, SaltWater, true, 0.25) {
		return
	}
	w.gravity(x, y, i, true, 0.95, w.fallIntoVoid)
}

func (w *World) stepFire(x, y, i int) {
	// Douse before anything else: steam back, fire out.
	if w.rng.Chance(0.80) {
		if loc, ok := w.bordering(x, y, i, Water); ok {
			w.grid.SetIndex(loc, Steam)
			w.grid.SetIndex(i, Background)
			return
		}
		if loc, ok := w.bordering(x, y, i, SaltWater); ok {
			w.grid.SetIndex(loc, Steam)
			w.grid.SetIndex(i, Background)
			return
		}
	}

	if w.rng.Chance(0.20) {
		if loc, ok := w.borderingAdjacent(x, y, i, Plant); ok {
			w.grid.SetIndex(loc, Fire)
			return
		}
	}
	if w.rng.Chance(0.80) {
		if loc, ok := w.borderingAdjacent(x, y, i, Fuse); ok {
			w.grid.SetIndex(loc, Fire)
			return
		}
	}
	if w.rng.Chance(0.20) {
		if loc, ok := w.borderingAdjacent(x, y, i, Branch); ok {
			w.grid.SetIndex(loc, Fire)
			return
		}
	}
	if w.rng.Chance(0.20) {
		if loc, ok := w.borderingAdjacent(x, y, i, Leaf); ok {
			w.grid.SetIndex(loc, Fire)
			return
		}
	}

	// Wax catches slowly and sheds a falling drip beneath the lower of the
	// two cells involved.
	if w.rng.Chance(0.01) {
		if loc, ok := w.bordering(x, y, i, Wax); ok {
			w.grid.SetIndex(loc, Fire)
			lowY, lowI := y, i
			if loc > i {
				_, lowY = w.grid.Coords(loc)
				lowI = loc
			}
			if bi, ok := w.below(lowY, lowI, Background); ok {
				w.grid.SetIndex(bi, FallingWax)
			}
			return
		}
	}

	// Flames climb: the cell above catches while this one keeps burning.
	if w.rng.Chance(0.50) {
		if ai, ok := w.above(y, i, Background); ok {
			w.grid.SetIndex(ai, Fire)
			return
		}
	}
	if w.rng.Chance(0.20) {
		if loc, ok := w.borderingAdjacent(x, y, i, Oil); ok {
			w.grid.SetIndex(loc, Fire)
			return
		}
	}

	if w.rng.Chance(0.40) && !w.fireHasFuel(x, y) {
		w.grid.SetIndex(i, Background)
	}
}

// fireHasFuel scans the 8-neighborhood for anything that keeps a flame
// alive. Wax only counts orthogonally and each oil cell gets a 50% save.
func (w *World) fireHasFuel(x, y int) bool {
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
			switch w.grid.Get(nx, ny) {
			case Plant, Fuse, Branch, Leaf:
				return true
			case Wax:
				if dx == 0 || dy == 0 {
					return true
				}
			case Oil:
				if w.rng.Chance(0.50) {
					return true
				}
			}
		}
	}
	return false
}

func (w *World) stepSalt(x, y, i int) {
	if w.gravity(x, y, i, true, 0.95, w.fallIntoVoid) {
		return
	}
	if w.transform(x, y, i, Water, SaltWater, 0.25, 0.50) {
		return
	}
	w.densitySink(x, y, i, SaltWater, true, 0.25)
}

func (w *World) stepOil(x, y, i int) {
	if w.rng.Chance(0.30) {
		if _, ok := w.bordering(x, y, i, Fire); ok {
			w.igniteBorder(x, y, i)
			return
		}
	}
	w.gravity(x, y, i, true, 0.95, w.fallIntoVoid)
}

func (w *World) stepRock(x, y, i int) {
	if w.densitySink(x, y, i, Water, false, 0.95) {
		return
	}
	if w.densitySink(x, y, i, Oil, false, 0.95) {
		return
	}
	w.gravity(x, y, i, false, 0.99, w.fallIntoVoid)

	// Rock slowly cooks the oil resting on it into methane. Either side of
	// the contact may convert.
	if w.rng.Chance(0.01) && w.rng.Chance(0.20) {
		if loc, ok := w.above(y, i, Oil); ok {
			if w.rng.Chance(0.50) {
				w.grid.SetIndex(loc, Methane)
			} else {
				w.grid.SetIndex(i, Methane)
			}
		}
	}
}

func (w *World) stepIce(x, y, i int) {
	if w.surroundedBy(x, y, i, Ice) {
		return
	}
	if w.rng.Chance(0.01) {
		if _, ok := w.bordering(x, y, i, Water); ok {
			w.grid.SetIndex(i, Water)
			return
		}
	}
	if w.rng.Chance(0.70) {
		if loc, ok := w.bordering(x, y, i, Steam); ok {
			w.grid.SetIndex(i, Water)
			if w.rng.Chance(0.50) {
				w.grid.SetIndex(loc, Water)
			}
			return
		}
	}
	if w.rng.Chance(0.10) {
		if _, ok := w.bordering(x, y, i, Salt); ok {
			w.grid.SetIndex(i, Water)
			return
		}
		if _, ok := w.bordering(x, y, i, SaltWater); ok {
			w.grid.SetIndex(i, Water)
			return
		}
	}
	if w.rng.Chance(0.50) {
		if _, ok := w.bordering(x, y, i, Fire); ok {
			w.grid.SetIndex(i, Water)
			return
		}
	}
	if w.rng.Chance(0.50) {
		if _, ok := w.bordering(x, y, i, Lava); ok {
			w.grid.SetIndex(i, Water)
		}
	}
}

// lavaImmune lists what lava cannot set alight.
func lavaImmune(e Element) bool {
	switch e {
	case Lava, Background, Fire, Wall, Rock, Water, Steam:
		return true
	}
	return false
}

func (w *World) stepLava(x, y, i int) {
	if loc, ok := w.bordering(x, y, i, Water); ok {
		w.grid.SetIndex(loc, Steam)
		w.grid.SetIndex(i, Rock)
		return
	}
	if loc, ok := w.bordering(x, y, i, SaltWater); ok {
		w.grid.SetIndex(loc, Steam)
		w.grid.SetIndex(i, Rock)
		return
	}

	if w.rng.Chance(0.25) {
		width := w.grid.Width()
		burn := func(ni int) {
			if !lavaImmune(w.grid.GetIndex(ni)) {
				w.grid.SetIndex(ni, Fire)
			}
		}
		if y > 0 {
			burn(i - width)
		}
		if y < w.grid.MaxY() {
			burn(i + width)
		}
		if x > 0 {
			burn(i - 1)
		}
		if x < w.grid.MaxX() {
			burn(i + 1)
		}
	}

	if w.rng.Chance(0.06) && y > 0 {
		if w.grid.GetIndex(i-w.grid.Width()) == Background {
			w.grid.SetIndex(i-w.grid.Width(), Fire)
			w.spawnAt(ArchetypeLavaBomb, x, y, i)
		}
	}

	// Steam bubbles through the melt.
	if y < w.grid.MaxY() {
		bi := i + w.grid.Width()
		if w.grid.GetIndex(bi) == Steam && w.rng.Chance(0.95) {
			w.grid.SetIndex(bi, Lava)
			w.grid.SetIndex(i, Steam)
			return
		}
	}

	w.gravity(x, y, i, true, 1.0, w.fallIntoVoid)
}

func (w *World) stepSteam(x, y, i int) {
	if w.rise(x, y, i, 0.70, 0.60, w.fallIntoVoid) {
		return
	}
	if w.rng.Chance(0.05) {
		if _, ok := w.bordering(x, y, i, Water); ok {
			w.grid.SetIndex(i, Water)
			return
		}
	}
	// Air cooling: only at a cloud's underside, where empty space is below
	// and more steam is packed above.
	if w.rng.Chance(0.05) && w.rng.Chance(0.40) {
		_, belowBG := w.below(y, i, Background)
		_, aboveBG := w.above(y, i, Background)
		if belowBG && !aboveBG {
			if w.rng.Chance(0.30) {
				w.grid.SetIndex(i, Water)
			} else {
				w.grid.SetIndex(i, Background)
			}
			return
		}
	}
	if w.rng.Chance(0.05) {
		if _, ok := w.bordering(x, y, i, Spout); ok {
			w.grid.SetIndex(i, Water)
			return
		}
	}
	if w.rng.Chance(0.01) && w.rng.Chance(0.05) {
		if _, ok := w.below(y, i, Steam); !ok {
			w.grid.SetIndex(i, Background)
		}
	}
}

func (w *World) stepPlant(x, y, i int) {
	if w.rng.Chance(0.50) {
		if loc, ok := w.borderingAdjacent(x, y, i, Water); ok {
			// Water pooled on soil is reserved for tree growth.
			_, ly := w.grid.Coords(loc)
			reserved := false
			if ly < w.grid.MaxY() {
				switch w.grid.GetIndex(loc + w.grid.Width()) {
				case Soil, WetSoil:
					reserved = true
				}
			}
			if !reserved {
				w.grid.SetIndex(loc, Plant)
				return
			}
		}
	}
	if w.rng.Chance(0.05) {
		if _, ok := w.bordering(x, y, i, Salt); ok {
			w.grid.SetIndex(i, Background)
		}
	}
}

func (w *World) stepGunpowder(x, y, i int) {
	if w.rng.Chance(0.95) {
		if _, ok := w.bordering(x, y, i, Fire); ok {
			w.gunpowderBlast(x, y, i)
			return
		}
	}
	w.gravity(x, y, i, true, 0.95, w.fallIntoVoid)
}

// gunpowderBlast stamps the 3x3 block around the charge. Most blasts burn;
// the rest scatter unburnt grains. A burning blast may throw fire two cells
// out, where resident gunpowder survives a coin flip.
func (w *World) gunpowderBlast(x, y, i int) {
	burn := w.rng.Chance(0.60)
	replace := Gunpowder
	if burn {
		replace = Fire
	}

	width := w.grid.Width()
	w.grid.SetIndex(i, replace)
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
			w.grid.SetIndex(ny*width+nx, replace)
		}
	}

	if burn && w.rng.Chance(0.40) {
		stamp := func(nx, ny int) {
			if !w.grid.InBounds(nx, ny) {
				return
			}
			ni := ny*width + nx
			if w.grid.GetIndex(ni) != Gunpowder || w.rng.Chance(0.50) {
				w.grid.SetIndex(ni, Fire)
			}
		}
		stamp(x, y-2)
		stamp(x, y+2)
		stamp(x-2, y)
		stamp(x+2, y)
	}
}

func (w *World) stepConcrete(x, y, i int) {
	if w.densitySink(x, y, i, Water, true, 0.35) {
		return
	}
	if w.densitySink(x, y, i, SaltWater, true, 0.35) {
		return
	}
	if w.rng.Chance(0.10) && w.rng.Chance(0.10) {
		if _, ok := w.borderingAdjacent(x, y, i, Wall); ok {
			w.grid.SetIndex(i, Wall)
			return
		}
	}
	if w.gravity(x, y, i, true, 0.95, w.fallIntoVoid) {
		return
	}
	if w.rng.Chance(0.10) && w.rng.Chance(0.10) && w.rng.Chance(0.05) {
		w.grid.SetIndex(i, Wall)
	}
}

func (w *World) stepNitro(x, y, i int) {
	if w.gravity(x, y, i, true, 0.95, w.fallIntoVoid) {
		return
	}
	if w.surroundedBy(x, y, i, Nitro) {
		return
	}
	if _, ok := w.borderingAdjacent(x, y, i, Fire); ok {
		if w.rng.Chance(0.30) {
			w.spawnAt(ArchetypeNitroSpark, x, y, i)
			w.igniteBorder(x, y, i)
			return
		}
		if w.rng.Chance(0.20) {
			w.grid.SetIndex(i, Fire)
			return
		}
	}
	if w.densitySink(x, y, i, Oil, true, 0.25) {
		return
	}
	if w.densitySink(x, y, i, Water, true, 0.25) {
		return
	}
	if w.densitySink(x, y, i, SaltWater, true, 0.25) {
		return
	}
	w.densitySink(x, y, i, Pollen, true, 0.25)
}

func (w *World) stepNapalm(x, y, i int) {
	if w.rng.Chance(0.25) {
		if _, ok := w.bordering(x, y, i, Fire); ok {
			w.spawnAt(ArchetypeNapalmBlob, x, y, i)
			w.grid.SetIndex(i, Fire)
			return
		}
	}
	w.gravity(x, y, i, true, 0.95, w.fallIntoVoid)
}

// acidImmune lists what acid cannot eat through.
func acidImmune(e Element) bool {
	switch e {
	case Acid, Background, Water, SaltWater, Ice, ChilledIce, Steam, Cryo:
		return true
	}
	return false
}

func (w *World) stepAcid(x, y, i int) {
	if w.rng.Chance(0.10) {
		width := w.grid.Width()
		candidates := [4]int{-1, -1, -1, -1}
		if y > 0 {
			candidates[0] = i - width
		}
		if y < w.grid.MaxY() {
			candidates[1] = i + width
		}
		if x > 0 {
			candidates[2] = i - 1
		}
		if x < w.grid.MaxX() {
			candidates[3] = i + 1
		}
		// Shuffle the vertical and horizontal pairs so repeated etching
		// does not carve in one preferred direction.
		if w.rng.Bool() {
			candidates[0], candidates[1] = candidates[1], candidates[0]
		}
		if w.rng.Bool() {
			candidates[2], candidates[3] = candidates[3], candidates[2]
		}

		for _, pos := range candidates {
			if pos < 0 {
				continue
			}
			e := w.grid.GetIndex(pos)
			if acidImmune(e) {
				continue
			}
			if pos != i+width {
				w.grid.SetIndex(pos, Background)
				return
			}
			// Eating downward carries the acid along; walls resist and
			// sometimes neutralize it.
			w.grid.SetIndex(i, Background)
			if e != Wall || w.rng.Chance(0.75) {
				w.grid.SetIndex(pos, Acid)
			}
			return
		}
	}

	if w.densityLiquid(x, y, i, Water, 0.25, 0.30) {
		return
	}
	if w.densityLiquid(x, y, i, SaltWater, 0.25, 0.30) {
		return
	}
	w.gravity(x, y, i, true, 1.0, w.fallIntoVoid)
}

func (w *World) stepCryo(x, y, i int) {
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
			ni := ny*w.grid.Width() + nx
			switch w.grid.GetIndex(ni) {
			case Water:
				w.grid.SetIndex(ni, Ice)
				w.grid.SetIndex(i, Ice)
				return
			case Ice:
				if w.rng.Chance(0.01) && w.rng.Chance(0.05) {
					w.grid.SetIndex(ni, ChilledIce)
					w.grid.SetIndex(i, ChilledIce)
				} else {
					w.grid.SetIndex(ni, Ice)
					w.grid.SetIndex(i, Ice)
				}
				return
			case Wall, Wax, Plant, C4:
				w.grid.SetIndex(i, Ice)
				return
			case Lava:
				w.grid.SetIndex(i, Background)
				w.grid.SetIndex(ni, Rock)
				return
			}
		}
	}

	w.gravity(x, y, i, true, 0.95, w.fallIntoVoid)

	// Packed cryo with no air contact can freeze on its own.
	if w.rng.Chance(0.01) && w.rng.Chance(0.50) {
		if _, ok := w.bordering(x, y, i, Background); !ok && !w.surroundedBy(x, y, i, Cryo) {
			w.grid.SetIndex(i, Ice)
		}
	}
}

func (w *World) stepChilledIce(x, y, i int) {
	if w.rng.Chance(0.06) {
		w.grid.SetIndex(i, Ice)
		return
	}
	for _, warm := range [...]Element{Salt, SaltWater, Lava, Fire, Steam} {
		if _, ok := w.bordering(x, y, i, warm); ok {
			w.grid.SetIndex(i, Ice)
			return
		}
	}
}

// methanePuffNear reports whether a live methane puff sits within reach of
// cell (x, y). Each nearby puff gets its own coin so bigger fronts spread
// faster.
func (w *World) methanePuffNear(x, y int) bool {
	if w.pool == nil || !w.pool.AnyAlive(ArchetypeMethanePuff) {
		return false
	}
	const reach = 8.0
	for _, idx := range w.pool.Active() {
		p := w.pool.Get(idx)
		if p.Archetype != ArchetypeMethanePuff {
			continue
		}
		dx := p.X - float64(x)
		dy := p.Y - float64(y)
		if dx*dx+dy*dy <= reach*reach && w.rng.Chance(0.50) {
			return true
		}
	}
	return false
}

// gasPermeable lists what methane can bubble up through.
func gasPermeable(e Element) bool {
	switch e {
	case Sand, Water, Salt, SaltWater, Oil, Gunpowder, Concrete, Rock:
		return true
	}
	return false
}

func (w *World) stepMethane(x, y, i int) {
	ignite := w.methanePuffNear(x, y)
	if !ignite && w.rng.Chance(0.25) {
		_, ignite = w.bordering(x, y, i, Fire)
	}
	if ignite {
		w.spawnAt(ArchetypeMethanePuff, x, y, i)
		w.grid.SetIndex(i, Fire)
		return
	}

	if w.rise(x, y, i, 0.25, 0.65, w.fallIntoVoid) {
		return
	}

	if w.rng.Chance(0.70) && y > 0 {
		ai := i - w.grid.Width()
		above := w.grid.GetIndex(ai)
		if gasPermeable(above) {
			w.grid.SetIndex(ai, Methane)
			w.grid.SetIndex(i, above)
		}
	}
}

func (w *World) stepSoil(x, y, i int) {
	if w.gravity(x, y, i, false, 0.99, w.fallIntoVoid) {
		return
	}
	if w.densitySink(x, y, i, Water, true, 0.50) {
		return
	}
	if w.densitySink(x, y, i, SaltWater, true, 0.50) {
		return
	}
	if w.densitySink(x, y, i, Pollen, true, 0.50) {
		return
	}
	if w.rng.Chance(0.25) {
		if loc, ok := w.borderingAdjacent(x, y, i, Nitro); ok {
			w.grid.SetIndex(loc, ChargedNitro)
			return
		}
	}
	if w.rng.Chance(0.15) {
		if loc, ok := w.aboveAdjacent(x, y, i, Water); ok {
			w.grid.SetIndex(loc, Background)
			w.grid.SetIndex(i, WetSoil)
		}
	}
}

func (w *World) stepWetSoil(x, y, i int) {
	if w.rng.Chance(0.15) {
		if loc, ok := w.aboveAdjacent(x, y, i, Water); ok {
			w.grid.SetIndex(loc, Background)
		}
	}
	if w.gravity(x, y, i, false, 0.99, w.fallIntoVoid) {
		return
	}
	if w.densitySink(x, y, i, Water, true, 0.50) {
		return
	}
	if w.densitySink(x, y, i, SaltWater, true, 0.50) {
		return
	}

	if w.rng.Chance(0.05) {
		if w.rng.Chance(0.97) {
			if _, ok := w.borderingAdjacent(x, y, i, Water); !ok {
				w.grid.SetIndex(i, Soil)
			}
			return
		}
		if w.rng.Chance(0.35) {
			return
		}
		// Sprout: needs headroom and soil or wall to root into.
		if _, ok := w.aboveAdjacent(x, y, i, Background); ok {
			_, soilBelow := w.belowAdjacent(x, y, i, Soil)
			_, wallBelow := w.belowAdjacent(x, y, i, Wall)
			if soilBelow || wallBelow {
				w.startTree(x, y)
				w.grid.SetIndex(i, Soil)
			}
		}
	}
}

func (w *World) stepThermite(x, y, i int) {
	if w.surroundedByAdjacent(x, y, i, Thermite) {
		return
	}
	if w.rng.Chance(0.50) {
		if _, ok := w.borderingAdjacent(x, y, i, Fire); ok {
			w.grid.SetIndex(i, BurningThermite)
			return
		}
	}
	if w.densitySink(x, y, i, Water, false, 0.95) {
		return
	}
	if w.densitySink(x, y, i, SaltWater, false, 0.95) {
		return
	}
	if w.densitySink(x, y, i, Oil, false, 0.95) {
		return
	}
	w.gravity(x, y, i, false, 0.99, w.fallIntoVoid)
}

// thermiteProof lists what a thermite burn front leaves alone.
func thermiteProof(e Element) bool {
	switch e {
	case Thermite, BurningThermite, Lava, Wall:
		return true
	}
	return false
}

func (w *World) stepBurningThermite(x, y, i int) {
	width := w.grid.Width()
	if y > 0 && !thermiteProof(w.grid.GetIndex(i-width)) {
		w.grid.SetIndex(i-width, Fire)
	}
	if x > 0 && !thermiteProof(w.grid.GetIndex(i-1)) {
		w.grid.SetIndex(i-1, Fire)
	}
	if x < w.grid.MaxX() && !thermiteProof(w.grid.GetIndex(i+1)) {
		w.grid.SetIndex(i+1, Fire)
	}

	if w.rng.Chance(0.02) && w.rng.Chance(0.07) {
		w.spawnAt(ArchetypeNitroBeam, x, y, i)
		w.grid.SetIndex(i, Fire)
		return
	}
	if w.rng.Chance(0.02) {
		w.grid.SetIndex(i, Fire)
		return
	}

	if w.rng.Chance(0.08) {
		if loc, ok := w.adjacent(x, i, Wall); ok {
			w.grid.SetIndex(loc, Background)
		}
		if loc, ok := w.below(y, i, Wall); ok {
			w.grid.SetIndex(loc, Background)
		}
	}

	// Clear the flame underneath so the burn keeps sinking.
	if loc, ok := w.below(y, i, Fire); ok {
		w.grid.SetIndex(loc, Background)
	}

	if w.gravity(x, y, i, false, 0.99, w.fallIntoVoid) {
		return
	}
	if w.densitySink(x, y, i, Water, false, 0.95) {
		return
	}
	if w.densitySink(x, y, i, SaltWater, false, 0.95) {
		return
	}
	w.densitySink(x, y, i, Oil, false, 0.95)
}

// radialBurst walks evenly spaced rays out of the center, setting fire to
// anything open or flammable along each one.
func (w *World) radialBurst(x, y, radius, spokes int) {
	for dir := 0; dir < spokes; dir++ {
		angle := float64(dir) / float64(spokes) * 2 * math.Pi
		dx, dy := math.Cos(angle), math.Sin(angle)
		for step := 1; step <= radius; step++ {
			nx := x + int(math.Round(dx*float64(step)))
			ny := y + int(math.Round(dy*float64(step)))
			if !w.grid.InBounds(nx, ny) {
				continue
			}
			ni := w.grid.Index(nx, ny)
			switch w.grid.GetIndex(ni) {
			case Background, Plant, Wax, Oil, Napalm:
				w.grid.SetIndex(ni, Fire)
			}
		}
	}
}

func (w *World) stepMystery(x, y, i int) {
	if w.rng.Chance(0.50) {
		return
	}
	if _, ok := w.borderingAdjacent(x, y, i, Sand); ok {
		spokes := 5 + w.rng.IntN(14)
		w.radialBurst(x, y, 10, spokes)
		if w.pool != nil {
			w.spawnStarBurst(float64(x), float64(y), i)
		}
		w.grid.SetIndex(i, Background)
		return
	}
	if _, ok := w.borderingAdjacent(x, y, i, Salt); ok {
		w.radialBurst(x, y, 15, 16)
		w.spawnAt(ArchetypeMagicSpiral, x, y, i)
		w.grid.SetIndex(i, Background)
		return
	}
	w.gravity(x, y, i, true, 0.95, w.fallIntoVoid)
}

func (w *World) stepChargedNitro(x, y, i int) {
	if w.gravity(x, y, i, true, 0.95, w.fallIntoVoid) {
		return
	}
	if w.densitySink(x, y, i, Soil, true, 0.25) {
		return
	}
	if w.densitySink(x, y, i, WetSoil, true, 0.25) {
		return
	}
	if w.densitySink(x, y, i, Nitro, true, 0.25) {
		return
	}
	if w.densitySink(x, y, i, Pollen, true, 0.25) {
		return
	}
	if _, ok := w.borderingAdjacent(x, y, i, Fire); ok {
		w.spawnAt(ArchetypeNitroBeam, x, y, i)
		w.grid.SetIndex(i, Fire)
	}
}

func (w *World) stepLeaf(x, y, i int) {
	if w.rng.Chance(0.05) {
		if _, ok := w.borderingAdjacent(x, y, i, Fire); ok {
			w.grid.SetIndex(i, Fire)
			return
		}
	}
	if w.rng.Chance(0.20) {
		if _, ok := w.borderingAdjacent(x, y, i, Salt); ok {
			w.grid.SetIndex(i, Background)
			return
		}
	}
	if w.rng.Chance(0.01) && w.rng.Chance(0.09) {
		w.producer(x, y, i, Pollen, false, 1.0)
	}
}
