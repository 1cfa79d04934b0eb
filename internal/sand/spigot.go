package sand

// Spigots feed elements into a band across the top of the grid, evenly
// spaced along the width. Each cell of a spigot's band has an independent
// 10% chance per tick, which drizzles instead of pouring a solid block.

const (
	// NumSpigots is the number of configurable feeder slots.
	NumSpigots = 4
	// SpigotBand is how many top rows a spigot stamps into.
	SpigotBand = 10
	// DefaultSpigotSize is the width a slot starts with.
	DefaultSpigotSize = 5
	// MaxSpigotSize caps a slot's width. Zero disables the slot.
	MaxSpigotSize = 6
)

// Spigot is one feeder slot.
type Spigot struct {
	Element Element
	Size    int
}

func defaultSpigots() [NumSpigots]Spigot {
	return [NumSpigots]Spigot{
		{Element: RainbowSand, Size: DefaultSpigotSize},
		{Element: Water, Size: DefaultSpigotSize},
		{Element: Salt, Size: DefaultSpigotSize},
		{Element: Oil, Size: DefaultSpigotSize},
	}
}

// Spigots returns the current feeder configuration.
func (w *World) Spigots() [NumSpigots]Spigot { return w.spigots }

// SetSpigot reconfigures one feeder slot. Sizes clamp to [0, MaxSpigotSize];
// elements outside the spigot-valid set are rejected.
func (w *World) SetSpigot(slot int, e Element, size int) bool {
	if slot < 0 || slot >= NumSpigots {
		return false
	}
	if !e.SpigotValid() {
		return false
	}
	if size < 0 {
		size = 0
	}
	if size > MaxSpigotSize {
		size = MaxSpigotSize
	}
	w.spigots[slot] = Spigot{Element: e, Size: size}
	return true
}

// spigotPositions spaces the enabled slots evenly: equal gaps between
// neighbors and at both edges. A lone spigot centers.
func (w *World) spigotPositions() [][2]int {
	total := 0
	enabled := 0
	for _, s := range w.spigots {
		total += s.Size
		if s.Size > 0 {
			enabled++
		}
	}
	if enabled == 0 {
		return nil
	}

	available := w.grid.Width() - total
	if available < 0 {
		available = 0
	}
	spacing := available / 2
	if enabled > 1 {
		spacing = available / (enabled + 1)
	}

	positions := make([][2]int, 0, enabled)
	x := spacing
	for slot, s := range w.spigots {
		if s.Size == 0 {
			continue
		}
		positions = append(positions, [2]int{x, slot})
		x += s.Size + spacing
	}
	return positions
}

// SpigotZones returns the column span {start, width} of each enabled feeder,
// in slot order. UI guides use it to outline the feed bands.
func (w *World) SpigotZones() [][2]int {
	positions := w.spigotPositions()
	zones := make([][2]int, len(positions))
	for i, pos := range positions {
		zones[i] = [2]int{pos[0], w.spigots[pos[1]].Size}
	}
	return zones
}

// stepSpigots stamps each enabled feeder's band. RainbowSand feeders share
// the world's placement cadence so spigot-fed grains cycle hues too.
func (w *World) stepSpigots() {
	band := SpigotBand
	if w.grid.Height() < band {
		band = w.grid.Height()
	}

	for _, pos := range w.spigotPositions() {
		x0, slot := pos[0], pos[1]
		s := w.spigots[slot]
		if s.Element == RainbowSand {
			w.bumpRainbow()
		}

		x1 := x0 + s.Size
		if x1 > w.grid.Width() {
			x1 = w.grid.Width()
		}
		for y := 0; y < band; y++ {
			for x := x0; x < x1; x++ {
				if !w.rng.Chance(0.10) {
					continue
				}
				i := w.grid.Index(x, y)
				w.grid.SetIndex(i, s.Element)
				if s.Element == RainbowSand {
					w.rainbow[i] = w.rainbowCounter
				} else {
					delete(w.rainbow, i)
				}
			}
		}
	}
}
