package sand

// Brush operations. Paint works in grid coordinates with a circular brush;
// PaintLine sweeps it along a Bresenham line so fast mouse drags leave no
// gaps.

// Paint stamps a filled circle of the element centered on (cx, cy). When
// overwrite is false only Background cells take the stamp, so drawing adds
// to a scene instead of carving through it. Painting RainbowSand records
// placement counters for hue cycling.
func (w *World) Paint(cx, cy, radius int, e Element, overwrite bool) {
	if e >= NumElements {
		return
	}
	if radius < 0 {
		radius = 0
	}
	if e == RainbowSand {
		w.bumpRainbow()
	}

	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y > w.grid.MaxY() {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x := cx + dx
			if x < 0 || x > w.grid.MaxX() {
				continue
			}
			i := w.grid.Index(x, y)
			if !overwrite && w.grid.GetIndex(i) != Background {
				continue
			}
			w.grid.SetIndex(i, e)
			if e == RainbowSand {
				w.rainbow[i] = w.rainbowCounter
			} else {
				delete(w.rainbow, i)
			}
		}
	}
}

// PaintLine sweeps the circular brush from (x0, y0) to (x1, y1).
func (w *World) PaintLine(x0, y0, x1, y1, radius int, e Element, overwrite bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		w.Paint(x0, y0, radius, e, overwrite)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Erase clears a circle back to Background.
func (w *World) Erase(cx, cy, radius int) {
	w.Paint(cx, cy, radius, Background, true)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
