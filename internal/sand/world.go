package sand

import (
	"image/color"

	"sandfall/internal/core"
)

// World owns the full simulation state: the element grid, the effect
// particle pool, free-standing tree branches, spigot feeders, and the
// placement counters that drive rainbow sand hues. It is single-threaded;
// callers serialize access.
type World struct {
	grid     *Grid
	pool     *Pool
	branches []branch
	spigots  [NumSpigots]Spigot

	// rainbow maps grid index -> placement counter for RainbowSand grains.
	// The counter advances every third placement tick so hues drift at a
	// readable pace.
	rainbow        map[int]uint32
	rainbowCounter uint32
	rainbowTicks   int

	rng          *core.RNG
	fallIntoVoid bool
	acc          core.StepAccumulator

	scratch []int
}

// Options configures a new world. Zero dimensions get clamped to 1 and a
// non-positive pool capacity falls back to PoolCapacity.
type Options struct {
	Width, Height int
	Seed          int64
	FallIntoVoid  bool
	PoolCapacity  int
}

// New builds an empty world with default spigots.
func New(o Options) *World {
	w := &World{
		grid:         NewGrid(o.Width, o.Height),
		pool:         NewPool(o.PoolCapacity),
		rainbow:      make(map[int]uint32),
		rng:          core.NewRNG(o.Seed),
		fallIntoVoid: o.FallIntoVoid,
		spigots:      defaultSpigots(),
	}
	return w
}

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Cells exposes the grid's backing slice for rendering.
func (w *World) Cells() []Element { return w.grid.Cells() }

// Grid returns the underlying grid.
func (w *World) Grid() *Grid { return w.grid }

// SetFallIntoVoid toggles whether the bottom edge swallows falling cells.
func (w *World) SetFallIntoVoid(v bool) { w.fallIntoVoid = v }

// FallIntoVoid reports the current bottom-edge mode.
func (w *World) FallIntoVoid() bool { return w.fallIntoVoid }

// ParticleCount returns the number of live effect particles.
func (w *World) ParticleCount() int { return w.pool.Len() }

// Tick runs one full simulation step: tree branches grow, spigots feed,
// the grid scan runs bottom-up, and every live particle advances.
func (w *World) Tick() {
	w.stepBranches()
	w.stepSpigots()
	w.scanGrid()
	w.stepParticles()
}

// Advance accumulates a fractional steps-per-frame scalar and runs however
// many whole ticks it yields. Zero pauses; values above one fast-forward.
func (w *World) Advance(speed float64) int {
	n := w.acc.Add(speed)
	for t := 0; t < n; t++ {
		w.Tick()
	}
	return n
}

// scanGrid visits every occupied cell bottom row to top row, alternating
// horizontal direction by row parity. The travel direction is anchored to
// the bottom row's parity so resizing does not flip the sweep. A cell that
// moved up-scan is not revisited this tick; a cell moved sideways in the
// travel direction can act again, which gives liquids their pour.
func (w *World) scanGrid() {
	maxY := w.grid.MaxY()
	maxX := w.grid.MaxX()
	width := w.grid.Width()
	dir := maxY & 1

	for y := maxY; y >= 0; y-- {
		row := y * width
		if y&1 == dir {
			for x := maxX; x >= 0; x-- {
				i := row + x
				if w.grid.GetIndex(i) == Background {
					continue
				}
				w.stepCell(x, y, i)
			}
		} else {
			for x := 0; x <= maxX; x++ {
				i := row + x
				if w.grid.GetIndex(i) == Background {
					continue
				}
				w.stepCell(x, y, i)
			}
		}
	}
}

// stepParticles advances the pool. The active list is copied first because
// tree particles fork children and finished particles deactivate mid-walk.
func (w *World) stepParticles() {
	w.scratch = append(w.scratch[:0], w.pool.Active()...)
	for _, idx := range w.scratch {
		p := w.pool.Get(idx)
		if p == nil || !p.active {
			continue
		}
		if !p.initialized {
			w.initParticle(p)
			p.initialized = true
		}
		if w.runParticle(p) {
			w.pool.Deactivate(idx)
		}
	}
}

// Clear empties the grid, branches, and rainbow counters. In-flight
// particles keep going; they burn out on their own within ticks.
func (w *World) Clear() {
	w.grid.Clear()
	w.branches = w.branches[:0]
	clear(w.rainbow)
}

// Resize replaces the grid wholesale. Everything keyed by grid index is
// stale afterwards, so particles, branches, and rainbow counters are
// discarded rather than remapped.
func (w *World) Resize(width, height int) {
	w.grid = NewGrid(width, height)
	w.branches = w.branches[:0]
	clear(w.rainbow)
	for _, idx := range append(w.scratch[:0], w.pool.Active()...) {
		w.pool.Deactivate(idx)
	}
}

// Nuke sets everything but walls alight and throws a screen-wide flash.
func (w *World) Nuke() {
	cells := w.grid.Cells()
	for i := range cells {
		switch cells[i] {
		case Background, Wall:
		default:
			cells[i] = Fire
		}
	}
	clear(w.rainbow)
	cx := float64(w.grid.Width()) / 2
	cy := float64(w.grid.Height()) / 2
	w.pool.Spawn(ArchetypeNukeFlash, cx, cy, w.grid.Index(int(cx), int(cy)))
}

// RainbowShift returns the placement counter for a RainbowSand grain, used
// by the renderer to derive its hue.
func (w *World) RainbowShift(i int) (uint32, bool) {
	t, ok := w.rainbow[i]
	return t, ok
}

// bumpRainbow advances the shared placement cadence: every third call the
// counter steps, so freshly placed grains shift hue together.
func (w *World) bumpRainbow() {
	w.rainbowTicks++
	if w.rainbowTicks >= 3 {
		w.rainbowCounter++
		w.rainbowTicks = 0
	}
}

// ParticleView is one particle resolved for rasterization.
type ParticleView struct {
	X, Y         float64
	PrevX, PrevY float64
	Size         float64
	Color        color.RGBA
	// Line particles draw as a stroke from the previous position; the
	// rest draw as filled circles.
	Line bool
}

// Particles returns the live particles in draw order.
func (w *World) Particles() []ParticleView {
	out := make([]ParticleView, 0, w.pool.Len())
	for _, idx := range w.pool.Active() {
		p := w.pool.Get(idx)
		line := p.Archetype == ArchetypeTree || p.Archetype == ArchetypeNitroBeam
		out = append(out, ParticleView{
			X:     p.X,
			Y:     p.Y,
			PrevX: p.PrevX,
			PrevY: p.PrevY,
			Size:  p.Size,
			Color: p.Color.Color(),
			Line:  line,
		})
	}
	return out
}
