package sand

import "math"

// Archetype behaviors. Init runs lazily on a particle's first update so
// spawn stays cheap inside the rule scan; callers that configure a slot by
// hand (star-burst spokes, tree children) mark it initialized themselves.

// Downward acceleration for lava bombs. The trajectory is evaluated in
// closed form from the launch state, so long-lived bombs accumulate no
// integration drift.
const lavaBombAccel = 0.06

// magicColors is the palette mystery bursts draw from.
var magicColors = [...]Element{Wall, Plant, Spout, Well, Wax, Ice, Branch, Leaf}

type napalmPayload struct {
	lifespan int
}

type lavaPayload struct {
	initVY float64
}

type spiralPayload struct {
	maxRadius float64
	theta     float64
	speed     float64
	spacing   float64
	radius    float64
}

type beamPayload struct {
	minY float64
}

// initParticle fills in the archetype's starting state.
func (w *World) initParticle(p *Particle) {
	switch p.Archetype {
	case ArchetypeNitroSpark:
		p.Color = Fire
		p.SetVelocity(5+w.rng.Float64()*10, w.rng.Float64()*2*math.Pi)
		p.Size = 2 + w.rng.Float64()*7

	case ArchetypeNapalmBlob:
		p.Color = Fire
		p.Size = w.rng.Float64()*8 + 6
		p.VX = w.rng.Float64()*8 - 4
		p.VY = -(w.rng.Float64()*4 + 4)
		p.payload = &napalmPayload{lifespan: 5 + w.rng.IntN(11)}

	case ArchetypeC4Flash:
		p.Color = Fire
		switch r := w.rng.Float64() * 10000; {
		case r < 9000:
			p.Size = w.rng.Float64()*10 + 3
		case r < 9500:
			p.Size = w.rng.Float64()*32 + 3
		case r < 9800:
			p.Size = w.rng.Float64()*64 + 3
		default:
			p.Size = w.rng.Float64()*128 + 3
		}

	case ArchetypeLavaBomb:
		w.initLavaBomb(p)

	case ArchetypeMagicStar:
		// Spokes are normally configured by the burst spawner; a bare
		// spawn gets a single spoke along its preset angle.
		p.Color = magicColors[w.rng.IntN(len(magicColors))]
		p.SetVelocity(7+w.rng.Float64()*3, p.Angle)
		p.Size = 4 + w.rng.Float64()*4

	case ArchetypeMagicSpiral:
		w.initMagicSpiral(p)

	case ArchetypeMethanePuff:
		p.Color = Fire
		p.Size = 10 + w.rng.Float64()*10

	case ArchetypeTree:
		w.initTreeParticle(p)

	case ArchetypeNitroBeam:
		w.initNitroBeam(p)

	case ArchetypeNukeFlash:
		p.Color = Fire
		maxDim := float64(max(w.grid.Width(), w.grid.Height()))
		p.Size = maxDim/4 + w.rng.Float64()*maxDim/8
	}
}

func (w *World) initLavaBomb(p *Particle) {
	p.Color = Fire

	// Nudge near-vertical launches sideways so bombs arc visibly instead
	// of landing back in the pool.
	angle := math.Pi/4 + w.rng.Float64()*math.Pi/2
	if w.rng.Chance(0.75) && math.Abs(math.Pi/2-angle) < math.Pi/18 {
		if angle > math.Pi/2 {
			angle += math.Pi / 18
		} else {
			angle -= math.Pi / 18
		}
	}

	p.VX = (1 + w.rng.Float64()*3) * math.Cos(angle)
	p.VY = (-4*w.rng.Float64() - 3) * math.Sin(angle)
	p.payload = &lavaPayload{initVY: p.VY}

	p.Size = 4 + w.rng.Float64()*3
	p.Y -= p.Size
}

func (w *World) initMagicSpiral(p *Particle) {
	p.Color = magicColors[w.rng.IntN(len(magicColors))]
	p.Size = 4 + w.rng.Float64()*8

	p.X = float64(w.grid.Width()) / 2
	p.Y = float64(w.grid.Height()) / 2
	p.InitX = p.X
	p.InitY = p.Y

	maxDim := float64(max(w.grid.Width(), w.grid.Height()))
	spacing := 25 + w.rng.Float64()*55
	p.payload = &spiralPayload{
		maxRadius: math.Sqrt(maxDim*maxDim+maxDim*maxDim)/2 + p.Size,
		theta:     0,
		speed:     20,
		spacing:   spacing,
		radius:    spacing,
	}
}

func (w *World) initNitroBeam(p *Particle) {
	p.Color = Fire
	p.Size = 1.5
	p.VX = 0
	p.VY = -30

	// Pre-scan upward for the wall the beam will stop at. Striding keeps
	// this cheap on tall grids at the cost of occasionally overshooting a
	// thin wall, which reads fine on screen.
	pay := &beamPayload{minY: -1}
	width := w.grid.Width()
	step := (3 + w.rng.IntN(3)) * width
	for idx := p.InitIndex; idx > 0; idx -= step {
		if w.grid.GetIndex(idx) == Wall {
			pay.minY = float64(idx / width)
			break
		}
		if idx < step {
			break
		}
	}
	p.payload = pay
}

// runParticle advances one particle a tick and reports whether it is done.
func (w *World) runParticle(p *Particle) bool {
	p.Iterations++

	maxX := float64(w.grid.Width())
	maxY := float64(w.grid.Height())

	switch p.Archetype {
	case ArchetypeNitroSpark:
		p.X += p.VX
		p.Y += p.VY
		if p.Iterations%5 == 0 {
			p.Size /= 1.3
		}
		if p.Iterations%15 == 0 {
			p.VY += 10 * (float64(p.Iterations) / 5)
		}
		return p.Size < 1.75 || p.offCanvas(maxX, maxY)

	case ArchetypeNapalmBlob:
		p.X += p.VX
		p.Y += p.VY
		p.Size *= 1 + w.rng.Float64()*0.1
		pay, _ := p.payload.(*napalmPayload)
		return pay == nil || p.Iterations > pay.lifespan

	case ArchetypeC4Flash:
		if p.Iterations%3 == 0 {
			p.Size /= 3
			if p.Size <= 1 {
				return true
			}
		}
		return false

	case ArchetypeLavaBomb:
		p.X += p.VX
		if pay, ok := p.payload.(*lavaPayload); ok {
			t := float64(p.Iterations)
			p.Y = p.InitY + pay.initVY*t + lavaBombAccel*t*t/2
		} else {
			p.Y += p.VY
		}
		return p.offCanvas(maxX, maxY)

	case ArchetypeMagicStar:
		p.X += p.VX
		p.Y += p.VY
		return p.offCanvas(maxX, maxY)

	case ArchetypeMagicSpiral:
		pay, ok := p.payload.(*spiralPayload)
		if !ok {
			return true
		}
		pay.theta += pay.speed / pay.radius
		pay.radius = pay.theta / (2 * math.Pi) * pay.spacing
		p.X = pay.radius*math.Cos(pay.theta) + p.InitX
		p.Y = pay.radius*math.Sin(pay.theta) + p.InitY
		return pay.radius > pay.maxRadius

	case ArchetypeMethanePuff:
		return p.Iterations > 2

	case ArchetypeTree:
		return w.treeParticleStep(p)

	case ArchetypeNitroBeam:
		p.X += p.VX
		oldY := p.Y
		pay, _ := p.payload.(*beamPayload)
		if pay != nil && pay.minY >= 0 {
			p.Y = math.Max(p.Y+p.VY, pay.minY)
			if oldY > pay.minY && p.Y <= pay.minY {
				return true
			}
		} else {
			p.Y += p.VY
		}
		return p.Y < 0 || p.offCanvas(maxX, maxY)

	case ArchetypeNukeFlash:
		return p.Iterations > 4
	}

	return true
}

// spawnStarBurst launches a full ring of magic spokes sharing one color. A
// partially spawned ring from an exhausted pool is acceptable.
func (w *World) spawnStarBurst(x, y float64, gridIndex int) {
	spokes := 5 + w.rng.IntN(14)
	color := magicColors[w.rng.IntN(len(magicColors))]
	velocity := 7 + w.rng.Float64()*3
	size := 4 + w.rng.Float64()*4
	step := 2 * math.Pi / float64(spokes)

	for s := 0; s < spokes; s++ {
		idx, ok := w.pool.Spawn(ArchetypeMagicStar, x, y, gridIndex)
		if !ok {
			return
		}
		p := w.pool.Get(idx)
		p.Color = color
		p.SetVelocity(velocity, step*float64(s))
		p.Size = size
		p.initialized = true
	}
}
