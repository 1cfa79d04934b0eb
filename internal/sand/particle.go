package sand

import "math"

// PoolCapacity is the default slot count. Tree growth is the heaviest
// consumer; anything beyond capacity degrades to in-place effects rather
// than failing.
const PoolCapacity = 2048

// Archetype selects a particle's behavior.
type Archetype uint8

const (
	ArchetypeNone Archetype = iota
	ArchetypeNitroSpark
	ArchetypeNapalmBlob
	ArchetypeC4Flash
	ArchetypeLavaBomb
	ArchetypeMagicStar
	ArchetypeMagicSpiral
	ArchetypeMethanePuff
	ArchetypeTree
	ArchetypeNitroBeam
	ArchetypeNukeFlash

	// NumArchetypes is one past the last valid archetype.
	NumArchetypes
)

var archetypeNames = [NumArchetypes]string{
	ArchetypeNone:        "none",
	ArchetypeNitroSpark:  "nitro-spark",
	ArchetypeNapalmBlob:  "napalm-blob",
	ArchetypeC4Flash:     "c4-flash",
	ArchetypeLavaBomb:    "lava-bomb",
	ArchetypeMagicStar:   "magic-star",
	ArchetypeMagicSpiral: "magic-spiral",
	ArchetypeMethanePuff: "methane-puff",
	ArchetypeTree:        "tree",
	ArchetypeNitroBeam:   "nitro-beam",
	ArchetypeNukeFlash:   "nuke-flash",
}

// String returns the archetype's name.
func (a Archetype) String() string {
	if a >= NumArchetypes {
		return "unknown"
	}
	return archetypeNames[a]
}

// Particle is one short-lived effect entity, independent of grid cells. The
// archetype-specific state lives in payload, a typed value rebuilt on every
// (re)activation so a reused slot can never observe its previous occupant.
type Particle struct {
	Archetype Archetype

	InitX, InitY float64
	X, Y         float64
	PrevX, PrevY float64
	InitIndex    int

	Color    Element
	Velocity float64
	Angle    float64
	VX, VY   float64
	Size     float64

	Iterations int

	active      bool
	initialized bool
	payload     any
}

// SetVelocity resolves a magnitude and angle into component velocities.
func (p *Particle) SetVelocity(velocity, angle float64) {
	p.Velocity = velocity
	p.Angle = angle
	p.VX = velocity * math.Cos(angle)
	p.VY = velocity * math.Sin(angle)
}

// Active reports whether the slot is in use.
func (p *Particle) Active() bool { return p.active }

// Payload returns the archetype-specific state, nil while inactive or for
// archetypes that carry none.
func (p *Particle) Payload() any { return p.payload }

func (p *Particle) offCanvas(maxX, maxY float64) bool {
	return p.X < 0 || p.X > maxX || p.Y < 0 || p.Y > maxY
}

// reset returns the slot to its pristine inactive state. Everything is
// cleared, including the payload, so no archetype data survives.
func (p *Particle) reset() {
	*p = Particle{InitX: -1, InitY: -1, X: -1, Y: -1, PrevX: -1, PrevY: -1, Color: Fire}
}

// Pool is a fixed-capacity slab of particle slots. Every slot is on exactly
// one of the two index lists (active or free), and the per-archetype counts
// track activations exactly so "any particle of type T alive" is O(1).
type Pool struct {
	slots  []Particle
	active []int
	free   []int
	counts [NumArchetypes]int
}

// NewPool allocates a pool with the given capacity (PoolCapacity when
// non-positive). Capacity is fixed for the pool's lifetime.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = PoolCapacity
	}
	p := &Pool{
		slots: make([]Particle, capacity),
		free:  make([]int, capacity),
	}
	for i := range p.slots {
		p.slots[i].reset()
		p.free[i] = i
	}
	return p
}

// Capacity returns the fixed slot count.
func (p *Pool) Capacity() int { return len(p.slots) }

// Spawn activates a slot at (x, y) with the given archetype. The slot is
// left uninitialized; the archetype's init runs lazily on the first update.
// An exhausted pool returns ok=false — a normal outcome the caller handles
// by falling back to an in-place effect.
func (p *Pool) Spawn(a Archetype, x, y float64, gridIndex int) (int, bool) {
	if len(p.free) == 0 {
		return 0, false
	}
	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	slot := &p.slots[idx]
	slot.reset()
	slot.Archetype = a
	slot.InitX, slot.InitY = x, y
	slot.X, slot.Y = x, y
	slot.PrevX, slot.PrevY = x, y
	slot.InitIndex = gridIndex
	slot.active = true

	p.active = append(p.active, idx)
	p.counts[a]++
	return idx, true
}

// Deactivate returns a slot to the free list and clears it completely.
func (p *Pool) Deactivate(idx int) {
	if idx < 0 || idx >= len(p.slots) {
		return
	}
	slot := &p.slots[idx]
	if !slot.active {
		return
	}
	p.counts[slot.Archetype]--
	for pos, ai := range p.active {
		if ai == idx {
			p.active = append(p.active[:pos], p.active[pos+1:]...)
			break
		}
	}
	slot.reset()
	p.free = append(p.free, idx)
}

// Retype switches a live slot to a new archetype, resetting its iteration
// count and payload so the new behavior starts clean. Counts stay exact.
func (p *Pool) Retype(idx int, a Archetype) {
	if idx < 0 || idx >= len(p.slots) {
		return
	}
	slot := &p.slots[idx]
	if !slot.active {
		return
	}
	p.counts[slot.Archetype]--
	p.counts[a]++
	slot.Archetype = a
	slot.Iterations = 0
	slot.initialized = false
	slot.payload = nil
}

// Active returns the indices of live slots. The slice is owned by the pool;
// callers that deactivate while iterating must copy it first.
func (p *Pool) Active() []int { return p.active }

// Get returns the slot at idx, or nil when out of range.
func (p *Pool) Get(idx int) *Particle {
	if idx < 0 || idx >= len(p.slots) {
		return nil
	}
	return &p.slots[idx]
}

// CountOf returns how many live particles carry the archetype.
func (p *Pool) CountOf(a Archetype) int {
	if a >= NumArchetypes {
		return 0
	}
	return p.counts[a]
}

// AnyAlive reports whether at least one particle of the archetype is live.
func (p *Pool) AnyAlive(a Archetype) bool { return p.CountOf(a) > 0 }

// Len returns the number of live particles.
func (p *Pool) Len() int { return len(p.active) }
