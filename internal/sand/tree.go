package sand

import "math"

// Tree growth. Two hosts share one growth step: wet soil starts cheap
// free-standing branches tracked on the world, while pool-hosted tree
// particles additionally carry position history so the renderer can draw
// continuous limbs. Both stamp Branch cells as they advance and finish
// their final generation in Leaf.

type branch struct {
	x, y     float64
	angle    float64
	velocity float64
	size     float64

	generation  int
	maxBranches int
	spacing     int
	nextBranch  int
	branches    int
	species     int
	iterations  int

	// leaf marks a final-generation limb; its cells stamp as Leaf.
	leaf bool
}

type treePayload struct {
	branch
}

// newBranch rolls the starting parameters shared by both hosts. Species 0
// is the common two-pronged tree; species 1 forks three ways on tighter
// spacing.
func (w *World) newBranch(x, y float64) branch {
	spacing := 15 + w.rng.IntN(46)
	species := 1
	if w.rng.Chance(0.62) {
		species = 0
	}
	size := 3.0
	if w.rng.Bool() {
		size = 4.0
	}
	return branch{
		x:           x,
		y:           y,
		angle:       -math.Pi/2 - math.Pi/8 + w.rng.Float64()*math.Pi/4,
		velocity:    1 + w.rng.Float64()*0.5,
		size:        size,
		generation:  1,
		maxBranches: 1 + w.rng.IntN(3),
		spacing:     spacing,
		nextBranch:  spacing,
		species:     species,
	}
}

// startTree begins a free-standing tree at cell (x, y). Wet soil calls this.
func (w *World) startTree(x, y int) {
	w.branches = append(w.branches, w.newBranch(float64(x), float64(y)))
}

// childAngles returns the headings the species forks into.
func (w *World) childAngles(b *branch) []float64 {
	if b.species == 1 {
		spread := math.Pi/8 + w.rng.Float64()*math.Pi/16
		return []float64{b.angle, b.angle + spread, b.angle - spread}
	}
	spread := math.Pi/8 + w.rng.Float64()*math.Pi/4
	return []float64{b.angle + spread, b.angle - spread}
}

func (b *branch) spacingFactor() float64 {
	if b.species == 1 {
		return 0.6
	}
	return 0.9
}

// growStep advances the branch one tick, stamping cells as it goes. It
// returns any children forked this tick and whether the branch is finished.
func (w *World) growStep(b *branch) (children []branch, done bool) {
	b.iterations++

	b.x += math.Cos(b.angle) * b.velocity
	b.y += math.Sin(b.angle) * b.velocity

	xi, yi := int(b.x), int(b.y)
	if !w.grid.InBounds(xi, yi) {
		return nil, true
	}

	// Stop short of walls: probe half a limb-width ahead so thick limbs
	// never overdraw into masonry.
	px := int(b.x + math.Cos(b.angle)*b.size/2)
	py := int(b.y + math.Sin(b.angle)*b.size/2)
	if w.grid.Get(px, py) == Wall || w.grid.Get(xi, yi) == Wall {
		return nil, true
	}

	idx := w.grid.Index(xi, yi)
	if w.grid.GetIndex(idx) == Background {
		if b.leaf {
			w.grid.SetIndex(idx, Leaf)
		} else {
			w.grid.SetIndex(idx, Branch)
		}
	}

	if b.iterations >= b.nextBranch {
		b.branches++

		if b.maxBranches == 0 {
			w.tipLeaf(idx)
			return nil, true
		}

		spent := b.leaf || b.branches >= b.maxBranches
		childSpacing := int(float64(b.spacing) * b.spacingFactor())
		for _, angle := range w.childAngles(b) {
			children = append(children, branch{
				x:           b.x,
				y:           b.y,
				angle:       angle,
				velocity:    b.velocity,
				size:        math.Max(b.size-1, 2),
				generation:  b.generation + 1,
				maxBranches: b.maxBranches - 1,
				spacing:     childSpacing,
				nextBranch:  childSpacing,
				species:     b.species,
				leaf:        spent,
			})
		}

		if b.branches >= b.maxBranches {
			w.tipLeaf(idx)
			return children, true
		}

		if b.spacing > 45 {
			b.spacing = int(float64(b.spacing) * 0.8)
		}
		b.nextBranch = b.iterations + int(float64(b.spacing)*(0.65+w.rng.Float64()*0.35))
	}

	return children, false
}

// tipLeaf caps a finished limb with a leaf.
func (w *World) tipLeaf(idx int) {
	if w.grid.GetIndex(idx) == Branch {
		w.grid.SetIndex(idx, Leaf)
	}
}

// stepBranches advances every free-standing branch one tick. Children fork
// into the list for next tick; finished branches drop out.
func (w *World) stepBranches() {
	if len(w.branches) == 0 {
		return
	}
	live := w.branches[:0]
	var forked []branch
	for i := range w.branches {
		b := &w.branches[i]
		children, done := w.growStep(b)
		forked = append(forked, children...)
		if !done {
			live = append(live, *b)
		}
	}
	w.branches = append(live, forked...)
}

// initTreeParticle seeds a pool-hosted tree at the particle's position.
func (w *World) initTreeParticle(p *Particle) {
	b := w.newBranch(p.X, p.Y)
	p.Color = Branch
	p.Size = b.size
	p.SetVelocity(b.velocity, b.angle)
	p.payload = &treePayload{branch: b}
}

// treeParticleStep runs the shared growth step under pool hosting. Children
// become new tree particles; an exhausted pool simply prunes the fork.
func (w *World) treeParticleStep(p *Particle) bool {
	pay, ok := p.payload.(*treePayload)
	if !ok {
		return true
	}

	p.PrevX, p.PrevY = p.X, p.Y
	children, done := w.growStep(&pay.branch)
	p.X, p.Y = pay.x, pay.y
	if pay.leaf {
		p.Color = Leaf
	}

	for i := range children {
		c := children[i]
		idx, ok := w.pool.Spawn(ArchetypeTree, c.x, c.y, p.InitIndex)
		if !ok {
			break
		}
		cp := w.pool.Get(idx)
		cp.Color = Branch
		if c.leaf {
			cp.Color = Leaf
		}
		cp.Size = c.size
		cp.SetVelocity(c.velocity, c.angle)
		cp.payload = &treePayload{branch: c}
		cp.initialized = true
	}

	return done
}
