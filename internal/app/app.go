//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sandfall/internal/render"
	"sandfall/internal/sand"
	"sandfall/internal/savestore"
	"sandfall/internal/ui"
)

// palette is the element cycle order for the bracket keys. Everything but
// Background is placeable.
var palette = buildPalette()

func buildPalette() []sand.Element {
	out := make([]sand.Element, 0, sand.NumElements-1)
	for e := sand.Element(1); e < sand.NumElements; e++ {
		out = append(out, e)
	}
	return out
}

// Game adapts a sand.World to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
	store *savestore.Store

	element  sand.Element
	radius   int
	speed    float64
	paused   bool
	tickOnce bool

	cursorX, cursorY       int
	lastPaintX, lastPaintY int
	painting               bool
	stroked                bool

	note       string
	noteFrames int
}

// New constructs the interactive host around an already-configured world.
func New(world *sand.World, o Options) *Game {
	size := world.Size()
	scale := o.Scale
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(),
		overlay: ui.NewOverlay(scale),
		scale:   scale,
		store:   o.Store,
		element: o.Element,
		radius:  clampRadius(o.Radius),
		speed:   o.Speed,
	}
	if g.element == sand.Background || g.element >= sand.NumElements {
		g.element = sand.Sand
	}
	if g.speed <= 0 {
		g.speed = 1
	}
	return g
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()
	g.overlay.Update()

	if g.noteFrames > 0 {
		g.noteFrames--
		if g.noteFrames == 0 {
			g.note = ""
		}
	}

	if g.tickOnce {
		g.world.Tick()
		g.tickOnce = false
	} else if !g.paused {
		g.world.Advance(g.speed)
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.speed = min(g.speed+speedStep, maxSpeed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.speed = max(g.speed-speedStep, minSpeed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.cycleElement(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.cycleElement(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.world.Nuke()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.world.SetFallIntoVoid(!g.world.FallIntoVoid())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.quicksave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.quickload()
	}
}

func (g *Game) cycleElement(dir int) {
	for i, e := range palette {
		if e == g.element {
			g.element = palette[(i+dir+len(palette))%len(palette)]
			return
		}
	}
	g.element = sand.Sand
}

func (g *Game) handleMouse() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.radius = clampRadius(g.radius + int(wy))
	}

	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale
	g.cursorX, g.cursorY = cx, cy

	size := g.world.Size()
	inside := mx >= 0 && cx < size.W && my >= 0 && cy < size.H

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && inside {
		shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
		just := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		switch {
		case just && shift && g.stroked:
			// Shift-click rules a straight line from the last stroke end.
			g.world.PaintLine(g.lastPaintX, g.lastPaintY, cx, cy, g.radius, g.element, false)
		case !just && g.painting:
			// Sweep between frames so fast drags leave no gaps.
			g.world.PaintLine(g.lastPaintX, g.lastPaintY, cx, cy, g.radius, g.element, false)
		default:
			g.world.Paint(cx, cy, g.radius, g.element, false)
		}
		g.lastPaintX, g.lastPaintY = cx, cy
		g.painting = true
		g.stroked = true
	} else {
		g.painting = false
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) && inside {
		g.world.Erase(cx, cy, g.radius)
	}
}

func (g *Game) quicksave() {
	if g.store == nil {
		g.setNote("no save db")
		return
	}
	if err := g.store.Save(quicksaveSlot, g.world.Snapshot()); err != nil {
		g.setNote("save failed")
		return
	}
	g.setNote("saved")
}

func (g *Game) quickload() {
	if g.store == nil {
		g.setNote("no save db")
		return
	}
	snap, err := g.store.Load(quicksaveSlot)
	if err != nil {
		g.setNote("load failed")
		return
	}
	if err := g.world.Restore(snap); err != nil {
		g.setNote("load failed")
		return
	}
	g.setNote("loaded")
}

func (g *Game) setNote(s string) {
	g.note = s
	g.noteFrames = 120
}

// Draw renders the world, the guides, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.world.Size()
	if pw, ph := g.painter.Size(); pw != size.W || ph != size.H {
		// A restored snapshot may carry different dimensions.
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	g.painter.Blit(screen, g.world, g.scale)
	g.overlay.Draw(screen, g.world, g.cursorX, g.cursorY, g.radius)
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale, ui.Status{
		Element:   g.element.String(),
		Radius:    g.radius,
		Speed:     g.speed,
		Paused:    g.paused,
		Particles: g.world.ParticleCount(),
		Void:      g.world.FallIntoVoid(),
		Note:      g.note,
	})
}

// Layout returns the logical screen size: the scaled grid plus the HUD column.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + ui.PanelWidth, s.H * g.scale
}
