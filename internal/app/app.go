//go:build ebiten

package app

import (
	"log"
	"time"

	"langton/internal/core"
	"langton/internal/render"
	"langton/internal/sims/ant"
	"langton/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxStepsPerTick caps catch-up work after a stall.
const maxStepsPerTick = 50000

// Game adapts the ant engine to the ebiten.Game interface.
type Game struct {
	engine   *ant.Engine
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	throttle *core.Throttle

	viewPx int
	preset int
	clock  func() time.Time
}

// New constructs a Game for the provided engine. The grid is drawn into a
// square of cfg.Size*cfg.Scale pixels regardless of later resizes.
func New(engine *ant.Engine, cfg *Config) *Game {
	size := engine.Size()
	painter := render.NewGridPainter(size.W, size.H, render.Palette)
	painter.Aged = cfg.Aged
	return &Game{
		engine:   engine,
		painter:  painter,
		hud:      ui.NewHUD(engine, cfg.HUD),
		overlay:  ui.NewOverlay(),
		throttle: core.NewThrottle(cfg.Speed),
		viewPx:   size.W * cfg.Scale,
		clock:    time.Now,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.TogglePause()
		g.throttle.Resync()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.engine.SetPaused(true)
		g.engine.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.engine.SetPaused(true)
		g.engine.StepBack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
		g.engine.SetPaused(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.nextPreset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		g.setMode(ant.ModeDiscovery)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		g.setMode(ant.ModeSimulation)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.painter.Aged = !g.painter.Aged
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.throttle.SetRate(g.throttle.Rate() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.throttle.SetRate(g.throttle.Rate() / 2)
	}

	g.overlay.Update()
	g.hud.Update(g.viewPx)

	n, delta := g.throttle.Due(g.clock())
	if g.engine.Paused() {
		return nil
	}
	g.engine.AddElapsed(delta)
	n = min(n, maxStepsPerTick)
	for i := 0; i < n; i++ {
		g.engine.Step()
	}
	return nil
}

func (g *Game) nextPreset() {
	presets := ant.Presets()
	g.preset = (g.preset + 1) % len(presets)
	p := presets[g.preset]
	if err := g.engine.SetRulesString(p.Rules); err != nil {
		log.Printf("preset %s: %v", p.Name, err)
		return
	}
	g.engine.SetPaused(true)
}

func (g *Game) setMode(m ant.Mode) {
	if err := g.engine.SetMode(m); err != nil {
		log.Printf("switch mode: %v", err)
	}
}

// Draw renders the grid, the help overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.engine.Size()
	a := g.engine.Ant()
	g.painter.Blit(screen, render.Frame{
		W:          size.W,
		H:          size.H,
		Cells:      g.engine.Cells(),
		FirstSteps: g.engine.FirstSteps(),
		Steps:      g.engine.Steps(),
		AntX:       a.X,
		AntY:       a.Y,
	}, float64(g.viewPx)/float64(size.W))
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewPx, g.viewPx)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewPx + g.hud.Width(), g.viewPx
}
