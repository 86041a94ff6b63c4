//go:build ebiten

package app

import (
	"image/color"
	"time"

	"wirespin/internal/core"
	"wirespin/internal/render"
	"wirespin/internal/ui"
	"wirespin/pkg/spinner"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the spinner kernel to the ebiten.Game interface. Update ticks
// the shape clock at the configured TPS and recomputes the frame; Draw only
// paints the most recent result.
type Game struct {
	queue   *spinner.ShapeQueue
	clock   *core.ShapeClock
	painter *render.WirePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	frame    spinner.FrameResult
	size     int
	dt       float64
	seed     int64
	tickOnce bool
}

// New constructs a Game for the provided configuration.
func New(cfg *core.Config) *Game {
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	g := &Game{
		painter: render.NewWirePainter(),
		hud:     ui.NewHUD(),
		overlay: ui.NewOverlay(),
		size:    cfg.Size,
		dt:      1.0 / float64(tps),
		seed:    cfg.Seed,
	}
	g.queue = core.NewQueue(cfg.Seed)
	g.clock = core.NewShapeClock(g.queue, cfg.Speed)
	g.frame = g.computeFrame()
	return g
}

// Reset restarts the animation with the provided seed. Zero asks for a fresh
// random schedule.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.queue = core.NewQueue(seed)
	g.clock.Reset(g.queue)
	g.tickOnce = false
}

// Update handles per-frame input and advances the animation clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.SetPaused(!g.clock.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.clock.SetPaused(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.clock.SetSpeed(g.clock.Speed() * speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.clock.SetSpeed(g.clock.Speed() / speedStep)
	}

	g.hud.Update()
	g.overlay.Update()

	if g.clock.Paused() && g.tickOnce {
		g.clock.Step(g.dt)
		g.tickOnce = false
	} else {
		g.clock.Tick(g.dt)
	}
	g.frame = g.computeFrame()
	return nil
}

func (g *Game) computeFrame() spinner.FrameResult {
	return spinner.ComputeFrame(g.queue, g.clock.ShapeTime(), g.clock.TotalTime(), g.clock.Speed(), float64(g.size))
}

// Draw renders the current frame with the overlay and HUD on top.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.painter.Draw(screen, &g.frame, float64(g.size))
	g.overlay.Draw(screen, &g.frame)
	g.hud.Draw(screen, ui.HUDInfo{
		Current: g.queue.ShapeName(0),
		Next:    g.queue.ShapeName(1),
		Blend:   spinner.Blend(g.clock.ShapeTime()),
		Speed:   g.clock.Speed(),
		Shape:   g.clock.Advances(),
		Paused:  g.clock.Paused(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}

var backgroundColor = color.RGBA{R: 13, G: 12, B: 20, A: 255}

const speedStep = 1.25
