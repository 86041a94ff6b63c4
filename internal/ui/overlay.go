//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"wirespin/pkg/spinner"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the wireframe: a depth
// tint that recolors each vertex by its rotated-space z, and fading motion
// trails of recent projected positions.
type Overlay struct {
	showDepth  bool
	showTrails bool

	trail     [trailLen][spinner.VertexCount][2]float64
	trailSize int
	trailHead int

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance with all layers off.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDepth = !o.showDepth
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showTrails = !o.showTrails
		if !o.showTrails {
			o.trailSize = 0
			o.trailHead = 0
		}
	}
}

// Draw records the frame into the trail ring and renders the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image, fr *spinner.FrameResult) {
	if o.showTrails {
		o.record(fr)
		o.drawTrails(screen)
	}
	if o.showDepth {
		o.drawDepth(screen, fr)
	}
}

func (o *Overlay) record(fr *spinner.FrameResult) {
	for i, p := range fr.Projected {
		o.trail[o.trailHead][i] = [2]float64{p.X, p.Y}
	}
	o.trailHead = (o.trailHead + 1) % trailLen
	if o.trailSize < trailLen {
		o.trailSize++
	}
}

func (o *Overlay) drawTrails(screen *ebiten.Image) {
	for age := o.trailSize - 1; age >= 1; age-- {
		idx := (o.trailHead - 1 - age + 2*trailLen) % trailLen
		fade := 1 - float64(age)/float64(trailLen)
		alpha := uint8(math.Round(90 * fade))
		col := color.RGBA{R: 150, G: 140, B: 190, A: alpha}
		for i := 0; i < spinner.VertexCount; i++ {
			o.drawPoint(screen, o.trail[idx][i][0], o.trail[idx][i][1], 1.5+fade, col)
		}
	}
}

func (o *Overlay) drawDepth(screen *ebiten.Image, fr *spinner.FrameResult) {
	for _, p := range fr.Projected {
		// z runs roughly -1.5 (near) to 1.5 (far).
		near := clamp01(1 - (p.Z+1.5)/3)
		col := color.RGBA{
			R: uint8(math.Round(60 + 180*near)),
			G: 70,
			B: uint8(math.Round(60 + 180*(1-near))),
			A: 230,
		}
		o.drawPoint(screen, p.X, p.Y, 4+3*near, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

const trailLen = 24
