//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD prints the animation state in the top-left corner of the screen.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update handles the HUD visibility toggle.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the HUD text when visible.
func (h *HUD) Draw(screen *ebiten.Image, info HUDInfo) {
	if h == nil || !h.visible {
		return
	}
	face := basicfont.Face7x13

	y := hudPadding + hudBaseline
	text.Draw(screen, "wirespin", face, hudPadding, y, hudTitleColor)

	y += hudLineHeight
	shape := fmt.Sprintf("shape %d  %s", info.Shape, info.Current)
	if info.Blend > 0 {
		shape = fmt.Sprintf("shape %d  %s > %s  %3.0f%%", info.Shape, info.Current, info.Next, info.Blend*100)
	}
	text.Draw(screen, shape, face, hudPadding, y, hudTextColor)

	y += hudLineHeight
	status := fmt.Sprintf("speed %.2fx", info.Speed)
	if info.Paused {
		status += "  paused"
	}
	text.Draw(screen, status, face, hudPadding, y, hudTextColor)

	y += hudLineHeight
	text.Draw(screen, "space pause  n step  r/s reseed  -/= speed  1/2 layers  h hud  q quit",
		face, hudPadding, y, hudDimColor)
}

var (
	hudTitleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	hudTextColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudDimColor   = color.RGBA{R: 130, G: 130, B: 142, A: 255}
)

const (
	hudPadding    = 10
	hudBaseline   = 12
	hudLineHeight = 16
)
