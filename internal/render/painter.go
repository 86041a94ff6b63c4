//go:build ebiten

package render

import (
	"image/color"
	"math"

	"wirespin/pkg/spinner"

	"github.com/hajimehoshi/ebiten/v2"
)

// WirePainter strokes kernel frames onto an ebiten screen. Edges and vertex
// dots are drawn from a shared 1x1 brush image, scaled and rotated per
// primitive.
type WirePainter struct {
	pixel *ebiten.Image
}

// NewWirePainter constructs a painter and its brush.
func NewWirePainter() *WirePainter {
	p := &WirePainter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// Draw strokes every edge, then every vertex, of the frame. Ordering matters:
// vertex dots sit on top of the wireframe.
func (p *WirePainter) Draw(screen *ebiten.Image, fr *spinner.FrameResult, size float64) {
	for e, edge := range spinner.Edges {
		a := fr.Projected[edge.A]
		b := fr.Projected[edge.B]
		col := LineColor(fr.EdgeColors[e], fr.EdgeAlphas[e])
		p.drawLine(screen, a.X, a.Y, b.X, b.Y, EdgeThickness(size, fr.EdgeAlphas[e]), col)
	}
	for i, pv := range fr.Projected {
		col := LineColor(VertexColor, fr.VertexAlphas[i])
		p.drawPoint(screen, pv.X, pv.Y, VertexDotSize(size, fr.VertexAlphas[i]), col)
	}
}

func (p *WirePainter) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if p.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(p.pixel, op)
}

func (p *WirePainter) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if p.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(p.pixel, op)
}
