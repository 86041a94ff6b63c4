package render

import (
	"image/color"
	"math"

	"wirespin/pkg/spinner"
)

// VertexColor is the dot tint shared by the graphical renderers.
var VertexColor = spinner.RGB{R: 232, G: 228, B: 244}

// LineColor converts a kernel color and opacity into a drawable RGBA.
func LineColor(c spinner.RGB, alpha float64) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(alpha) * 255))}
}

// EdgeThickness maps an edge's opacity to a stroke width for the given canvas
// size. Nearer (more opaque) edges draw heavier; the width never drops below
// one pixel.
func EdgeThickness(size, alpha float64) float64 {
	t := size / 480 * (1 + 2.2*clamp01(alpha))
	if t < 1 {
		t = 1
	}
	return t
}

// VertexDotSize maps a vertex's opacity to its marker diameter.
func VertexDotSize(size, alpha float64) float64 {
	d := size / 480 * (2 + 3*clamp01(alpha))
	if d < 1.5 {
		d = 1.5
	}
	return d
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
