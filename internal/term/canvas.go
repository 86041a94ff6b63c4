package term

import (
	"math"

	"wirespin/internal/render"
	"wirespin/pkg/spinner"
)

// Cell is one character cell's worth of rasterized wireframe: a coverage
// intensity in [0, 1] and the color of the brightest stroke that touched it.
type Cell struct {
	Intensity float64
	Color     spinner.RGB
}

// Canvas is a row-major grid of cells the terminal renderer rasterizes into.
// It is renderer-free: the run loop owns blitting cells to the screen.
type Canvas struct {
	w, h  int
	cells []Cell
}

// NewCanvas allocates a canvas with the given dimensions.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{w: w, h: h, cells: make([]Cell, w*h)}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// At returns the cell at (x, y); out-of-range coordinates return a zero cell.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return Cell{}
	}
	return c.cells[y*c.w+x]
}

// Clear resets every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{}
	}
}

// Plot stamps one cell, keeping whichever stroke is more intense. Coordinates
// outside the canvas are ignored.
func (c *Canvas) Plot(x, y int, col spinner.RGB, intensity float64) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	cell := &c.cells[y*c.w+x]
	if intensity > cell.Intensity {
		cell.Intensity = intensity
		cell.Color = col
	}
}

// Line rasterizes a Bresenham line between two cell coordinates.
func (c *Canvas) Line(x0, y0, x1, y1 int, col spinner.RGB, intensity float64) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Plot(x0, y0, col, intensity)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawFrame rasterizes a kernel frame onto the canvas, mapping the square
// [0, size] output onto the full cell grid. Callers compensate for the 2:1
// cell aspect by sizing the canvas accordingly.
func (c *Canvas) DrawFrame(fr *spinner.FrameResult, size float64) {
	if size <= 0 {
		return
	}
	sx := float64(c.w-1) / size
	sy := float64(c.h-1) / size
	for e, edge := range spinner.Edges {
		a := fr.Projected[edge.A]
		b := fr.Projected[edge.B]
		c.Line(
			int(math.Round(a.X*sx)), int(math.Round(a.Y*sy)),
			int(math.Round(b.X*sx)), int(math.Round(b.Y*sy)),
			fr.EdgeColors[e], fr.EdgeAlphas[e],
		)
	}
	for i, p := range fr.Projected {
		c.Plot(int(math.Round(p.X*sx)), int(math.Round(p.Y*sy)), render.VertexColor, fr.VertexAlphas[i])
	}
}

// Rune picks the glyph for the cell's intensity.
func (c Cell) Rune() rune {
	switch {
	case c.Intensity <= 0:
		return ' '
	case c.Intensity < 0.3:
		return '░'
	case c.Intensity < 0.55:
		return '▒'
	case c.Intensity < 0.8:
		return '▓'
	default:
		return '█'
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
