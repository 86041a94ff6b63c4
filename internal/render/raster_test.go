package render

import (
	"image/color"
	"testing"

	"wirespin/pkg/spinner"
)

func TestLineColor(t *testing.T) {
	cases := []struct {
		c     spinner.RGB
		alpha float64
		want  color.RGBA
	}{
		{spinner.RGB{R: 10, G: 20, B: 30}, 0, color.RGBA{10, 20, 30, 0}},
		{spinner.RGB{R: 10, G: 20, B: 30}, 1, color.RGBA{10, 20, 30, 255}},
		{spinner.RGB{R: 10, G: 20, B: 30}, 0.5, color.RGBA{10, 20, 30, 128}},
		{spinner.RGB{R: 200, G: 100, B: 50}, 2.0, color.RGBA{200, 100, 50, 255}},
		{spinner.RGB{R: 200, G: 100, B: 50}, -1.0, color.RGBA{200, 100, 50, 0}},
	}
	for _, c := range cases {
		if got := LineColor(c.c, c.alpha); got != c.want {
			t.Fatalf("LineColor(%+v, %v) = %+v, want %+v", c.c, c.alpha, got, c.want)
		}
	}
}

func TestEdgeThicknessFloor(t *testing.T) {
	if got := EdgeThickness(100, 0.5); got != 1 {
		t.Fatalf("small canvas thickness = %v, want the 1px floor", got)
	}
	if got := EdgeThickness(480, 1); got != 3.2 {
		t.Fatalf("full-alpha thickness at 480 = %v, want 3.2", got)
	}
	if EdgeThickness(480, 1) <= EdgeThickness(480, 0) {
		t.Fatal("opaque edges must draw heavier than faint ones")
	}
}

func TestVertexDotSizeFloor(t *testing.T) {
	if got := VertexDotSize(100, 0); got != 1.5 {
		t.Fatalf("small canvas dot = %v, want the 1.5px floor", got)
	}
	if got := VertexDotSize(480, 1); got != 5.0 {
		t.Fatalf("full-alpha dot at 480 = %v, want 5.0", got)
	}
}
