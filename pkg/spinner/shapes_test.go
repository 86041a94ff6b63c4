package spinner

import (
	"math"
	"slices"
	"testing"
)

func TestBaseShapeTableOrder(t *testing.T) {
	want := []string{"dodeca", "sphere", "twist", "star", "gem", "helix", "bloom", "ripple", "spire", "cage"}
	if got := BaseShapeNames(); !slices.Equal(got, want) {
		t.Fatalf("library order = %v, want %v", got, want)
	}
}

func TestBaseShapeTableStartsAtRest(t *testing.T) {
	if baseShapes[0].verts != Dodecahedron {
		t.Fatal("library entry 0 is not the dodecahedron")
	}
	for _, s := range baseShapes[1:] {
		if s.verts == Dodecahedron {
			t.Fatalf("shape %q is identical to the dodecahedron", s.name)
		}
	}
}

func TestBaseShapesDeterministic(t *testing.T) {
	again := buildBaseShapes()
	if len(again) != len(baseShapes) {
		t.Fatalf("rebuild produced %d shapes, want %d", len(again), len(baseShapes))
	}
	for i := range again {
		if again[i] != baseShapes[i] {
			t.Fatalf("shape %q is not deterministic", baseShapes[i].name)
		}
	}
}

// Every library shape must keep its vertices well inside the perspective
// range: the projection denominator is fov + z with fov = 3.
func TestBaseShapesStayInProjectionRange(t *testing.T) {
	for _, s := range baseShapes {
		for i, v := range s.verts {
			m := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
			if m > 1.45 {
				t.Fatalf("shape %q vertex %d reaches %.3f from center", s.name, i, m)
			}
		}
	}
}
