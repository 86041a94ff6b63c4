package spinner

import (
	"math"
	"testing"
)

func TestDodecahedronOnUnitSphere(t *testing.T) {
	for i, v := range Dodecahedron {
		if d := math.Abs(v.Length() - 1); d > 1e-9 {
			t.Fatalf("vertex %d has length %.12f, want 1", i, v.Length())
		}
	}
}

func TestEdgeTableStructure(t *testing.T) {
	var degree [VertexCount]int
	seen := map[Edge]bool{}
	for _, e := range Edges {
		if e.A < 0 || e.B >= VertexCount || e.A >= e.B {
			t.Fatalf("malformed edge %+v", e)
		}
		if seen[e] {
			t.Fatalf("duplicate edge %+v", e)
		}
		seen[e] = true
		degree[e.A]++
		degree[e.B]++
	}
	for i, d := range degree {
		if d != 3 {
			t.Fatalf("vertex %d has degree %d, want 3", i, d)
		}
	}
	if (Edges[0] != Edge{A: 0, B: 8}) {
		t.Fatalf("first edge = %+v, want {0 8}", Edges[0])
	}
	if (Edges[EdgeCount-1] != Edge{A: 18, B: 19}) {
		t.Fatalf("last edge = %+v, want {18 19}", Edges[EdgeCount-1])
	}
}

func TestEdgeLengthsUniform(t *testing.T) {
	want := Dodecahedron[Edges[0].A].Sub(Dodecahedron[Edges[0].B]).Length()
	for _, e := range Edges {
		got := Dodecahedron[e.A].Sub(Dodecahedron[e.B]).Length()
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("edge %+v has length %.12f, want %.12f", e, got, want)
		}
	}
}

func TestVec3Helpers(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 0, 2}

	if got := a.Add(b); got != (Vec3{-3, 2, 5}) {
		t.Fatalf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec3{5, 2, 1}) {
		t.Fatalf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Fatalf("Scale = %+v", got)
	}
	if got := a.Dot(b); got != 2 {
		t.Fatalf("Dot = %v, want 2", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("Lerp(1) = %+v, want %+v", got, b)
	}
	if got := (Vec3{3, 0, 4}).Normalized().Length(); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Normalized length = %v", got)
	}
	if got := (Vec3{}).Normalized(); got != (Vec3{}) {
		t.Fatalf("zero Normalized = %+v", got)
	}
}
