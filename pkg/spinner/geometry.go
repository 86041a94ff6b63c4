// Package spinner is the procedural wireframe kernel behind the thinking
// spinner: it generates an endless morphing sequence of dodecahedral shapes
// and projects them to 2D with depth-aware color and opacity. It never draws;
// renderer shells consume the FrameResult it computes each tick.
package spinner

import (
	"fmt"
	"math"
)

// Vec3 is a point or direction in model space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum v + u.
func (v Vec3) Add(u Vec3) Vec3 { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

// Sub returns the component-wise difference v - u.
func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and u.
func (v Vec3) Dot(u Vec3) float64 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp returns the linear interpolation from v toward u at parameter t.
func (v Vec3) Lerp(u Vec3, t float64) Vec3 {
	return Vec3{v.X + (u.X-v.X)*t, v.Y + (u.Y-v.Y)*t, v.Z + (u.Z-v.Z)*t}
}

// Shape holds one position per wireframe vertex. Every shape, base or hybrid,
// maps the dodecahedron's vertices 1:1, so the edge table applies to all of
// them.
type Shape [VertexCount]Vec3

// Edge connects two vertex indices, with A < B.
type Edge struct {
	A, B int
}

// Dodecahedron is the rest shape: a regular dodecahedron scaled onto the unit
// sphere. Treat as immutable; every other component indexes into it
// positionally.
var Dodecahedron = buildDodecahedron()

// Edges lists the 30 dodecahedron edges shared by every generated shape.
var Edges = buildEdges()

// The 20 vertices come from the three golden-ratio coordinate families
// (±1, ±1, ±1), (0, ±1/φ, ±φ) and its axis rotations. Each raw triple has
// length √3, so dividing by √3 lands all of them on the unit sphere.
func buildDodecahedron() Shape {
	phi := (1 + math.Sqrt(5)) / 2
	inv := 1 / phi
	norm := 1 / math.Sqrt(3)

	var out Shape
	n := 0
	add := func(x, y, z float64) {
		out[n] = Vec3{x * norm, y * norm, z * norm}
		n++
	}
	for _, x := range []float64{1, -1} {
		for _, y := range []float64{1, -1} {
			for _, z := range []float64{1, -1} {
				add(x, y, z)
			}
		}
	}
	for _, y := range []float64{inv, -inv} {
		for _, z := range []float64{phi, -phi} {
			add(0, y, z)
		}
	}
	for _, x := range []float64{inv, -inv} {
		for _, y := range []float64{phi, -phi} {
			add(x, y, 0)
		}
	}
	for _, x := range []float64{phi, -phi} {
		for _, z := range []float64{inv, -inv} {
			add(x, 0, z)
		}
	}
	return out
}

// Edges are found by comparing squared inter-vertex distances against the
// analytic edge length of the normalized solid, 2/(φ·√3). The tolerance is
// generous: the nearest non-edge pair sits over 0.8 away in squared distance.
func buildEdges() [EdgeCount]Edge {
	phi := (1 + math.Sqrt(5)) / 2
	edge := 2 / (phi * math.Sqrt(3))
	target := edge * edge

	var out [EdgeCount]Edge
	n := 0
	for i := 0; i < VertexCount; i++ {
		for j := i + 1; j < VertexCount; j++ {
			d := Dodecahedron[i].Sub(Dodecahedron[j])
			if math.Abs(d.Dot(d)-target) < edgeTolerance {
				if n == EdgeCount {
					panic(fmt.Sprintf("dodecahedron edge scan found more than %d edges", EdgeCount))
				}
				out[n] = Edge{A: i, B: j}
				n++
			}
		}
	}
	if n != EdgeCount {
		panic(fmt.Sprintf("dodecahedron edge scan found %d edges, want %d", n, EdgeCount))
	}
	return out
}

const (
	// VertexCount is the fixed vertex count of every shape.
	VertexCount = 20
	// EdgeCount is the fixed edge count of the shared wireframe topology.
	EdgeCount = 30

	edgeTolerance = 0.01
)
