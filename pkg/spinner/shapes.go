package spinner

import "math"

type baseShape struct {
	name  string
	verts Shape
}

// baseShapes is the ordered library every queue refill shuffles. The order is
// part of the deterministic contract: hybrid generation indexes into it by
// seed, so reordering entries changes every seeded schedule.
var baseShapes = buildBaseShapes()

// BaseShapeNames returns the names of the shape library in table order.
func BaseShapeNames() []string {
	names := make([]string, len(baseShapes))
	for i, s := range baseShapes {
		names[i] = s.name
	}
	return names
}

func buildBaseShapes() []baseShape {
	return []baseShape{
		{"dodeca", Dodecahedron},
		{"sphere", sphereShape()},
		{"twist", twistShape()},
		{"star", starShape()},
		{"gem", gemShape()},
		{"helix", helixShape()},
		{"bloom", bloomShape()},
		{"ripple", rippleShape()},
		{"spire", spireShape()},
		{"cage", cageShape()},
	}
}

func sphereShape() Shape {
	var out Shape
	for i, v := range Dodecahedron {
		out[i] = v.Normalized().Scale(1.15 + 0.08*math.Sin(2.7*float64(i)))
	}
	return out
}

func twistShape() Shape {
	var out Shape
	for i, v := range Dodecahedron {
		out[i] = rotateY(v, 1.9*v.Y)
	}
	return out
}

func starShape() Shape {
	var out Shape
	for i, v := range Dodecahedron {
		s := 1.5
		if i%2 == 1 {
			s = 0.5
		}
		out[i] = v.Scale(s)
	}
	return out
}

func gemShape() Shape {
	var out Shape
	for i, v := range Dodecahedron {
		t := (v.Y + 1) / 2
		s := 0.6 + 0.55*(1-t)
		out[i] = Vec3{v.X * s, v.Y * 1.15, v.Z * s}
	}
	return out
}

func helixShape() Shape {
	var out Shape
	for i, v := range Dodecahedron {
		r := rotateY(v, 2.6*v.Y)
		out[i] = Vec3{r.X * 1.08, r.Y * 1.12, r.Z * 1.08}
	}
	return out
}

// Five petals, matching the solid's five-fold symmetry about Y.
func bloomShape() Shape {
	var out Shape
	for i, v := range Dodecahedron {
		az := math.Atan2(v.Z, v.X)
		s := 1 + 0.35*math.Cos(5*az)
		out[i] = Vec3{v.X * s, v.Y * 0.9, v.Z * s}
	}
	return out
}

func rippleShape() Shape {
	var out Shape
	for i, v := range Dodecahedron {
		out[i] = v.Scale(1 + 0.25*math.Sin(4.2*v.Y))
	}
	return out
}

func spireShape() Shape {
	var out Shape
	for i, v := range Dodecahedron {
		s := 0.75 - 0.2*v.Y
		out[i] = Vec3{v.X * s, v.Y * 1.45, v.Z * s}
	}
	return out
}

// Chebyshev normalization pushes every vertex onto a cube shell.
func cageShape() Shape {
	var out Shape
	for i, v := range Dodecahedron {
		m := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
		out[i] = v.Scale(1.05 / m)
	}
	return out
}
