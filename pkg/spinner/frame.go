package spinner

import "math"

// ProjectedVertex is a vertex after rotation and perspective projection.
// X and Y are screen positions in the caller's size units; Z keeps the
// rotated-space depth for depth cues.
type ProjectedVertex struct {
	X, Y, Z float64
}

// FrameResult is one tick's worth of renderable state. It is computed fresh
// per call; the kernel keeps no frame-to-frame state outside the queue.
type FrameResult struct {
	Projected    [VertexCount]ProjectedVertex
	EdgeColors   [EdgeCount]RGB
	EdgeAlphas   [EdgeCount]float64
	VertexAlphas [VertexCount]float64
}

// ComputeFrame blends the queue's current shape toward its next one, applies
// breathing jitter, rotation, and perspective projection, and derives
// per-edge colors and per-edge/per-vertex depth alphas.
//
// shapeTime and totalTime are caller-owned accumulators in seconds; speed is
// a multiplier on the animation pace; size is the square canvas side in the
// caller's length units. ComputeFrame never advances the queue: the caller
// detects shapeTime crossing ShapeDuration, calls Advance, and subtracts
// ShapeDuration from its accumulator.
func ComputeFrame(q *ShapeQueue, shapeTime, totalTime, speed, size float64) FrameResult {
	cur := q.Shape(0)
	next := q.Shape(1)
	t := totalTime * speed
	blend := Blend(shapeTime)

	ry := t * rotYRate
	rx := t*rotXRate + rotXOffset
	rz := t * rotZRate
	radius := size * radiusFactor

	var fr FrameResult
	var depth [VertexCount]float64
	for i := 0; i < VertexCount; i++ {
		fi := float64(i)
		p := cur[i].Lerp(next[i], blend)
		p.X += breathAmp * math.Sin(t*1.1+fi*0.9)
		p.Y += breathAmp * math.Cos(t*1.4+fi*1.3)
		p.Z += breathAmp * math.Sin(t*0.8+fi*1.7)

		p = rotateY(p, ry)
		p = rotateX(p, rx)
		p = rotateZ(p, rz)

		scale := fov / (fov + p.Z)
		fr.Projected[i] = ProjectedVertex{
			X: size/2 + p.X*radius*scale,
			Y: size/2 + p.Y*radius*scale,
			Z: p.Z,
		}
		depth[i] = (p.Z + 1) / 2
		fr.VertexAlphas[i] = clamp01(0.4 + 0.5*(1-depth[i]))
	}

	for e, edge := range Edges {
		a := fr.Projected[edge.A]
		b := fr.Projected[edge.B]
		sweep := (a.X+b.X+a.Y+b.Y)/(4*size) + t*sweepRate
		fr.EdgeColors[e] = SampleOpal(sweep)
		avg := (depth[edge.A] + depth[edge.B]) / 2
		fr.EdgeAlphas[e] = clamp01(0.3 + 0.5*(1-avg))
	}
	return fr
}

// Blend maps a shape-local time to the morph fraction between the current
// and next shape: 0 through the hold phase, then a smoothstep ease across
// the transition window, reaching 1 as shapeTime hits ShapeDuration.
func Blend(shapeTime float64) float64 {
	if shapeTime <= holdTime {
		return 0
	}
	return smoothstep((shapeTime - holdTime) / TransitionTime)
}

// smoothstep is the clamped cubic ease 3t²-2t³.
func smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
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

func rotateX(v Vec3, a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

func rotateY(v Vec3, a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

func rotateZ(v Vec3, a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

const (
	// ShapeDuration is how long each shape owns the screen, in seconds.
	ShapeDuration = 3.0
	// TransitionTime is the tail of each slot spent morphing into the next
	// shape, in seconds.
	TransitionTime = 1.2

	holdTime = ShapeDuration - TransitionTime

	fov          = 3.0
	radiusFactor = 0.26
	breathAmp    = 0.03
	sweepRate    = 0.12

	rotYRate   = 0.25
	rotXRate   = 0.15
	rotXOffset = 0.4
	rotZRate   = 0.09
)
