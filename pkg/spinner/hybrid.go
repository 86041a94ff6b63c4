package spinner

import "math"

// generateHybrid blends two seed-selected library shapes and dusts the result
// with per-vertex sinusoidal jitter. Pure function of seed: the same value
// always yields the same shape. The three axes use distinct frequency/phase
// pairs so the jitter never correlates across components.
func generateHybrid(seed float64) Shape {
	n := len(baseShapes)
	a := int(math.Floor(seed*4.7)) % n
	b := int(math.Floor(seed*7.3)) % n
	if b == a {
		b = (b + 1) % n
	}
	mix := 0.2 + 0.6*(0.5+0.5*math.Sin(13.7*seed))

	var out Shape
	for i := 0; i < VertexCount; i++ {
		fi := float64(i)
		p := baseShapes[a].verts[i].Lerp(baseShapes[b].verts[i], mix)
		p.X += jitterAmp * math.Sin(seed*12.9898+fi*4.1414)
		p.Y += jitterAmp * math.Sin(seed*78.233+fi*2.6651)
		p.Z += jitterAmp * math.Cos(seed*37.719+fi*5.3571)
		out[i] = p
	}
	return out
}

const jitterAmp = 0.12
