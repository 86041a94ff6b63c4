package spinner

import "math"

// RGB is an 8-bit color sample from the opal ramp.
type RGB struct {
	R, G, B uint8
}

// SampleOpal returns the opal gradient color at parameter t. The gradient is
// cyclic: any t wraps into [0, 1), and SampleOpal(0) equals SampleOpal(1), so
// a parameter sweeping steadily upward shimmers without a seam.
func SampleOpal(t float64) RGB {
	t -= math.Floor(t)
	pos := t * float64(len(opalStops))
	idx := int(pos)
	if idx >= len(opalStops) {
		idx = len(opalStops) - 1
	}
	frac := pos - float64(idx)
	a := opalStops[idx]
	b := opalStops[(idx+1)%len(opalStops)]
	return RGB{
		R: lerpChannel(a.R, b.R, frac),
		G: lerpChannel(a.G, b.G, frac),
		B: lerpChannel(a.B, b.B, frac),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// opalStops runs deep violet through silver and back; the last stop wraps to
// the first, closing the cycle.
var opalStops = []RGB{
	{97, 88, 128},
	{119, 110, 162},
	{154, 168, 184},
	{216, 221, 232},
	{154, 168, 184},
	{119, 110, 162},
}
