package spinner

import "testing"

func TestSampleOpalStops(t *testing.T) {
	cases := []struct {
		t    float64
		want RGB
	}{
		{0, RGB{97, 88, 128}},
		{0.25, RGB{137, 139, 173}},
		{1.0 / 3.0, RGB{154, 168, 184}},
		{0.5, RGB{216, 221, 232}},
		{0.75, RGB{137, 139, 173}},
	}
	for _, c := range cases {
		if got := SampleOpal(c.t); got != c.want {
			t.Fatalf("SampleOpal(%v) = %+v, want %+v", c.t, got, c.want)
		}
	}
}

func TestSampleOpalCyclic(t *testing.T) {
	if SampleOpal(0) != SampleOpal(1) || SampleOpal(1) != SampleOpal(2) {
		t.Fatal("whole-number parameters disagree")
	}
	if SampleOpal(0.25) != SampleOpal(1.25) || SampleOpal(0.25) != SampleOpal(-0.75) {
		t.Fatal("wrapped parameters disagree")
	}
}

func TestSampleOpalContinuous(t *testing.T) {
	step := 1.0 / 60
	for i := 0; i < 60; i++ {
		a := SampleOpal(float64(i) * step)
		b := SampleOpal(float64(i)*step + 1e-7)
		if channelGap(a.R, b.R) > 1 || channelGap(a.G, b.G) > 1 || channelGap(a.B, b.B) > 1 {
			t.Fatalf("discontinuity near t=%v: %+v vs %+v", float64(i)*step, a, b)
		}
	}
	if a, b := SampleOpal(0.999999), SampleOpal(0); channelGap(a.R, b.R) > 1 {
		t.Fatalf("seam at wrap: %+v vs %+v", a, b)
	}
}

func channelGap(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
