package spinner

import "testing"

func TestNextSeedKnownSequence(t *testing.T) {
	want := []int64{16807, 282475249, 1622650073}
	s := int64(1)
	for i, w := range want {
		s = nextSeed(s)
		if s != w {
			t.Fatalf("draw %d from seed 1 = %d, want %d", i+1, s, w)
		}
	}
}

// The classic Park-Miller check: the 10000th draw from seed 1.
func TestNextSeedTenThousandthDraw(t *testing.T) {
	s := int64(1)
	for i := 0; i < 10000; i++ {
		s = nextSeed(s)
	}
	if s != 1043618065 {
		t.Fatalf("10000th draw = %d, want 1043618065", s)
	}
}

func TestNextSeedStaysInRange(t *testing.T) {
	s := int64(42)
	for i := 0; i < 1000; i++ {
		s = nextSeed(s)
		if s < 1 || s >= lcgModulus {
			t.Fatalf("draw %d left the valid range: %d", i, s)
		}
	}
}

func TestNormalizeSeed(t *testing.T) {
	cases := []struct {
		in, want int64
	}{
		{1, 1},
		{42, 42},
		{0, 1},
		{-5, lcgModulus - 5},
		{lcgModulus, 1},
		{lcgModulus + 7, 7},
		{-lcgModulus, 1},
	}
	for _, c := range cases {
		if got := normalizeSeed(c.in); got != c.want {
			t.Fatalf("normalizeSeed(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRandomSeedInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := randomSeed()
		if s < 1 || s >= lcgModulus {
			t.Fatalf("randomSeed returned %d", s)
		}
	}
}
