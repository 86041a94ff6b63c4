package main

import (
	"flag"
	"fmt"
	"math"

	"wirespin/internal/core"
	"wirespin/pkg/spinner"
)

func main() {
	cfg := core.NewConfig()
	cfg.Seed = 42
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	flag.Parse()

	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	dt := 1.0 / float64(tps)

	queue := core.NewQueue(cfg.Seed)
	clock := core.NewShapeClock(queue, cfg.Speed)

	fmt.Printf("wirespin framedump: seed %d, %d ticks at %d tps, speed %.2fx, size %d\n",
		cfg.Seed, *ticks, tps, clock.Speed(), cfg.Size)
	fmt.Printf("shape 0: %s\n", queue.ShapeName(0))

	var lastAdvance int64
	for i := 1; i <= *ticks; i++ {
		clock.Tick(dt)
		if n := clock.Advances(); n != lastAdvance {
			lastAdvance = n
			fmt.Printf("shape %d: %s (t=%.2f)\n", n, queue.ShapeName(0), clock.TotalTime())
		}
		if i%tps == 0 {
			printDigest(clock, float64(cfg.Size))
		}
	}
}

func printDigest(clock *core.ShapeClock, size float64) {
	fr := spinner.ComputeFrame(
		clock.Queue(), clock.ShapeTime(), clock.TotalTime(),
		clock.Speed(), size,
	)

	var radius float64
	for _, p := range fr.Projected {
		dx := p.X - size/2
		dy := p.Y - size/2
		radius += math.Hypot(dx, dy)
	}
	radius /= spinner.VertexCount

	minA, maxA := fr.EdgeAlphas[0], fr.EdgeAlphas[0]
	for _, a := range fr.EdgeAlphas[1:] {
		if a < minA {
			minA = a
		}
		if a > maxA {
			maxA = a
		}
	}

	c := fr.EdgeColors[0]
	fmt.Printf("  t=%6.2f blend=%.2f radius=%6.1f edge alpha %.2f..%.2f edge0 #%02x%02x%02x\n",
		clock.TotalTime(), spinner.Blend(clock.ShapeTime()), radius, minA, maxA, c.R, c.G, c.B)
}
