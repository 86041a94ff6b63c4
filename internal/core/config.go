package core

import "flag"

// Config holds the command-line parameters shared by the spinner binaries.
type Config struct {
	Size  int
	TPS   int
	Speed float64
	Seed  int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 480, TPS: 60, Speed: 1.0, Seed: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "canvas size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "animation speed multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "shape schedule seed (0 picks a random one)")
}
