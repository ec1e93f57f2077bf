package app

import (
	"flag"

	"lifestep/internal/life"
)

// Config collects the command-line surface of the program.
type Config struct {
	Width    int
	Height   int
	Scale    int
	Density  float64
	Seed     int64
	TPS      int
	Parallel bool

	// File points at an optional JSON config; when set it supplies the
	// board parameters instead of the individual flags.
	File string
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Width:   40,
		Height:  30,
		Scale:   20,
		Density: 0.2,
		TPS:     60,
	}
}

// Bind registers the flags on the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Float64Var(&c.Density, "density", c.Density, "initial alive probability")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed (0 seeds from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Parallel, "parallel", c.Parallel, "band the generation update across workers")
	fs.StringVar(&c.File, "config", c.File, "JSON config file (overrides board flags)")
}

// Life resolves the board configuration, preferring the config file when one
// was given.
func (c *Config) Life() (life.Config, error) {
	if c.File != "" {
		return life.LoadConfig(c.File)
	}
	return life.Config{
		Width:    c.Width,
		Height:   c.Height,
		Density:  c.Density,
		Seed:     c.Seed,
		Parallel: c.Parallel,
	}, nil
}
