package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	World  string
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{World: "islands", Width: 64, Height: 48, Scale: 8, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.World, "world", c.World, "world generator to run")
	fs.IntVar(&c.Width, "width", c.Width, "world width in tiles")
	fs.IntVar(&c.Height, "height", c.Height, "world height in tiles")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for world generation")
}
