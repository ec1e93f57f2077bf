package life

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config controls the board dimensions and initial population.
type Config struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Density float64 `json:"density"`
	Seed    int64   `json:"seed"`

	// Parallel splits the generation update across worker goroutines.
	Parallel bool `json:"parallel"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   40,
		Height:  30,
		Density: 0.2,
		Seed:    0,
	}
}

// LoadConfig reads a JSON config file, layering it over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %q", path)
	}
	if err = json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}

// Validate reports whether the configuration can produce a well-formed board.
func (c Config) Validate() error {
	if c.Width < 1 {
		return errors.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height < 1 {
		return errors.Errorf("height must be positive, got %d", c.Height)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be in [0,1], got %g", c.Density)
	}
	return nil
}
