package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig wraps every configuration problem the user must fix.
var ErrInvalidConfig = errors.New("navgrid: invalid configuration")

// Generator names accepted by Config.Generate.
const (
	GenRandom = "random"
	GenMaze   = "maze"
)

// Config holds every driver setting. Values come from DefaultConfig, then
// an optional TOML file, then explicitly set flags, then positionals.
type Config struct {
	MapFile string `toml:"map_file"`
	XMax    int    `toml:"x_max"`
	YMax    int    `toml:"y_max"`
	Unit    int    `toml:"unit"`
	Verbose bool   `toml:"verbose"`

	PNG   string `toml:"png"`
	Scale int    `toml:"scale"`
	TUI   bool   `toml:"tui"`

	// Generate selects a generator ("random" or "maze") instead of MapFile.
	Generate string  `toml:"generate"`
	Seed     int64   `toml:"seed"`
	Density  float64 `toml:"density"`
	Save     string  `toml:"save"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Unit:    1,
		Scale:   16,
		Density: 0.3,
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks ranges and that either a map file or a generator is set.
func (c Config) Validate() error {
	switch c.Generate {
	case "":
		if c.MapFile == "" {
			return fmt.Errorf("%w: no map file", ErrInvalidConfig)
		}
	case GenRandom, GenMaze:
	default:
		return fmt.Errorf("%w: unknown generator %q", ErrInvalidConfig, c.Generate)
	}
	if c.XMax < 1 || c.YMax < 1 {
		return fmt.Errorf("%w: grid %d×%d", ErrInvalidConfig, c.XMax, c.YMax)
	}
	if c.Unit < 1 {
		return fmt.Errorf("%w: unit %d", ErrInvalidConfig, c.Unit)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %v", ErrInvalidConfig, c.Density)
	}
	if c.Save != "" && c.Generate == "" {
		return fmt.Errorf("%w: -save needs -gen", ErrInvalidConfig)
	}
	return nil
}
