package sched

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors ecosched.yaml.
type Config struct {
	Policy    Policy    `yaml:"policy"`       // fcfs (by default)
	Quantum   float64   `yaml:"time_quantum"` // 2 (by default), round-robin only
	TickMS    int       `yaml:"tick_ms"`      // 50 (by default), replay pacing per time unit
	MaxSlices int       `yaml:"max_slices"`   // 0 (by default) keeps the derived ceiling
	Log       LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // info (by default)
	Format string `yaml:"format"` // console | json
}

// DefaultConfig is used for every field the file leaves out.
func DefaultConfig() Config {
	return Config{
		Policy:  FCFS,
		Quantum: 2.0,
		TickMS:  50,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads YAML and overrides defaults; empty path or a missing file means
// defaults only. A file that exists but cannot be read or parsed is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	// sanity clamps; the quantum is validated when a run starts
	if cfg.TickMS <= 0 {
		cfg.TickMS = 50
	}
	if cfg.MaxSlices < 0 {
		cfg.MaxSlices = 0
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	return cfg, nil
}

// StrategyOptions translates config knobs into strategy options.
func (c Config) StrategyOptions() []Option {
	if c.MaxSlices > 0 {
		return []Option{WithMaxSlices(c.MaxSlices)}
	}
	return nil
}
