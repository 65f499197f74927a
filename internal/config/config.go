package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRows     = 1_000_000
	DefaultDevice   = "both"
	DefaultSeed     = 42
	DefaultSample   = 5
	DefaultHistBins = 40
)

type Config struct {
	Rows     int    `yaml:"rows"`
	Device   string `yaml:"device"`
	Seed     int64  `yaml:"seed"`
	Sample   int    `yaml:"sample"`
	HistBins int    `yaml:"hist_bins"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:     DefaultRows,
		Device:   DefaultDevice,
		Seed:     DefaultSeed,
		Sample:   DefaultSample,
		HistBins: DefaultHistBins,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the benchmark cannot run with; the CLI surfaces
// these as usage errors.
func (c *Config) Validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", c.Rows)
	}
	switch c.Device {
	case "cpu", "gpu", "both":
	default:
		return fmt.Errorf("device must be cpu, gpu or both, got %q", c.Device)
	}
	if c.Sample < 0 {
		return fmt.Errorf("sample must not be negative, got %d", c.Sample)
	}
	return nil
}
