// Package config describes a trajectory to sample: a constant-acceleration
// profile plus the sampling step and duration. Configs are stored as YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
)

const (
	DefaultName     = "custom"
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	StandardGravity = 9.80665
)

type Config struct {
	Name         string  `yaml:"name"`
	StartSpeed   float64 `yaml:"start_speed"`
	Acceleration float64 `yaml:"acceleration"`
	Dt           float64 `yaml:"dt"`
	Duration     float64 `yaml:"duration"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     DefaultName,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
}

// Load reads a YAML config. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

func (c *Config) Profile() motion.Profile {
	return motion.Profile{
		Name:  c.Name,
		Start: quantity.NewSpeed(c.StartSpeed),
		Accel: quantity.NewAcceleration(c.Acceleration),
	}
}

func (c *Config) Sampling() motion.Config {
	return motion.Config{
		Dt:       quantity.NewTime(c.Dt),
		Duration: quantity.NewTime(c.Duration),
	}
}

func (c *Config) Validate() error {
	return c.Sampling().Validate()
}
