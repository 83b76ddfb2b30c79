package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSamples          = 30
	DefaultMaxValue         = 100
	DefaultWidth            = 600.0
	DefaultHeight           = 150.0
	DefaultHighlight        = "orange"
	DefaultBase             = "black"
	DefaultEmphasizedRadius = 4.0
	DefaultRadius           = 2.0
	DefaultTheme            = "classic"
	DefaultAddr             = ":8080"
)

var (
	ErrInvalid       = errors.New("invalid config")
	ErrUnknownPreset = errors.New("unknown preset")
)

type Config struct {
	Samples   int         `yaml:"samples"`
	MaxValue  int         `yaml:"max_value"`
	Seed      uint64      `yaml:"seed"`
	Selection []float64   `yaml:"selection,flow"`
	Theme     string      `yaml:"theme"`
	Chart     ChartConfig `yaml:"chart"`
	Web       WebConfig   `yaml:"web"`
}

type ChartConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Highlight        string  `yaml:"highlight"`
	Base             string  `yaml:"base"`
	EmphasizedRadius float64 `yaml:"emphasized_radius"`
	DefaultRadius    float64 `yaml:"default_radius"`
	Tension          float64 `yaml:"tension"`
}

type WebConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Samples:   DefaultSamples,
		MaxValue:  DefaultMaxValue,
		Selection: []float64{0, 1.5},
		Theme:     DefaultTheme,
		Chart: ChartConfig{
			Width:            DefaultWidth,
			Height:           DefaultHeight,
			Highlight:        DefaultHighlight,
			Base:             DefaultBase,
			EmphasizedRadius: DefaultEmphasizedRadius,
			DefaultRadius:    DefaultRadius,
		},
		Web: WebConfig{Addr: DefaultAddr},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

func (c *Config) Validate() error {
	switch {
	case c.Samples <= 0:
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalid, c.Samples)
	case c.MaxValue < 0:
		return fmt.Errorf("%w: max_value must not be negative, got %d", ErrInvalid, c.MaxValue)
	case len(c.Selection) != 2:
		return fmt.Errorf("%w: selection needs two bounds, got %d", ErrInvalid, len(c.Selection))
	case c.Selection[0] > c.Selection[1]:
		return fmt.Errorf("%w: selection %v is inverted", ErrInvalid, c.Selection)
	case c.Chart.Width <= 0 || c.Chart.Height <= 0:
		return fmt.Errorf("%w: chart size %vx%v", ErrInvalid, c.Chart.Width, c.Chart.Height)
	}
	return nil
}

// SelectionRange returns the initial selection bounds.
func (c *Config) SelectionRange() (low, high float64) {
	if len(c.Selection) != 2 {
		return 0, 1.5
	}
	return c.Selection[0], c.Selection[1]
}

// Clone returns a deep copy so presets are never modified through the result.
func (c *Config) Clone() *Config {
	out := *c
	out.Selection = append([]float64(nil), c.Selection...)
	return &out
}
