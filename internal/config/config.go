package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

type WindowConfig struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Fov      float32    `yaml:"fov"`
}

type NoiseConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Seed      int64   `yaml:"seed"`
	Scale     float64 `yaml:"scale"`
	Amplitude int     `yaml:"amplitude"` // max height in steps
}

type FieldConfig struct {
	HexRadius       float32     `yaml:"hex_radius"`
	FieldRadius     int         `yaml:"field_radius"`
	NodeHeight      float32     `yaml:"node_height"`
	IndicatorRadius float32     `yaml:"indicator_radius"`
	Noise           NoiseConfig `yaml:"noise"`
}

type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Field  FieldConfig  `yaml:"field"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file and fills zero values with defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config data, fills defaults and validates
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height == 0 {
		c.Window.Height = 720
	}
	if c.Window.Title == "" {
		c.Window.Title = "HexTerrain"
	}
	if c.Camera.Position == ([3]float32{}) {
		c.Camera.Position = [3]float32{0, 12, 12}
	}
	if c.Camera.Fov == 0 {
		c.Camera.Fov = 45
	}
	if c.Field.HexRadius == 0 {
		c.Field.HexRadius = 0.5
	}
	if c.Field.NodeHeight == 0 {
		c.Field.NodeHeight = 0.5
	}
	if c.Field.IndicatorRadius == 0 {
		c.Field.IndicatorRadius = c.Field.HexRadius
	}
	if c.Field.Noise.Scale == 0 {
		c.Field.Noise.Scale = 0.1
	}
	if c.Field.Noise.Amplitude == 0 {
		c.Field.Noise.Amplitude = 3
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width < 0 || c.Window.Height < 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.Fov <= 0 || c.Camera.Fov >= 180:
		return fmt.Errorf("%w: camera fov %.1f", ErrInvalid, c.Camera.Fov)
	case c.Field.HexRadius < 0:
		return fmt.Errorf("%w: hex_radius %.3f", ErrInvalid, c.Field.HexRadius)
	case c.Field.FieldRadius < 0:
		return fmt.Errorf("%w: field_radius %d", ErrInvalid, c.Field.FieldRadius)
	case c.Field.NodeHeight < 0:
		return fmt.Errorf("%w: node_height %.3f", ErrInvalid, c.Field.NodeHeight)
	case c.Field.IndicatorRadius < 0:
		return fmt.Errorf("%w: indicator_radius %.3f", ErrInvalid, c.Field.IndicatorRadius)
	case c.Field.Noise.Amplitude < 0:
		return fmt.Errorf("%w: noise amplitude %d", ErrInvalid, c.Field.Noise.Amplitude)
	}
	return nil
}
