package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGravity               = 0.2
	DefaultFriction              = 0.99
	DefaultBounceFriction        = 0.7
	DefaultDrag                  = 0.99
	DefaultMaxObjects            = 20
	DefaultAngularVelocityFactor = 0.05
	DefaultObjectCount           = 5
	DefaultViewportWidth         = 800.0
	DefaultViewportHeight        = 600.0
	DefaultTicks                 = 1000
	DefaultFrameRate             = 30
)

// Config is the full simulation configuration surface.
//
// Friction is dead configuration: it is accepted and round-tripped for
// compatibility but the integration path applies only Drag.
type Config struct {
	Gravity               float64  `yaml:"gravity"`
	Friction              float64  `yaml:"friction"`
	BounceFriction        float64  `yaml:"bounce_friction"`
	Drag                  float64  `yaml:"drag"`
	MaxObjects            int      `yaml:"max_objects"`
	AngularVelocityFactor float64  `yaml:"angular_velocity_factor"`
	ObjectCount           int      `yaml:"object_count"`
	UserImages            []string `yaml:"user_images"`

	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`

	Ticks     int   `yaml:"ticks"`
	Seed      int64 `yaml:"seed"`
	FrameRate int   `yaml:"frame_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Gravity:               DefaultGravity,
		Friction:              DefaultFriction,
		BounceFriction:        DefaultBounceFriction,
		Drag:                  DefaultDrag,
		MaxObjects:            DefaultMaxObjects,
		AngularVelocityFactor: DefaultAngularVelocityFactor,
		ObjectCount:           DefaultObjectCount,
		UserImages:            []string{"placeholder"},
		ViewportWidth:         DefaultViewportWidth,
		ViewportHeight:        DefaultViewportHeight,
		Ticks:                 DefaultTicks,
		FrameRate:             DefaultFrameRate,
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

// Validate rejects non-finite values and clamps out-of-range ones so
// nothing questionable ever reaches the tick loop. It mutates the
// config in place and returns the first hard error.
func (c *Config) Validate() error {
	for name, v := range map[string]float64{
		"gravity":                 c.Gravity,
		"friction":                c.Friction,
		"bounce_friction":         c.BounceFriction,
		"drag":                    c.Drag,
		"angular_velocity_factor": c.AngularVelocityFactor,
		"viewport_width":          c.ViewportWidth,
		"viewport_height":         c.ViewportHeight,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("config: %s must be finite, got %f", name, v)
		}
	}

	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("config: viewport must be positive, got %gx%g", c.ViewportWidth, c.ViewportHeight)
	}

	if c.AngularVelocityFactor < 0 {
		c.AngularVelocityFactor = -c.AngularVelocityFactor
	}
	if c.MaxObjects < 0 {
		c.MaxObjects = 0
	}
	if c.ObjectCount < 0 {
		c.ObjectCount = 0
	}
	if c.Ticks < 0 {
		c.Ticks = 0
	}
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	return nil
}
