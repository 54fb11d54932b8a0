package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skovert/go-pathrender/pkg/core"
	"github.com/skovert/go-pathrender/pkg/renderer"
)

// Config mirrors the camera and render settings as a YAML file, so a render
// setup can be kept alongside the scenes it was tuned for.
type Config struct {
	Scene           string     `yaml:"scene,omitempty"` // built-in scene name
	AspectRatio     float64    `yaml:"aspect_ratio,omitempty"`
	Width           int        `yaml:"width,omitempty"`
	VFov            float64    `yaml:"vfov,omitempty"`
	LookFrom        [3]float64 `yaml:"look_from,omitempty"`
	LookAt          [3]float64 `yaml:"look_at,omitempty"`
	Up              [3]float64 `yaml:"up,omitempty"`
	SamplesPerPixel int        `yaml:"samples_per_pixel,omitempty"`
	MaxBounces      int        `yaml:"max_bounces,omitempty"`
	Workers         int        `yaml:"workers,omitempty"`
	Seed            int64      `yaml:"seed,omitempty"`
	Output          string     `yaml:"output,omitempty"`
}

// Load reads a config file from disk
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return &c, nil
}

// Save writes a config file to disk
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("writing config %q: %w", path, err)
	}
	return nil
}

// CameraConfig converts the file values into a renderer camera config. Zero
// fields stay zero so the camera falls back to its own defaults.
func (c *Config) CameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		AspectRatio:     c.AspectRatio,
		Width:           c.Width,
		VFov:            c.VFov,
		LookFrom:        vec3FromArray(c.LookFrom),
		LookAt:          vec3FromArray(c.LookAt),
		Up:              vec3FromArray(c.Up),
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxBounces,
		NumWorkers:      c.Workers,
		Seed:            c.Seed,
		Output:          c.Output,
	}
}

func vec3FromArray(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
