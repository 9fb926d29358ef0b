package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Run modes.
const (
	ModeWindow = "window"
	ModeFrames = "frames"
)

// Config holds the mesh path and all render settings.
type Config struct {
	// Input
	Mesh string `json:"mesh" toml:"mesh" yaml:"mesh"`

	// Viewport
	Width  int `json:"width" toml:"width" yaml:"width"`
	Height int `json:"height" toml:"height" yaml:"height"`

	// Rotation
	RotationSpeed float64    `json:"rotation_speed" toml:"rotation_speed" yaml:"rotation_speed"`
	TiltAngle     float64    `json:"tilt_angle" toml:"tilt_angle" yaml:"tilt_angle"`
	TiltAxis      [3]float64 `json:"tilt_axis" toml:"tilt_axis" yaml:"tilt_axis"`
	SpinAxis      [3]float64 `json:"spin_axis" toml:"spin_axis" yaml:"spin_axis"`

	Workers int    `json:"workers" toml:"workers" yaml:"workers"`
	Mode    string `json:"mode" toml:"mode" yaml:"mode"`

	// Headless frame output
	OutputDir   string  `json:"output_dir" toml:"output_dir" yaml:"output_dir"`
	Format      string  `json:"format" toml:"format" yaml:"format"`
	Frames      int     `json:"frames" toml:"frames" yaml:"frames"`
	FrameStepMS int     `json:"frame_step_ms" toml:"frame_step_ms" yaml:"frame_step_ms"`
	Scale       float64 `json:"scale" toml:"scale" yaml:"scale"`
	Overlay     bool    `json:"overlay" toml:"overlay" yaml:"overlay"`
}

// Load reads a config file and returns Config. The decoder is chosen by
// extension: .json, .toml, .yaml or .yml.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: unsupported extension %q for %s", ext, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Mesh      string
	Mode      string
	OutputDir string
	Format    string
	Frames    int
	Workers   int
	Scale     float64
	Overlay   bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Overlay {
		c.Overlay = true
	}

	if c.Mesh == "" {
		c.Mesh = "Spaceship.obj"
	}
	if c.Width <= 0 {
		c.Width = 1000
	}
	if c.Height <= 0 {
		c.Height = 700
	}
	if c.RotationSpeed == 0 {
		c.RotationSpeed = 0.005
	}
	if c.TiltAngle == 0 && c.TiltAxis == [3]float64{} {
		c.TiltAngle = 0.05
		c.TiltAxis = [3]float64{0, 1, 0.2}
	}
	if c.SpinAxis == [3]float64{} {
		c.SpinAxis = [3]float64{0, 1, 0}
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Mode == "" {
		c.Mode = ModeWindow
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.FrameStepMS <= 0 {
		c.FrameStepMS = 16
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
}

// Validate reports settings that cannot be rendered.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: viewport %dx%d must be positive", c.Width, c.Height)
	}
	switch c.Mode {
	case ModeWindow, ModeFrames:
	default:
		return fmt.Errorf("config: unknown mode %q (want %q or %q)", c.Mode, ModeWindow, ModeFrames)
	}
	switch c.Format {
	case "webp", "tga", "png":
	default:
		return fmt.Errorf("config: unknown format %q (want webp, tga or png)", c.Format)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale %v must be positive", c.Scale)
	}
	return nil
}
