package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	cases := map[string]string{
		"c.json": `{"mesh": "cube.obj", "width": 640, "rotation_speed": 0.2, "spin_axis": [0, 0, 1], "overlay": true}`,
		"c.toml": "mesh = \"cube.obj\"\nwidth = 640\nrotation_speed = 0.2\nspin_axis = [0.0, 0.0, 1.0]\noverlay = true\n",
		"c.yaml": "mesh: cube.obj\nwidth: 640\nrotation_speed: 0.2\nspin_axis: [0, 0, 1]\noverlay: true\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, name, body))
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Mesh != "cube.obj" || cfg.Width != 640 || cfg.RotationSpeed != 0.2 ||
				cfg.SpinAxis != [3]float64{0, 0, 1} || !cfg.Overlay {
				t.Errorf("got %+v", cfg)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("missing file: expected error")
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("bad json: expected error")
	}
	if _, err := Load(writeFile(t, "c.ini", "x=1")); err == nil {
		t.Error("unknown extension: expected error")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Width != 1000 || cfg.Height != 700 {
		t.Errorf("viewport = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.RotationSpeed != 0.005 || cfg.TiltAngle != 0.05 || cfg.TiltAxis != [3]float64{0, 1, 0.2} {
		t.Errorf("rotation = %v %v %v", cfg.RotationSpeed, cfg.TiltAngle, cfg.TiltAxis)
	}
	if cfg.SpinAxis != [3]float64{0, 1, 0} {
		t.Errorf("spin axis = %v", cfg.SpinAxis)
	}
	if cfg.Workers != runtime.NumCPU() || cfg.Mode != ModeWindow || cfg.Format != "webp" {
		t.Errorf("got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{Mesh: "a.obj", Mode: ModeWindow, Frames: 10, Workers: 2}
	cfg.Resolve(Flags{Mesh: "b.obj", Mode: ModeFrames, Frames: 3, Overlay: true})
	if cfg.Mesh != "b.obj" || cfg.Mode != ModeFrames || cfg.Frames != 3 || !cfg.Overlay {
		t.Errorf("got %+v", cfg)
	}
	if cfg.Workers != 2 {
		t.Errorf("workers = %d, want file value kept", cfg.Workers)
	}
}

func TestValidate(t *testing.T) {
	base := Config{}
	base.Resolve(Flags{})

	bad := []func(*Config){
		func(c *Config) { c.Mode = "tty" },
		func(c *Config) { c.Format = "gif" },
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Scale = -1 },
	}
	for i, mutate := range bad {
		c := base
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
