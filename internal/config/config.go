// Package config loads optional viewer settings from a YAML file.
// Everything has a sensible default; a missing file is not an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root settings document.
type Config struct {
	LogLevel string  `yaml:"log_level"`
	Display  Display `yaml:"display"`
}

// Display holds view toggles and input tuning.
type Display struct {
	ShowTail     bool `yaml:"show_tail"`
	ShowTriangle bool `yaml:"show_triangle"`
	ShowEarth    bool `yaml:"show_earth"`

	// Labels is the startup label mode: "off", "focus" or "all".
	Labels string `yaml:"labels"`

	// RotateStepDeg is the per-keypress camera rotation.
	RotateStepDeg float64 `yaml:"rotate_step_deg"`

	// MouseSensitivity scales drag rotation, degrees per cell.
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Display: Display{
			ShowTail:         true,
			ShowTriangle:     true,
			ShowEarth:        true,
			Labels:           "all",
			RotateStepDeg:    5,
			MouseSensitivity: 1.5,
		},
	}
}

// Load reads settings from path, layered over the defaults. An empty
// path or a missing file yields the defaults; a malformed file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Display.Labels {
	case "off", "focus", "all":
	default:
		return fmt.Errorf("labels must be off, focus or all, got %q", c.Display.Labels)
	}
	if c.Display.RotateStepDeg <= 0 {
		return fmt.Errorf("rotate_step_deg must be positive, got %g", c.Display.RotateStepDeg)
	}
	if c.Display.MouseSensitivity <= 0 {
		return fmt.Errorf("mouse_sensitivity must be positive, got %g", c.Display.MouseSensitivity)
	}
	return nil
}
