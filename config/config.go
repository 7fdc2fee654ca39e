// Package config loads the game's YAML configuration. The embedded
// default.yaml is always decoded first; an optional file on disk is decoded
// on top of it so it only needs to name the fields it changes.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/jamstarter/theme"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("config: invalid value")

type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
}

// Screens holds timings in seconds.
type Screens struct {
	SplashDuration float64 `yaml:"splash_duration"`
	FadeIn         float64 `yaml:"fade_in"`
	FadeOut        float64 `yaml:"fade_out"`
	LoadingSteps   int     `yaml:"loading_steps"`
}

type Physics struct {
	Gravity    float64 `yaml:"gravity"`
	Iterations int     `yaml:"iterations"`
}

type Config struct {
	Window  Window            `yaml:"window"`
	Theme   map[string]string `yaml:"theme"`
	Screens Screens           `yaml:"screens"`
	Physics Physics           `yaml:"physics"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode defaults: %w", err)
	}
	return &cfg, nil
}

// Load returns the defaults overridden by the file at path. An empty path
// returns the defaults alone.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.Merge(data); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Merge decodes data over c and validates the result. c is left untouched
// when either step fails.
func (c *Config) Merge(data []byte) error {
	next := c.clone()
	if err := yaml.Unmarshal(data, next); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = *next
	return nil
}

func (c *Config) clone() *Config {
	out := *c
	out.Theme = make(map[string]string, len(c.Theme))
	for k, v := range c.Theme {
		out.Theme[k] = v
	}
	return &out
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Screens.SplashDuration < 0 || c.Screens.FadeIn < 0 || c.Screens.FadeOut < 0 {
		return fmt.Errorf("%w: negative screen timing", ErrInvalid)
	}
	if c.Screens.LoadingSteps < 1 {
		return fmt.Errorf("%w: loading_steps %d", ErrInvalid, c.Screens.LoadingSteps)
	}
	if c.Physics.Iterations < 1 {
		return fmt.Errorf("%w: physics iterations %d", ErrInvalid, c.Physics.Iterations)
	}
	for k, v := range c.Theme {
		if _, err := theme.ParseColor(v); err != nil {
			return fmt.Errorf("theme %q: %w", k, err)
		}
	}
	return nil
}

// Palette builds a palette from the theme section.
func (c *Config) Palette() (*theme.Palette, error) {
	p := theme.NewPalette()
	if err := p.Load(c.Theme); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyTheme reloads p from the theme section, bumping its revision.
func (c *Config) ApplyTheme(p *theme.Palette) error {
	return p.Load(c.Theme)
}
