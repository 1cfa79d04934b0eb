// Package config loads the YAML configuration that shapes a world before it
// exists: grid size, window scale, speed, brush, and spigot table.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"sandfall/internal/sand"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "sandfall.yaml"

// Config holds everything the CLI can set before the world exists.
type Config struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Scale        int     `yaml:"scale"`
	Seed         int64   `yaml:"seed"`
	Speed        float64 `yaml:"speed"`
	FallIntoVoid bool    `yaml:"fall_into_void"`

	Brush   Brush          `yaml:"brush"`
	Spigots []SpigotConfig `yaml:"spigots"`
}

// Brush is the initial drawing tool.
type Brush struct {
	Element string `yaml:"element"`
	Radius  int    `yaml:"radius"`
}

// SpigotConfig reconfigures one feeder slot. Size 0 turns the slot off.
type SpigotConfig struct {
	Slot    int    `yaml:"slot"`
	Element string `yaml:"element"`
	Size    int    `yaml:"size"`
}

// Default returns the built-in configuration. A seed of 0 means
// time-seeded at startup.
func Default() Config {
	return Config{
		Width:  320,
		Height: 200,
		Scale:  3,
		Speed:  1,
		Brush:  Brush{Element: "sand", Radius: 4},
	}
}

// Load reads path when given, falls back to ./sandfall.yaml, and finally to
// the built-in defaults. A missing explicit path is an error; a missing
// default path is not.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and resolves every element name.
func (c Config) Validate() error {
	if c.Width < 1 || c.Width > 2048 || c.Height < 1 || c.Height > 2048 {
		return fmt.Errorf("grid %dx%d out of range [1, 2048]", c.Width, c.Height)
	}
	if c.Scale < 1 || c.Scale > 16 {
		return fmt.Errorf("scale %d out of range [1, 16]", c.Scale)
	}
	if c.Speed < 0 || c.Speed > 16 {
		return fmt.Errorf("speed %g out of range [0, 16]", c.Speed)
	}
	if c.Brush.Radius < 0 || c.Brush.Radius > 32 {
		return fmt.Errorf("brush radius %d out of range [0, 32]", c.Brush.Radius)
	}
	if _, err := ResolveElement(c.Brush.Element); err != nil {
		return fmt.Errorf("brush: %w", err)
	}
	for _, s := range c.Spigots {
		if s.Slot < 0 || s.Slot >= sand.NumSpigots {
			return fmt.Errorf("spigot slot %d out of range [0, %d)", s.Slot, sand.NumSpigots)
		}
		if s.Size < 0 || s.Size > sand.MaxSpigotSize {
			return fmt.Errorf("spigot %d: size %d out of range [0, %d]", s.Slot, s.Size, sand.MaxSpigotSize)
		}
		e, err := ResolveElement(s.Element)
		if err != nil {
			return fmt.Errorf("spigot %d: %w", s.Slot, err)
		}
		if !e.SpigotValid() {
			return fmt.Errorf("spigot %d: %s cannot be fed from a spigot", s.Slot, e)
		}
	}
	return nil
}

// BrushElement resolves the configured brush element.
func (c Config) BrushElement() (sand.Element, error) {
	return ResolveElement(c.Brush.Element)
}

// Apply writes the spigot table onto a world. An empty table keeps the
// world's defaults.
func (c Config) Apply(w *sand.World) error {
	for _, s := range c.Spigots {
		e, err := ResolveElement(s.Element)
		if err != nil {
			return fmt.Errorf("spigot %d: %w", s.Slot, err)
		}
		if !w.SetSpigot(s.Slot, e, s.Size) {
			return fmt.Errorf("spigot %d: cannot feed %s", s.Slot, e)
		}
	}
	return nil
}

// ResolveElement parses an element name, suggesting the closest known name
// on a miss.
func ResolveElement(name string) (sand.Element, error) {
	if e, ok := sand.ParseElement(name); ok {
		return e, nil
	}
	best := ""
	bestDist := len(name) + 1
	for _, n := range sand.ElementNames() {
		if d := levenshtein.ComputeDistance(name, n); d < bestDist {
			best, bestDist = n, d
		}
	}
	if best != "" && bestDist <= 3 {
		return 0, fmt.Errorf("unknown element %q (did you mean %q?)", name, best)
	}
	return 0, fmt.Errorf("unknown element %q", name)
}
