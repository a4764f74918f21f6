// Package config provides YAML-based configuration loading for randscreen.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/randscreen/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains every setting of a screensaver run.
type Config struct {
	Backend  string        `yaml:"backend"`   // Registered backend name
	Interval time.Duration `yaml:"interval"`  // Pause after each glyph
	Seed     int64         `yaml:"seed"`      // 0 = seed from the clock
	Count    int           `yaml:"count"`     // 0 = until a key is pressed
	Title    string        `yaml:"title"`     // Window title, empty = unchanged
	Glyphs   GlyphRange    `yaml:"glyphs"`    // Character codes to draw from
	LogLevel string        `yaml:"log_level"` // debug, info, warn, error
}

// GlyphRange is an inclusive range of character codes.
type GlyphRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Backend:  "console",
		Interval: core.DefaultInterval,
		Glyphs: GlyphRange{
			Min: core.MinPrintable,
			Max: core.MaxPrintable,
		},
		LogLevel: "info",
	}
}

// Validate checks the values a run cannot start without.
func (c Config) Validate() error {
	if c.Backend == "" {
		return fmt.Errorf("%w: backend is empty", ErrInvalid)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalid, c.Interval)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalid, c.Count)
	}
	if c.Glyphs.Min < core.MinPrintable || c.Glyphs.Max > core.MaxPrintable {
		return fmt.Errorf("%w: glyphs must lie within [%d, %d], got [%d, %d]",
			ErrInvalid, core.MinPrintable, core.MaxPrintable, c.Glyphs.Min, c.Glyphs.Max)
	}
	if c.Glyphs.Min > c.Glyphs.Max {
		return fmt.Errorf("%w: glyph range [%d, %d] is inverted", ErrInvalid, c.Glyphs.Min, c.Glyphs.Max)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q: %v", ErrInvalid, c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Runtime converts the config into the render loop's settings.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Interval: c.Interval,
		Seed:     c.Seed,
		Count:    c.Count,
		GlyphMin: rune(c.Glyphs.Min),
		GlyphMax: rune(c.Glyphs.Max),
		Title:    c.Title,
	}
}
