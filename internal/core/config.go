package core

import "time"

// Glyph bounds for printable ASCII.
const (
	MinPrintable = 32
	MaxPrintable = 126
)

// DefaultInterval is the pause between two paints.
const DefaultInterval = 5 * time.Millisecond

// RuntimeConfig contains the settings the render loop is built from.
type RuntimeConfig struct {
	Interval time.Duration // Pause after every paint
	Seed     int64         // RNG seed, 0 means seed from the clock
	Count    int           // Stop after this many glyphs, 0 = until a key is pressed
	GlyphMin rune          // Lowest character code drawn (inclusive)
	GlyphMax rune          // Highest character code drawn (inclusive)
	Title    string        // Window title, empty leaves it alone
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Interval: DefaultInterval,
		Seed:     0, // 0 means use current time
		GlyphMin: MinPrintable,
		GlyphMax: MaxPrintable,
	}
}
