package saver

import (
	"math/rand"

	"github.com/vovakirdan/randscreen/internal/core"
)

// Picker draws the random values for one paint.
// All draws are uniform; it is not safe for concurrent use.
type Picker struct {
	rng      *rand.Rand
	glyphMin rune
	glyphMax rune
}

// NewPicker creates a picker seeded with seed that draws glyphs from
// [glyphMin, glyphMax]. An empty or inverted range falls back to printable ASCII.
func NewPicker(seed int64, glyphMin, glyphMax rune) *Picker {
	if glyphMin > glyphMax || glyphMin < core.MinPrintable || glyphMax > core.MaxPrintable {
		glyphMin, glyphMax = core.MinPrintable, core.MaxPrintable
	}
	return &Picker{
		rng:      rand.New(rand.NewSource(seed)),
		glyphMin: glyphMin,
		glyphMax: glyphMax,
	}
}

// Color returns a palette color.
func (p *Picker) Color() core.Color {
	return core.PaletteColor(p.rng.Intn(core.PaletteSize))
}

// Position returns a column in [vp.X, vp.X+vp.W) and a row in [vp.Y, vp.Y+vp.H).
// The viewport must not be empty.
func (p *Picker) Position(vp core.Rect) (col, row int) {
	return vp.X + p.rng.Intn(vp.W), vp.Y + p.rng.Intn(vp.H)
}

// Glyph returns a character code in the picker's range.
func (p *Picker) Glyph() rune {
	return p.glyphMin + rune(p.rng.Intn(int(p.glyphMax-p.glyphMin)+1))
}
