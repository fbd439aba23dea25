// Package ramp holds the static character ramps used to map luminance to
// glyphs. Every ramp is ordered darkest-appearing to lightest-appearing.
package ramp

// Ramp is an ordered glyph sequence spanning dark to light.
type Ramp []rune

var (
	// Simple is a coarse 10-glyph ramp.
	Simple = Ramp("@%#*+=-:. ")

	// Blocks is a 4-symbol ramp of decreasing visual weight.
	Blocks = Ramp("█▓▒░")

	// Dense is a high-resolution ramp; the repeated glyphs near the light
	// end widen the tonal bands they cover.
	Dense = Ramp("$@B%8&WM#*zcvunxrjft/\\|()1{}[]?-_+~<>i!lI;;::,,,\"\"\"^^^`````'''''.......        ")

	// Density orders printable ASCII glyphs by measured ink coverage in a
	// monospace face, heaviest first. The table was measured once and
	// shipped as data so output stays identical across platforms; use
	// `asciiforge ramp` to regenerate it for a different font.
	Density = Ramp("$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ")
)

// Glyph maps a mean luminance in the 0-255 domain to one glyph. The index
// is floor(mean*len/256), clamped to the last valid position.
func (r Ramp) Glyph(mean float64) rune {
	idx := int(mean * float64(len(r)) / 256)
	if idx > len(r)-1 {
		idx = len(r) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return r[idx]
}

// Darkest returns the glyph a zero-luminance cell maps to.
func (r Ramp) Darkest() rune { return r[0] }

// Lightest returns the glyph a full-luminance cell maps to.
func (r Ramp) Lightest() rune { return r[len(r)-1] }
