// Package textart renders text banners by rasterizing a fixed monospace
// face and thresholding the bitmap into glyphs.
package textart

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const inkGlyph = '#'

// Render draws the text with the 7x13 fixed face and returns a '#'/space
// banner. Trailing blank rows are trimmed; empty input falls back to
// "Hello World". Multi-line input produces stacked banners.
func Render(text string) string {
	if text == "" {
		text = "Hello World"
	}
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		rows = append(rows, renderLine(line)...)
	}
	rows = trimTrailingBlank(rows)
	return strings.Join(rows, "\n")
}

func renderLine(line string) []string {
	face := basicfont.Face7x13
	width := font.MeasureString(face, line).Ceil()
	if width < 1 {
		width = 1
	}
	height := face.Height

	img := image.NewGray(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(line)

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			if img.GrayAt(x, y).Y > 0x7f {
				b.WriteByte(inkGlyph)
			} else {
				b.WriteByte(' ')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func trimTrailingBlank(rows []string) []string {
	end := len(rows)
	for end > 0 && strings.TrimSpace(rows[end-1]) == "" {
		end--
	}
	return rows[:end]
}
