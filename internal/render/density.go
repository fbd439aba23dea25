package render

import (
	"image"
	"strings"

	"github.com/nfnt/resize"

	"github.com/asciiforge/asciiforge/internal/imaging"
	"github.com/asciiforge/asciiforge/internal/ramp"
)

// renderDensity resizes the image to one pixel per output glyph and maps
// each pixel through the measured density table. Row count follows the
// source aspect ratio, halved to compensate for glyph height.
func renderDensity(gray *image.Gray, cols int, r ramp.Ramp) (string, error) {
	if cols < 1 {
		return "", errEmptyGrid
	}
	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()
	rows := int(float64(h) / float64(w) * float64(cols) / 2)
	if rows < 1 {
		rows = 1
	}

	small := imaging.Grayscale(resize.Resize(uint(cols), uint(rows), gray, resize.Lanczos3))

	var b strings.Builder
	b.Grow((cols + 1) * rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			b.WriteRune(r.Glyph(float64(small.GrayAt(x, y).Y)))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
