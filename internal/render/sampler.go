package render

import (
	"errors"
	"image"
	"strings"

	"github.com/asciiforge/asciiforge/internal/ramp"
)

var errEmptyGrid = errors.New("render: grid has no cells")

// sampleCells renders one glyph per grid cell from the arithmetic mean
// luminance of the pixels the cell contains. Cells that degenerate to zero
// pixels fall back to the image's global mean so the output stays
// deterministic.
func sampleCells(gray *image.Gray, g Grid, r ramp.Ramp) (string, error) {
	if g.Cols < 1 || g.Rows < 1 {
		return "", errEmptyGrid
	}
	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()
	global := meanGray(gray)

	var b strings.Builder
	b.Grow((g.Cols*3 + 1) * g.Rows)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x0, y0, x1, y1 := g.cellRect(row, col, w, h)
			mean, ok := cellMean(gray, x0, y0, x1, y1)
			if !ok {
				mean = global
			}
			b.WriteRune(r.Glyph(mean))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func cellMean(gray *image.Gray, x0, y0, x1, y1 int) (float64, bool) {
	var sum, count int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sum += int(gray.GrayAt(x, y).Y)
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

func meanGray(gray *image.Gray) float64 {
	b := gray.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return 0
	}
	var sum uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := gray.Pix[(y-b.Min.Y)*gray.Stride : (y-b.Min.Y)*gray.Stride+b.Dx()]
		for _, v := range row {
			sum += uint64(v)
		}
	}
	return float64(sum) / float64(b.Dx()*b.Dy())
}
