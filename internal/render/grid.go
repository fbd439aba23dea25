// Package render turns a prepared grayscale image into ASCII art. It owns
// the sampling geometry, the column-count search and the rendering
// strategies.
package render

const (
	// MaxColumns is the hard ceiling on the output column count.
	MaxColumns = 300
	// DefaultColumns is used when the caller supplies no usable value.
	DefaultColumns = 90
)

// Grid is the resolved sampling geometry for one rendering pass. Cell
// height is always twice cell width to compensate for glyph aspect ratio.
type Grid struct {
	Cols, Rows   int
	CellW, CellH float64
}

// ResolveColumns returns the largest column count not exceeding the
// requested one that still yields at least one sample row for the given
// image dimensions. The search walks downward from the (ceiling-clamped)
// request and bottoms out at 1, so it always terminates within
// MaxColumns steps.
func ResolveColumns(width, height, requested int) int {
	if requested > MaxColumns {
		requested = MaxColumns
	}
	if requested < 1 {
		requested = 1
	}
	for cols := requested; cols > 1; cols-- {
		cellWidth := float64(width) / float64(cols)
		rows := int(float64(height) / (2 * cellWidth))
		if cols <= width && rows <= height && rows >= 1 {
			return cols
		}
	}
	return 1
}

// FitGrid derives the sampling geometry for an already-resolved column
// count. Rows never drop below one: for degenerate aspect ratios the
// single row simply spans the whole image height.
func FitGrid(width, height, cols int) Grid {
	cellW := float64(width) / float64(cols)
	cellH := 2 * cellW
	rows := int(float64(height) / cellH)
	if rows < 1 {
		rows = 1
	}
	return Grid{Cols: cols, Rows: rows, CellW: cellW, CellH: cellH}
}

// cellRect returns the half-open pixel rectangle of cell (row, col). The
// final row and column extend to the image edge so the cells partition
// every pixel, including remainders that do not divide evenly.
func (g Grid) cellRect(row, col, width, height int) (x0, y0, x1, y1 int) {
	x0 = int(float64(col) * g.CellW)
	y0 = int(float64(row) * g.CellH)
	if col == g.Cols-1 {
		x1 = width
	} else {
		x1 = int(float64(col+1) * g.CellW)
	}
	if row == g.Rows-1 {
		y1 = height
	} else {
		y1 = int(float64(row+1) * g.CellH)
	}
	return x0, y0, x1, y1
}
