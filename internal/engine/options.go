package engine

import (
	"strconv"

	"github.com/asciiforge/asciiforge/internal/render"
)

// Options are the resolved numeric parameters for one rendering pass, as
// distinct from the raw caller-supplied values.
type Options struct {
	Columns    int
	Brightness float64 // multiplier, 1.0 = unchanged
	Contrast   float64 // multiplier, 1.0 = unchanged
}

// ParseOptions validates free-form caller input. Brightness and contrast
// arrive as percentages and become multipliers; malformed values fall back
// to the documented defaults (90 columns, 100%) rather than failing.
func ParseOptions(columns, brightness, contrast string) Options {
	o := Options{Columns: render.DefaultColumns, Brightness: 1, Contrast: 1}
	if n, err := strconv.Atoi(columns); err == nil {
		o.Columns = n
	}
	if o.Columns > render.MaxColumns {
		o.Columns = render.MaxColumns
	}
	if o.Columns < 1 {
		o.Columns = 1
	}
	if f, err := strconv.ParseFloat(brightness, 64); err == nil {
		o.Brightness = f / 100
	}
	if f, err := strconv.ParseFloat(contrast, 64); err == nil {
		o.Contrast = f / 100
	}
	return o
}
