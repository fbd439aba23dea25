package render

import (
	"fmt"
	"image"

	"github.com/asciiforge/asciiforge/internal/ramp"
)

// Strategy identifies one complete algorithm+ramp combination.
type Strategy int

const (
	// Simple cell-averages with the coarse 10-glyph ramp.
	Simple Strategy = iota
	// BlockShade cell-averages with the 4-symbol block ramp.
	BlockShade
	// Dense cell-averages with the high-resolution ramp.
	Dense
	// DensityMatch resizes to one pixel per glyph and substitutes the
	// closest-density printable glyph.
	DensityMatch
)

// Order is the fixed output order of the default strategies. Callers that
// select a preferred output by index rely on it never changing.
var Order = []Strategy{Simple, BlockShade, Dense, DensityMatch}

type strategySpec struct {
	name        string
	ramp        ramp.Ramp
	resizeMatch bool
}

var strategies = map[Strategy]strategySpec{
	Simple:       {name: "simple", ramp: ramp.Simple},
	BlockShade:   {name: "blocks", ramp: ramp.Blocks},
	Dense:        {name: "dense", ramp: ramp.Dense},
	DensityMatch: {name: "density", ramp: ramp.Density, resizeMatch: true},
}

func (s Strategy) String() string {
	if spec, ok := strategies[s]; ok {
		return spec.name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Ramp returns the glyph ramp the strategy renders with.
func (s Strategy) Ramp() ramp.Ramp {
	return strategies[s].ramp
}

// ParseStrategy resolves a strategy by its flag name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Order {
		if strategies[s].name == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("render: unknown strategy %q", name)
}

// Render runs one strategy over a prepared grayscale image.
func Render(gray *image.Gray, g Grid, s Strategy) (string, error) {
	spec, ok := strategies[s]
	if !ok {
		return "", fmt.Errorf("render: unknown strategy %d", int(s))
	}
	if spec.resizeMatch {
		return renderDensity(gray, g.Cols, spec.ramp)
	}
	return sampleCells(gray, g, spec.ramp)
}
