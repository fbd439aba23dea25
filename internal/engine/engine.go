// Package engine orchestrates the full image-to-ASCII pipeline: decode,
// normalize, persist, adjust, and fan the prepared image out to every
// rendering strategy.
package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/asciiforge/asciiforge/internal/imaging"
	"github.com/asciiforge/asciiforge/internal/render"
	"github.com/asciiforge/asciiforge/internal/store"
)

// ErrRenderFailed marks a batch where at least one strategy failed. No
// partial results are returned in that case.
var ErrRenderFailed = errors.New("engine: render failed")

// Source is either raw uploaded bytes plus the original file name, or a
// reference to a previously normalized image in the store.
type Source struct {
	Data     []byte
	Filename string
	Ref      string
}

// Result is the finished set of renderings plus the options that produced
// them. Brightness and contrast are reported back as integer percentages.
type Result struct {
	FileName   string
	Columns    int
	Brightness int
	Contrast   int
	Arts       []string
}

// Engine drives components in a fixed order and is the only piece that
// talks to external collaborators. No state persists across calls.
type Engine struct {
	Store   *store.Store // optional; nil disables persistence
	MaxSide int          // longest allowed image side, default imaging.DefaultMaxSide

	strategies []render.Strategy
	renderFn   func(*image.Gray, render.Grid, render.Strategy) (string, error)
}

// New returns an Engine with the default strategy table. st may be nil
// when the caller does not need the normalized image persisted.
func New(st *store.Store) *Engine {
	return &Engine{
		Store:      st,
		MaxSide:    imaging.DefaultMaxSide,
		strategies: render.Order,
		renderFn:   render.Render,
	}
}

// Generate produces every configured rendering of one image. The
// strategies run concurrently over the same immutable grayscale input and
// the results are joined in strategy order, so repeated calls with the
// same source and options yield byte-identical output.
func (e *Engine) Generate(ctx context.Context, src Source, opts Options) (Result, error) {
	img, name, err := e.prepare(src)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	cols := render.ResolveColumns(w, h, opts.Columns)
	grid := render.FitGrid(w, h, cols)

	gray := imaging.Grayscale(imaging.Adjust(img, opts.Contrast, opts.Brightness))

	arts := make([]string, len(e.strategies))
	errs := make([]error, len(e.strategies))
	var wg sync.WaitGroup
	for i, s := range e.strategies {
		wg.Add(1)
		go func(i int, s render.Strategy) {
			defer wg.Done()
			arts[i], errs[i] = e.renderFn(gray, grid, s)
		}(i, s)
	}
	wg.Wait()

	for _, rerr := range errs {
		if rerr != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrRenderFailed, rerr)
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return Result{
		FileName:   name,
		Columns:    cols,
		Brightness: int(math.Round(opts.Brightness * 100)),
		Contrast:   int(math.Round(opts.Contrast * 100)),
		Arts:       arts,
	}, nil
}

// prepare decodes, flattens and caps a fresh upload (persisting it when a
// store is configured), or reloads a stored reference.
func (e *Engine) prepare(src Source) (image.Image, string, error) {
	if src.Ref != "" {
		if e.Store == nil {
			return nil, "", fmt.Errorf("engine: source references %q but no store is configured", src.Ref)
		}
		img, err := e.Store.Load(src.Ref)
		if err != nil {
			return nil, "", err
		}
		return imaging.Flatten(img), src.Ref, nil
	}

	img, format, err := imaging.DecodeBytes(src.Data)
	if err != nil {
		return nil, "", err
	}
	maxSide := e.MaxSide
	if maxSide <= 0 {
		maxSide = imaging.DefaultMaxSide
	}
	normalized := imaging.CapDimensions(imaging.Flatten(img), maxSide)

	name := ""
	if e.Store != nil {
		name, err = e.Store.Save(normalized, imaging.StorageExt(format))
		if err != nil {
			return nil, "", err
		}
	}
	return normalized, name, nil
}
