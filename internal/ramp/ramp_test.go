package ramp

import "testing"

func TestRampLengths(t *testing.T) {
	if got := len(Simple); got != 10 {
		t.Fatalf("Simple length = %d, want 10", got)
	}
	if got := len(Blocks); got != 4 {
		t.Fatalf("Blocks length = %d, want 4", got)
	}
	if len(Dense) < 60 {
		t.Fatalf("Dense length = %d, want >= 60", len(Dense))
	}
	if len(Density) < 60 {
		t.Fatalf("Density length = %d, want >= 60", len(Density))
	}
}

func TestGlyphEndpoints(t *testing.T) {
	for name, r := range map[string]Ramp{"simple": Simple, "blocks": Blocks, "dense": Dense, "density": Density} {
		if got := r.Glyph(0); got != r.Darkest() {
			t.Errorf("%s: Glyph(0) = %q, want darkest %q", name, got, r.Darkest())
		}
		if got := r.Glyph(255); got != r.Lightest() {
			t.Errorf("%s: Glyph(255) = %q, want lightest %q", name, got, r.Lightest())
		}
		// Out-of-domain values clamp instead of panicking.
		if got := r.Glyph(300); got != r.Lightest() {
			t.Errorf("%s: Glyph(300) = %q, want lightest %q", name, got, r.Lightest())
		}
		if got := r.Glyph(-5); got != r.Darkest() {
			t.Errorf("%s: Glyph(-5) = %q, want darkest %q", name, got, r.Darkest())
		}
	}
}

func TestGlyphMonotonicOverDomain(t *testing.T) {
	idx := func(r rune) int {
		for i, g := range Simple {
			if g == r {
				return i
			}
		}
		t.Fatalf("glyph %q not in ramp", r)
		return -1
	}
	prev := 0
	for v := 0; v <= 255; v++ {
		i := idx(Simple.Glyph(float64(v)))
		if i < prev {
			t.Fatalf("index decreased at luminance %d: %d -> %d", v, prev, i)
		}
		prev = i
	}
	if prev != len(Simple)-1 {
		t.Fatalf("full domain never reached the lightest glyph (stopped at %d)", prev)
	}
}
