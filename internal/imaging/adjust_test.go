package imaging

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestAdjustUnityFactorsAreNoOp(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	seed := uint32(7)
	for i := range src.Pix {
		seed = seed*1664525 + 1013904223
		src.Pix[i] = uint8(seed >> 24)
	}
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}

	out := Adjust(src, 1.0, 1.0)
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Fatal("factor 1.0 must leave pixel values untouched")
	}
	if &out.Pix[0] == &src.Pix[0] {
		t.Fatal("Adjust must not alias the input image")
	}
}

func TestAdjustBrightnessScalesChannels(t *testing.T) {
	src := testImage(3, 3, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	out := Adjust(src, 1.0, 0.5)
	got := out.RGBAAt(1, 1)
	if got.R != 100 || got.G != 50 || got.B != 25 {
		t.Fatalf("brightness 0.5 gave %v, want {100 50 25}", got)
	}
	if got.A != 255 {
		t.Fatalf("alpha changed to %d", got.A)
	}
}

func TestAdjustBrightnessClamps(t *testing.T) {
	src := testImage(1, 1, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	got := Adjust(src, 1.0, 2.0).RGBAAt(0, 0)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Fatalf("brightness 2.0 gave %v, want saturated white", got)
	}
}

func TestAdjustContrastZeroCollapsesToMean(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{A: 255})
	src.SetRGBA(1, 0, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	out := Adjust(src, 0, 1.0)
	// mean luminance of {0, 200} is 100; zero contrast flattens to it
	for x := 0; x < 2; x++ {
		got := out.RGBAAt(x, 0)
		if got.R != 100 || got.G != 100 || got.B != 100 {
			t.Fatalf("pixel %d = %v, want flat gray 100", x, got)
		}
	}
}

func TestAdjustContrastExpandsAroundMean(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 50, G: 50, B: 50, A: 255})
	src.SetRGBA(1, 0, color.RGBA{R: 150, G: 150, B: 150, A: 255})

	out := Adjust(src, 2.0, 1.0)
	// mean is 100; deviations double: 50 -> 0, 150 -> 200
	if got := out.RGBAAt(0, 0).R; got != 0 {
		t.Fatalf("dark pixel = %d, want 0", got)
	}
	if got := out.RGBAAt(1, 0).R; got != 200 {
		t.Fatalf("light pixel = %d, want 200", got)
	}
}
