package imaging

import "image"

// Adjust applies contrast enhancement followed by brightness enhancement.
// A factor of 1.0 leaves the channel values untouched. The input image is
// never mutated.
//
// Contrast scales each channel's deviation from the image's mean luminance,
// so factor 0 collapses the image to a flat gray at that mean.
func Adjust(img image.Image, contrast, brightness float64) *image.RGBA {
	out := toRGBA(img)
	if contrast != 1.0 {
		applyContrast(out, contrast)
	}
	if brightness != 1.0 {
		applyBrightness(out, brightness)
	}
	return out
}

func applyContrast(img *image.RGBA, factor float64) {
	mean := float64(int(meanLuma(img) + 0.5))
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := float64(img.Pix[i+c])
			img.Pix[i+c] = clampByte(mean + factor*(v-mean))
		}
	}
}

func applyBrightness(img *image.RGBA, factor float64) {
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = clampByte(factor * float64(img.Pix[i+c]))
		}
	}
}

func meanLuma(img *image.RGBA) float64 {
	gray := Grayscale(img)
	if len(gray.Pix) == 0 {
		return 0
	}
	var sum uint64
	for _, v := range gray.Pix {
		sum += uint64(v)
	}
	return float64(sum) / float64(len(gray.Pix))
}

func clampByte(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
