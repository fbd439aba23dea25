package imaging

import (
	"image"
	"image/draw"
)

// Grayscale converts the image to single-channel BT.601 luminance
// (0.299 R + 0.587 G + 0.114 B), the same weighting the standard gray
// color model uses. The result has its origin at (0, 0).
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
