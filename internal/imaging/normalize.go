package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
)

// DefaultMaxSide is the longest side an image may keep before rasterization.
const DefaultMaxSide = 1000

// Flatten composites the image onto an opaque white background, removing
// any transparency carried by PNG, GIF or BMP sources. Opaque images pass
// through unchanged in value. The result always has its origin at (0, 0).
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// CapDimensions downscales the image so its longer side equals maxSide,
// preserving aspect ratio. Images already within bounds are returned as is.
func CapDimensions(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxSide && b.Dy() <= maxSide {
		return img
	}
	return resize.Thumbnail(uint(maxSide), uint(maxSide), img, resize.Lanczos3)
}

// StorageExt maps a decoded format name to the extension the normalized
// copy is stored under. Formats without a native opaque-background encoding
// are converted to PNG.
func StorageExt(format string) string {
	if format == "jpeg" {
		return ".jpg"
	}
	return ".png"
}
