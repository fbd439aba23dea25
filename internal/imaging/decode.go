// Package imaging prepares uploaded images for rasterization: decoding,
// alpha flattening, dimension capping, brightness/contrast enhancement and
// grayscale conversion.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png" // importing them blank to register the image formats
	"io"

	_ "github.com/biessek/golang-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat means the input bytes could not be decoded by any
// registered image format.
var ErrUnsupportedFormat = errors.New("imaging: unsupported image format")

// Decode reads an image in any supported format (JPEG, PNG, GIF, BMP, ICO,
// WEBP, TIFF) and returns it along with the detected format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return img, format, nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (image.Image, string, error) {
	return Decode(bytes.NewReader(data))
}
