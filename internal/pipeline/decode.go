package pipeline

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/dunamismax/imageops/internal/format"
)

// Decode turns an in-memory byte buffer into a raster image plus the sniffed
// container tag. Sniffing is independent of decoding: the tag may be unknown
// for a stream that still decodes, and a recognized tag does not guarantee
// the stream parses.
func Decode(input []byte) (image.Image, format.Tag, error) {
	tag := format.Sniff(input)

	img, _, err := image.Decode(bytes.NewReader(input))
	if err != nil {
		return nil, tag, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, tag, fmt.Errorf("%w: image has invalid dimensions %dx%d", ErrDecode, bounds.Dx(), bounds.Dy())
	}

	return img, tag, nil
}
