package pipeline

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"

	"github.com/dunamismax/imageops/internal/domain"
)

// EncodeJPEG serializes img as JPEG at the given quality. Any alpha channel
// is dropped, not blended: JPEG carries three channels and the discard is a
// deliberate, lossy policy. Quality outside [1,100] is rejected up front so
// a sink is never touched with a bad parameter.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality < domain.MinQuality || quality > domain.MaxQuality {
		return fmt.Errorf("%w: quality must be in [%d,%d], got %d",
			domain.ErrInvalidRequest, domain.MinQuality, domain.MaxQuality, quality)
	}

	if err := jpeg.Encode(w, flattenRGB(img), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// flattenRGB forces every pixel opaque while keeping its color values
// untouched. Cloning yields non-premultiplied storage, so overwriting the
// alpha byte discards transparency without darkening partially transparent
// pixels.
func flattenRGB(img image.Image) *image.NRGBA {
	flat := imaging.Clone(img)
	for i := 3; i < len(flat.Pix); i += 4 {
		flat.Pix[i] = 0xFF
	}
	return flat
}
