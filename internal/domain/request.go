package domain

import (
	"errors"
	"fmt"
)

const (
	OpMetadata  = "metadata"
	OpResize    = "resize"
	OpThumbnail = "thumbnail"

	MinQuality = 1
	MaxQuality = 100
)

var ErrInvalidRequest = errors.New("invalid request")

// ResizeRequest scales an image so its longest side does not exceed MaxSide.
// Images already at or below MaxSide are returned untouched; there is no
// enlargement path regardless of WithoutEnlargement.
type ResizeRequest struct {
	MaxSide            int
	Quality            int
	WithoutEnlargement bool
}

func (r ResizeRequest) Validate() error {
	if r.MaxSide <= 0 {
		return fmt.Errorf("%w: max-side must be > 0, got %d", ErrInvalidRequest, r.MaxSide)
	}
	return validateQuality(r.Quality)
}

// ThumbnailRequest shrinks an image to fit within a Size x Size bounding box.
type ThumbnailRequest struct {
	Size    int
	Quality int
}

func (r ThumbnailRequest) Validate() error {
	if r.Size <= 0 {
		return fmt.Errorf("%w: size must be > 0, got %d", ErrInvalidRequest, r.Size)
	}
	return validateQuality(r.Quality)
}

// Quality outside [1,100] is rejected rather than clamped so a bad flag
// never silently changes output fidelity.
func validateQuality(q int) error {
	if q < MinQuality || q > MaxQuality {
		return fmt.Errorf("%w: quality must be in [%d,%d], got %d", ErrInvalidRequest, MinQuality, MaxQuality, q)
	}
	return nil
}
