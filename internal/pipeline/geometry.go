package pipeline

import (
	"math"

	"github.com/dunamismax/imageops/internal/domain"
)

// fitWithin computes the dimensions that fit width x height inside a square
// box of side maxSide while preserving aspect ratio. The returned bool
// reports whether resampling is required; sources already inside the box are
// left untouched. Rounding is round-half-away-from-zero on both axes, so the
// longest side may land on maxSide +/- 1 in degenerate aspect ratios.
func fitWithin(width, height, maxSide int) (int, int, bool) {
	maxCurrent := max(width, height)
	if maxCurrent <= maxSide {
		return width, height, false
	}

	scale := float64(maxSide) / float64(maxCurrent)
	newWidth := int(math.Round(float64(width) * scale))
	newHeight := int(math.Round(float64(height) * scale))
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}
	return newWidth, newHeight, true
}

// resizeTarget applies the resize policy for a request. The guard below is
// the only path that triggers resampling, so images at or below MaxSide come
// back unchanged even when WithoutEnlargement is false; the tool never
// enlarges.
func resizeTarget(width, height int, req domain.ResizeRequest) (int, int, bool) {
	maxCurrent := max(width, height)
	if req.WithoutEnlargement && maxCurrent <= req.MaxSide {
		return width, height, false
	}
	return fitWithin(width, height, req.MaxSide)
}

// thumbnailTarget applies the thumbnail policy: fit within a Size x Size
// bounding box, aspect ratio preserved. Non-square sources produce
// non-square thumbnails; there is no crop step.
func thumbnailTarget(width, height int, req domain.ThumbnailRequest) (int, int, bool) {
	return fitWithin(width, height, req.Size)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
