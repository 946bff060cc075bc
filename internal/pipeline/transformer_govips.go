//go:build govips && cgo

package pipeline

import (
	"context"
	"fmt"

	"github.com/davidbyttow/govips/v2/vips"

	"github.com/dunamismax/imageops/internal/domain"
	"github.com/dunamismax/imageops/internal/format"
)

type govipsTransformer struct{}

func (t govipsTransformer) Metadata(ctx context.Context, input []byte, hint format.Tag) (domain.Metadata, error) {
	select {
	case <-ctx.Done():
		return domain.Metadata{}, ctx.Err()
	default:
	}

	img, err := vips.NewImageFromBuffer(input)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer img.Close()

	return domain.Metadata{
		Width:  img.Width(),
		Height: img.Height(),
		Format: resolveTag(format.Sniff(input), hint).String(),
	}, nil
}

func (t govipsTransformer) Resize(ctx context.Context, input []byte, req domain.ResizeRequest) ([]byte, domain.RenderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.RenderResult{}, err
	}

	select {
	case <-ctx.Done():
		return nil, domain.RenderResult{}, ctx.Err()
	default:
	}

	img, err := vips.NewImageFromBuffer(input)
	if err != nil {
		return nil, domain.RenderResult{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer img.Close()

	width, height := img.Width(), img.Height()
	targetWidth, targetHeight, resample := resizeTarget(width, height, req)
	if resample {
		if err := resizeGovips(img, targetWidth, targetHeight); err != nil {
			return nil, domain.RenderResult{}, err
		}
	}

	data, err := exportGovipsJPEG(img, req.Quality)
	if err != nil {
		return nil, domain.RenderResult{}, err
	}

	result := domain.RenderResult{
		OriginalWidth:  width,
		OriginalHeight: height,
		Width:          img.Width(),
		Height:         img.Height(),
	}
	return data, result, nil
}

func (t govipsTransformer) Thumbnail(ctx context.Context, input []byte, req domain.ThumbnailRequest) ([]byte, domain.RenderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.RenderResult{}, err
	}

	select {
	case <-ctx.Done():
		return nil, domain.RenderResult{}, ctx.Err()
	default:
	}

	img, err := vips.NewImageFromBuffer(input)
	if err != nil {
		return nil, domain.RenderResult{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer img.Close()

	width, height := img.Width(), img.Height()
	targetWidth, targetHeight, resample := thumbnailTarget(width, height, req)
	if resample {
		if err := resizeGovips(img, targetWidth, targetHeight); err != nil {
			return nil, domain.RenderResult{}, err
		}
	}

	data, err := exportGovipsJPEG(img, req.Quality)
	if err != nil {
		return nil, domain.RenderResult{}, err
	}

	result := domain.RenderResult{
		OriginalWidth:  width,
		OriginalHeight: height,
		Width:          img.Width(),
		Height:         img.Height(),
	}
	return data, result, nil
}

// resizeGovips scales each axis independently so the output lands on the
// exact dimensions computed by the shared arithmetic.
func resizeGovips(img *vips.ImageRef, targetWidth, targetHeight int) error {
	hScale := float64(targetWidth) / float64(img.Width())
	vScale := float64(targetHeight) / float64(img.Height())
	if err := img.ResizeWithVScale(hScale, vScale, vips.KernelLanczos3); err != nil {
		return fmt.Errorf("resize image: %w", err)
	}
	return nil
}

func exportGovipsJPEG(img *vips.ImageRef, quality int) ([]byte, error) {
	if quality < domain.MinQuality || quality > domain.MaxQuality {
		return nil, fmt.Errorf("%w: quality must be in [%d,%d], got %d",
			domain.ErrInvalidRequest, domain.MinQuality, domain.MaxQuality, quality)
	}

	// Drop the alpha band rather than flattening against a background;
	// transparency is discarded, not blended.
	if img.Bands() > 3 {
		if err := img.ExtractBand(0, 3); err != nil {
			return nil, fmt.Errorf("%w: drop alpha band: %v", ErrEncode, err)
		}
	}

	params := vips.NewJpegExportParams()
	params.Quality = quality
	data, _, err := img.ExportJpeg(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}
