package pipeline

import (
	"bytes"
	"context"
	"image"

	"github.com/disintegration/imaging"

	"github.com/dunamismax/imageops/internal/domain"
	"github.com/dunamismax/imageops/internal/format"
)

type stdTransformer struct{}

func (t stdTransformer) Metadata(ctx context.Context, input []byte, hint format.Tag) (domain.Metadata, error) {
	select {
	case <-ctx.Done():
		return domain.Metadata{}, ctx.Err()
	default:
	}

	img, tag, err := Decode(input)
	if err != nil {
		return domain.Metadata{}, err
	}

	bounds := img.Bounds()
	return domain.Metadata{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: resolveTag(tag, hint).String(),
	}, nil
}

func (t stdTransformer) Resize(ctx context.Context, input []byte, req domain.ResizeRequest) ([]byte, domain.RenderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.RenderResult{}, err
	}

	select {
	case <-ctx.Done():
		return nil, domain.RenderResult{}, ctx.Err()
	default:
	}

	src, _, err := Decode(input)
	if err != nil {
		return nil, domain.RenderResult{}, err
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	targetWidth, targetHeight, resample := resizeTarget(width, height, req)

	out := src
	if resample {
		out = imaging.Resize(src, targetWidth, targetHeight, imaging.Lanczos)
	}

	data, err := encodeToJPEG(out, req.Quality)
	if err != nil {
		return nil, domain.RenderResult{}, err
	}

	result := domain.RenderResult{
		OriginalWidth:  width,
		OriginalHeight: height,
		Width:          out.Bounds().Dx(),
		Height:         out.Bounds().Dy(),
	}
	return data, result, nil
}

func (t stdTransformer) Thumbnail(ctx context.Context, input []byte, req domain.ThumbnailRequest) ([]byte, domain.RenderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.RenderResult{}, err
	}

	select {
	case <-ctx.Done():
		return nil, domain.RenderResult{}, ctx.Err()
	default:
	}

	src, _, err := Decode(input)
	if err != nil {
		return nil, domain.RenderResult{}, err
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	targetWidth, targetHeight, resample := thumbnailTarget(width, height, req)

	// Resize to the precomputed box-fit dimensions rather than calling
	// imaging.Fit, so the output matches thumbnailTarget exactly.
	out := src
	if resample {
		out = imaging.Resize(src, targetWidth, targetHeight, imaging.Lanczos)
	}

	data, err := encodeToJPEG(out, req.Quality)
	if err != nil {
		return nil, domain.RenderResult{}, err
	}

	result := domain.RenderResult{
		OriginalWidth:  width,
		OriginalHeight: height,
		Width:          out.Bounds().Dx(),
		Height:         out.Bounds().Dy(),
	}
	return data, result, nil
}

func encodeToJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeJPEG(&buf, img, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
