package pipeline

import (
	"context"
	"errors"

	"github.com/dunamismax/imageops/internal/domain"
	"github.com/dunamismax/imageops/internal/format"
)

var (
	ErrDecode = errors.New("cannot decode image")
	ErrEncode = errors.New("cannot encode image")
)

// Transformer is the pixel-level engine behind the three operations. The
// default build uses the pure-Go implementation; the govips build tag swaps
// in a libvips-backed one with identical dimension arithmetic and policies.
type Transformer interface {
	Metadata(ctx context.Context, input []byte, hint format.Tag) (domain.Metadata, error)
	Resize(ctx context.Context, input []byte, req domain.ResizeRequest) ([]byte, domain.RenderResult, error)
	Thumbnail(ctx context.Context, input []byte, req domain.ThumbnailRequest) ([]byte, domain.RenderResult, error)
}

// resolveTag picks the reported format label: the byte-sniffed tag when
// conclusive, otherwise the filename-extension hint.
func resolveTag(sniffed, hint format.Tag) format.Tag {
	if sniffed != format.TagUnknown && sniffed != "" {
		return sniffed
	}
	if hint != format.TagUnknown && hint != "" {
		return hint
	}
	return format.TagUnknown
}
