package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeRequestValidate(t *testing.T) {
	valid := ResizeRequest{MaxSide: 1024, Quality: 85, WithoutEnlargement: true}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, ResizeRequest{MaxSide: 0, Quality: 85}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, ResizeRequest{MaxSide: -1, Quality: 85}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, ResizeRequest{MaxSide: 100, Quality: 0}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, ResizeRequest{MaxSide: 100, Quality: 101}.Validate(), ErrInvalidRequest)
	assert.NoError(t, ResizeRequest{MaxSide: 100, Quality: 1}.Validate())
	assert.NoError(t, ResizeRequest{MaxSide: 100, Quality: 100}.Validate())
}

func TestThumbnailRequestValidate(t *testing.T) {
	assert.NoError(t, ThumbnailRequest{Size: 256, Quality: 80}.Validate())
	assert.ErrorIs(t, ThumbnailRequest{Size: 0, Quality: 80}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, ThumbnailRequest{Size: 256, Quality: 200}.Validate(), ErrInvalidRequest)
}

func TestMetadataJSONOmitsAbsentOrientation(t *testing.T) {
	meta := Metadata{Width: 100, Height: 50, Format: "png"}
	data, err := json.Marshal(meta)
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":100,"height":50,"format":"png"}`, string(data))
	assert.NotContains(t, string(data), "orientation")
}

func TestRenderResultJSONFieldNames(t *testing.T) {
	res := RenderResult{OriginalWidth: 100, OriginalHeight: 50, Width: 50, Height: 25}
	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"original_width":100,"original_height":50,"width":50,"height":25}`, string(data))
}
