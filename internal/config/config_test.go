package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("IMAGEOPS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Resize.MaxSide)
	assert.Equal(t, 85, cfg.Resize.Quality)
	assert.True(t, cfg.Resize.WithoutEnlargement)
	assert.Equal(t, 256, cfg.Thumbnail.Size)
	assert.Equal(t, 80, cfg.Thumbnail.Quality)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("resize:\n  max_side: 2048\n  quality: 90\n  without_enlargement: true\nthumbnail:\n  size: 128\n  quality: 70\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))
	t.Setenv("IMAGEOPS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2048, cfg.Resize.MaxSide)
	assert.Equal(t, 90, cfg.Resize.Quality)
	assert.Equal(t, 128, cfg.Thumbnail.Size)
	assert.Equal(t, 70, cfg.Thumbnail.Quality)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resize:\n  max_side: 2048\n"), 0o644))
	t.Setenv("IMAGEOPS_CONFIG", path)
	t.Setenv("IMAGEOPS_MAX_SIDE", "512")
	t.Setenv("IMAGEOPS_THUMBNAIL_QUALITY", "65")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 512, cfg.Resize.MaxSide)
	assert.Equal(t, 65, cfg.Thumbnail.Quality)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resize: [not a mapping"), 0o644))
	t.Setenv("IMAGEOPS_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvHelpersFallBackOnBadValues(t *testing.T) {
	t.Setenv("IMAGEOPS_TEST_INT", "not-a-number")
	assert.Equal(t, 42, envInt("IMAGEOPS_TEST_INT", 42))

	t.Setenv("IMAGEOPS_TEST_BOOL", "not-a-bool")
	assert.True(t, envBool("IMAGEOPS_TEST_BOOL", true))

	assert.Equal(t, 7, envInt("IMAGEOPS_TEST_UNSET", 7))
}
