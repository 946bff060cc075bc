package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Tag identifies the container format of an image byte stream. Detection is
// purely signature based and independent of whether the stream decodes.
type Tag string

const (
	TagPNG     Tag = "png"
	TagJPEG    Tag = "jpeg"
	TagGIF     Tag = "gif"
	TagBMP     Tag = "bmp"
	TagWebP    Tag = "webp"
	TagTIFF    Tag = "tiff"
	TagUnknown Tag = "unknown"
)

var (
	magicPNG    = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	magicJPEG   = []byte{0xFF, 0xD8, 0xFF}
	magicGIF87  = []byte("GIF87a")
	magicGIF89  = []byte("GIF89a")
	magicBMP    = []byte("BM")
	magicRIFF   = []byte("RIFF")
	magicTIFFLE = []byte{'I', 'I', 0x2A, 0x00}
	magicTIFFBE = []byte{'M', 'M', 0x00, 0x2A}
)

// Sniff inspects the leading bytes of data and reports the container format,
// or TagUnknown when no known signature matches. It never fails.
func Sniff(data []byte) Tag {
	switch {
	case bytes.HasPrefix(data, magicPNG):
		return TagPNG
	case bytes.HasPrefix(data, magicJPEG):
		return TagJPEG
	case bytes.HasPrefix(data, magicGIF87), bytes.HasPrefix(data, magicGIF89):
		return TagGIF
	case bytes.HasPrefix(data, magicRIFF):
		if len(data) >= 12 && bytes.Equal(data[8:12], []byte("WEBP")) {
			return TagWebP
		}
		return TagUnknown
	case bytes.HasPrefix(data, magicTIFFLE), bytes.HasPrefix(data, magicTIFFBE):
		return TagTIFF
	case bytes.HasPrefix(data, magicBMP):
		return TagBMP
	default:
		return TagUnknown
	}
}

// FromExtension maps a filename extension to a Tag. Used only as a hint when
// byte sniffing is inconclusive for a named file.
func FromExtension(path string) Tag {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return TagPNG
	case ".jpg", ".jpeg", ".jpe":
		return TagJPEG
	case ".gif":
		return TagGIF
	case ".bmp":
		return TagBMP
	case ".webp":
		return TagWebP
	case ".tif", ".tiff":
		return TagTIFF
	default:
		return TagUnknown
	}
}

// String returns the label emitted in metadata output.
func (t Tag) String() string {
	if t == "" {
		return string(TagUnknown)
	}
	return string(t)
}
