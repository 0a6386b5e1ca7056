package encode

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"skyray-renderer/internal/postprocess"
	"skyray-renderer/internal/ppm"
	"skyray-renderer/internal/raster"
)

// Format names an output image format.
type Format string

const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
)

// Formats lists every supported format, PPM first.
var Formats = []Format{PPM, PNG, WebP, TGA}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("encode: unknown format %q", s)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", false
	}
	return f, true
}

// Write encodes fb to w. For formats other than PPM the image is first
// scaled to previewWidth when previewWidth > 0. PPM output is always the
// full-size plain-text image.
func Write(w io.Writer, f Format, fb *raster.FrameBuffer, previewWidth int) error {
	if f == PPM {
		if previewWidth > 0 {
			return fmt.Errorf("encode: preview width is not supported for %s", f)
		}
		return ppm.Encode(w, fb)
	}

	img := postprocess.Resize(fb.NRGBA(), previewWidth)
	return Image(w, f, img)
}

// Image encodes img with one of the binary image formats.
func Image(w io.Writer, f Format, img image.Image) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("encode: %s is not a binary image format", f)
	}
	if err != nil {
		return fmt.Errorf("encode: %s: %w", f, err)
	}
	return nil
}
