package encode

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"

	"skyray-renderer/internal/raster"
)

func gradient(w, h int) *raster.FrameBuffer {
	fb := raster.NewFrameBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fb.Set(x, y, uint8(x*255/w), uint8(y*255/h), 255)
		}
	}
	return fb
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"ppm", "PNG", " webp ", "Tga"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("jpeg")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, ok := FormatFromPath("out/sky.webp")
	assert.True(t, ok)
	assert.Equal(t, WebP, f)

	_, ok = FormatFromPath("sky")
	assert.False(t, ok)
	_, ok = FormatFromPath("sky.bmp")
	assert.False(t, ok)
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, PPM, gradient(3, 2), 0))
	assert.True(t, strings.HasPrefix(buf.String(), "P3\n3 2\n255\n"))

	assert.Error(t, Write(&buf, PPM, gradient(3, 2), 2))
}

func TestWritePNGRoundTrip(t *testing.T) {
	fb := gradient(40, 20)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, PNG, fb, 0))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())

	r, g, b, a := img.At(10, 5).RGBA()
	wr, wg, wb := fb.At(10, 5)
	assert.Equal(t, []uint32{uint32(wr), uint32(wg), uint32(wb), 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestWriteTGA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, TGA, gradient(16, 9), 0))

	img, err := tga.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())
}

func TestWriteWebPPreview(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, WebP, gradient(64, 36), 32))
	require.Greater(t, buf.Len(), 12)
	assert.Equal(t, "RIFF", string(buf.Bytes()[:4]))

	cfg, err := webp.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 18, cfg.Height)
}

func TestImageRejectsPPM(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Image(&buf, PPM, gradient(1, 1).NRGBA()))
}
