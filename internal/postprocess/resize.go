package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize scales img to targetWidth, keeping its aspect ratio (height is at
// least one pixel). It is applied to finished images for previews only.
// Returns img unchanged when targetWidth is not positive or already matches.
func Resize(img *image.NRGBA, targetWidth int) *image.NRGBA {
	b := img.Bounds()
	if targetWidth <= 0 || targetWidth == b.Dx() || b.Dx() == 0 {
		return img
	}

	// float64 keeps Dy*targetWidth from overflowing int.
	targetHeight := int(float64(b.Dy()) * float64(targetWidth) / float64(b.Dx()))
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	// Rendered images are fully opaque, so no premultiply pass is needed.
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
