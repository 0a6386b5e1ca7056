package raster

import "image"

// FrameBuffer holds the rendered pixels as a flat slice for cache locality.
// Pixels are quantized RGB, row-major, row 0 at the top.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGB interleaved, len = W*H*3
}

// NewFrameBuffer allocates a zeroed (black) buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*3),
	}
}

// Offset returns the index of pixel (x, y) in Pix.
func (fb *FrameBuffer) Offset(x, y int) int {
	return (y*fb.Width + x) * 3
}

// Row returns the slice of Pix backing row y. Rows never overlap, so
// separate goroutines may fill separate rows.
func (fb *FrameBuffer) Row(y int) []uint8 {
	start := y * fb.Width * 3
	return fb.Pix[start : start+fb.Width*3]
}

func (fb *FrameBuffer) Set(x, y int, r, g, b uint8) {
	i := fb.Offset(x, y)
	fb.Pix[i] = r
	fb.Pix[i+1] = g
	fb.Pix[i+2] = b
}

func (fb *FrameBuffer) At(x, y int) (r, g, b uint8) {
	i := fb.Offset(x, y)
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

// NRGBA converts the buffer to an opaque image for the image encoders.
func (fb *FrameBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		src := fb.Row(y)
		off := y * img.Stride
		for x := 0; x < fb.Width; x++ {
			di := off + x*4
			si := x * 3
			img.Pix[di] = src[si]
			img.Pix[di+1] = src[si+1]
			img.Pix[di+2] = src[si+2]
			img.Pix[di+3] = 255
		}
	}
	return img
}
