package ppm

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"skyray-renderer/internal/mathutil"
	"skyray-renderer/internal/raster"
)

// MaxValue is the channel maximum written in the header.
const MaxValue = 255

// rangeFactor maps [0,1] onto [0,255] under truncation; 256 would send 1.0 to 256.
const rangeFactor = 255.999

// ChannelByte quantizes one color channel: trunc(255.999*c).
// Values outside [0,1] are clamped and NaN becomes 0.
func ChannelByte(c float64) uint8 {
	v := rangeFactor * c
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v >= MaxValue:
		return MaxValue
	}
	return uint8(v)
}

// ColorBytes quantizes all three channels of c.
func ColorBytes(c mathutil.Color) (r, g, b uint8) {
	return ChannelByte(c.X()), ChannelByte(c.Y()), ChannelByte(c.Z())
}

// Writer serializes a plain (P3) PPM image to a buffered sink.
// The first write error sticks: later calls return it without writing.
type Writer struct {
	bw      *bufio.Writer
	scratch []byte
	err     error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		bw:      bufio.NewWriter(w),
		scratch: make([]byte, 0, 16),
	}
}

// WriteHeader writes "P3\n<width> <height>\n255\n".
func (w *Writer) WriteHeader(width, height int) error {
	if w.err != nil {
		return w.err
	}
	if _, err := fmt.Fprintf(w.bw, "P3\n%d %d\n%d\n", width, height, MaxValue); err != nil {
		w.err = fmt.Errorf("ppm: write header: %w", err)
	}
	return w.err
}

// WritePixel writes one "R G B\n" line.
func (w *Writer) WritePixel(r, g, b uint8) error {
	if w.err != nil {
		return w.err
	}
	buf := w.scratch[:0]
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	buf = append(buf, '\n')
	w.scratch = buf
	if _, err := w.bw.Write(buf); err != nil {
		w.err = fmt.Errorf("ppm: write pixel: %w", err)
	}
	return w.err
}

// WriteColor quantizes c and writes it as one pixel line.
func (w *Writer) WriteColor(c mathutil.Color) error {
	r, g, b := ColorBytes(c)
	return w.WritePixel(r, g, b)
}

// Flush pushes buffered output to the underlying sink.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.bw.Flush(); err != nil {
		w.err = fmt.Errorf("ppm: flush: %w", err)
	}
	return w.err
}

// Encode writes fb as a complete P3 image, pixels in row-major order.
func Encode(w io.Writer, fb *raster.FrameBuffer) error {
	pw := NewWriter(w)
	if err := pw.WriteHeader(fb.Width, fb.Height); err != nil {
		return err
	}
	for i := 0; i < len(fb.Pix); i += 3 {
		if err := pw.WritePixel(fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]); err != nil {
			return err
		}
	}
	return pw.Flush()
}
