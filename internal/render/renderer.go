package render

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"skyray-renderer/internal/camera"
	"skyray-renderer/internal/ppm"
	"skyray-renderer/internal/raster"
	"skyray-renderer/internal/shade"
)

// Options controls how an image is traced. The zero value traces
// sequentially with no progress output.
type Options struct {
	// Workers is the number of rows traced concurrently. Values <= 1 trace
	// rows one after another.
	Workers int

	// Progress receives a scanline countdown, one update per row.
	// It must not be the pixel output stream.
	Progress io.Writer
}

// Trace casts one ray per pixel of vp and returns the quantized image.
// The result does not depend on opts.Workers.
func Trace(vp *camera.Viewport, opts Options) *raster.FrameBuffer {
	fb := raster.NewFrameBuffer(vp.Width, vp.Height)
	pr := newProgress(opts.Progress, vp.Height)

	if opts.Workers <= 1 {
		for j := 0; j < vp.Height; j++ {
			pr.row()
			traceRow(vp, fb, j)
		}
		pr.done()
		return fb
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for j := 0; j < vp.Height; j++ {
		g.Go(func() error {
			traceRow(vp, fb, j)
			pr.row()
			return nil
		})
	}
	// Row tracing cannot fail; Wait only joins the workers.
	_ = g.Wait()
	pr.done()
	return fb
}

func traceRow(vp *camera.Viewport, fb *raster.FrameBuffer, j int) {
	row := fb.Row(j)
	for i := 0; i < vp.Width; i++ {
		r, g, b := ppm.ColorBytes(shade.Sky(vp.RayThrough(i, j)))
		row[i*3] = r
		row[i*3+1] = g
		row[i*3+2] = b
	}
}

// Render traces vp and writes it to w as a P3 image.
func Render(w io.Writer, vp *camera.Viewport, opts Options) error {
	fb := Trace(vp, opts)
	if err := ppm.Encode(w, fb); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Stream writes vp to w as a P3 image pixel by pixel, without holding the
// image in memory. It always runs on the calling goroutine and ignores
// opts.Workers. The bytes written match Render.
func Stream(w io.Writer, vp *camera.Viewport, opts Options) error {
	pw := ppm.NewWriter(w)
	pr := newProgress(opts.Progress, vp.Height)

	if err := pw.WriteHeader(vp.Width, vp.Height); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	for j := 0; j < vp.Height; j++ {
		pr.row()
		for i := 0; i < vp.Width; i++ {
			if err := pw.WriteColor(shade.Sky(vp.RayThrough(i, j))); err != nil {
				return fmt.Errorf("render: %w", err)
			}
		}
	}
	if err := pw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	pr.done()
	return nil
}

// progress prints "Scanlines remaining" updates. Write errors are ignored:
// progress is diagnostic only.
type progress struct {
	mu        sync.Mutex
	w         io.Writer
	remaining int
}

func newProgress(w io.Writer, rows int) *progress {
	return &progress{w: w, remaining: rows}
}

func (p *progress) row() {
	if p.w == nil {
		return
	}
	p.mu.Lock()
	fmt.Fprintf(p.w, "\rScanlines remaining: %d ", p.remaining)
	p.remaining--
	p.mu.Unlock()
}

func (p *progress) done() {
	if p.w == nil {
		return
	}
	p.mu.Lock()
	fmt.Fprint(p.w, "\rDone.                 \n")
	p.mu.Unlock()
}
