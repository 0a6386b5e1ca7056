package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"skyray-renderer/internal/camera"
	"skyray-renderer/internal/config"
	"skyray-renderer/internal/encode"
	"skyray-renderer/internal/render"
)

type options struct {
	configFile     string
	aspect         string
	width          int
	focal          float64
	viewportHeight float64
	workers        int
	format         string
	output         string
	previewWidth   int
	quiet          bool
	stream         bool
}

func main() {
	defer glog.Flush()

	if err := newCommand().Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a gradient-sky image by casting one ray per pixel",
		Long: `Render a gradient-sky image through a pinhole camera.

The default output is a plain-text PPM (P3) image on stdout. Progress goes
to stderr.`,
		// Errors, flag parse errors included, are printed by cobra to its
		// error stream; main only sets the exit status.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its flags from the Go flag set; mark it parsed.
			flag.CommandLine.Parse([]string{})
			return run(o)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.configFile, "config", "", "Path to config.json file")
	flags.StringVar(&o.aspect, "aspect", "", "Aspect ratio, e.g. 16:9 or 1.7778 (default 16:9)")
	flags.IntVar(&o.width, "width", 0, "Image width in pixels (default 400)")
	flags.Float64Var(&o.focal, "focal", 0, "Focal length (default 1.0)")
	flags.Float64Var(&o.viewportHeight, "viewport-height", 0, "Viewport height in world units (default 2.0)")
	flags.IntVar(&o.workers, "workers", 0, "Rows traced concurrently (default 1)")
	flags.StringVar(&o.format, "format", "", "Output format: ppm, png, webp, tga (default: from -o extension, else ppm)")
	flags.StringVarP(&o.output, "output", "o", "", `Output file, "-" for stdout (default "-")`)
	flags.IntVar(&o.previewWidth, "preview-width", 0, "Scale png/webp/tga output to this width")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "Do not print scanline progress")
	flags.BoolVar(&o.stream, "stream", false, "Write PPM pixel by pixel without buffering the image (ppm output only)")

	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	flag.Set("logtostderr", "true")

	return cmd
}

func run(o *options) error {
	var cfg config.Config
	if o.configFile != "" {
		var err error
		cfg, err = config.Load(o.configFile)
		if err != nil {
			return err
		}
	}

	flags := config.Flags{
		ImageWidth:     o.width,
		FocalLength:    o.focal,
		ViewportHeight: o.viewportHeight,
		Format:         o.format,
		Output:         o.output,
		PreviewWidth:   o.previewWidth,
		Workers:        o.workers,
	}
	if o.aspect != "" {
		a, err := config.ParseAspect(o.aspect)
		if err != nil {
			return err
		}
		flags.AspectRatio = a
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	vp, err := camera.New(cfg.Camera())
	if err != nil {
		return err
	}
	format, _ := encode.ParseFormat(cfg.Format)
	if o.stream && format != encode.PPM {
		return fmt.Errorf("--stream only applies to ppm output, not %s", format)
	}

	glog.V(1).Infof("viewport %dx%d, pixel00=%v du=%v dv=%v", vp.Width, vp.Height, vp.Pixel00, vp.PixelDeltaU, vp.PixelDeltaV)

	opts := render.Options{Workers: cfg.Workers}
	if !o.quiet {
		opts.Progress = os.Stderr
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	start := time.Now()
	if o.stream {
		err = render.Stream(out, vp, opts)
	} else {
		fb := render.Trace(vp, opts)
		err = encode.Write(out, format, fb, cfg.PreviewWidth)
	}
	if err != nil {
		return err
	}

	if f, ok := out.(*os.File); ok && f != os.Stdout {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
	}

	glog.Infof("rendered %dx%d %s to %s in %.3fs (workers=%d)",
		vp.Width, vp.Height, format, cfg.Output, time.Since(start).Seconds(), cfg.Workers)
	return nil
}
