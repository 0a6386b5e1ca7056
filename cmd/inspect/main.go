package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"skyray-renderer/internal/camera"
	"skyray-renderer/internal/config"
	"skyray-renderer/internal/ppm"
	"skyray-renderer/internal/shade"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		configFile string
		width      int
		aspect     string
	)

	cmd := &cobra.Command{
		Use:          "inspect",
		Short:        "Dump the derived viewport and sample pixel colors",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.Config
			if configFile != "" {
				var err error
				if cfg, err = config.Load(configFile); err != nil {
					return err
				}
			}
			flags := config.Flags{ImageWidth: width}
			if aspect != "" {
				a, err := config.ParseAspect(aspect)
				if err != nil {
					return err
				}
				flags.AspectRatio = a
			}
			cfg.Resolve(flags)

			vp, err := camera.New(cfg.Camera())
			if err != nil {
				return err
			}
			dump(cmd.OutOrStdout(), vp)
			return nil
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "Path to config.json file")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels (default 400)")
	cmd.Flags().StringVar(&aspect, "aspect", "", "Aspect ratio, e.g. 16:9")
	return cmd
}

func dump(w io.Writer, vp *camera.Viewport) {
	fmt.Fprintf(w, "Viewport: %# v\n", pretty.Formatter(*vp))
	fmt.Fprintln(w, "------------------------------------------------------------")

	samples := []struct {
		name string
		i, j int
	}{
		{"top-left", 0, 0},
		{"top-right", vp.Width - 1, 0},
		{"center", vp.Width / 2, vp.Height / 2},
		{"bottom-left", 0, vp.Height - 1},
		{"bottom-right", vp.Width - 1, vp.Height - 1},
	}
	for _, s := range samples {
		ray := vp.RayThrough(s.i, s.j)
		c := shade.Sky(ray)
		r, g, b := ppm.ColorBytes(c)
		fmt.Fprintf(w, "  %-12s (%3d,%3d) center=%.4f color=%.4f -> %d %d %d\n",
			s.name, s.i, s.j, ray.At(1), c, r, g, b)
	}
}
