package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"skyray-renderer/internal/camera"
	"skyray-renderer/internal/encode"
	"skyray-renderer/internal/mathutil"
)

// Defaults for an empty config.
const (
	DefaultAspectRatio    = 16.0 / 9.0
	DefaultImageWidth     = 400
	DefaultFocalLength    = 1.0
	DefaultViewportHeight = 2.0
	DefaultWorkers        = 1
	DefaultFormat         = string(encode.PPM)
	DefaultOutput         = "-" // stdout
)

// Config holds camera geometry and output settings.
type Config struct {
	// Camera
	AspectRatio    float64    `json:"aspect_ratio"`
	ImageWidth     int        `json:"image_width"`
	FocalLength    float64    `json:"focal_length"`
	ViewportHeight float64    `json:"viewport_height"`
	CameraCenter   [3]float64 `json:"camera_center"`

	// Output
	Format       string `json:"format"`
	Output       string `json:"output"`
	PreviewWidth int    `json:"preview_width"`
	Workers      int    `json:"workers"`
}

// Load reads camera and output settings from a JSON file. Omitted keys stay
// zero and are filled by Resolve; unknown keys (usually typos) are an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not set"; any other value, negative included, replaces
// the file setting and is checked by Validate.
type Flags struct {
	AspectRatio    float64
	ImageWidth     int
	FocalLength    float64
	ViewportHeight float64
	Format         string
	Output         string
	PreviewWidth   int
	Workers        int
}

// Resolve applies flag overrides, then fills any empty fields with defaults.
// When no format is given it is guessed from the output file extension.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.AspectRatio != 0 {
		c.AspectRatio = flags.AspectRatio
	}
	if flags.ImageWidth != 0 {
		c.ImageWidth = flags.ImageWidth
	}
	if flags.FocalLength != 0 {
		c.FocalLength = flags.FocalLength
	}
	if flags.ViewportHeight != 0 {
		c.ViewportHeight = flags.ViewportHeight
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.PreviewWidth != 0 {
		c.PreviewWidth = flags.PreviewWidth
	}
	if flags.Workers != 0 {
		c.Workers = flags.Workers
	}

	if c.AspectRatio == 0 {
		c.AspectRatio = DefaultAspectRatio
	}
	if c.ImageWidth == 0 {
		c.ImageWidth = DefaultImageWidth
	}
	if c.FocalLength == 0 {
		c.FocalLength = DefaultFocalLength
	}
	if c.ViewportHeight == 0 {
		c.ViewportHeight = DefaultViewportHeight
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Format == "" {
		c.Format = DefaultFormat
		if f, ok := encode.FormatFromPath(c.Output); ok {
			c.Format = string(f)
		}
	}
}

// Validate reports settings that cannot produce an image.
// Camera geometry is checked again by camera.New.
func (c *Config) Validate() error {
	if c.ImageWidth <= 0 {
		return fmt.Errorf("config: image_width must be positive, got %d", c.ImageWidth)
	}
	if c.AspectRatio <= 0 || math.IsNaN(c.AspectRatio) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("config: aspect_ratio must be a positive number, got %v", c.AspectRatio)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	if c.PreviewWidth < 0 {
		return fmt.Errorf("config: preview_width must not be negative, got %d", c.PreviewWidth)
	}
	// Preview height follows the image aspect ratio.
	if float64(c.PreviewWidth)*math.Max(float64(c.PreviewWidth)/c.AspectRatio, 1) > camera.MaxPixels {
		return fmt.Errorf("config: preview_width %d exceeds %d pixels", c.PreviewWidth, camera.MaxPixels)
	}
	f, err := encode.ParseFormat(c.Format)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if f == encode.PPM && c.PreviewWidth > 0 {
		return fmt.Errorf("config: preview_width only applies to png, webp and tga output")
	}
	return nil
}

// Camera converts the geometry settings to camera parameters.
func (c *Config) Camera() camera.Params {
	return camera.Params{
		AspectRatio:    c.AspectRatio,
		ImageWidth:     c.ImageWidth,
		FocalLength:    c.FocalLength,
		ViewportHeight: c.ViewportHeight,
		Center:         mathutil.Vec3(c.CameraCenter),
	}
}

// ParseAspect accepts "16:9", "16/9" or a plain number like "1.7778".
func ParseAspect(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ":/"); i >= 0 {
		w, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
		if err != nil {
			return 0, fmt.Errorf("config: aspect %q: %w", s, err)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
		if err != nil {
			return 0, fmt.Errorf("config: aspect %q: %w", s, err)
		}
		if w <= 0 || h <= 0 {
			return 0, fmt.Errorf("config: aspect %q: both sides must be positive", s)
		}
		return w / h, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("config: aspect %q: %w", s, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("config: aspect %q: must be positive", s)
	}
	return v, nil
}
