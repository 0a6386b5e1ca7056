package camera

import (
	"fmt"
	"math"

	"skyray-renderer/internal/mathutil"
)

// Params describes the pinhole camera and the image it projects onto.
type Params struct {
	AspectRatio    float64       // image width / height
	ImageWidth     int           // pixels
	FocalLength    float64       // camera center to viewport plane
	ViewportHeight float64       // world units
	Center         mathutil.Vec3 // camera position
}

// DefaultParams returns the stock 400px 16:9 camera at the origin.
func DefaultParams() Params {
	return Params{
		AspectRatio:    16.0 / 9.0,
		ImageWidth:     400,
		FocalLength:    1.0,
		ViewportHeight: 2.0,
	}
}

// MaxPixels bounds Width*Height so the frame buffer size cannot overflow.
// 1<<28 pixels is about 805 MB of RGB.
const MaxPixels = 1 << 28

// Viewport is the per-image geometry derived from Params.
// It is computed once and never modified afterwards.
type Viewport struct {
	Width  int
	Height int

	Center         mathutil.Vec3
	FocalLength    float64
	ViewportWidth  float64
	ViewportHeight float64

	U           mathutil.Vec3 // across a row, left to right
	V           mathutil.Vec3 // down a column, top to bottom
	PixelDeltaU mathutil.Vec3
	PixelDeltaV mathutil.Vec3
	UpperLeft   mathutil.Vec3
	Pixel00     mathutil.Vec3 // center of the top-left pixel
}

// ImageHeight returns trunc(width/aspect), never less than one row.
func ImageHeight(width int, aspect float64) int {
	h := int(float64(width) / aspect)
	if h < 1 {
		h = 1
	}
	return h
}

// New validates p and derives the viewport geometry.
func New(p Params) (*Viewport, error) {
	if p.ImageWidth <= 0 {
		return nil, fmt.Errorf("camera: image width must be positive, got %d", p.ImageWidth)
	}
	if !finite(p.AspectRatio) || p.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera: aspect ratio must be a positive finite number, got %v", p.AspectRatio)
	}
	if !finite(p.FocalLength) {
		return nil, fmt.Errorf("camera: focal length must be finite, got %v", p.FocalLength)
	}
	if !finite(p.ViewportHeight) || p.ViewportHeight <= 0 {
		return nil, fmt.Errorf("camera: viewport height must be a positive finite number, got %v", p.ViewportHeight)
	}
	for k, c := range p.Center {
		if !finite(c) {
			return nil, fmt.Errorf("camera: center component %d is not finite", k)
		}
	}

	// Checked in float64 so a huge width cannot overflow before the test.
	rows := math.Max(math.Floor(float64(p.ImageWidth)/p.AspectRatio), 1)
	if float64(p.ImageWidth)*rows > MaxPixels {
		return nil, fmt.Errorf("camera: image %d x %.0f exceeds %d pixels", p.ImageWidth, rows, MaxPixels)
	}

	width := p.ImageWidth
	height := ImageHeight(width, p.AspectRatio)

	vw := p.ViewportHeight * p.AspectRatio
	u := mathutil.V(vw, 0, 0)
	// Rows grow downward in the image while world y grows upward.
	v := mathutil.V(0, -p.ViewportHeight, 0)

	du := u.Div(float64(width))
	dv := v.Div(float64(height))

	upperLeft := p.Center.
		Sub(mathutil.V(0, 0, p.FocalLength)).
		Sub(u.Div(2)).
		Sub(v.Div(2))
	pixel00 := upperLeft.Add(mathutil.Scale(0.5, du.Add(dv)))

	return &Viewport{
		Width:          width,
		Height:         height,
		Center:         p.Center,
		FocalLength:    p.FocalLength,
		ViewportWidth:  vw,
		ViewportHeight: p.ViewportHeight,
		U:              u,
		V:              v,
		PixelDeltaU:    du,
		PixelDeltaV:    dv,
		UpperLeft:      upperLeft,
		Pixel00:        pixel00,
	}, nil
}

// PixelCenter returns the world-space center of pixel (i, j), where i is
// the column and j the row. Coordinates outside the image extrapolate.
func (vp *Viewport) PixelCenter(i, j int) mathutil.Vec3 {
	return vp.Pixel00.
		Add(mathutil.Scale(float64(i), vp.PixelDeltaU)).
		Add(mathutil.Scale(float64(j), vp.PixelDeltaV))
}

// RayThrough returns the ray from the camera center through pixel (i, j).
func (vp *Viewport) RayThrough(i, j int) mathutil.Ray {
	return mathutil.NewRay(vp.Center, vp.PixelCenter(i, j).Sub(vp.Center))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
