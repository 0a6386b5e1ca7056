package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// The same type doubles as an RGB color, see Color.
type Vec3 [3]float64

// V builds a Vec3 from its components.
func V(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// AddScalar adds s to every component.
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// SubScalar subtracts s from every component.
func (v Vec3) SubScalar(s float64) Vec3 {
	return Vec3{v[0] - s, v[1] - s, v[2] - s}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Scale is the scalar-first form of v.Scale(s).
func Scale(s float64, v Vec3) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

// Div divides every component by s. Dividing by zero follows IEEE-754
// and yields ±Inf or NaN per component.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to length 1. A zero vector produces NaN components.
func (v Vec3) Unit() Vec3 {
	return v.Div(v.Len())
}

// UnitVector is the free-function form of v.Unit().
func UnitVector(v Vec3) Vec3 {
	return v.Unit()
}

// Lerp blends a and b: (1-t)*a + t*b.
func Lerp(a, b Vec3, t float64) Vec3 {
	return Scale(1-t, a).Add(Scale(t, b))
}
