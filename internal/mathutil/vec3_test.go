package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-12

func vecClose(t *testing.T, want, got Vec3) {
	t.Helper()
	for k := 0; k < 3; k++ {
		if !scalar.EqualWithinAbsOrRel(want[k], got[k], tol, tol) {
			t.Errorf("component %d: want %v, got %v (full: want %v, got %v)", k, want[k], got[k], want, got)
		}
	}
}

var samples = []Vec3{
	{1, 2, 3},
	{-4.5, 0.25, 8},
	{1e6, -1e-6, 3.14159},
	{0, 0, 0},
	{-1, -1, -1},
}

func TestAddVector(t *testing.T) {
	vec1 := Vec3{1, 2, 3}
	vec2 := Vec3{1, 2, 3}
	assert.Equal(t, Vec3{2, 4, 6}, vec1.Add(vec2))
}

func TestAddCommutativeAssociative(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, a.Add(b), b.Add(a))
			for _, c := range samples {
				vecClose(t, a.Add(b).Add(c), a.Add(b.Add(c)))
			}
		}
	}
}

func TestScalarBroadcast(t *testing.T) {
	v := Vec3{1, 2, 3}
	assert.Equal(t, Vec3{3, 4, 5}, v.AddScalar(2))
	assert.Equal(t, Vec3{-1, 0, 1}, v.SubScalar(2))
	assert.Equal(t, Vec3{0, 1, 2}, v.Sub(Vec3{1, 1, 1}))
}

func TestScaleBothOrders(t *testing.T) {
	for _, v := range samples {
		for _, s := range []float64{0, 1, -2.5, 1e-9, 7} {
			assert.Equal(t, v.Scale(s), Scale(s, v))
		}
	}
}

func TestDivRoundTrip(t *testing.T) {
	for _, v := range samples {
		for _, s := range []float64{1, -2.5, 1e-9, 7, 3} {
			vecClose(t, v, v.Scale(s).Div(s))
		}
	}
}

func TestDivByZero(t *testing.T) {
	got := Vec3{1, -1, 0}.Div(0)
	assert.True(t, math.IsInf(got[0], 1))
	assert.True(t, math.IsInf(got[1], -1))
	assert.True(t, math.IsNaN(got[2]))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 5.0, Vec3{3, 4, 0}.Len())
	assert.Equal(t, 0.0, Vec3{}.Len())
}

func TestUnitVector(t *testing.T) {
	for _, v := range samples {
		if v.Len() == 0 {
			continue
		}
		u := UnitVector(v)
		assert.InDelta(t, 1.0, u.Len(), 1e-12)
		assert.Equal(t, v.Unit(), u)
	}
}

func TestUnitVectorOfZeroIsNaN(t *testing.T) {
	u := Vec3{}.Unit()
	for k := 0; k < 3; k++ {
		assert.True(t, math.IsNaN(u[k]), "component %d", k)
	}
}

func TestLerp(t *testing.T) {
	a, b := Vec3{1, 1, 1}, Vec3{0.5, 0.7, 1.0}
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	vecClose(t, Vec3{0.75, 0.85, 1.0}, Lerp(a, b, 0.5))
}

func TestRay(t *testing.T) {
	r := NewRay(Vec3{1, 0, 0}, Vec3{0, 2, 0})
	assert.Equal(t, Vec3{1, 0, 0}, r.Origin())
	assert.Equal(t, Vec3{0, 2, 0}, r.Direction(), "direction must not be normalized")
	assert.Equal(t, Vec3{1, 3, 0}, r.At(1.5))
}
