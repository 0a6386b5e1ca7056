package mathutil

// Ray is an immutable origin + direction pair.
// The direction is stored as given, not normalized.
type Ray struct {
	origin    Vec3
	direction Vec3
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{origin: origin, direction: direction}
}

func (r Ray) Origin() Vec3    { return r.origin }
func (r Ray) Direction() Vec3 { return r.direction }

// At returns the point origin + t*direction.
func (r Ray) At(t float64) Vec3 {
	return r.origin.Add(r.direction.Scale(t))
}
