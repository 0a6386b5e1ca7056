package shade

import "skyray-renderer/internal/mathutil"

// Gradient endpoints: White at the nadir (unit y = -1), SkyBlue at the zenith (y = +1).
var (
	White   = mathutil.RGB(1.0, 1.0, 1.0)
	SkyBlue = mathutil.RGB(0.5, 0.7, 1.0)
)

// Sky returns the background color seen along r: a vertical blend between
// White and SkyBlue driven by the y component of the normalized direction.
func Sky(r mathutil.Ray) mathutil.Color {
	d := mathutil.UnitVector(r.Direction())
	a := 0.5 * (d.Y() + 1.0)
	return mathutil.Lerp(White, SkyBlue, a)
}
