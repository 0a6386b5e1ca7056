package mathutil

// Color is an RGB triple stored in a Vec3 (x=red, y=green, z=blue).
// Channels are expected in [0,1) when serialized; nothing here clamps them.
type Color = Vec3

// RGB builds a Color from its channels.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}
