package archipelago

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBackground is the canvas clear color (#f9f9f9).
	ColorBackground = Color{0xf9 / 255.0, 0xf9 / 255.0, 0xf9 / 255.0, 1}
	// ColorInk fills bodies and glyphs (#111111).
	ColorInk = Color{0x11 / 255.0, 0x11 / 255.0, 0x11 / 255.0, 1}
	// ColorPreview fills the growth preview circle (#11111120).
	ColorPreview = Color{0x11 / 255.0, 0x11 / 255.0, 0x11 / 255.0, 0x20 / 255.0}
)

// Vec2 is a 2D vector used for positions and directions throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies strictly inside the circle. A press on
// the circumference does not count as a hit.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// clamp applies the lower bound first, so when
// lo > hi the result is hi.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// remap linearly maps v from [inLo, inHi] to [outLo, outHi] without clamping.
func remap(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}
