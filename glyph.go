package archipelago

// Glyph is a floating letter. It wanders like a Body but is only nudged by
// bodies, never bounced, and is softly clamped to the canvas.
type Glyph struct {
	X, Y   float64
	VX, VY float64
	Char   rune

	NoiseX, NoiseY float64

	size  float64
	noise *NoiseField
}

// NewGlyph creates a glyph of the given display size centered at (x, y).
func NewGlyph(ch rune, x, y, size float64, noise *NoiseField, offsetX, offsetY float64) *Glyph {
	return &Glyph{
		X:      x,
		Y:      y,
		Char:   ch,
		NoiseX: offsetX,
		NoiseY: offsetY,
		size:   size,
		noise:  noise,
	}
}

// Size returns the glyph's font size. Its collision disk has radius Size/2.
func (g *Glyph) Size() float64 {
	return g.size
}

// Radius returns the radius of the glyph's collision disk.
func (g *Glyph) Radius() float64 {
	return g.size / 2
}

// Update integrates noise-driven motion and clamps the position so the glyph
// stays fully on the canvas. Velocity is left untouched by the clamp.
func (g *Glyph) Update(bounds Rect) {
	g.NoiseX += glyphNoiseSpeed
	g.NoiseY += glyphNoiseSpeed
	if g.noise != nil {
		g.VX += g.noise.Accel(g.NoiseX, glyphNoiseAccel)
		g.VY += g.noise.Accel(g.NoiseY, glyphNoiseAccel)
	}
	g.VX *= glyphDamping
	g.VY *= glyphDamping
	g.X += g.VX
	g.Y += g.VY

	ClampGlyph(g, bounds)
}

// Display draws the character centered on the glyph's position.
func (g *Glyph) Display(c Canvas) {
	c.DrawGlyph(g.Char, g.X, g.Y, g.size, ColorInk)
}
