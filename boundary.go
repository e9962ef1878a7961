package archipelago

// BounceInside keeps b inside bounds. On each axis where the disk crosses an
// edge the velocity component is negated and the position is clamped so the
// disk is tangent to that edge. Returns true if either axis bounced.
func BounceInside(b *Body, bounds Rect) bool {
	bounced := false
	if b.X-b.r < bounds.X || b.X+b.r > bounds.X+bounds.Width {
		b.VX = -b.VX
		b.X = clamp(b.X, bounds.X+b.r, bounds.X+bounds.Width-b.r)
		bounced = true
	}
	if b.Y-b.r < bounds.Y || b.Y+b.r > bounds.Y+bounds.Height {
		b.VY = -b.VY
		b.Y = clamp(b.Y, bounds.Y+b.r, bounds.Y+bounds.Height-b.r)
		bounced = true
	}
	return bounced
}

// ClampGlyph clamps g's position so its disk stays inside bounds. Velocity is
// unchanged.
func ClampGlyph(g *Glyph, bounds Rect) {
	half := g.size / 2
	g.X = clamp(g.X, bounds.X+half, bounds.X+bounds.Width-half)
	g.Y = clamp(g.Y, bounds.Y+half, bounds.Y+bounds.Height-half)
}
