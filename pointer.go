package archipelago

import "math"

// RepulsionForce returns the impulse magnitude a pointer at distance d
// applies to a body of radius r. It falls linearly from
// RepulsionStrength*r/50 just outside the center to zero at RepulsionRadius.
// The force is undefined at d == 0 and reported as zero there.
func RepulsionForce(d, r float64) float64 {
	if d <= 0 || d >= RepulsionRadius {
		return 0
	}
	peak := RepulsionStrength * (r / repulsionRefRadius)
	return remap(d, 0, RepulsionRadius, peak, 0)
}

// ApplyPointerForce pushes b away from the pointer at (px, py). Returns false
// when the pointer is outside the repulsion radius or exactly on the body's
// center.
func ApplyPointerForce(b *Body, px, py float64) bool {
	dx := b.X - px
	dy := b.Y - py
	d := math.Sqrt(dx*dx + dy*dy)
	force := RepulsionForce(d, b.r)
	if force == 0 {
		return false
	}
	b.VX += dx / d * force
	b.VY += dy / d * force
	return true
}
