package archipelago

import "math"

// Overlaps reports whether two disks interpenetrate. Touching disks do not.
func Overlaps(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	minDist := r1 + r2
	return dx*dx+dy*dy < minDist*minDist
}

// contactNormal returns the unit vector from (x1,y1) to (x2,y2) and the
// center distance. Coincident centers use contactEpsilon as the distance,
// which yields a zero normal rather than NaN. Callers that project onto the
// normal and its tangent therefore see zero for both.
func contactNormal(x1, y1, x2, y2 float64) (nx, ny, dist float64) {
	dx := x2 - x1
	dy := y2 - y1
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		dist = contactEpsilon
	}
	return dx / dist, dy / dist, dist
}

// ResolveBodies separates two overlapping bodies and exchanges the normal
// components of their velocities as a 1-D elastic collision, using radius as
// mass. Tangential components pass through unchanged. Returns false and
// leaves both bodies untouched when they do not overlap.
//
// Coincident centers have no contact direction: the zero normal leaves both
// positions in place and zeroes both velocities, tangential parts included.
// Noise and pointer forces pull the pair apart on later frames.
//
// One call removes the pair's penetration completely; it does not iterate,
// so a body squeezed between several others may still overlap a neighbour
// after a full pass.
func ResolveBodies(a, b *Body) bool {
	if !Overlaps(a.X, a.Y, a.r, b.X, b.Y, b.r) {
		return false
	}

	nx, ny, dist := contactNormal(a.X, a.Y, b.X, b.Y)
	overlap := (a.r + b.r - dist) / 2

	a.X -= nx * overlap
	a.Y -= ny * overlap
	b.X += nx * overlap
	b.Y += ny * overlap

	tx, ty := -ny, nx

	tanA := a.VX*tx + a.VY*ty
	tanB := b.VX*tx + b.VY*ty
	normA := a.VX*nx + a.VY*ny
	normB := b.VX*nx + b.VY*ny

	m1, m2 := a.r, b.r
	newNormA := (normA*(m1-m2) + 2*m2*normB) / (m1 + m2)
	newNormB := (normB*(m2-m1) + 2*m1*normA) / (m1 + m2)

	a.VX = tx*tanA + nx*newNormA
	a.VY = ty*tanA + ny*newNormA
	b.VX = tx*tanB + nx*newNormB
	b.VY = ty*tanB + ny*newNormB
	return true
}

// SeparateGlyph pushes an overlapping glyph and body apart by half the
// overlap each along the line between their centers. Velocities are not
// changed. Returns false when the glyph's disk does not touch the body.
func SeparateGlyph(g *Glyph, b *Body) bool {
	if !Overlaps(b.X, b.Y, b.r, g.X, g.Y, g.Radius()) {
		return false
	}

	nx, ny, dist := contactNormal(b.X, b.Y, g.X, g.Y)
	overlap := (b.r + g.Radius() - dist) / 2

	g.X += nx * overlap
	g.Y += ny * overlap
	b.X -= nx * overlap
	b.Y -= ny * overlap
	return true
}

// resolveAll runs ResolveBodies once for every unordered pair in insertion
// order and returns the number of contacts handled.
func resolveAll(bodies []*Body) int {
	contacts := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if ResolveBodies(bodies[i], bodies[j]) {
				contacts++
			}
		}
	}
	return contacts
}
