package archipelago

import (
	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// NoiseField is a seeded 1D Perlin generator. Entities sample it at their own
// slowly advancing offsets, so nearby offsets give nearby values and the same
// seed and offset always give the same value.
type NoiseField struct {
	p    *perlin.Perlin
	seed int64
}

// NewNoiseField creates a noise field for the given seed.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{
		p:    perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		seed: seed,
	}
}

// Seed returns the seed the field was built from.
func (n *NoiseField) Seed() int64 {
	return n.seed
}

// Sample returns the noise value at offset, mapped into [0, 1].
func (n *NoiseField) Sample(offset float64) float64 {
	return clamp((n.p.Noise1D(offset)+1)/2, 0, 1)
}

// Accel samples the field at offset and maps the result onto the symmetric
// range [-amplitude, amplitude].
func (n *NoiseField) Accel(offset, amplitude float64) float64 {
	return remap(n.Sample(offset), 0, 1, -amplitude, amplitude)
}
