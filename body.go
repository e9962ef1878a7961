package archipelago

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Body is a drifting circle. Its radius doubles as its mass in collisions and
// never changes after creation. Link is copied from the registry when the
// body is committed and may be empty for bodies added directly.
type Body struct {
	X, Y   float64
	VX, VY float64

	// Per-axis offsets into the noise field. Advanced every Update.
	NoiseX, NoiseY float64

	Link string

	r     float64
	noise *NoiseField

	// Spawn pop: display scale eases from 0 to 1. Collisions always use r.
	pop      *gween.Tween
	popScale float64
	popStep  float32
}

// NewBody creates a resting body at (x, y). The radius is clamped to
// [MinRadius, MaxRadius]. noise may be shared between bodies; each body reads
// it at its own offsets.
func NewBody(x, y, r float64, noise *NoiseField, offsetX, offsetY float64) *Body {
	return &Body{
		X:        x,
		Y:        y,
		NoiseX:   offsetX,
		NoiseY:   offsetY,
		r:        clamp(r, MinRadius, MaxRadius),
		noise:    noise,
		popScale: 1,
	}
}

// Radius returns the body's radius.
func (b *Body) Radius() float64 {
	return b.r
}

// DisplayScale returns the current spawn-animation scale in (0, ~1.1].
// It settles at exactly 1 once the pop finishes.
func (b *Body) DisplayScale() float64 {
	return b.popScale
}

// startPop begins the spawn animation, advancing by frameSeconds per Update.
func (b *Body) startPop(frameSeconds float32) {
	if frameSeconds <= 0 {
		return
	}
	b.pop = gween.New(0, 1, popDuration, ease.OutBack)
	b.popScale = 0
	b.popStep = frameSeconds
}

// Contains reports whether (x, y) lies strictly inside the body's disk.
func (b *Body) Contains(x, y float64) bool {
	return HitCircle{CenterX: b.X, CenterY: b.Y, Radius: b.r}.Contains(x, y)
}

// Update advances the noise offsets, adds the sampled wander acceleration,
// applies drag and integrates position. Bounds are enforced separately by
// BounceInside after collisions and pointer forces.
func (b *Body) Update(Rect) {
	b.NoiseX += bodyNoiseSpeed
	b.NoiseY += bodyNoiseSpeed
	if b.noise != nil {
		b.VX += b.noise.Accel(b.NoiseX, bodyNoiseAccel)
		b.VY += b.noise.Accel(b.NoiseY, bodyNoiseAccel)
	}
	b.VX *= bodyDamping
	b.VY *= bodyDamping
	b.X += b.VX
	b.Y += b.VY

	if b.pop != nil {
		v, done := b.pop.Update(b.popStep)
		b.popScale = float64(v)
		if done {
			b.pop = nil
			b.popScale = 1
		}
	}
}

// Display draws the body as a filled ink disk.
func (b *Body) Display(c Canvas) {
	r := b.r * b.popScale
	if r <= 0 {
		return
	}
	c.FillCircle(b.X, b.Y, r, ColorInk)
}
