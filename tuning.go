package archipelago

import "time"

// Body tuning.
const (
	MinRadius = 10.0  // smallest committed body radius
	MaxRadius = 200.0 // largest committed body radius

	// GrowDuration is the hold time at which a growth gesture reaches MaxRadius.
	GrowDuration = 2000 * time.Millisecond

	bodyNoiseSpeed = 0.003
	bodyNoiseAccel = 0.05
	bodyDamping    = 0.99
)

// Glyph tuning.
const (
	glyphNoiseSpeed = 0.002
	glyphNoiseAccel = 0.02
	glyphDamping    = 0.98
	glyphMinSize    = 20.0
	glyphMaxSize    = 40.0
	glyphMaxSpeed   = 0.3
)

// Interaction tuning.
const (
	RepulsionRadius   = 150.0 // pointer influence distance
	RepulsionStrength = 0.3   // peak force for a body of radius repulsionRefRadius

	repulsionRefRadius = 50.0

	// contactEpsilon replaces a zero center distance so normals stay finite.
	contactEpsilon = 0.01

	noiseOffsetRangeX = 1000.0
	noiseOffsetRangeY = 2000.0
)

// Spawn pop animation (display only).
const (
	popDuration = 0.35 // seconds
)

// DefaultFrameTime is the simulated duration of one Step at 60 ticks per second.
const DefaultFrameTime = time.Second / 60
