package archipelago

import "time"

// Gesture is the growth gesture state: either Idle or Growing.
type Gesture interface {
	isGesture()
}

// Idle means no press is being held on empty canvas.
type Idle struct{}

// Growing is a held press that will commit a body on release.
type Growing struct {
	Start  time.Duration // clock time of the press
	Anchor Vec2          // press position
}

func (Idle) isGesture()    {}
func (Growing) isGesture() {}

// Elapsed returns how long the gesture has been held at clock time now.
func (g Growing) Elapsed(now time.Duration) time.Duration {
	return now - g.Start
}

// Radius returns the radius a release at clock time now would commit.
func (g Growing) Radius(now time.Duration) float64 {
	return GrowthRadius(g.Elapsed(now))
}

// GrowthRadius maps hold time linearly from [0, GrowDuration] onto
// [MinRadius, MaxRadius], clamped at both ends.
func GrowthRadius(elapsed time.Duration) float64 {
	r := remap(float64(elapsed), 0, float64(GrowDuration), MinRadius, MaxRadius)
	return clamp(r, MinRadius, MaxRadius)
}
