package archipelago

import "time"

type syntheticKind uint8

const (
	syntheticPress syntheticKind = iota
	syntheticRelease
	syntheticMove
	syntheticHold
)

// syntheticEvent represents a single injected input event. Coordinates are
// world units, identical to what a render surface passes to Press/Release.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64

	hold     time.Duration
	deadline time.Duration
	started  bool
}

// InjectPress queues a press at (x, y). The event is consumed on the next
// Step, before any entity moves.
func (s *Simulation) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticPress, x: x, y: y})
}

// InjectMove queues a pointer move to (x, y).
func (s *Simulation) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectRelease queues a release at (x, y).
func (s *Simulation) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticRelease, x: x, y: y})
}

// InjectHold queues a pause of d on the simulation clock. Later events wait
// until it has elapsed. With a FrameClock the clock is advanced by d at once.
func (s *Simulation) InjectHold(d time.Duration) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticHold, hold: d})
}

// InjectGrow is a convenience that queues press, hold for d, and release at
// (x, y): the scripted form of growing one body.
func (s *Simulation) InjectGrow(x, y float64, d time.Duration) {
	s.InjectPress(x, y)
	s.InjectHold(d)
	s.InjectRelease(x, y)
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two steps.
func (s *Simulation) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// PendingInput reports how many injected events are still queued.
func (s *Simulation) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput applies at most one queued event. A hold stays at the
// head of the queue until its deadline passes. Returns true if an event was
// consumed.
func (s *Simulation) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := &s.injectQueue[0]

	switch evt.kind {
	case syntheticPress:
		s.Press(evt.x, evt.y)
	case syntheticRelease:
		s.Release(evt.x, evt.y)
	case syntheticMove:
		s.SetPointer(evt.x, evt.y)
	case syntheticHold:
		if fc, ok := s.clock.(*FrameClock); ok {
			fc.Advance(evt.hold)
			break
		}
		if !evt.started {
			evt.started = true
			evt.deadline = s.clock.Now() + evt.hold
		}
		if s.clock.Now() < evt.deadline {
			return false
		}
	}

	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return true
}
