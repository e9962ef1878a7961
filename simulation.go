package archipelago

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Opener is the host capability that opens a URI in a new context (a browser
// tab, a new window). Calls are fire-and-forget.
type Opener interface {
	Open(uri string)
}

// OpenerFunc adapts a plain function to Opener.
type OpenerFunc func(uri string)

// Open calls f(uri).
func (f OpenerFunc) Open(uri string) { f(uri) }

// PressResult reports what a press did.
type PressResult uint8

const (
	PressGrow PressResult = iota // press on empty canvas started a growth gesture
	PressOpen                    // press hit a linked body and the opener was called
	PressHit                     // press hit a body without a link; nothing happened
)

// Simulation owns every body, glyph, the link registry, the growth gesture
// and the last known pointer position. It is driven from a single goroutine:
// press and release events are applied between calls to Step, never during.
type Simulation struct {
	cfg    Config
	bounds Rect

	bodies []*Body
	glyphs []*Glyph
	links  *LinkRegistry

	gesture    Gesture
	pointer    Vec2
	hasPointer bool

	clock  Clock
	opener Opener
	noise  *NoiseField
	rng    *rand.Rand

	tick         uint64
	lastContacts int
	debug        bool

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// OnSpawn, if set, is called after a body is committed.
	OnSpawn func(b *Body)
	// OnSpawnRejected, if set, is called when a release is discarded because
	// the candidate would overlap an existing body.
	OnSpawnRejected func(x, y, r float64)
	// OnOpen, if set, is called after the opener receives a link.
	OnOpen func(link string)
}

// NewSimulation builds a simulation from cfg with an empty body collection
// and the full glyph pool. It uses a SystemClock and no opener until told
// otherwise.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.FrameTime <= 0 {
		cfg.FrameTime = DefaultFrameTime
	}
	links, err := NewLinkRegistry(cfg.Links)
	if err != nil {
		return nil, fmt.Errorf("archipelago: new simulation: %w", err)
	}

	seed := uint64(cfg.Seed)
	s := &Simulation{
		cfg:     cfg,
		bounds:  Rect{Width: cfg.Width, Height: cfg.Height},
		links:   links,
		gesture: Idle{},
		clock:   NewSystemClock(),
		noise:   NewNoiseField(cfg.Seed),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		debug:   cfg.Debug,
	}

	for _, ch := range cfg.Letters {
		s.glyphs = append(s.glyphs, s.newGlyph(ch))
	}
	return s, nil
}

func (s *Simulation) newGlyph(ch rune) *Glyph {
	x := s.rng.Float64() * s.bounds.Width
	y := s.rng.Float64() * s.bounds.Height
	size := glyphMinSize + s.rng.Float64()*(glyphMaxSize-glyphMinSize)
	g := NewGlyph(ch, x, y, size, s.noise,
		s.rng.Float64()*noiseOffsetRangeX, s.rng.Float64()*noiseOffsetRangeY)
	g.VX = -glyphMaxSpeed + s.rng.Float64()*2*glyphMaxSpeed
	g.VY = -glyphMaxSpeed + s.rng.Float64()*2*glyphMaxSpeed
	return g
}

// --- Accessors ---

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Bounds returns the current canvas rectangle.
func (s *Simulation) Bounds() Rect { return s.bounds }

// Bodies returns the bodies in insertion order. The returned slice MUST NOT be mutated.
func (s *Simulation) Bodies() []*Body { return s.bodies }

// Glyphs returns the glyph pool. The returned slice MUST NOT be mutated.
func (s *Simulation) Glyphs() []*Glyph { return s.glyphs }

// Links returns the link registry.
func (s *Simulation) Links() *LinkRegistry { return s.links }

// Gesture returns the current growth gesture state.
func (s *Simulation) Gesture() Gesture { return s.gesture }

// Tick returns the number of completed Steps.
func (s *Simulation) Tick() uint64 { return s.tick }

// Now returns the simulation clock's current time.
func (s *Simulation) Now() time.Duration { return s.clock.Now() }

// Pointer returns the last known pointer position and whether there is one.
func (s *Simulation) Pointer() (Vec2, bool) { return s.pointer, s.hasPointer }

// --- Setters ---

// SetClock replaces the gesture clock. A *FrameClock is advanced by Step.
func (s *Simulation) SetClock(c Clock) { s.clock = c }

// SetOpener sets the capability used to open linked bodies.
func (s *Simulation) SetOpener(o Opener) { s.opener = o }

// SetDebugMode enables or disables per-step timing output on stderr.
func (s *Simulation) SetDebugMode(enabled bool) { s.debug = enabled }

// Resize changes the canvas size. Simulation state is kept; bodies outside
// the new bounds are pushed back in by the next Step.
func (s *Simulation) Resize(width, height float64) {
	s.bounds.Width = width
	s.bounds.Height = height
}

// SetPointer records the pointer position used for repulsion and the preview.
func (s *Simulation) SetPointer(x, y float64) {
	s.pointer = Vec2{X: x, Y: y}
	s.hasPointer = true
}

// ClearPointer forgets the pointer position; repulsion stops until the next
// SetPointer.
func (s *Simulation) ClearPointer() {
	s.hasPointer = false
}

// AddBody appends a body directly, bypassing the gesture, overlap check and
// link registry. Intended for seeding scenes and tests.
func (s *Simulation) AddBody(x, y, r float64, link string) *Body {
	b := s.newBody(x, y, r)
	b.Link = link
	s.bodies = append(s.bodies, b)
	return b
}

func (s *Simulation) newBody(x, y, r float64) *Body {
	return NewBody(x, y, r, s.noise,
		s.rng.Float64()*noiseOffsetRangeX, s.rng.Float64()*noiseOffsetRangeY)
}

// --- Events ---

// Press handles a pointer or touch press at (x, y). A press inside a body
// (first match in insertion order) activates its link and never starts a
// gesture. Otherwise the growth gesture starts, replacing any gesture
// already in progress.
func (s *Simulation) Press(x, y float64) PressResult {
	s.SetPointer(x, y)
	if b := s.BodyAt(x, y); b != nil {
		if b.Link == "" {
			return PressHit
		}
		if s.opener != nil {
			s.opener.Open(b.Link)
		}
		if s.OnOpen != nil {
			s.OnOpen(b.Link)
		}
		return PressOpen
	}
	s.gesture = Growing{Start: s.clock.Now(), Anchor: Vec2{X: x, Y: y}}
	return PressGrow
}

// Release ends a growth gesture at (x, y). The candidate body gets the radius
// for the time held and is committed only if it overlaps no existing body;
// only a committed body takes a link from the registry. Releasing while idle
// does nothing. Returns the committed body, or nil.
func (s *Simulation) Release(x, y float64) *Body {
	s.SetPointer(x, y)
	g, ok := s.gesture.(Growing)
	if !ok {
		return nil
	}
	s.gesture = Idle{}

	r := g.Radius(s.clock.Now())
	if s.OverlapsAny(x, y, r) {
		if s.OnSpawnRejected != nil {
			s.OnSpawnRejected(x, y, r)
		}
		return nil
	}

	b := s.newBody(x, y, r)
	b.Link = s.links.Next()
	b.startPop(float32(s.cfg.FrameTime.Seconds()))
	s.bodies = append(s.bodies, b)
	if s.OnSpawn != nil {
		s.OnSpawn(b)
	}
	return b
}

// BodyAt returns the first body, in insertion order, whose disk strictly
// contains (x, y), or nil.
func (s *Simulation) BodyAt(x, y float64) *Body {
	for _, b := range s.bodies {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// OverlapsAny reports whether a disk at (x, y) with radius r would overlap
// any existing body.
func (s *Simulation) OverlapsAny(x, y, r float64) bool {
	for _, b := range s.bodies {
		if Overlaps(x, y, r, b.X, b.Y, b.r) {
			return true
		}
	}
	return false
}

// Preview returns the translucent circle to draw while a gesture is held: it
// follows the pointer (or the anchor if the pointer is unknown) with the
// radius a release right now would commit.
func (s *Simulation) Preview() (center Vec2, r float64, ok bool) {
	g, growing := s.gesture.(Growing)
	if !growing {
		return Vec2{}, 0, false
	}
	center = g.Anchor
	if s.hasPointer {
		center = s.pointer
	}
	return center, g.Radius(s.clock.Now()), true
}

// --- Frame ---

// Step advances the simulation by one tick: scripted input, body
// integration, pairwise collisions, pointer repulsion, wall bounces, then
// glyph integration with soft separation from every body.
func (s *Simulation) Step() {
	if fc, ok := s.clock.(*FrameClock); ok {
		fc.tick()
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()

	var stats stepStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	for _, b := range s.bodies {
		b.Update(s.bounds)
	}
	if s.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	s.lastContacts = resolveAll(s.bodies)
	if s.debug {
		stats.collideTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, b := range s.bodies {
		if s.hasPointer {
			ApplyPointerForce(b, s.pointer.X, s.pointer.Y)
		}
		BounceInside(b, s.bounds)
	}
	if s.debug {
		stats.forceTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, g := range s.glyphs {
		g.Update(s.bounds)
		for _, b := range s.bodies {
			SeparateGlyph(g, b)
		}
	}
	s.tick++

	if s.debug {
		stats.glyphTime = time.Since(t0)
		stats.bodyCount = len(s.bodies)
		stats.glyphCount = len(s.glyphs)
		stats.contactCount = s.lastContacts
		s.debugLog(stats)
	}
}

// Draw renders glyphs, then bodies, then the growth preview onto c.
func (s *Simulation) Draw(c Canvas) {
	for _, g := range s.glyphs {
		g.Display(c)
	}
	for _, b := range s.bodies {
		b.Display(c)
	}
	if center, r, ok := s.Preview(); ok {
		c.FillCircle(center.X, center.Y, r, ColorPreview)
	}
}

// Screenshot queues a labeled capture request for the render surface.
func (s *Simulation) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshotRequests returns and clears the queued screenshot labels.
// Render surfaces call it after drawing a frame.
func (s *Simulation) TakeScreenshotRequests() []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil
	return labels
}
