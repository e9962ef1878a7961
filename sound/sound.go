// Package sound plays short synthesized cues for archipelago events: a
// pluck when an island is dropped (lower for bigger islands), a buzz when a
// drop is rejected, and a chime when an island's link is opened.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/archipelago"
)

const sampleRate = beep.SampleRate(44100)

// Pitch range of the spawn pluck. The smallest island gets the highest note.
const (
	spawnPitchHigh = 880.0
	spawnPitchLow  = 110.0
)

const (
	spawnLength  = 250 * time.Millisecond
	rejectPitch  = 140.0
	rejectLength = 120 * time.Millisecond
	chimeLength  = 90 * time.Millisecond
	volume       = -1.5 // base-2 attenuation applied to every cue
)

// Player mixes cues onto the speaker. A Player whose Init failed, or that
// was never initialized, silently drops every cue.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer returns an uninitialized Player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Failure is not fatal: the caller may log it and
// keep running without sound.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("archipelago: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Attach wires the player to a simulation's spawn, reject and open hooks.
func (p *Player) Attach(sim *archipelago.Simulation) {
	sim.OnSpawn = func(b *archipelago.Body) { p.Spawn(b.Radius()) }
	sim.OnSpawnRejected = func(x, y, r float64) { p.Reject() }
	sim.OnOpen = func(string) { p.Open() }
}

// Spawn plays a pluck pitched by radius.
func (p *Player) Spawn(r float64) {
	p.play(tone(spawnPitch(r), spawnLength))
}

// Reject plays a low buzz.
func (p *Player) Reject() {
	p.play(tone(rejectPitch, rejectLength))
}

// Open plays a rising two-note chime.
func (p *Player) Open() {
	p.play(beep.Seq(tone(660, chimeLength), tone(990, chimeLength)))
}

func (p *Player) play(s beep.Streamer) {
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// spawnPitch maps radius linearly onto [spawnPitchLow, spawnPitchHigh],
// inverted so that larger islands sound lower.
func spawnPitch(r float64) float64 {
	r = math.Max(archipelago.MinRadius, math.Min(r, archipelago.MaxRadius))
	t := (r - archipelago.MinRadius) / (archipelago.MaxRadius - archipelago.MinRadius)
	return spawnPitchHigh + t*(spawnPitchLow-spawnPitchHigh)
}

// tone returns a sine of freq Hz lasting d with a linear fade-out. Returns
// nil if the generator rejects freq.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	n := sampleRate.N(d)
	return &effects.Volume{
		Streamer: effects.Transition(beep.Take(n, sine), n, 1, 0, effects.TransitionLinear),
		Base:     2,
		Volume:   volume,
	}
}
