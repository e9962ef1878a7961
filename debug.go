package archipelago

import (
	"fmt"
	"io"
	"os"
	"time"
)

// stepStats holds per-step timing and contact metrics.
// Only populated when Simulation.debug is true.
type stepStats struct {
	updateTime   time.Duration
	collideTime  time.Duration
	forceTime    time.Duration
	glyphTime    time.Duration
	bodyCount    int
	glyphCount   int
	contactCount int
}

// debugOut is where debug lines go. Tests swap it out.
var debugOut io.Writer = os.Stderr

// debugLog prints timing and count stats for one step.
func (s *Simulation) debugLog(stats stepStats) {
	if !s.debug {
		return
	}
	total := stats.updateTime + stats.collideTime + stats.forceTime + stats.glyphTime
	_, _ = fmt.Fprintf(debugOut,
		"[archipelago] tick %d | update: %v | collide: %v | forces: %v | glyphs: %v | total: %v\n",
		s.tick, stats.updateTime, stats.collideTime, stats.forceTime, stats.glyphTime, total)
	_, _ = fmt.Fprintf(debugOut,
		"[archipelago] bodies: %d | glyphs: %d | contacts: %d\n",
		stats.bodyCount, stats.glyphCount, stats.contactCount)
}

// LastContacts returns how many body pairs collided during the latest Step.
func (s *Simulation) LastContacts() int {
	return s.lastContacts
}
