// Package term runs an archipelago Simulation inside a terminal using tcell.
// Mouse support is required to grow and open islands.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/archipelago"
)

// inputTarget is the part of *archipelago.Simulation the mouse drives.
type inputTarget interface {
	Press(x, y float64) archipelago.PressResult
	Release(x, y float64) *archipelago.Body
	SetPointer(x, y float64)
	Resize(width, height float64)
}

// mouseState turns tcell button masks into press and release edges.
type mouseState struct {
	down bool
}

// handle applies one event and reports whether the loop should exit.
func (m *mouseState) handle(t inputTarget, ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.Resize(float64(cols*CellWidth), float64(rows*CellHeight))
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := cellCenter(col, row)
		t.SetPointer(x, y)
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !m.down:
			t.Press(x, y)
		case !pressed && m.down:
			t.Release(x, y)
		}
		m.down = pressed
	}
	return false
}

// pumpEvents forwards polled events until poll returns nil or done is
// closed. events is closed when poll runs dry.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Run takes over the terminal and blocks until Esc, Ctrl-C or q. The
// simulation is stepped once per frameTime (archipelago.DefaultFrameTime
// if zero).
func Run(sim *archipelago.Simulation, frameTime time.Duration) error {
	if frameTime <= 0 {
		frameTime = archipelago.DefaultFrameTime
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("archipelago: terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("archipelago: terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	sim.Resize(float64(cols*CellWidth), float64(rows*CellHeight))

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen.PollEvent, events, done)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	canvas := newCellCanvas()
	var mouse mouseState
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if mouse.handle(sim, ev) {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
		case <-ticker.C:
			sim.Step()
			cols, rows := screen.Size()
			canvas.reset(cols, rows)
			sim.Draw(canvas)
			canvas.present(screen)
			screen.Show()
		}
	}
}
