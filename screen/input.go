package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/archipelago"
)

// inputTarget is the part of *archipelago.Simulation the pointer drives.
type inputTarget interface {
	Press(x, y float64) archipelago.PressResult
	Release(x, y float64) *archipelago.Body
	SetPointer(x, y float64)
	ClearPointer()
}

// pointerSample is one frame's reading of the active pointer. present is
// false when there is no usable position: the mouse has not been seen yet
// or sits outside the canvas while no button is held.
type pointerSample struct {
	x, y    float64
	down    bool
	present bool
}

// pointerState turns per-frame samples into press and release edges. The
// mouse and the first touch share one logical pointer.
type pointerState struct {
	down         bool
	lastX, lastY float64

	// The mouse counts as seen once its cursor moves away from the position
	// recorded at start (or after a touch ended) or a button is pressed.
	cursorSeen bool
	cursorRef  bool
	refX, refY int

	touching bool
	touchID  ebiten.TouchID
	touchIDs []ebiten.TouchID
}

// apply feeds one sample into the simulation. An absent pointer releases any
// held press at its last position and stops repulsion.
func (p *pointerState) apply(t inputTarget, s pointerSample) {
	if !s.present {
		if p.down {
			t.Release(p.lastX, p.lastY)
			p.down = false
		}
		t.ClearPointer()
		return
	}

	t.SetPointer(s.x, s.y)
	switch {
	case s.down && !p.down:
		t.Press(s.x, s.y)
	case !s.down && p.down:
		t.Release(s.x, s.y)
	}
	p.down = s.down
	p.lastX, p.lastY = s.x, s.y
}

// mouse builds a sample from a raw cursor reading.
func (p *pointerState) mouse(mx, my int, down bool, bounds archipelago.Rect) pointerSample {
	if !p.cursorRef {
		p.cursorRef = true
		p.refX, p.refY = mx, my
	}
	if down || mx != p.refX || my != p.refY {
		p.cursorSeen = true
	}
	x, y := float64(mx), float64(my)
	present := down || (p.cursorSeen && bounds.Contains(x, y))
	return pointerSample{x: x, y: y, down: down, present: present}
}

// touchEnded forgets the mouse until it moves again, so a lifted finger does
// not hand the pointer to a stale cursor position.
func (p *pointerState) touchEnded() {
	p.touching = false
	p.cursorSeen = false
	p.cursorRef = false
}

// sample reads the current pointer from Ebitengine. An active touch takes
// priority over the mouse; a lifted touch releases at its last position.
func (p *pointerState) sample(bounds archipelago.Rect) pointerSample {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	if p.touching {
		for _, id := range p.touchIDs {
			if id == p.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return pointerSample{x: float64(tx), y: float64(ty), down: true, present: true}
			}
		}
		p.touchEnded()
		return pointerSample{x: p.lastX, y: p.lastY, present: true}
	}
	if len(p.touchIDs) > 0 && !p.down {
		p.touching = true
		p.touchID = p.touchIDs[0]
		tx, ty := ebiten.TouchPosition(p.touchID)
		return pointerSample{x: float64(tx), y: float64(ty), down: true, present: true}
	}

	mx, my := ebiten.CursorPosition()
	return p.mouse(mx, my, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), bounds)
}
