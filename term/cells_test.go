package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/archipelago"
)

// mockScreen records SetContent calls.
type mockScreen struct {
	cells map[[2]int]rune
}

func (m *mockScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if m.cells == nil {
		m.cells = make(map[[2]int]rune)
	}
	m.cells[[2]int{x, y}] = primary
}

func TestWorldToCell(t *testing.T) {
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{7.9, 15.9, 0, 0},
		{8, 16, 1, 1},
		{100, 100, 12, 6},
		{-1, -1, -1, -1},
	}
	for _, tt := range tests {
		col, row := worldToCell(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("worldToCell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}
}

func TestCellCanvas_FillCircle(t *testing.T) {
	c := newCellCanvas()
	c.reset(20, 10)
	// Center on cell (10, 5): world (84, 88).
	c.FillCircle(84, 88, 20, archipelago.ColorInk)

	if got := c.at(10, 5); got != runeSolid {
		t.Errorf("center cell = %q, want solid", got)
	}
	// Two cells away horizontally is 16 units: inside.
	if got := c.at(12, 5); got != runeSolid {
		t.Errorf("cell (12,5) = %q, want solid", got)
	}
	// Three cells away is 24 units: outside.
	if got := c.at(13, 5); got != ' ' {
		t.Errorf("cell (13,5) = %q, want blank", got)
	}
	// One row down is 16 units: inside. Two rows is 32: outside.
	if c.at(10, 6) != runeSolid || c.at(10, 7) != ' ' {
		t.Errorf("vertical extent wrong: %q %q", c.at(10, 6), c.at(10, 7))
	}
}

func TestCellCanvas_PreviewIsShaded(t *testing.T) {
	c := newCellCanvas()
	c.reset(10, 10)
	c.FillCircle(40, 40, 30, archipelago.ColorPreview)
	if got := c.at(5, 2); got != runeShade {
		t.Errorf("preview cell = %q, want shade", got)
	}
}

func TestCellCanvas_ClipsToGrid(t *testing.T) {
	c := newCellCanvas()
	c.reset(4, 4)
	c.FillCircle(-100, -100, 500, archipelago.ColorInk)
	c.DrawGlyph('x', 1000, 1000, 20, archipelago.ColorInk)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if c.at(col, row) != runeSolid {
				t.Fatalf("cell (%d,%d) = %q", col, row, c.at(col, row))
			}
		}
	}
}

func TestCellCanvas_GlyphOverwrites(t *testing.T) {
	c := newCellCanvas()
	c.reset(10, 10)
	c.FillCircle(40, 40, 40, archipelago.ColorInk)
	c.DrawGlyph('f', 41, 41, 30, archipelago.ColorInk)
	if got := c.at(5, 2); got != 'f' {
		t.Errorf("glyph cell = %q, want 'f'", got)
	}
}

func TestCellCanvas_Present(t *testing.T) {
	c := newCellCanvas()
	c.reset(3, 2)
	c.DrawGlyph('a', 20, 20, 20, archipelago.ColorInk)

	var m mockScreen
	c.present(&m)
	if len(m.cells) != 6 {
		t.Fatalf("cells written = %d, want 6", len(m.cells))
	}
	if m.cells[[2]int{2, 1}] != 'a' || m.cells[[2]int{0, 0}] != ' ' {
		t.Errorf("cells = %v", m.cells)
	}
}

func TestCellCanvas_ResetClears(t *testing.T) {
	c := newCellCanvas()
	c.reset(5, 5)
	c.DrawGlyph('z', 0, 0, 20, archipelago.ColorInk)
	c.reset(5, 5)
	if c.at(0, 0) != ' ' {
		t.Error("reset did not clear")
	}
}
