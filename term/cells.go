package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/archipelago"
)

// One terminal cell covers CellWidth x CellHeight world units. The 1:2
// aspect keeps circles round in a typical monospace font.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	runeSolid = '█'
	runeShade = '░'
)

// cellWriter is the subset of tcell.Screen the rasterizer needs.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type cell struct {
	ch    rune
	style tcell.Style
}

// cellCanvas implements archipelago.Canvas by sampling each shape at cell
// centers into a grid of runes.
type cellCanvas struct {
	cols, rows int
	cells      []cell
	blank      tcell.Style
}

func newCellCanvas() *cellCanvas {
	return &cellCanvas{blank: tcell.StyleDefault.Background(toTcell(archipelago.ColorBackground))}
}

// reset clears the grid and resizes it to cols x rows.
func (c *cellCanvas) reset(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	n := c.cols * c.rows
	if cap(c.cells) < n {
		c.cells = make([]cell, n)
	}
	c.cells = c.cells[:n]
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', style: c.blank}
	}
}

// cellCenter returns the world position sampled for cell (col, row).
func cellCenter(col, row int) (float64, float64) {
	return float64(col)*CellWidth + CellWidth/2, float64(row)*CellHeight + CellHeight/2
}

// worldToCell maps a world position to the cell containing it.
func worldToCell(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// FillCircle marks every cell whose center lies inside the circle.
// Translucent fills render as a light shade.
func (c *cellCanvas) FillCircle(x, y, r float64, col archipelago.Color) {
	if r <= 0 {
		return
	}
	ch := runeSolid
	if col.A < 1 {
		ch = runeShade
	}
	style := c.blank.Foreground(toTcell(opaque(col)))

	c0, r0 := worldToCell(x-r, y-r)
	c1, r1 := worldToCell(x+r, y+r)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, c.cols-1), min(r1, c.rows-1)
	for row := r0; row <= r1; row++ {
		for cl := c0; cl <= c1; cl++ {
			cx, cy := cellCenter(cl, row)
			dx, dy := cx-x, cy-y
			if dx*dx+dy*dy < r*r {
				c.cells[row*c.cols+cl] = cell{ch: ch, style: style}
			}
		}
	}
}

// DrawGlyph writes ch into the cell under (x, y). Size is ignored.
func (c *cellCanvas) DrawGlyph(ch rune, x, y, size float64, col archipelago.Color) {
	cl, row := worldToCell(x, y)
	if cl < 0 || row < 0 || cl >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+cl] = cell{ch: ch, style: c.blank.Foreground(toTcell(opaque(col))).Bold(true)}
}

// at returns the rune at (col, row), or 0 outside the grid.
func (c *cellCanvas) at(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0
	}
	return c.cells[row*c.cols+col].ch
}

// present copies the grid to w.
func (c *cellCanvas) present(w cellWriter) {
	for row := 0; row < c.rows; row++ {
		for cl := 0; cl < c.cols; cl++ {
			ce := c.cells[row*c.cols+cl]
			w.SetContent(cl, row, ce.ch, nil, ce.style)
		}
	}
}

func opaque(c archipelago.Color) archipelago.Color {
	c.A = 1
	return c
}

func toTcell(c archipelago.Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(math.Round(c.R*255)),
		int32(math.Round(c.G*255)),
		int32(math.Round(c.B*255)),
	)
}
