package screen

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/archipelago"
)

const (
	minCircleSegments = 16
	maxCircleSegments = 96
)

// --- White pixel singleton (Ebitengine games are single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source for untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// circleSegments picks a perimeter vertex count that keeps edges short
// without wasting triangles on tiny circles.
func circleSegments(r float64) int {
	n := int(math.Ceil(r / 2))
	return max(minCircleSegments, min(n, maxCircleSegments))
}

// appendCircleFan appends a filled circle as a triangle fan: vertex 0 is the
// hub, followed by segments perimeter vertices. Colors are premultiplied.
func appendCircleFan(verts []ebiten.Vertex, inds []uint16, cx, cy, r float64, segments int, c archipelago.Color) ([]ebiten.Vertex, []uint16) {
	if r <= 0 || segments < 3 {
		return verts, inds
	}
	a := float32(c.A)
	cr, cg, cb := float32(c.R)*a, float32(c.G)*a, float32(c.B)*a

	base := uint16(len(verts))
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a,
		}
	}

	verts = append(verts, vertex(cx, cy))
	step := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		sin, cos := math.Sincos(float64(i) * step)
		verts = append(verts, vertex(cx+r*cos, cy+r*sin))
	}
	for i := 0; i < segments; i++ {
		next := (i+1)%segments + 1
		inds = append(inds, base, base+uint16(i+1), base+uint16(next))
	}
	return verts, inds
}

// canvas implements archipelago.Canvas on top of an ebiten.Image. Circles
// are batched into one DrawTriangles call per flush; glyphs force a flush so
// paint order is kept.
type canvas struct {
	dst    *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	verts  []ebiten.Vertex
	inds   []uint16
}

func newCanvas() (*canvas, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("archipelago: failed to parse TTF data: %w", err)
	}
	return &canvas{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (c *canvas) begin(dst *ebiten.Image) {
	c.dst = dst
	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
}

// FillCircle queues a filled circle.
func (c *canvas) FillCircle(x, y, r float64, col archipelago.Color) {
	// uint16 indices: flush before the vertex count can overflow.
	if len(c.verts)+maxCircleSegments+1 > math.MaxUint16 {
		c.flush()
	}
	c.verts, c.inds = appendCircleFan(c.verts, c.inds, x, y, r, circleSegments(r), col)
}

// DrawGlyph draws ch centered on (x, y) at the given pixel size.
func (c *canvas) DrawGlyph(ch rune, x, y, size float64, col archipelago.Color) {
	c.flush()
	face := c.face(math.Round(size))
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	a := float32(col.A)
	op.ColorScale.Scale(float32(col.R)*a, float32(col.G)*a, float32(col.B)*a, a)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, string(ch), face, op)
}

// face returns a cached face for the rounded size. Glyph sizes are fixed at
// creation, so the cache stays small.
func (c *canvas) face(size float64) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.source, Size: size}
	c.faces[size] = f
	return f
}

// flush submits queued circles.
func (c *canvas) flush() {
	if len(c.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	c.dst.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), &op)
	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
}

// backgroundColor converts the canvas clear color for ebiten.Image.Fill.
func backgroundColor() color.NRGBA {
	return toNRGBA(archipelago.ColorBackground)
}

func toNRGBA(c archipelago.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}
