package archipelago

// Canvas is the drawing capability a render surface hands to entities.
// Coordinates are world units; the surface decides how they map to pixels
// or terminal cells.
type Canvas interface {
	// FillCircle draws a filled disk centered at (x, y).
	FillCircle(x, y, r float64, c Color)
	// DrawGlyph draws ch centered at (x, y) with the given font size.
	DrawGlyph(ch rune, x, y, size float64, c Color)
}

// Entity is anything the simulation advances once per tick and draws.
// Body and Glyph implement it independently; their update rules differ in
// damping, noise amplitude and boundary policy.
type Entity interface {
	Update(bounds Rect)
	Display(c Canvas)
}

var (
	_ Entity = (*Body)(nil)
	_ Entity = (*Glyph)(nil)
)
