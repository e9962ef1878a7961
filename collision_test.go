package archipelago

import (
	"math"
	"testing"
)

const floatTol = 1e-9

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		x1, y1, r1, x2, y2, r2 float64
		want                   bool
	}{
		{"separate", 0, 0, 10, 50, 0, 10, false},
		{"touching", 0, 0, 10, 20, 0, 10, false},
		{"overlapping", 0, 0, 10, 19, 0, 10, true},
		{"coincident", 5, 5, 10, 5, 5, 10, true},
		{"contained", 0, 0, 100, 10, 10, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.x1, tt.y1, tt.r1, tt.x2, tt.y2, tt.r2); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveBodies_NoResidualPenetration(t *testing.T) {
	tests := []struct {
		name       string
		ax, ay, ar float64
		bx, by, br float64
	}{
		{"horizontal", 100, 100, 30, 140, 100, 20},
		{"vertical", 100, 100, 30, 100, 110, 30},
		{"diagonal", 200, 200, 50, 230, 240, 40},
		{"deep", 100, 100, 100, 101, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewBody(tt.ax, tt.ay, tt.ar, nil, 0, 0)
			b := NewBody(tt.bx, tt.by, tt.br, nil, 0, 0)
			if !ResolveBodies(a, b) {
				t.Fatal("expected a collision")
			}
			got := dist(a.X, a.Y, b.X, b.Y)
			want := tt.ar + tt.br
			if got < want-1e-6 {
				t.Errorf("distance after resolve = %v, want >= %v", got, want)
			}
		})
	}
}

func TestResolveBodies_SplitsCorrectionEvenly(t *testing.T) {
	a := NewBody(100, 100, 30, nil, 0, 0)
	b := NewBody(140, 100, 20, nil, 0, 0)
	ResolveBodies(a, b)

	// overlap 10, each moves 5 regardless of radius
	if math.Abs(a.X-95) > floatTol || math.Abs(b.X-145) > floatTol {
		t.Errorf("positions = (%v, %v), want (95, 145)", a.X, b.X)
	}
	if a.Y != 100 || b.Y != 100 {
		t.Errorf("Y changed: %v, %v", a.Y, b.Y)
	}
}

func TestResolveBodies_ConservesNormalMomentum(t *testing.T) {
	a := NewBody(100, 100, 30, nil, 0, 0)
	b := NewBody(130, 120, 15, nil, 0, 0)
	a.VX, a.VY = 1.5, 0.5
	b.VX, b.VY = -2, 0.3

	nx, ny, _ := contactNormal(a.X, a.Y, b.X, b.Y)
	before := a.r*(a.VX*nx+a.VY*ny) + b.r*(b.VX*nx+b.VY*ny)

	if !ResolveBodies(a, b) {
		t.Fatal("expected a collision")
	}
	after := a.r*(a.VX*nx+a.VY*ny) + b.r*(b.VX*nx+b.VY*ny)
	if math.Abs(before-after) > 1e-9 {
		t.Errorf("normal momentum before = %v, after = %v", before, after)
	}

	// Kinetic energy (radius-weighted) is preserved too.
	keBefore := 30*(1.5*1.5+0.5*0.5) + 15*(2*2+0.3*0.3)
	keAfter := a.r*(a.VX*a.VX+a.VY*a.VY) + b.r*(b.VX*b.VX+b.VY*b.VY)
	if math.Abs(keBefore-keAfter) > 1e-9 {
		t.Errorf("energy before = %v, after = %v", keBefore, keAfter)
	}
}

func TestResolveBodies_TangentUnchanged(t *testing.T) {
	a := NewBody(100, 100, 20, nil, 0, 0)
	b := NewBody(130, 100, 20, nil, 0, 0)
	a.VX, a.VY = 1, 0.7
	b.VX, b.VY = -1, -0.4

	ResolveBodies(a, b)

	// Normal is +X, so Y velocities are the tangential part.
	if math.Abs(a.VY-0.7) > floatTol || math.Abs(b.VY+0.4) > floatTol {
		t.Errorf("tangential velocities = (%v, %v), want (0.7, -0.4)", a.VY, b.VY)
	}
}

func TestResolveBodies_EqualMassesSwap(t *testing.T) {
	a := NewBody(100, 100, 25, nil, 0, 0)
	b := NewBody(140, 100, 25, nil, 0, 0)
	a.VX = 2
	b.VX = -1

	ResolveBodies(a, b)

	if math.Abs(a.VX+1) > floatTol || math.Abs(b.VX-2) > floatTol {
		t.Errorf("VX = (%v, %v), want (-1, 2)", a.VX, b.VX)
	}
}

func TestResolveBodies_HeavyBodyBarelyMoves(t *testing.T) {
	heavy := NewBody(100, 100, 200, nil, 0, 0)
	light := NewBody(305, 100, 10, nil, 0, 0)
	light.VX = -3

	ResolveBodies(heavy, light)

	// The light body pushes the heavy one back along -X, but only a little.
	if heavy.VX >= 0 || heavy.VX < -0.3 {
		t.Errorf("heavy VX = %v, want small negative", heavy.VX)
	}
	if light.VX <= 0 {
		t.Errorf("light VX = %v, want rebound > 0", light.VX)
	}
}

func TestResolveBodies_CoincidentCenters(t *testing.T) {
	a := NewBody(50, 50, 20, nil, 0, 0)
	b := NewBody(50, 50, 20, nil, 0, 0)
	a.VX, b.VY = 1, -1

	if !ResolveBodies(a, b) {
		t.Fatal("coincident bodies should collide")
	}
	for _, v := range []float64{a.X, a.Y, b.X, b.Y, a.VX, a.VY, b.VX, b.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite value after coincident resolve: %v", v)
		}
	}
	// Zero normal: no push, and both velocities are reset.
	if a.X != 50 || a.Y != 50 || b.X != 50 || b.Y != 50 {
		t.Errorf("positions = (%v, %v) (%v, %v), want unchanged", a.X, a.Y, b.X, b.Y)
	}
	if a.VX != 0 || a.VY != 0 || b.VX != 0 || b.VY != 0 {
		t.Errorf("velocities = (%v, %v) (%v, %v), want all zero", a.VX, a.VY, b.VX, b.VY)
	}
}

func TestResolveBodies_NoContactLeavesBodies(t *testing.T) {
	a := NewBody(0, 0, 10, nil, 0, 0)
	b := NewBody(20, 0, 10, nil, 0, 0)
	a.VX, b.VX = 1, -1

	if ResolveBodies(a, b) {
		t.Fatal("touching bodies should not collide")
	}
	if a.X != 0 || b.X != 20 || a.VX != 1 || b.VX != -1 {
		t.Error("bodies changed without contact")
	}
}

func TestResolveAll_SinglePassOnly(t *testing.T) {
	// b is squeezed between a and c. One pass handles each pair once in
	// order, so a-b is fixed first and b-c then pushes b back into a.
	a := NewBody(0, 0, 20, nil, 0, 0)
	b := NewBody(30, 0, 20, nil, 0, 0)
	c := NewBody(60, 0, 20, nil, 0, 0)
	bodies := []*Body{a, b, c}

	if n := resolveAll(bodies); n != 2 {
		t.Fatalf("contacts = %d, want 2", n)
	}
	if !Overlaps(a.X, a.Y, a.r, b.X, b.Y, b.r) {
		t.Error("expected a and b to still overlap after one pass")
	}
	if Overlaps(b.X, b.Y, b.r, c.X, c.Y, c.r) {
		t.Error("last resolved pair should be separated")
	}
}

func TestSeparateGlyph(t *testing.T) {
	b := NewBody(100, 100, 30, nil, 0, 0)
	g := NewGlyph('f', 135, 100, 20, nil, 0, 0)
	b.VX, g.VX = 0.5, -0.25

	if !SeparateGlyph(g, b) {
		t.Fatal("expected overlap")
	}
	// overlap (40-35)/2 = 2.5 each
	if math.Abs(g.X-137.5) > floatTol || math.Abs(b.X-97.5) > floatTol {
		t.Errorf("positions = glyph %v body %v, want 137.5, 97.5", g.X, b.X)
	}
	if b.VX != 0.5 || g.VX != -0.25 {
		t.Error("soft separation must not change velocities")
	}
	if got := dist(g.X, g.Y, b.X, b.Y); math.Abs(got-40) > 1e-9 {
		t.Errorf("distance = %v, want 40", got)
	}
}

func TestSeparateGlyph_NoOverlap(t *testing.T) {
	b := NewBody(100, 100, 30, nil, 0, 0)
	g := NewGlyph('a', 200, 100, 20, nil, 0, 0)
	if SeparateGlyph(g, b) {
		t.Fatal("unexpected overlap")
	}
	if g.X != 200 || b.X != 100 {
		t.Error("positions changed without overlap")
	}
}

func TestSeparateGlyph_CoincidentCenters(t *testing.T) {
	b := NewBody(100, 100, 30, nil, 0, 0)
	g := NewGlyph('a', 100, 100, 20, nil, 0, 0)
	SeparateGlyph(g, b)
	if math.IsNaN(g.X) || math.IsNaN(b.X) || math.IsNaN(g.Y) || math.IsNaN(b.Y) {
		t.Fatal("NaN after coincident separation")
	}
}
