package penrose

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestDecagonVertices(t *testing.T) {
	center := vec.Vec2{X: 0.25, Y: -0.5}
	const scale = 2.0

	pts := Decagon(center, scale)
	if len(pts) != 10 {
		t.Fatalf("got %d vertices, want 10", len(pts))
	}

	// first vertex at the top of the circumscribed circle
	want := vec.Vec2{X: center.X, Y: center.Y + scale}
	if !almostEqual(pts[0], want, eps) {
		t.Errorf("first vertex: got %v, want %v", pts[0], want)
	}

	// all vertices on the circle, each one 36° counter-clockwise from
	// its predecessor
	for i, p := range pts {
		d := p.Sub(center)
		if math.Abs(d.Length()-scale) > 1e-12 {
			t.Errorf("vertex %d: radius %g, want %g", i, d.Length(), scale)
		}
		if i > 0 {
			prev := pts[i-1].Sub(center)
			if !almostEqual(d, rotatePoint(prev, 36), 1e-9) {
				t.Errorf("vertex %d: got %v, want %v rotated by 36°", i, d, prev)
			}
		}
	}
}

func TestDecagonDeterministic(t *testing.T) {
	// same inputs must give bit-identical output
	a := Decagon(vec.Vec2{X: 1, Y: 2}, 0.85)
	b := Decagon(vec.Vec2{X: 1, Y: 2}, 0.85)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("vertex %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
