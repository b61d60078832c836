package penrose

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

const eps = 1e-12

func almostEqual(a, b vec.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestRotateRoundTrip(t *testing.T) {
	poly := []vec.Vec2{
		{X: 1, Y: 0},
		{X: 0.3, Y: -0.7},
		{X: -2.5, Y: 1.25},
		{X: 0, Y: 0},
	}
	angles := []float64{0, 17, 36, 45, 72, 90, 123.456, 180, 270, 359, -72}
	for _, angle := range angles {
		got := Rotate(Rotate(poly, angle), -angle)
		for i := range poly {
			if !almostEqual(got[i], poly[i], eps) {
				t.Errorf("angle %g, vertex %d: got %v, want %v",
					angle, i, got[i], poly[i])
			}
		}
	}
}

func TestRotateAboutOrigin(t *testing.T) {
	// Rotation is about the coordinate origin, so a point away from
	// the origin moves.
	got := Rotate([]vec.Vec2{{X: 1, Y: 0}}, 90)
	want := vec.Vec2{X: 0, Y: 1}
	if !almostEqual(got[0], want, eps) {
		t.Errorf("got %v, want %v", got[0], want)
	}
}

func TestTransformsArePure(t *testing.T) {
	orig := []vec.Vec2{{X: 1, Y: 2}, {X: -3, Y: 4}}
	in := []vec.Vec2{{X: 1, Y: 2}, {X: -3, Y: 4}}

	Rotate(in, 33)
	Scale(in, 2.5)
	Translate(in, vec.Vec2{X: 1, Y: 1})

	for i := range in {
		if in[i] != orig[i] {
			t.Errorf("input modified at %d: got %v, want %v", i, in[i], orig[i])
		}
	}
}

func TestTransformOrderMatters(t *testing.T) {
	pts := []vec.Vec2{{X: 1, Y: 0}}
	offset := vec.Vec2{X: 1, Y: 0}

	translateThenRotate := Rotate(Translate(pts, offset), 90)
	rotateThenTranslate := Translate(Rotate(pts, 90), offset)

	if almostEqual(translateThenRotate[0], rotateThenTranslate[0], eps) {
		t.Errorf("expected different results, both %v", translateThenRotate[0])
	}
	if want := (vec.Vec2{X: 0, Y: 2}); !almostEqual(translateThenRotate[0], want, eps) {
		t.Errorf("translate-then-rotate: got %v, want %v", translateThenRotate[0], want)
	}
	if want := (vec.Vec2{X: 1, Y: 1}); !almostEqual(rotateThenTranslate[0], want, eps) {
		t.Errorf("rotate-then-translate: got %v, want %v", rotateThenTranslate[0], want)
	}
}

func TestScaleAndTranslate(t *testing.T) {
	pts := []vec.Vec2{{X: 1, Y: -2}}

	scaled := Scale(pts, 3)
	if want := (vec.Vec2{X: 3, Y: -6}); scaled[0] != want {
		t.Errorf("Scale: got %v, want %v", scaled[0], want)
	}

	moved := Translate(pts, vec.Vec2{X: 0.5, Y: 0.5})
	if want := (vec.Vec2{X: 1.5, Y: -1.5}); moved[0] != want {
		t.Errorf("Translate: got %v, want %v", moved[0], want)
	}
}
