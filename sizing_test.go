package penrose

import (
	"math"
	"testing"
)

func TestUnitHeightEdgeLength(t *testing.T) {
	// Verified against the direct trigonometric computation rather than
	// a literal, so drift in the formula shows up here.
	for _, acute := range []float64{36, 72, 90, 108} {
		got := UnitHeightEdgeLength(acute)
		want := 0.5 / math.Cos(acute*math.Pi/360)
		if got != want {
			t.Errorf("acute %g: got %g, want %g", acute, got, want)
		}
		if !(got > 0) {
			t.Errorf("acute %g: edge length %g not positive", acute, got)
		}
	}

	// For the kite angle the edge length is 1/φ.
	phi := (1 + math.Sqrt(5)) / 2
	if got := UnitHeightEdgeLength(KiteAngle); math.Abs(got-1/phi) > 1e-15 {
		t.Errorf("kite edge %g, want 1/φ = %g", got, 1/phi)
	}
}

func TestKiteAndDartEdgesMatch(t *testing.T) {
	// The defining property of the sizing chain: a height-normalised
	// dart has the same edge length as the kites it sits between.
	kiteEdge := UnitHeightEdgeLength(KiteAngle)

	kite, err := Rhombus{AcuteAngle: 180 - KiteAngle, Height: 1}.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	dart, err := Rhombus{
		AcuteAngle: 180 - DartAngle,
		Height:     DartHeight(kiteEdge, DartAngle),
	}.Vertices()
	if err != nil {
		t.Fatal(err)
	}

	kiteLen := kite[1].Sub(kite[0]).Length()
	dartLen := dart[1].Sub(dart[0]).Length()

	if math.Abs(kiteLen-kiteEdge) > 1e-12 {
		t.Errorf("kite edge %g, want %g", kiteLen, kiteEdge)
	}
	if math.Abs(dartLen-kiteEdge) > 1e-12 {
		t.Errorf("dart edge %g, want %g", dartLen, kiteEdge)
	}
}

func TestDartCenterOffset(t *testing.T) {
	edge := UnitHeightEdgeLength(KiteAngle)
	got := DartCenterOffset(edge, DartAngle)
	want := edge * (1 + math.Sin(18*degree))
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("got %g, want %g", got, want)
	}
}
