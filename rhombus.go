// seehuhn.de/go/penrose - Penrose tile geometry for coin designs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package penrose

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Rhombus describes the placement of one rhombus-family tile. The zero
// value (with AcuteAngle set) is a unit-edge rhombus at the origin.
//
// At most one of ScaleFactor and Height may be non-zero; supplying both
// is rejected with ErrInconsistentParameters.
type Rhombus struct {
	// AcuteAngle is the rhombus's shape parameter in degrees, strictly
	// between 0 and 180. Callers which want the short diagonal vertical
	// pass the obtuse complement 180-angle instead of the angle itself.
	AcuteAngle float64

	// ScaleFactor multiplies the unit-edge-length coordinates.
	// Zero means no scaling (edge length 1).
	ScaleFactor float64

	// Height, if positive, sizes the tile so that its vertical span
	// before any rotation equals Height, instead of normalising the
	// edge length.
	Height float64

	// Margin shrinks the tile towards its local origin before scaling,
	// leaving a gap between adjacent tiles. Must lie in [0, 1); zero
	// means no gap.
	Margin float64

	// InitialRotation is applied about the tile's local origin, in
	// degrees, before the tile is translated.
	InitialRotation float64

	// Translation moves the tile's local origin.
	Translation vec.Vec2

	// FinalRotation is applied about the global origin, in degrees,
	// after the translation. This is what places a tile on a ring when
	// combined with a vertical Translation.
	FinalRotation float64
}

// Vertices returns the four corners of the rhombus in the fixed winding
// right, top, left, bottom (counter-clockwise). The pattern composers
// rely on this winding; all angular offsets between tiles assume it.
//
// Transforms are applied in the order margin shrink, scale, initial
// rotation, translation, final rotation. The order is part of the
// contract: rotation is about the origin, so translating first gives a
// different result.
func (r Rhombus) Vertices() ([]vec.Vec2, error) {
	if !(r.AcuteAngle > 0 && r.AcuteAngle < 180) {
		return nil, fmt.Errorf("%w: acute angle %g not in (0, 180)",
			ErrInvalidGeometry, r.AcuteAngle)
	}
	if r.ScaleFactor < 0 || r.Height < 0 {
		return nil, fmt.Errorf("%w: negative tile size",
			ErrInvalidGeometry)
	}
	if r.ScaleFactor != 0 && r.Height != 0 {
		return nil, fmt.Errorf("%w: ScaleFactor and Height are mutually exclusive",
			ErrInconsistentParameters)
	}
	if r.Margin < 0 || r.Margin >= 1 {
		return nil, fmt.Errorf("%w: margin %g not in [0, 1)",
			ErrInvalidGeometry, r.Margin)
	}

	// Half-diagonals for edge length 1: d1 runs from the centre to an
	// obtuse vertex, d2 to an acute vertex. Both are positive for any
	// valid acute angle.
	d1 := math.Cos(r.AcuteAngle / 2 * degree)
	d2 := math.Sin(r.AcuteAngle / 2 * degree)

	scale := r.ScaleFactor
	if scale == 0 {
		scale = 1
	}
	if r.Height > 0 {
		// The unrotated tile spans 2*d2 vertically at unit edge length.
		scale = r.Height / (2 * d2)
	}
	scale *= 1 - r.Margin

	pts := []vec.Vec2{
		{X: d1},  // right (obtuse)
		{Y: d2},  // top (acute)
		{X: -d1}, // left (obtuse)
		{Y: -d2}, // bottom (acute)
	}
	pts = Scale(pts, scale)
	if r.InitialRotation != 0 {
		pts = Rotate(pts, r.InitialRotation)
	}
	pts = Translate(pts, r.Translation)
	if r.FinalRotation != 0 {
		pts = Rotate(pts, r.FinalRotation)
	}
	return pts, nil
}
