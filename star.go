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

// Layer indices used in the tiles returned by LayeredStar.
const (
	LayerStar = iota
	LayerMiddleBelt
	LayerOuterBelt
)

// LayeredStar returns a three-layer radial star of fifteen rhombi: a
// five-pointed central star, a middle belt rotated half a step into the
// gaps between the arms, and an outer belt aligned with the arms again.
//
// acuteAngle sets the shape of every tile and scaleFactor its edge
// length; all three layers' positions are derived from these two
// values, so changing either moves the belts consistently.
func LayeredStar(acuteAngle, scaleFactor float64) (Pattern, error) {
	if acuteAngle <= 0 || acuteAngle >= 180 {
		return nil, fmt.Errorf("%w: acute angle %g not in (0, 180)",
			ErrInvalidGeometry, acuteAngle)
	}
	if scaleFactor <= 0 {
		return nil, fmt.Errorf("%w: scale factor %g must be positive",
			ErrInvalidGeometry, scaleFactor)
	}

	// Half-diagonals of the placed tiles.
	d1 := scaleFactor * math.Cos(acuteAngle/2*degree)
	d2 := scaleFactor * math.Sin(acuteAngle/2*degree)

	// Distance from the centre to a middle-belt tile, measured along
	// the bisector between two star arms: the chord construction over
	// two adjacent arm tips.
	beltRadius := 2 * d1 * math.Cos(36*degree)

	pattern := make(Pattern, 0, 15)
	appendTile := func(layer int, translation vec.Vec2, angle float64) error {
		tile := Rhombus{
			AcuteAngle:    acuteAngle,
			ScaleFactor:   scaleFactor,
			Translation:   translation,
			FinalRotation: angle,
		}
		v, err := tile.Vertices()
		if err != nil {
			return err
		}
		pattern = append(pattern, Tile{Kind: KindRhomb, Layer: layer, Vertices: v})
		return nil
	}

	// Central star: each tile's left tip touches the origin, so the
	// tile centre sits one long half-diagonal out along the arm.
	for i := range 5 {
		angle := float64(90 - 72*i)
		if err := appendTile(LayerStar, vec.Vec2{X: d1}, angle); err != nil {
			return nil, err
		}
	}

	// Middle belt: between the arms, the translation axis offset by a
	// half step of 18° so the tile centre lands on the gap bisector.
	middle := rotatePoint(vec.Vec2{X: beltRadius}, 18)
	for i := range 5 {
		angle := float64(54 - 72*i)
		if err := appendTile(LayerMiddleBelt, middle, angle); err != nil {
			return nil, err
		}
	}

	// Outer belt: one radial term past the middle belt plus a
	// tangential half-width term, rotated back onto the arm direction.
	outer := rotatePoint(vec.Vec2{X: d2, Y: beltRadius + d1}, -90)
	for i := range 5 {
		angle := float64(90 - 72*i)
		if err := appendTile(LayerOuterBelt, outer, angle); err != nil {
			return nil, err
		}
	}

	return pattern, nil
}
