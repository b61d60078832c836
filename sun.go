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

	"seehuhn.de/go/geom/vec"
)

// Acute angles of the two P2 tile shapes, in degrees. The composers
// pass the obtuse complement 180-angle to the rhombus generator so that
// each tile's short diagonal runs radially.
const (
	KiteAngle = 72
	DartAngle = 36
)

// Sun returns the canonical Penrose sun motif: a decagon background of
// radius 1 followed by five kites whose tips meet at the centre and
// five darts filling the gaps between the kite arms.
//
// scaleFactor scales the kites and darts inside the fixed decagon;
// 1 makes the outermost kite vertices touch the decagon's top vertices,
// smaller values leave a rim. The result is a pure function of
// scaleFactor.
func Sun(scaleFactor float64) (Pattern, error) {
	if scaleFactor <= 0 {
		return nil, fmt.Errorf("%w: scale factor %g must be positive",
			ErrInvalidGeometry, scaleFactor)
	}

	// All tile sizes in the motif derive from the edge length of a
	// height-1 kite. Darts are height-normalised to their long diagonal
	// so that kite and dart edges have the same length, and dart tips
	// meet the kite ring exactly.
	kiteEdge := UnitHeightEdgeLength(KiteAngle)
	dartHeight := DartHeight(kiteEdge, DartAngle)
	dartOffset := DartCenterOffset(kiteEdge, DartAngle)

	pattern := make(Pattern, 0, 11)
	pattern = append(pattern, Tile{
		Kind:     KindDecagon,
		Vertices: Decagon(vec.Vec2{}, 1),
	})

	for i := range 5 {
		kite := Rhombus{
			AcuteAngle:    180 - KiteAngle,
			Height:        scaleFactor,
			Translation:   vec.Vec2{Y: 0.5 * scaleFactor},
			FinalRotation: float64(72 * i),
		}
		v, err := kite.Vertices()
		if err != nil {
			return nil, err
		}
		pattern = append(pattern, Tile{Kind: KindKite, Vertices: v})
	}

	for i := range 5 {
		dart := Rhombus{
			AcuteAngle:      180 - DartAngle,
			Height:          dartHeight * scaleFactor,
			InitialRotation: 90,
			Translation:     vec.Vec2{Y: dartOffset * scaleFactor},
			FinalRotation:   float64(36 + 72*i),
		}
		v, err := dart.Vertices()
		if err != nil {
			return nil, err
		}
		pattern = append(pattern, Tile{Kind: KindDart, Vertices: v})
	}

	return pattern, nil
}
