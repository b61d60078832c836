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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Decagon returns the ten vertices of a regular decagon centred at
// center and inscribed in a circle of radius scale. The vertices are
// spaced at 36° intervals counter-clockwise, starting at the top (90°).
//
// The result is deterministic: equal arguments give bit-identical
// output. A scale <= 0 yields a degenerate or mirrored polygon and is
// not validated here; positive scales are the caller's responsibility.
func Decagon(center vec.Vec2, scale float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 10)
	for i := range pts {
		a := (90 + 36*float64(i)) * degree
		pts[i] = vec.Vec2{
			X: center.X + scale*math.Cos(a),
			Y: center.Y + scale*math.Sin(a),
		}
	}
	return pts
}
