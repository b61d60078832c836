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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// degree converts an angle in degrees to radians when multiplied.
const degree = math.Pi / 180

// Rotate returns a copy of pts rotated by angle degrees about the
// coordinate origin. Rotation is about the origin, not the centroid of
// the points; a rotated polygon away from the origin changes position.
// The input slice is not modified.
func Rotate(pts []vec.Vec2, angle float64) []vec.Vec2 {
	m := matrix.RotateDeg(angle)
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		out[i] = transformPoint(m, p)
	}
	return out
}

// Scale returns a copy of pts with every coordinate multiplied by factor.
// The input slice is not modified.
func Scale(pts []vec.Vec2, factor float64) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		out[i] = p.Mul(factor)
	}
	return out
}

// Translate returns a copy of pts with offset added to every point.
// The input slice is not modified.
func Translate(pts []vec.Vec2, offset vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		out[i] = p.Add(offset)
	}
	return out
}

// rotatePoint rotates a single point by angle degrees about the origin.
func rotatePoint(p vec.Vec2, angle float64) vec.Vec2 {
	return transformPoint(matrix.RotateDeg(angle), p)
}

// transformPoint applies an affine matrix [a b c d e f] to a point.
func transformPoint(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
