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

import "math"

// The sizing functions below are exact trigonometric identities. They
// are kept in terms of the acute angle rather than the golden ratio so
// that non-standard angles remain usable; for the P2 angles the familiar
// powers of φ fall out of the formulas.

// UnitHeightEdgeLength returns the edge length a rhombus with the given
// acute angle (in degrees) must have so that its vertical span equals 1
// when the tile is generated from the obtuse complement 180-acuteAngle,
// the orientation used by the pattern composers.
//
// For the kite angle 72° this is 1/φ ≈ 0.618, the edge length shared by
// all kites and darts in the sun motif.
func UnitHeightEdgeLength(acuteAngle float64) float64 {
	return 0.5 / math.Cos(acuteAngle/2*degree)
}

// DartHeight returns the long-diagonal length of a rhombus with the
// given edge length and acute angle (in degrees). The sun composer uses
// this as the dart's height target so that dart edges match the kites'.
func DartHeight(edgeLength, acuteAngle float64) float64 {
	return 2 * edgeLength * math.Cos(acuteAngle/2*degree)
}

// DartCenterOffset returns the radial distance from the pattern centre
// to a dart's local origin in the sun motif: one edge length to reach
// the kite ring, plus the dart's half width. At this distance the
// dart's near tip lands exactly on a kite's side vertex.
func DartCenterOffset(edgeLength, acuteAngle float64) float64 {
	return edgeLength + edgeLength*math.Sin(acuteAngle/2*degree)
}
