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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Kind identifies the shape of a tile. Renderers use it to pick a fill
// colour; it carries no geometric meaning.
type Kind int

const (
	KindDecagon Kind = iota
	KindKite
	KindDart
	KindRhomb
)

func (k Kind) String() string {
	switch k {
	case KindDecagon:
		return "decagon"
	case KindKite:
		return "kite"
	case KindDart:
		return "dart"
	case KindRhomb:
		return "rhomb"
	}
	return "unknown"
}

// Tile pairs one polygon with its kind. Vertices is an ordered, open
// vertex ring: the closing edge from the last vertex back to the first
// is implied and must be added by the renderer.
type Tile struct {
	Kind     Kind
	Layer    int // layer index in layered patterns, 0 otherwise
	Vertices []vec.Vec2
}

// Path returns the tile outline as a closed path.
func (t Tile) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(t.Vertices) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, t.Vertices[:1]) {
			return
		}
		for i := 1; i < len(t.Vertices); i++ {
			if !yield(path.CmdLineTo, t.Vertices[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Centroid returns the arithmetic mean of the tile's vertices.
func (t Tile) Centroid() vec.Vec2 {
	var c vec.Vec2
	if len(t.Vertices) == 0 {
		return c
	}
	for _, p := range t.Vertices {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(t.Vertices)))
}

// Pattern is an ordered list of tiles in drawing order: earlier tiles
// are painted first and may be covered by later ones.
type Pattern []Tile
