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

// Package render draws tile patterns as raster images and as PDF
// pages. Images use the anti-aliased coverage values from the raster
// package; PDF output keeps the exact tile outlines as vector paths.
package render

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/penrose"
	"seehuhn.de/go/penrose/raster"
)

// Palette assigns colors to a pattern's tiles. The decagon background
// gets its own color; the remaining tiles cycle through Tiles in
// pattern order.
type Palette struct {
	Background color.RGBA
	Decagon    color.RGBA
	Tiles      []color.RGBA
}

// DefaultPalette returns the pastel coin color scheme: a dark decagon
// backdrop with light tiles on a white page.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Decagon:    color.RGBA{R: 0x3A, G: 0x3A, B: 0x3A, A: 0xFF},
		Tiles: []color.RGBA{
			{R: 0xFF, G: 0xB3, B: 0xBA, A: 0xFF},
			{R: 0xBF, G: 0xDB, B: 0xFE, A: 0xFF},
			{R: 0xBA, G: 0xE1, B: 0xD3, A: 0xFF},
			{R: 0xE0, G: 0xBB, B: 0xE4, A: 0xFF},
			{R: 0xFF, G: 0xE4, B: 0xB5, A: 0xFF},
			{R: 0xD4, G: 0xF1, B: 0xF4, A: 0xFF},
			{R: 0xF4, G: 0xD4, B: 0xBA, A: 0xFF},
			{R: 0xD4, G: 0xBA, B: 0xF4, A: 0xFF},
			{R: 0xFF, G: 0xF5, B: 0xBA, A: 0xFF},
			{R: 0xC7, G: 0xE9, B: 0xC0, A: 0xFF},
		},
	}
}

// tileColor returns the fill color for the tile with the given
// non-decagon index.
func (pal Palette) tileColor(tile penrose.Tile, idx int) color.RGBA {
	if tile.Kind == penrose.KindDecagon {
		return pal.Decagon
	}
	if len(pal.Tiles) == 0 {
		return pal.Decagon
	}
	return pal.Tiles[idx%len(pal.Tiles)]
}

// patternToDevice maps pattern coordinates to a size×size pixel image.
// Pattern space is y-up with the motif centred on the origin and
// contained in the unit circle (plus a little margin); device space is
// y-down with the origin in the top left corner.
func patternToDevice(size int) matrix.Matrix {
	s := float64(size) / 2.2
	half := float64(size) / 2
	return matrix.Scale(s, -s).Translate(half, half)
}

// Image renders the pattern into a new size×size RGBA image. Tiles are
// painted back to front in pattern order, each composited over the
// previous ones using its anti-aliased coverage.
func Image(p penrose.Pattern, size int, pal Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fill(img, pal.Background)

	r := raster.New(rect.Rect{URx: float64(size), URy: float64(size)})
	r.CTM = patternToDevice(size)

	idx := 0
	for _, tile := range p {
		col := pal.tileColor(tile, idx)
		if tile.Kind != penrose.KindDecagon {
			idx++
		}
		r.FillPolygon(tile.Vertices, func(y, xMin int, coverage []float32) {
			blendRow(img, y, xMin, coverage, col)
		})
	}
	return img
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		o := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[o] = c.R
			img.Pix[o+1] = c.G
			img.Pix[o+2] = c.B
			img.Pix[o+3] = c.A
			o += 4
		}
	}
}

// blendRow composites one coverage row of color c over the image.
func blendRow(img *image.RGBA, y, xMin int, coverage []float32, c color.RGBA) {
	o := img.PixOffset(xMin, y)
	for _, cov := range coverage {
		if cov > 0 {
			img.Pix[o] = lerp8(img.Pix[o], c.R, cov)
			img.Pix[o+1] = lerp8(img.Pix[o+1], c.G, cov)
			img.Pix[o+2] = lerp8(img.Pix[o+2], c.B, cov)
			img.Pix[o+3] = lerp8(img.Pix[o+3], c.A, cov)
		}
		o += 4
	}
}

func lerp8(dst, src uint8, t float32) uint8 {
	v := float32(dst) + (float32(src)-float32(dst))*t
	return uint8(v + 0.5)
}
