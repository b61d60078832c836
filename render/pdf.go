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

package render

import (
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/penrose"
)

// WritePDF writes the pattern as a single-page PDF with a size×size
// point page. Tiles are painted back to front as vector paths, so the
// output scales to any resolution.
func WritePDF(fname string, p penrose.Pattern, size float64, pal Palette) error {
	paper := &pdf.Rectangle{URx: size, URy: size}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(deviceRGB(pal.Background))
	page.Rectangle(0, 0, size, size)
	page.Fill()

	// PDF pages are y-up like pattern space, so no flip is needed, only
	// scaling and centring.
	s := size / 2.2
	page.Transform(matrix.Scale(s, s).Translate(size/2, size/2))

	idx := 0
	for _, tile := range p {
		col := pal.tileColor(tile, idx)
		if tile.Kind != penrose.KindDecagon {
			idx++
		}
		page.SetFillColor(deviceRGB(col))
		for cmd, pts := range tile.Path() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}

func deviceRGB(c stdcolor.RGBA) color.Color {
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
