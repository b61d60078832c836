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

// Command penrose-coin renders a Penrose tile coin design as a PNG
// image and, optionally, as a vector PDF.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"seehuhn.de/go/penrose"
	"seehuhn.de/go/penrose/render"
)

func main() {
	motif := flag.String("motif", "sun", "pattern to draw (sun or star)")
	scale := flag.Float64("scale", 0.85, "tile scale factor")
	acute := flag.Float64("acute", 72, "rhombus acute angle in degrees (star only)")
	size := flag.Int("size", 1024, "output image size in pixels")
	out := flag.String("o", "coin.png", "output PNG file name")
	pdfOut := flag.String("pdf", "", "also write a vector PDF to this file")
	flag.Parse()

	var pattern penrose.Pattern
	var err error
	switch *motif {
	case "sun":
		pattern, err = penrose.Sun(*scale)
	case "star":
		pattern, err = penrose.LayeredStar(*acute, *scale)
	default:
		fmt.Fprintf(os.Stderr, "unknown motif %q (use sun or star)\n", *motif)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}

	pal := render.DefaultPalette()

	img := render.Image(pattern, *size, pal)
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	if *pdfOut != "" {
		err := render.WritePDF(*pdfOut, pattern, float64(*size), pal)
		if err != nil {
			log.Fatal(err)
		}
	}
}
