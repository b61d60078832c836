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

// Package raster converts filled polygons to anti-aliased pixel
// coverage values, the fraction of each pixel's area inside the
// polygon. Tiles produced by the penrose package are straight-edged,
// so the rasteriser handles line segments only; there is no curve
// flattening and no stroking.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// Rasterizer converts polygons to pixel coverage values, ranging from 0
// (outside) to 1 (inside). Create one instance and reuse it for
// multiple polygons. Internal buffers grow as needed but never shrink,
// achieving zero allocations in steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms from pattern space to device space.
	// Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Internal buffers (reused across calls)
	cover  []float32 // coverage accumulation: cover change per pixel; reused as output
	area   []float32 // coverage accumulation: area within pixel
	edges  []edge    // edge list for the current compound polygon
	active []int     // indices of active edges

	// Edge collection state
	bboxFirst bool    // true if no edges added yet
	devXMin   float64 // bounding box in device space
	devXMax   float64
	devYMin   float64
	devYMax   float64
}

// New returns a Rasterizer with an identity transform and the given
// clip rectangle.
func New(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// FillPolygon rasterises a single closed polygon. See FillPolygons.
func (r *Rasterizer) FillPolygon(poly []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.fillRings([][]vec.Vec2{poly}, emit)
}

// FillPolygons rasterises the polygons together as one compound shape
// using the nonzero winding rule. Each polygon is an open vertex ring;
// the closing edge back to the first vertex is added automatically.
//
// Coverage is delivered row by row through emit; the slice passed to
// emit is valid only for the duration of the callback.
func (r *Rasterizer) FillPolygons(polys [][]vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.fillRings(polys, emit)
}

func (r *Rasterizer) fillRings(polys [][]vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(polys)
	if !ok {
		return // empty or degenerate input
	}
	r.scan(xMin, xMax, yMin, yMax, emit)
}

// collectEdges transforms the vertex rings to device space and builds
// the edge list. It returns the bounding box of all edges in device
// coordinates, clamped to the clip rectangle.
func (r *Rasterizer) collectEdges(polys [][]vec.Vec2) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxFirst = true

	for _, ring := range polys {
		n := len(ring)
		if n < 3 {
			continue
		}
		for i := range n {
			r.addEdge(ring[i], ring[(i+1)%n])
		}
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	// Clamp to clip bounds and convert to integers
	clipXMin := int(r.Clip.LLx)
	clipXMax := int(r.Clip.URx)
	clipYMin := int(r.Clip.LLy)
	clipYMax := int(r.Clip.URy)

	xMin = max(int(math.Floor(r.devXMin)), clipXMin)
	xMax = min(int(math.Floor(r.devXMax))+1, clipXMax)
	yMin = max(int(math.Floor(r.devYMin)), clipYMin)
	yMax = min(int(math.Floor(r.devYMax))+1, clipYMax)

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}

	return xMin, xMax, yMin, yMax, true
}

// addEdge adds an edge from pattern-space coordinates, transforming to
// device space.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	dx0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	dy0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	dx1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	dy1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	// Skip horizontal edges: they never cross a scanline.
	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	if r.bboxFirst {
		r.devXMin = min(dx0, dx1)
		r.devXMax = max(dx0, dx1)
		r.devYMin = min(dy0, dy1)
		r.devYMax = max(dy0, dy1)
		r.bboxFirst = false
	} else {
		r.devXMin = min(r.devXMin, min(dx0, dx1))
		r.devXMax = max(r.devXMax, max(dx0, dx1))
		r.devYMin = min(r.devYMin, min(dy0, dy1))
		r.devYMax = max(r.devYMax, max(dy0, dy1))
	}
}

// Coverage accumulation model:
//
// For each pixel, two values are tracked:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  horizontal position weighting (how far right the crossing is)
//
// An edge crossing a pixel contributes:
//   cover = sign * dy   (sign is +1 for downward, -1 for upward)
//   area  = cover * (1 - xFrac)   (xFrac is the position within the pixel)
//
// integrateScanline then computes, per pixel,
//   coverage = accumulated_cover + area[i]
// carrying accumulated_cover forward from left to right. This is the
// signed area of the shape within each pixel, clamped to [0,1] for the
// nonzero winding rule.

// accumulateEdge adds a single edge's contribution to the cover and
// area buffers for scanline y. Buffers are indexed by (x - bboxXMin).
// Edges spanning several pixel columns are split at column boundaries.
func (r *Rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	// Portion of the edge within this scanline [y, y+1)
	yTop := float64(y)
	yBot := float64(y + 1)

	edgeYMin := min(e.y0, e.y1)
	edgeYMax := max(e.y0, e.y1)
	yTop = max(yTop, edgeYMin)
	yBot = min(yBot, edgeYMax)

	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	// x at the y boundaries of the edge segment within this scanline
	xAtYTop := e.x0 + e.dxdy*(yTop-e.y0)
	xAtYBot := e.x0 + e.dxdy*(yBot-e.y0)

	xLeft, xRight := xAtYTop, xAtYBot
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}

	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	// Edge entirely to the left of the bounding box: its winding still
	// affects every pixel in the row.
	if pixRight < bboxXMin {
		coverVal := sign * float32(yBot-yTop)
		cover[0] += coverVal
		area[0] += coverVal
		return
	}

	// Edge entirely to the right: no contribution.
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		r.accumulateEdgeInColumn(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	// Edge spans multiple pixel columns: compute the y-extent of the
	// edge within each column separately.
	dydx := 1 / e.dxdy

	for pix := pixLeft; pix <= pixRight; pix++ {
		yAtPixLeft := e.y0 + dydx*(float64(pix)-e.x0)
		yAtPixRight := e.y0 + dydx*(float64(pix+1)-e.x0)

		segYMin := max(min(yAtPixLeft, yAtPixRight), yTop)
		segYMax := min(max(yAtPixLeft, yAtPixRight), yBot)

		segDy := segYMax - segYMin
		if segDy <= 0 {
			continue
		}

		coverVal := sign * float32(segDy)

		yMid := (segYMin + segYMax) / 2
		xMid := e.x0 + e.dxdy*(yMid-e.y0)
		xFrac := xMid - float64(pix)
		areaVal := coverVal * float32(1-xFrac)

		if pix < bboxXMin {
			cover[0] += coverVal
			area[0] += coverVal
		} else if pix < bboxXMax {
			idx := pix - bboxXMin
			cover[idx] += coverVal
			area[idx] += areaVal
		}
	}
}

// accumulateEdgeInColumn handles an edge segment within a single pixel column.
func (r *Rasterizer) accumulateEdgeInColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	coverVal := sign * float32(yBot-yTop)

	if pix < bboxXMin {
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	if pix >= bboxXMax {
		return
	}

	yMid := (yTop + yBot) / 2
	xMid := e.x0 + e.dxdy*(yMid-e.y0)
	xFrac := xMid - float64(pix)
	areaVal := coverVal * float32(1-xFrac)

	idx := pix - bboxXMin
	cover[idx] += coverVal
	area[idx] += areaVal
}

// integrateScanline converts accumulated cover/area values to final
// coverage using the nonzero winding rule. The cover slice is modified
// in place.
func integrateScanline(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		// clamp(abs(raw), 0, 1)
		cov := raw
		if raw < 0 {
			cov = -raw
		}
		if cov > 1 {
			cov = 1
		}
		cover[i] = cov
	}
}

// trimZeros returns the non-zero portion of coverage and its starting
// offset, or nil if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// scan rasterises the collected edges scanline by scanline using an
// active edge list. xMin, xMax, yMin, yMax is the edge bounding box,
// already clamped to the clip rectangle.
func (r *Rasterizer) scan(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	// Sort edges by their upper end so that scanlines see them in order.
	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		// Add edges that start at this scanline
		for nextEdge < len(r.edges) {
			e := &r.edges[nextEdge]
			if min(e.y0, e.y1) >= yfNext {
				break
			}
			r.active = append(r.active, nextEdge)
			nextEdge++
		}

		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		hasEdges := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]

			// Drop edges that end above this scanline
			if max(e.y0, e.y1) <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}

			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			hasEdges = true
			i++
		}

		if !hasEdges {
			continue
		}

		integrateScanline(r.cover, r.area)

		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// Numerical tolerances for the rasteriser.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an
	// edge to contribute to coverage. Edges with |y1 - y0| below this
	// threshold are skipped as horizontal.
	horizontalEdgeThreshold = 1e-10
)
