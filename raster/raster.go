// seehuhn.de/go/strokeorder - stroke-order diagrams for CJK characters
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

// Package raster converts paths into anti-aliased pixel coverage.
//
// A [Rasterizer] computes, for every pixel touched by a filled or stroked
// path, the fraction of the pixel area which is covered. A [Canvas]
// blends the coverage of successive paint operations into an RGBA image.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// FillRule decides which regions of a self-intersecting path are inside.
type FillRule int

// The supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// EmitFunc receives the coverage of one row of pixels, starting at
// column xMin. The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

// Rasterizer computes pixel coverage for filled and stroked paths.
// Internal buffers grow as needed and are kept between calls, so a
// Rasterizer which is reused does not allocate once it has warmed up.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. It must be invertible.
	CTM matrix.Matrix

	// Clip is the device space rectangle outside which no coverage is
	// reported. The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the shape used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape used at corners.
	Join graphics.LineJoinStyle

	// MiterLimit is the largest ratio of miter length to stroke width for
	// which a miter join is used. Longer miters are beveled.
	MiterLimit float64

	cover     []float32
	area      []float32
	edges     []edge
	activeIdx []int

	// bounding box of the edges, in device space
	haveBBox           bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64

	// stroke outline construction
	stroke           []vec.Vec2
	strokeOffsets    []int
	segs             []strokeSegment
	segsOffsets      []int
	subpathClosed    []bool
	degeneratePoints []vec.Vec2
}

// NewRasterizer returns a Rasterizer with the given clip rectangle and
// default values for the other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset sets the clip rectangle and restores the defaults of all other
// parameters: identity CTM, flatness 0.25, width 1, butt caps, miter
// joins and miter limit 4. The internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// Fill reports the coverage of the area enclosed by p. Open subpaths are
// closed by a straight line back to their start.
func (r *Rasterizer) Fill(p path.Path, rule FillRule, emit EmitFunc) {
	r.resetEdges()

	var current, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
			open = true

		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addEdge)
			current = pts[1]

		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]

		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}

	r.scan(rule, emit)
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve in user space by
// line segments, which are passed to emit. The number of segments is
// chosen so that the error in device space stays below r.Flatness.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic is like flattenQuadratic for cubic curves. The segment
// count follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.haveBBox = false
}

// addEdge transforms a user space segment to device space and adds it to
// the edge list. Horizontal segments do not contribute and are dropped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := &r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if !r.haveBBox {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.haveBBox = true
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// pixelBounds returns the pixel rectangle covered by the edges, clamped
// to the clip rectangle.
func (r *Rasterizer) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage is accumulated per scanline in two buffers. For every pixel,
// cover holds the signed vertical extent of the edge pieces inside the
// pixel column, and area holds the same values weighted by the part of
// the pixel to the right of the edge. Integrating from left to right,
//
//	coverage[i] = sum(cover[0:i]) + area[i],
//
// gives the signed area of the path inside each pixel. Its absolute
// value, clamped to 1, is the nonzero coverage; folding it modulo 2 gives
// the even-odd coverage.

// scan walks the scanlines from top to bottom, maintaining the list of
// edges which intersect the current scanline.
func (r *Rasterizer) scan(rule FillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})
	r.activeIdx = r.activeIdx[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yBot {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yTop {
				// the edge is finished
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			if accumulateEdge(e, y, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulateEdge adds the part of e inside scanline y to the buffers,
// which cover the pixel columns [xMin, xMax). Contributions left of the
// buffer are added to the first pixel, contributions to the right are
// dropped. The return value tells whether anything was added.
func accumulateEdge(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	if pixLeft >= xMax {
		return false
	}
	if pixRight < xMin {
		v := sign * float32(yBot-yTop)
		cover[0] += v
		area[0] += v
		return true
	}

	if pixLeft == pixRight {
		addPiece(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return true
	}

	// the edge crosses several pixel columns
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), yTop)
		segBot := min(max(ya, yb), yBot)
		if segBot > segTop {
			addPiece(e, segTop, segBot, sign, pix, cover, area, xMin, xMax)
		}
	}
	return true
}

// addPiece adds the piece of e between yTop and yBot, which lies inside
// pixel column pix.
func addPiece(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	v := sign * float32(yBot-yTop)
	switch {
	case pix < xMin:
		cover[0] += v
		area[0] += v
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		frac := xMid - float64(pix)
		cover[pix-xMin] += v
		area[pix-xMin] += v * float32(1-frac)
	}
}

// integrateNonZero turns the accumulation buffers into nonzero coverage,
// in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd turns the accumulation buffers into even-odd coverage,
// in place in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := abs32(acc + area[i])
		acc += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, and the offset of that part. For all-zero input the
// result is nil.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	defaultFlatness   = 0.25
	defaultMiterLimit = 4

	// edges with a smaller vertical extent are treated as horizontal
	horizontalEdgeThreshold = 1e-10

	// stroke segments shorter than this are dropped
	zeroLengthThreshold = 1e-10

	// |sin| of the turning angle below which a corner needs no join
	collinearityThreshold = 1e-6

	// cosine of the turning angle below which a corner is a cusp
	cuspCosineThreshold = -0.9999
)
