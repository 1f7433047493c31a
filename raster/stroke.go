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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of a path, in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // T rotated by 90° counter-clockwise
}

// StrokeStyle collects the parameters of a stroke.
type StrokeStyle struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

// SetStroke copies the stroke parameters from s.
func (r *Rasterizer) SetStroke(s StrokeStyle) {
	r.Width = s.Width
	r.Cap = s.Cap
	r.Join = s.Join
	r.MiterLimit = s.MiterLimit
}

// Stroke reports the coverage of the outline of p, using Width, Cap, Join
// and MiterLimit. The outline is constructed in user space, so that
// non-uniform scaling in the CTM distorts the pen like it should.
//
// Every subpath gives one closed polygon. All polygons are filled
// together with the nonzero rule, so overlapping parts are painted once.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// a subpath without extent has no direction, only a round cap is drawn
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.degeneratePoints {
			start := len(r.stroke)
			r.arc(pt, r.Width/2, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.strokeOffsets = append(r.strokeOffsets, start)
		}
	}

	for i := range r.segsOffsets {
		start := len(r.stroke)
		if r.subpathClosed[i] {
			r.strokeClosed(r.subpathSegments(i))
		} else {
			r.strokeOpen(r.subpathSegments(i))
		}
		if len(r.stroke)-start >= 3 {
			r.strokeOffsets = append(r.strokeOffsets, start)
		} else {
			r.stroke = r.stroke[:start]
		}
	}

	r.resetEdges()
	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.scan(NonZero, emit)
}

func (r *Rasterizer) subpathSegments(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[r.segsOffsets[i]:end]
}

// flattenPath splits p into subpaths of line segments. Subpaths which
// consist of a single point are collected in r.degeneratePoints.
func (r *Rasterizer) flattenPath(p path.Path) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var current, start vec.Vec2
	first := 0 // index of the first segment of the current subpath
	inSubpath := false
	drawn := false

	finish := func(closed bool) {
		if len(r.segs) == first {
			r.degeneratePoints = append(r.degeneratePoints, start)
			return
		}
		r.segsOffsets = append(r.segsOffsets, first)
		r.subpathClosed = append(r.subpathClosed, closed)
	}

	for cmd, pts := range p {
		if cmd != path.CmdMoveTo && !inSubpath {
			continue
		}
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath && drawn {
				finish(false)
			}
			current = pts[0]
			start = current
			first = len(r.segs)
			inSubpath = true
			drawn = false

		case path.CmdLineTo:
			drawn = true
			r.addStrokeSegment(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			drawn = true
			r.flattenQuadratic(current, pts[0], pts[1], r.addStrokeSegment)
			current = pts[1]

		case path.CmdCubeTo:
			drawn = true
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addStrokeSegment)
			current = pts[2]

		case path.CmdClose:
			if current != start {
				r.addStrokeSegment(current, start)
			}
			finish(true)
			current = start
			first = len(r.segs)
			inSubpath = false
			drawn = false
		}
	}
	if inSubpath && drawn {
		finish(false)
	}
}

func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// strokeOpen appends the outline of an open subpath: the start cap, the
// +N side forwards, the end cap and the -N side backwards. Joins are
// added on the outer side of every corner.
func (r *Rasterizer) strokeOpen(segs []strokeSegment) {
	d := r.Width / 2
	first, last := &segs[0], &segs[len(segs)-1]

	r.capAt(first.A, first.T.Mul(-1), d)

	skip := false
	for i := range segs {
		seg := &segs[i]
		if !skip {
			r.stroke = append(r.stroke, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i == len(segs)-1 {
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		s := cross(seg.T, next.T)
		switch {
		case math.Abs(s) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
		case s > 0:
			skip = r.innerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			r.joinAt(seg.B, seg.T, next.T, d, true)
		}
	}

	r.capAt(last.B, last.T, d)

	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			r.stroke = append(r.stroke, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i == 0 {
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		s := cross(prev.T, seg.T)
		switch {
		case math.Abs(s) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
		case s > 0:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			r.joinAt(seg.A, prev.T, seg.T, d, false)
		default:
			skip = r.innerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// strokeClosed appends the outline of a closed subpath as one polygon:
// the +N side forwards, then the -N side backwards. The corner between
// the last and the first segment gets a join like every other corner.
func (r *Rasterizer) strokeClosed(segs []strokeSegment) {
	d := r.Width / 2
	first, last := &segs[0], &segs[len(segs)-1]

	r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
	for i := range segs {
		seg := &segs[i]
		next := first
		if i+1 < len(segs) {
			next = &segs[i+1]
		}
		s := cross(seg.T, next.T)
		switch {
		case math.Abs(s) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
		case s > 0:
			r.innerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			r.joinAt(seg.B, seg.T, next.T, d, true)
			r.stroke = append(r.stroke, next.A.Add(next.N.Mul(d)))
		}
	}

	for i := len(segs) - 1; i >= -1; i-- {
		var seg, prev *strokeSegment
		switch i {
		case -1:
			// back at the start of the polygon
			r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
			return
		case len(segs) - 1:
			// the closing corner, seen from the start of the first segment
			seg, prev = first, last
		default:
			seg, prev = &segs[i+1], &segs[i]
		}
		s := cross(prev.T, seg.T)
		switch {
		case math.Abs(s) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)), prev.B.Sub(prev.N.Mul(d)))
		case s > 0:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			r.joinAt(seg.A, prev.T, seg.T, d, false)
			r.stroke = append(r.stroke, prev.B.Sub(prev.N.Mul(d)))
		default:
			r.innerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// capAt appends the cap at the end point p of a subpath. The unit vector
// t points away from the subpath.
func (r *Rasterizer) capAt(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.stroke = append(r.stroke, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		r.arc(p, d, n, -math.Pi, true)
	}
	// butt caps connect the two sides directly
}

// innerCorner appends the inner side of the corner at p, where the
// tangent turns from t1 to t2. Where possible, the two offset lines are
// cut at their intersection and the return value is true, meaning that
// the caller must not add the next offset point.
func (r *Rasterizer) innerCorner(p, t1, t2, n1, n2 vec.Vec2, d float64, plusSide bool) bool {
	cos := t1.Dot(t2)
	half := math.Sqrt((1 + cos) / 2)
	dir := n1.Add(n2)
	if !plusSide {
		dir = dir.Mul(-1)
	}
	if l := dir.Length(); cos <= 1-1e-9 && half >= 1e-9 && l >= 1e-9 {
		r.stroke = append(r.stroke, p.Add(dir.Mul(d/(half*l))))
		return true
	}

	if plusSide {
		r.stroke = append(r.stroke, p.Add(n1.Mul(d)), p.Add(n2.Mul(d)))
	} else {
		r.stroke = append(r.stroke, p.Sub(n1.Mul(d)), p.Sub(n2.Mul(d)))
	}
	return false
}

// joinAt appends the outer side of the join at p, where the tangent
// turns from t1 to t2. The offset points of both segments are added by
// the caller.
func (r *Rasterizer) joinAt(p, t1, t2 vec.Vec2, d float64, plusSide bool) {
	cos := t1.Dot(t2)
	sin := cross(t1, t2)
	if math.Abs(sin) < collinearityThreshold {
		return
	}
	if cos < cuspCosineThreshold {
		// the path reverses, two caps look better than any join
		r.capAt(p, t1, d)
		r.capAt(p, t2.Mul(-1), d)
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		// the miter length relative to the width is 1/cos(θ/2)
		half := math.Sqrt((1 + cos) / 2)
		if half == 0 || 1/half > r.MiterLimit+1e-10 {
			return // bevel
		}
		dir := vec.Vec2{X: -t1.Y, Y: t1.X}.Add(vec.Vec2{X: -t2.Y, Y: t2.X})
		if !plusSide {
			dir = dir.Mul(-1)
		}
		if l := dir.Length(); l > zeroLengthThreshold {
			r.stroke = append(r.stroke, p.Add(dir.Mul(d/(half*l))))
		}

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		if plusSide {
			start := vec.Vec2{X: -t1.Y, Y: t1.X}
			if sin < 0 {
				angle = -angle
			}
			r.arc(p, d, start, angle, false)
		} else {
			start := vec.Vec2{X: t2.Y, Y: -t2.X}
			if sin > 0 {
				angle = -angle
			}
			r.arc(p, d, start, angle, false)
		}
	}
	// bevel joins need no extra points
}

// arc appends points on the circle around center, starting in direction
// dir (a unit vector) and sweeping by the given angle, counter-clockwise
// for positive angles. The number of points depends on the radius in
// device space.
func (r *Rasterizer) arc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius >= r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i := 1
	if includeStart {
		i = 0
	}
	for ; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		rotated := vec.Vec2{X: dir.X*cos - dir.Y*sin, Y: dir.X*sin + dir.Y*cos}
		r.stroke = append(r.stroke, center.Add(rotated.Mul(radius)))
	}
}
