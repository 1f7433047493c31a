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

package pdfexport

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/strokeorder/raster"
)

type opKind uint8

const (
	opFill opKind = iota
	opStroke
)

// op is one recorded paint operation. The path is in device space, with
// the y axis pointing down, and quadratic segments are converted to
// cubic ones.
type op struct {
	kind  opKind
	path  *path.Data
	gray  float64
	rule  raster.FillRule
	style raster.StrokeStyle
}

// recorder implements svgdraw.Painter.
type recorder struct {
	ops []op
}

func (r *recorder) Fill(p path.Path, ctm matrix.Matrix, c color.NRGBA, rule raster.FillRule) {
	if c.A == 0 {
		return
	}
	dev := transformPath(p, ctm)
	if len(dev.Cmds) == 0 {
		return
	}
	r.ops = append(r.ops, op{
		kind: opFill,
		path: dev,
		gray: luma(c),
		rule: rule,
	})
}

// Stroke records a stroke. The line width is scaled by the square root
// of the determinant of ctm, which is exact for the uniform scalings used
// by the diagrams.
func (r *recorder) Stroke(p path.Path, ctm matrix.Matrix, c color.NRGBA, s raster.StrokeStyle) {
	if c.A == 0 || s.Width <= 0 {
		return
	}
	dev := transformPath(p, ctm)
	if len(dev.Cmds) == 0 {
		return
	}
	s.Width *= math.Sqrt(math.Abs(ctm[0]*ctm[3] - ctm[1]*ctm[2]))
	r.ops = append(r.ops, op{
		kind:  opStroke,
		path:  dev,
		gray:  luma(c),
		style: s,
	})
}

func transformPath(p path.Path, ctm matrix.Matrix) *path.Data {
	out := &path.Data{}
	for cmd, pts := range p.ToCubic() {
		out.Cmds = append(out.Cmds, cmd)
		for _, pt := range pts {
			out.Coords = append(out.Coords, apply(ctm, pt))
		}
	}
	return out
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// luma converts c to a gray level in [0, 1]. Alpha is ignored.
func luma(c color.NRGBA) float64 {
	y := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return min(y/255, 1)
}
