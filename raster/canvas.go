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
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Canvas paints filled and stroked paths onto an RGBA image, using
// source-over compositing.
type Canvas struct {
	Image *image.RGBA

	r     *Rasterizer
	color color.NRGBA
}

// NewCanvas returns a canvas which draws onto img. The rasterizer r is
// used for all paint operations; if it is nil, a new one is allocated.
func NewCanvas(img *image.RGBA, r *Rasterizer) *Canvas {
	if r == nil {
		r = &Rasterizer{}
	}
	return &Canvas{Image: img, r: r}
}

// Clear sets every pixel of the image to col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Image, c.Image.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Fill paints the inside of p. The path is given in user space and ctm
// maps it to pixel coordinates.
func (c *Canvas) Fill(p path.Path, ctm matrix.Matrix, col color.NRGBA, rule FillRule) {
	if col.A == 0 {
		return
	}
	c.setup(ctm, col)
	c.r.Fill(p, rule, c.blend)
}

// Stroke paints the outline of p.
func (c *Canvas) Stroke(p path.Path, ctm matrix.Matrix, col color.NRGBA, s StrokeStyle) {
	if col.A == 0 || s.Width <= 0 {
		return
	}
	c.setup(ctm, col)
	c.r.SetStroke(s)
	c.r.Stroke(p, c.blend)
}

func (c *Canvas) setup(ctm matrix.Matrix, col color.NRGBA) {
	b := c.Image.Rect
	c.r.Reset(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	c.r.CTM = ctm
	c.color = col
}

// blend composites one row of coverage onto the image.
func (c *Canvas) blend(y, xMin int, coverage []float32) {
	col := c.color
	srcA := float32(col.A) / 255
	r, g, b := float32(col.R), float32(col.G), float32(col.B)

	off := c.Image.PixOffset(xMin, y)
	pix := c.Image.Pix[off : off+4*len(coverage)]
	for i, cov := range coverage {
		a := cov * srcA
		if a <= 0 {
			continue
		}
		px := pix[4*i : 4*i+4 : 4*i+4]
		keep := 1 - a
		px[0] = uint8(r*a + float32(px[0])*keep + 0.5)
		px[1] = uint8(g*a + float32(px[1])*keep + 0.5)
		px[2] = uint8(b*a + float32(px[2])*keep + 0.5)
		px[3] = uint8(255*a + float32(px[3])*keep + 0.5)
	}
}
