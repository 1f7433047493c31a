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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/strokeorder"
	"seehuhn.de/go/strokeorder/fonts"
	"seehuhn.de/go/strokeorder/kanjivg"
	"seehuhn.de/go/strokeorder/raster"
	"seehuhn.de/go/strokeorder/svgdraw"
)

// Options control the appearance of the PDF file.
type Options struct {
	// Theme selects the background color. The colors of the strokes and
	// numbers are taken from the document.
	Theme strokeorder.Theme

	// Font is used for the stroke numbers. If nil, fonts.Default() is
	// used.
	Font *fonts.Face
}

// WriteFile writes the diagram c to the named file. The page size in PDF
// points equals the pixel size of the PNG image for c, and the viewBox
// of c.Root is mapped to the page like it is mapped to the image.
func WriteFile(name string, c *kanjivg.Composite, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	ctm, width, height, err := strokeorder.Layout(c.Root, c.Width)
	if err != nil {
		return fmt.Errorf("pdfexport: %w", err)
	}

	rec := &recorder{}
	err = svgdraw.Draw(c.Root, rec, &svgdraw.Options{
		Font: opt.Font,
		CTM:  ctm,
	})
	if err != nil {
		return fmt.Errorf("pdfexport: %w", err)
	}

	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	bg := opt.Theme.Background()
	page.SetFillColor(pdfcolor.DeviceGray(float64(bg.Y) / 255))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// The recorded paths use a y axis pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	for _, o := range rec.ops {
		switch o.kind {
		case opFill:
			page.SetFillColor(pdfcolor.DeviceGray(o.gray))
		case opStroke:
			page.SetStrokeColor(pdfcolor.DeviceGray(o.gray))
			page.SetLineWidth(o.style.Width)
			page.SetLineCap(o.style.Cap)
			page.SetLineJoin(o.style.Join)
			page.SetMiterLimit(o.style.MiterLimit)
		}

		for cmd, pts := range o.path.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}

		switch {
		case o.kind == opStroke:
			page.Stroke()
		case o.rule == raster.EvenOdd:
			page.FillEvenOdd()
		default:
			page.Fill()
		}
	}

	return page.Close()
}
