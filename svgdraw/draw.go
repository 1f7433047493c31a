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

// Package svgdraw interprets a document tree as a sequence of paint
// operations.
//
// Only the subset of SVG which occurs in stroke order diagrams is
// understood: groups, paths and text. Other elements are skipped
// together with their content.
package svgdraw

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/strokeorder/fonts"
	"seehuhn.de/go/strokeorder/raster"
	"seehuhn.de/go/strokeorder/svg"
)

// Painter receives the paint operations. Paths are in user space, and
// ctm maps user space to the output device.
type Painter interface {
	Fill(p path.Path, ctm matrix.Matrix, c color.NRGBA, rule raster.FillRule)
	Stroke(p path.Path, ctm matrix.Matrix, c color.NRGBA, s raster.StrokeStyle)
}

// Options control the interpretation of a document.
type Options struct {
	// Font is used for all text. If nil, fonts.Default() is used.
	Font *fonts.Face

	// CTM maps the user space of the root element to the device. The zero
	// matrix is treated as the identity.
	CTM matrix.Matrix
}

// ErrUnsupported is returned (wrapped) for documents which use features
// outside the supported subset in a way that cannot be ignored.
var ErrUnsupported = errors.New("svgdraw: unsupported content")

// Draw walks the tree rooted at root in document order and sends every
// fill and stroke to p. Within one element, the fill is painted before
// the stroke.
func Draw(root *svg.Element, p Painter, opt *Options) error {
	d := &drawer{painter: p}
	st := defaultState()
	if opt != nil {
		d.font = opt.Font
		if opt.CTM != (matrix.Matrix{}) {
			st.ctm = opt.CTM
		}
	}
	if d.font == nil {
		d.font = fonts.Default()
	}
	if svg.LocalName(root.Name) != "svg" {
		return fmt.Errorf("%w: root element <%s>", ErrUnsupported, root.Name)
	}
	return d.element(root, st)
}

type drawer struct {
	painter Painter
	font    *fonts.Face
}

func (d *drawer) element(el *svg.Element, parent *state) error {
	name := svg.LocalName(el.Name)
	switch name {
	case "svg", "g", "path", "text":
	default:
		return nil
	}

	st, err := parent.derive(el)
	if err != nil {
		return err
	}

	switch name {
	case "svg", "g":
		for _, c := range el.Elements() {
			if err := d.element(c, st); err != nil {
				return err
			}
		}
	case "path":
		return d.path(el, st)
	case "text":
		return d.text(el, st)
	}
	return nil
}

func (d *drawer) path(el *svg.Element, st *state) error {
	attr, ok := el.Get("d")
	if !ok || strings.TrimSpace(attr) == "" {
		return nil
	}
	data, err := svg.ParsePathData(attr)
	if err != nil {
		return err
	}
	d.paint(data, st)
	return nil
}

// text draws the character data of a text element, including the text of
// nested tspan elements, as a single line starting at the x and y
// attributes.
func (d *drawer) text(el *svg.Element, st *state) error {
	s := strings.TrimSpace(el.TextContent())
	if s == "" {
		return nil
	}
	x, err := length(el.Attr("x"))
	if err != nil {
		return fmt.Errorf("svgdraw: text x: %w", err)
	}
	y, err := length(el.Attr("y"))
	if err != nil {
		return fmt.Errorf("svgdraw: text y: %w", err)
	}

	outline, advance, err := d.font.Outline(s, st.fontSize)
	if err != nil {
		return err
	}
	switch st.anchor {
	case "middle":
		x -= advance / 2
	case "end":
		x -= advance
	}

	glyphs := *st
	glyphs.ctm = svg.Concat(matrix.Matrix{1, 0, 0, 1, x, y}, st.ctm)
	glyphs.fillRule = raster.NonZero
	d.paint(outline, &glyphs)
	return nil
}

func (d *drawer) paint(data *path.Data, st *state) {
	if !st.fill.None {
		d.painter.Fill(data.Iter(), st.ctm, st.fill.Color, st.fillRule)
	}
	if !st.stroke.None && st.width > 0 {
		d.painter.Stroke(data.Iter(), st.ctm, st.stroke.Color, raster.StrokeStyle{
			Width:      st.width,
			Cap:        st.cap,
			Join:       st.join,
			MiterLimit: st.miterLimit,
		})
	}
}

// length parses a coordinate or length in user units. A "px" suffix is
// allowed, an empty string means zero.
func length(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
