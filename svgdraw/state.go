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

package svgdraw

import (
	"image/color"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/strokeorder/raster"
	"seehuhn.de/go/strokeorder/svg"
)

// state holds the inherited properties in effect for an element.
type state struct {
	ctm matrix.Matrix

	fill     svg.Paint
	fillRule raster.FillRule

	stroke     svg.Paint
	width      float64
	cap        graphics.LineCapStyle
	join       graphics.LineJoinStyle
	miterLimit float64

	fontSize float64
	anchor   string
}

func defaultState() *state {
	return &state{
		ctm:        matrix.Identity,
		fill:       svg.Paint{Color: color.NRGBA{A: 0xff}},
		fillRule:   raster.NonZero,
		stroke:     svg.Paint{None: true},
		width:      1,
		cap:        graphics.LineCapButt,
		join:       graphics.LineJoinMiter,
		miterLimit: 4,
		fontSize:   12,
		anchor:     "start",
	}
}

// derive returns the state for el, a child of the element with state s.
// Presentation attributes are applied first, so that declarations in the
// style attribute take precedence. Unknown properties are ignored, and
// so are values which cannot be parsed.
func (s *state) derive(el *svg.Element) (*state, error) {
	res := *s

	if tf, ok := el.Get("transform"); ok {
		m, err := svg.ParseTransform(tf)
		if err != nil {
			return nil, err
		}
		res.ctm = svg.Concat(m, s.ctm)
	}

	for _, a := range el.Attrs {
		res.set(a.Name, a.Value)
	}
	if style, ok := el.Get("style"); ok {
		st := svg.ParseStyle(style)
		for _, key := range st.Keys() {
			value, _ := st.Get(key)
			res.set(key, value)
		}
	}
	return &res, nil
}

func (s *state) set(key, value string) {
	value = strings.TrimSpace(value)
	if value == "inherit" {
		return
	}

	switch key {
	case "fill":
		if p, err := svg.ParsePaint(value); err == nil {
			s.fill = p
		}
	case "fill-rule":
		switch value {
		case "nonzero":
			s.fillRule = raster.NonZero
		case "evenodd":
			s.fillRule = raster.EvenOdd
		}
	case "stroke":
		if p, err := svg.ParsePaint(value); err == nil {
			s.stroke = p
		}
	case "stroke-width":
		if w, err := length(value); err == nil && w >= 0 {
			s.width = w
		}
	case "stroke-linecap":
		switch value {
		case "butt":
			s.cap = graphics.LineCapButt
		case "round":
			s.cap = graphics.LineCapRound
		case "square":
			s.cap = graphics.LineCapSquare
		}
	case "stroke-linejoin":
		switch value {
		case "miter":
			s.join = graphics.LineJoinMiter
		case "round":
			s.join = graphics.LineJoinRound
		case "bevel":
			s.join = graphics.LineJoinBevel
		}
	case "stroke-miterlimit":
		if m, err := length(value); err == nil && m >= 1 {
			s.miterLimit = m
		}
	case "font-size":
		if size, err := length(value); err == nil && size > 0 {
			s.fontSize = size
		}
	case "text-anchor":
		switch value {
		case "start", "middle", "end":
			s.anchor = value
		}
	}
}
