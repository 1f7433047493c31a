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

package kanjivg

import "seehuhn.de/go/strokeorder/svg"

// Colors gives the colors for the two kinds of groups, in any notation
// allowed by CSS.
type Colors struct {
	Strokes string
	Numbers string
}

// Recolor returns a copy of g with the style adapted to c. For the stroke
// group, "stroke" is set to c.Strokes and "fill" to "none". For the
// number group, "fill" is set to c.Numbers. All other style declarations
// are kept. Groups without a role are returned unchanged.
//
// The copy shares its children with g, and g itself is not modified.
// Recoloring an already recolored group gives the same style again.
func Recolor(g *svg.Element, c Colors) *svg.Element {
	role := RoleOf(g)
	if role == RoleNone {
		return g
	}

	st := svg.ParseStyle(g.Attr("style"))
	switch role {
	case RoleStrokes:
		st.Set("stroke", c.Strokes)
		st.Set("fill", "none")
	case RoleNumbers:
		st.Set("fill", c.Numbers)
	}

	res := g.ShallowCopy()
	res.Set("style", st.String())
	return res
}
