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

import (
	"strings"

	"seehuhn.de/go/strokeorder/svg"
)

// Role is the function of a top-level group in a KanjiVG document.
type Role int

// These are the roles of top-level groups.
const (
	RoleNone    Role = iota // not part of the diagram
	RoleStrokes             // the stroke outlines
	RoleNumbers             // the stroke numbers
)

func (r Role) String() string {
	switch r {
	case RoleStrokes:
		return "strokes"
	case RoleNumbers:
		return "numbers"
	default:
		return "none"
	}
}

// RoleOf returns the role of n. Only elements can have a role. The role
// is decided by the id attribute: after an optional "kvg:" prefix is
// removed, "StrokePaths_" marks the strokes and "StrokeNumbers_" marks
// the numbers.
func RoleOf(n svg.Node) Role {
	el, ok := n.(*svg.Element)
	if !ok {
		return RoleNone
	}
	id := strings.TrimPrefix(el.Attr("id"), "kvg:")
	switch {
	case strings.HasPrefix(id, "StrokePaths_"):
		return RoleStrokes
	case strings.HasPrefix(id, "StrokeNumbers_"):
		return RoleNumbers
	default:
		return RoleNone
	}
}

// Select returns the children of root which have a role, in document
// order. Deeper descendants are not examined, and duplicates are kept.
// The returned elements are shared with root.
func Select(root *svg.Element) []*svg.Element {
	var res []*svg.Element
	for _, c := range root.Children {
		if RoleOf(c) != RoleNone {
			res = append(res, c.(*svg.Element))
		}
	}
	return res
}
