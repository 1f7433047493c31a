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

package svg

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Paint is the value of a fill or stroke property.
type Paint struct {
	None  bool
	Color color.NRGBA
}

// Hex returns the paint in #rrggbb notation, or "none".
func (p Paint) Hex() string {
	if p.None {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B)
}

// ParsePaint parses a paint specification: "none", a hex color with
// three or six digits, rgb(r,g,b) with integer components, or one of
// an SVG 1.1 color keyword.
func ParsePaint(s string) (Paint, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "none" || s == "transparent":
		return Paint{None: true}, nil

	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			break
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			break
		}
		return Paint{Color: color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}}, nil

	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			break
		}
		var rgb [3]uint8
		for i, part := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return Paint{}, fmt.Errorf("svg: invalid paint %q", s)
			}
			rgb[i] = uint8(max(0, min(255, v)))
		}
		return Paint{Color: color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}}, nil

	default:
		if c, ok := colornames.Map[s]; ok {
			return Paint{Color: color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}}, nil
		}
	}
	return Paint{}, fmt.Errorf("svg: invalid paint %q", s)
}
