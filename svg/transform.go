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
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// Concat returns the transformation which applies first and then then.
// Matrices use the PDF layout [a b c d e f], mapping (x, y) to
// (a*x + c*y + e, b*x + d*y + f), which matches SVG's matrix(a b c d e f).
func Concat(first, then matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		then[0]*first[0] + then[2]*first[1],
		then[1]*first[0] + then[3]*first[1],
		then[0]*first[2] + then[2]*first[3],
		then[1]*first[2] + then[3]*first[3],
		then[0]*first[4] + then[2]*first[5] + then[4],
		then[1]*first[4] + then[3]*first[5] + then[5],
	}
}

// ParseTransform parses the value of a transform attribute. An empty
// string gives the identity.
func ParseTransform(s string) (matrix.Matrix, error) {
	m := matrix.Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		closing := strings.IndexByte(rest, ')')
		if open < 0 || closing < open {
			return matrix.Identity, fmt.Errorf("svg: invalid transform %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseNumberList(rest[open+1 : closing])
		if err != nil {
			return matrix.Identity, fmt.Errorf("svg: transform %q: %w", s, err)
		}
		t, err := transformFunc(name, args)
		if err != nil {
			return matrix.Identity, fmt.Errorf("svg: transform %q: %w", s, err)
		}
		// the rightmost transform in the list is applied first
		m = Concat(t, m)
		rest = strings.TrimLeft(rest[closing+1:], " \t\r\n,")
	}
	return m, nil
}

func transformFunc(name string, a []float64) (matrix.Matrix, error) {
	switch {
	case name == "matrix" && len(a) == 6:
		return matrix.Matrix{a[0], a[1], a[2], a[3], a[4], a[5]}, nil
	case name == "translate" && len(a) == 1:
		return matrix.Matrix{1, 0, 0, 1, a[0], 0}, nil
	case name == "translate" && len(a) == 2:
		return matrix.Matrix{1, 0, 0, 1, a[0], a[1]}, nil
	case name == "scale" && len(a) == 1:
		return matrix.Matrix{a[0], 0, 0, a[0], 0, 0}, nil
	case name == "scale" && len(a) == 2:
		return matrix.Matrix{a[0], 0, 0, a[1], 0, 0}, nil
	case name == "rotate" && (len(a) == 1 || len(a) == 3):
		sin, cos := math.Sincos(a[0] * math.Pi / 180)
		r := matrix.Matrix{cos, sin, -sin, cos, 0, 0}
		if len(a) == 3 {
			toOrigin := matrix.Matrix{1, 0, 0, 1, -a[1], -a[2]}
			back := matrix.Matrix{1, 0, 0, 1, a[1], a[2]}
			r = Concat(Concat(toOrigin, r), back)
		}
		return r, nil
	case name == "skewX" && len(a) == 1:
		return matrix.Matrix{1, 0, math.Tan(a[0] * math.Pi / 180), 1, 0, 0}, nil
	case name == "skewY" && len(a) == 1:
		return matrix.Matrix{1, math.Tan(a[0] * math.Pi / 180), 0, 1, 0, 0}, nil
	}
	return matrix.Identity, fmt.Errorf("unsupported %s with %d arguments", name, len(a))
}

// parseNumberList parses numbers separated by white space and/or commas.
func parseNumberList(s string) ([]float64, error) {
	p := &pathParser{s: s}
	var res []float64
	p.skipSep()
	for p.pos < len(p.s) {
		x, err := p.number()
		if err != nil {
			return nil, err
		}
		res = append(res, x)
		p.skipSep()
	}
	return res, nil
}

// ParseViewBox parses a viewBox attribute into origin and size.
func ParseViewBox(s string) (minX, minY, width, height float64, err error) {
	v, err := parseNumberList(s)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("svg: viewBox %q: %w", s, err)
	}
	if len(v) != 4 || v[2] <= 0 || v[3] <= 0 {
		return 0, 0, 0, 0, fmt.Errorf("svg: invalid viewBox %q", s)
	}
	return v[0], v[1], v[2], v[3], nil
}
