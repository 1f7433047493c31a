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
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
)

func TestParseTransform(t *testing.T) {
	cases := []struct {
		in   string
		want matrix.Matrix
	}{
		{"", matrix.Identity},
		{"translate(109,0)", matrix.Matrix{1, 0, 0, 1, 109, 0}},
		{"translate(5)", matrix.Matrix{1, 0, 0, 1, 5, 0}},
		{"matrix(1 0 0 1 4.25 54.13)", matrix.Matrix{1, 0, 0, 1, 4.25, 54.13}},
		{"scale(2)", matrix.Matrix{2, 0, 0, 2, 0, 0}},
		{"scale(2,3)", matrix.Matrix{2, 0, 0, 3, 0, 0}},
		{"rotate(90)", matrix.Matrix{0, 1, -1, 0, 0, 0}},
		{"rotate(180 5 5)", matrix.Matrix{-1, 0, 0, -1, 10, 10}},
		// scale is applied first, then the translation
		{"translate(10,20) scale(2)", matrix.Matrix{2, 0, 0, 2, 10, 20}},
		{"scale(2), translate(10,20)", matrix.Matrix{2, 0, 0, 2, 20, 40}},
	}
	for _, tc := range cases {
		got, err := ParseTransform(tc.in)
		if err != nil {
			t.Errorf("ParseTransform(%q): %v", tc.in, err)
			continue
		}
		for i := range got {
			if math.Abs(got[i]-tc.want[i]) > 1e-9 {
				t.Errorf("ParseTransform(%q) = %v, want %v", tc.in, got, tc.want)
				break
			}
		}
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, in := range []string{
		"translate(1,2",
		"frobnicate(1)",
		"matrix(1 2 3)",
		"scale(x)",
	} {
		if _, err := ParseTransform(in); err == nil {
			t.Errorf("ParseTransform(%q) succeeded", in)
		}
	}
}

func TestConcat(t *testing.T) {
	scale := matrix.Matrix{2, 0, 0, 2, 0, 0}
	shift := matrix.Matrix{1, 0, 0, 1, 3, 0}
	m := Concat(scale, shift)
	// (1,1) -> (2,2) -> (5,2)
	x := m[0]*1 + m[2]*1 + m[4]
	y := m[1]*1 + m[3]*1 + m[5]
	if x != 5 || y != 2 {
		t.Errorf("got (%g,%g), want (5,2)", x, y)
	}
}

func TestParseViewBox(t *testing.T) {
	x, y, w, h, err := ParseViewBox("0 0 327 109")
	if err != nil {
		t.Fatal(err)
	}
	if x != 0 || y != 0 || w != 327 || h != 109 {
		t.Errorf("got %g %g %g %g", x, y, w, h)
	}
	for _, in := range []string{"0 0 0 109", "0 0 10", "a b c d"} {
		if _, _, _, _, err := ParseViewBox(in); err == nil {
			t.Errorf("ParseViewBox(%q) succeeded", in)
		}
	}
}

func TestParsePaint(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"none", "none"},
		{"#000000", "#000000"},
		{"#FFF", "#ffffff"},
		{"#c8c8c8", "#c8c8c8"},
		{"rgb(128, 128, 128)", "#808080"},
		{"White", "#ffffff"},
		{"gray", "#808080"},
		{"darkgray", "#a9a9a9"},
		{"lightgrey", "#d3d3d3"},
		{"DimGray", "#696969"},
		{"orange", "#ffa500"},
	}
	for _, tc := range cases {
		p, err := ParsePaint(tc.in)
		if err != nil {
			t.Errorf("ParsePaint(%q): %v", tc.in, err)
			continue
		}
		if got := p.Hex(); got != tc.want {
			t.Errorf("ParsePaint(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	for _, in := range []string{"#12", "#zzzzzz", "rgb(1,2)", "chartreuse-ish", "url(#g)"} {
		if _, err := ParsePaint(in); err == nil {
			t.Errorf("ParsePaint(%q) succeeded", in)
		}
	}
}
