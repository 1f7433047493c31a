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
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestParsePathData(t *testing.T) {
	cases := []struct {
		d      string
		cmds   []path.Command
		coords []vec.Vec2
	}{
		{
			d:      "M1,2L3,4",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo},
			coords: []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}},
		},
		{
			d:      "m1 2 3 4 h5 v-1 z",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose},
			coords: []vec.Vec2{{X: 1, Y: 2}, {X: 4, Y: 6}, {X: 9, Y: 6}, {X: 9, Y: 5}},
		},
		{
			d:      "M0,0c1,0,2,1,2,2s1,2,2,2",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo},
			coords: []vec.Vec2{{}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}},
		},
		{
			d:      "M0 0Q1 1 2 0T4 0",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdQuadTo, path.CmdQuadTo},
			coords: []vec.Vec2{{}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: -1}, {X: 4, Y: 0}},
		},
		{
			d:      "M10-20.5.5-1e1",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo},
			coords: []vec.Vec2{{X: 10, Y: -20.5}, {X: 0.5, Y: -10}},
		},
		{
			d:      "M0,0H2V2ZL1,1",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose, path.CmdMoveTo, path.CmdLineTo},
			coords: []vec.Vec2{{}, {X: 2, Y: 0}, {X: 2, Y: 2}, {}, {X: 1, Y: 1}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.d, func(t *testing.T) {
			data, err := ParsePathData(tc.d)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(data.Cmds, tc.cmds) {
				t.Errorf("commands %v, want %v", data.Cmds, tc.cmds)
			}
			if len(data.Coords) != len(tc.coords) {
				t.Fatalf("coords %v, want %v", data.Coords, tc.coords)
			}
			for i := range tc.coords {
				if !near(data.Coords[i], tc.coords[i]) {
					t.Errorf("coord %d: %v, want %v", i, data.Coords[i], tc.coords[i])
				}
			}
		})
	}
}

func TestParsePathDataKanjiVG(t *testing.T) {
	d := "M11,54.25c3.19,0.62,6.25,0.75,9.73,0.5c20.64-1.5,50.39-5.12,68.58-5.24c3.6-0.02,5.77,0.24,7.57,0.49"
	data, err := ParsePathData(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Cmds) != 4 {
		t.Fatalf("expected 4 commands, got %d", len(data.Cmds))
	}
	last := data.Coords[len(data.Coords)-1]
	want := vec.Vec2{X: 11 + 9.73 + 68.58 + 7.57, Y: 54.25 + 0.5 - 5.24 + 0.49}
	if !near(last, want) {
		t.Errorf("end point %v, want %v", last, want)
	}
}

func TestParsePathDataArc(t *testing.T) {
	// half circle of radius 10 from (0,0) to (20,0) through (10,10)
	data, err := ParsePathData("M0,0A10,10 0 0 1 20,0")
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Cmds) != 3 || data.Cmds[1] != path.CmdCubeTo || data.Cmds[2] != path.CmdCubeTo {
		t.Fatalf("commands %v", data.Cmds)
	}
	mid := data.Coords[3]
	if !near(mid, vec.Vec2{X: 10, Y: 10}) && !near(mid, vec.Vec2{X: 10, Y: -10}) {
		t.Errorf("arc midpoint %v not on the circle", mid)
	}
	if end := data.Coords[len(data.Coords)-1]; !near(end, vec.Vec2{X: 20, Y: 0}) {
		t.Errorf("arc end %v", end)
	}

	// compact flags
	if _, err := ParsePathData("M0,0a5,5,0,1020,0"); err != nil {
		t.Errorf("compact flags: %v", err)
	}
}

func TestParsePathDataErrors(t *testing.T) {
	for _, d := range []string{
		"L1,2",
		"M1",
		"M1,2L",
		"M1,2X3",
		"M0,0A1,1,0,2,0,3,3",
		"M0,0Z1,1",
	} {
		if _, err := ParsePathData(d); err == nil {
			t.Errorf("ParsePathData(%q) succeeded", d)
		}
	}
}

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
