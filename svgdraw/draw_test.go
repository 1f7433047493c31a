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
	"errors"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/strokeorder/kanjivg"
	"seehuhn.de/go/strokeorder/raster"
	"seehuhn.de/go/strokeorder/svg"
	"seehuhn.de/go/strokeorder/testcases"
)

type op struct {
	stroke bool
	ctm    matrix.Matrix
	color  color.NRGBA
	rule   raster.FillRule
	style  raster.StrokeStyle
	cmds   int
}

type recorder struct {
	ops []op
}

func count(p path.Path) int {
	n := 0
	for range p {
		n++
	}
	return n
}

func (r *recorder) Fill(p path.Path, ctm matrix.Matrix, c color.NRGBA, rule raster.FillRule) {
	r.ops = append(r.ops, op{ctm: ctm, color: c, rule: rule, cmds: count(p)})
}

func (r *recorder) Stroke(p path.Path, ctm matrix.Matrix, c color.NRGBA, s raster.StrokeStyle) {
	r.ops = append(r.ops, op{stroke: true, ctm: ctm, color: c, style: s, cmds: count(p)})
}

func parse(t *testing.T, s string) *svg.Element {
	t.Helper()
	root, err := svg.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestDrawComposite(t *testing.T) {
	colors := kanjivg.Colors{Strokes: "#ffffff", Numbers: "#c8c8c8"}
	var cells [][]*svg.Element
	for _, r := range "一二" {
		var groups []*svg.Element
		for _, g := range kanjivg.Select(parse(t, testcases.Glyphs[r])) {
			groups = append(groups, kanjivg.Recolor(g, colors))
		}
		cells = append(cells, groups)
	}
	c := kanjivg.Compose(cells)

	rec := &recorder{}
	if err := Draw(c.Root, rec, nil); err != nil {
		t.Fatal(err)
	}

	// 一: one stroke and one number, 二: two strokes and two numbers
	var strokes, fills []op
	for _, o := range rec.ops {
		if o.stroke {
			strokes = append(strokes, o)
		} else {
			fills = append(fills, o)
		}
	}
	if len(strokes) != 3 || len(fills) != 3 {
		t.Fatalf("%d strokes and %d fills, want 3 and 3", len(strokes), len(fills))
	}

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	wantStyle := raster.StrokeStyle{Width: 3, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 4}
	for i, o := range strokes {
		if o.color != white {
			t.Errorf("stroke %d: color %v", i, o.color)
		}
		if o.style != wantStyle {
			t.Errorf("stroke %d: style %+v", i, o.style)
		}
	}
	if strokes[0].ctm[4] != 0 || strokes[1].ctm[4] != 109 || strokes[2].ctm[4] != 109 {
		t.Errorf("stroke offsets %g, %g, %g", strokes[0].ctm[4], strokes[1].ctm[4], strokes[2].ctm[4])
	}

	gray := color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	for i, o := range fills {
		if o.color != gray {
			t.Errorf("number %d: color %v", i, o.color)
		}
		if o.cmds == 0 {
			t.Errorf("number %d: empty outline", i)
		}
	}
	// the first number of 二 is placed by matrix(1 0 0 1 18.50 28.50)
	if got := fills[1].ctm; math.Abs(got[4]-(109+18.5)) > 1e-9 || math.Abs(got[5]-28.5) > 1e-9 {
		t.Errorf("number position %v", got)
	}
}

func TestDrawCascade(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
<g fill="red" stroke="blue" style="fill:#00ff00" stroke-width="2">
	<path d="M0,0L10,0L10,10Z"/>
	<g style="stroke:none;fill-rule:evenodd">
		<path d="M0,0L1,1" fill="inherit"/>
	</g>
	<path d="M0,0L1,1" style="stroke-width:0"/>
</g>
</svg>`
	rec := &recorder{}
	if err := Draw(parse(t, doc), rec, nil); err != nil {
		t.Fatal(err)
	}
	if len(rec.ops) != 4 {
		t.Fatalf("%d operations, want 4", len(rec.ops))
	}
	green := color.NRGBA{G: 0xff, A: 0xff}
	if o := rec.ops[0]; o.stroke || o.color != green || o.rule != raster.NonZero {
		t.Errorf("first fill: %+v", o)
	}
	if o := rec.ops[1]; !o.stroke || o.color != (color.NRGBA{B: 0xff, A: 0xff}) || o.style.Width != 2 {
		t.Errorf("first stroke: %+v", o)
	}
	if o := rec.ops[2]; o.stroke || o.color != green || o.rule != raster.EvenOdd {
		t.Errorf("nested fill: %+v", o)
	}
	if o := rec.ops[3]; o.stroke {
		t.Errorf("zero-width stroke was painted: %+v", o)
	}
}

func TestDrawColorKeywords(t *testing.T) {
	doc := `<svg><g fill="black" stroke="black">
	<path d="M0,0L1,0L1,1z" fill="darkgray" stroke="lightgrey"/>
</g></svg>`
	rec := &recorder{}
	if err := Draw(parse(t, doc), rec, nil); err != nil {
		t.Fatal(err)
	}
	if len(rec.ops) != 2 {
		t.Fatalf("%d operations, want 2", len(rec.ops))
	}
	if c := rec.ops[0].color; c != (color.NRGBA{R: 0xa9, G: 0xa9, B: 0xa9, A: 0xff}) {
		t.Errorf("fill %v, want darkgray", c)
	}
	if c := rec.ops[1].color; c != (color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}) {
		t.Errorf("stroke %v, want lightgrey", c)
	}
}

func TestDrawDefaults(t *testing.T) {
	rec := &recorder{}
	err := Draw(parse(t, `<svg><path d="M0,0L1,0L1,1z"/></svg>`), rec, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.ops) != 1 || rec.ops[0].stroke || rec.ops[0].color != (color.NRGBA{A: 0xff}) {
		t.Errorf("default paint: %+v", rec.ops)
	}
	if rec.ops[0].ctm != matrix.Identity {
		t.Errorf("default CTM %v", rec.ops[0].ctm)
	}
}

func TestDrawTransforms(t *testing.T) {
	doc := `<svg><g transform="translate(10,20)"><path transform="scale(2)" d="M0,0L1,1"/></g></svg>`
	rec := &recorder{}
	opt := &Options{CTM: matrix.Matrix{3, 0, 0, 3, 0, 0}}
	if err := Draw(parse(t, doc), rec, opt); err != nil {
		t.Fatal(err)
	}
	// (1,1) -> (2,2) -> (12,22) -> (36,66)
	m := rec.ops[0].ctm
	x := m[0] + m[2] + m[4]
	y := m[1] + m[3] + m[5]
	if x != 36 || y != 66 {
		t.Errorf("(1,1) maps to (%g,%g), want (36,66)", x, y)
	}
}

func TestDrawTextAnchor(t *testing.T) {
	var pos [3]float64
	for i, anchor := range []string{"start", "middle", "end"} {
		doc := `<svg><text x="50" y="20" font-size="10" text-anchor="` + anchor + `">12</text></svg>`
		rec := &recorder{}
		if err := Draw(parse(t, doc), rec, nil); err != nil {
			t.Fatal(err)
		}
		if len(rec.ops) != 1 {
			t.Fatalf("%s: %d operations", anchor, len(rec.ops))
		}
		pos[i] = rec.ops[0].ctm[4]
		if rec.ops[0].ctm[5] != 20 {
			t.Errorf("%s: baseline at %g", anchor, rec.ops[0].ctm[5])
		}
	}
	if pos[0] != 50 {
		t.Errorf("start anchor at %g", pos[0])
	}
	if !(pos[2] < pos[1] && pos[1] < pos[0]) {
		t.Errorf("anchor positions %v", pos)
	}
	if math.Abs((pos[0]-pos[1])*2-(pos[0]-pos[2])) > 1e-9 {
		t.Errorf("middle is not halfway: %v", pos)
	}
}

func TestDrawSkipsUnknown(t *testing.T) {
	doc := `<svg><defs><path d="M0,0L1,1"/></defs><rect width="5" height="5"/><g><text> </text></g></svg>`
	rec := &recorder{}
	if err := Draw(parse(t, doc), rec, nil); err != nil {
		t.Fatal(err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("%d operations for unsupported content", len(rec.ops))
	}
}

func TestDrawErrors(t *testing.T) {
	rec := &recorder{}
	if err := Draw(parse(t, `<html/>`), rec, nil); !errors.Is(err, ErrUnsupported) {
		t.Errorf("non-svg root: %v", err)
	}
	if err := Draw(parse(t, `<svg><path d="L1,1"/></svg>`), rec, nil); err == nil {
		t.Error("invalid path data accepted")
	}
	if err := Draw(parse(t, `<svg><g transform="spin(3)"/></svg>`), rec, nil); err == nil {
		t.Error("invalid transform accepted")
	}
}
