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

// Package fonts provides glyph outlines for drawing text.
//
// The outlines come from a single TrueType or OpenType font. No system
// fonts are consulted, so the same text always produces the same
// shapes.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Face is a parsed font. A Face is read-only after creation and can be
// used from several goroutines at once.
type Face struct {
	font *sfnt.Font
	upem float64
	ppem fixed.Int26_6

	buffers sync.Pool
}

// Parse parses a TrueType or OpenType font.
func Parse(data []byte) (*Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	upem := f.UnitsPerEm()
	if upem <= 0 {
		return nil, fmt.Errorf("fonts: invalid unitsPerEm %d", upem)
	}
	face := &Face{
		font: f,
		upem: float64(upem),
		// one pixel per font unit, so that outlines come out unscaled
		ppem: fixed.I(int(upem)),
	}
	face.buffers.New = func() any { return &sfnt.Buffer{} }
	return face, nil
}

var (
	defaultOnce sync.Once
	defaultFace *Face
)

// Default returns the bundled Go Regular font. The font is parsed on the
// first call.
func Default() *Face {
	defaultOnce.Do(func() {
		face, err := Parse(goregular.TTF)
		if err != nil {
			// the font is compiled in
			panic(err)
		}
		defaultFace = face
	})
	return defaultFace
}

// Name returns the family name of the font, or "" if the font has none.
func (f *Face) Name() string {
	buf := f.getBuffer()
	defer f.buffers.Put(buf)
	name, err := f.font.Name(buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Outline returns the outlines of the glyphs for s, set in a single line
// at the given font size. The baseline is at y=0 and the y axis points
// down, the way it does in SVG user space. The text starts at x=0 and
// advance is the total width of the line.
//
// Kerning is applied when the font has a kern table. Characters which
// are not in the font are drawn with the font's .notdef glyph.
func (f *Face) Outline(s string, size float64) (*path.Data, float64, error) {
	buf := f.getBuffer()
	defer f.buffers.Put(buf)

	scale := size / f.upem
	out := &path.Data{}
	x := 0.0
	var prev sfnt.GlyphIndex
	for i, r := range []rune(s) {
		gid, err := f.font.GlyphIndex(buf, r)
		if err != nil {
			return nil, 0, fmt.Errorf("fonts: glyph for %q: %w", r, err)
		}
		if i > 0 {
			if k, err := f.font.Kern(buf, prev, gid, f.ppem, font.HintingNone); err == nil {
				x += fixedToFloat64(k) * scale
			}
		}

		segs, err := f.font.LoadGlyph(buf, gid, f.ppem, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("fonts: outline for %q: %w", r, err)
		}
		appendSegments(out, segs, x, scale)

		adv, err := f.font.GlyphAdvance(buf, gid, f.ppem, font.HintingNone)
		if err != nil {
			return nil, 0, fmt.Errorf("fonts: advance for %q: %w", r, err)
		}
		x += fixedToFloat64(adv) * scale
		prev = gid
	}
	return out, x, nil
}

// appendSegments converts glyph segments to path commands. Every contour
// is closed explicitly.
func appendSegments(out *path.Data, segs sfnt.Segments, x, scale float64) {
	pt := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{
			X: x + fixedToFloat64(p.X)*scale,
			Y: fixedToFloat64(p.Y) * scale,
		}
	}

	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				out.Cmds = append(out.Cmds, path.CmdClose)
			}
			out.Cmds = append(out.Cmds, path.CmdMoveTo)
			out.Coords = append(out.Coords, pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			out.Cmds = append(out.Cmds, path.CmdLineTo)
			out.Coords = append(out.Coords, pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			out.Cmds = append(out.Cmds, path.CmdQuadTo)
			out.Coords = append(out.Coords, pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			out.Cmds = append(out.Cmds, path.CmdCubeTo)
			out.Coords = append(out.Coords, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		out.Cmds = append(out.Cmds, path.CmdClose)
	}
}

func (f *Face) getBuffer() *sfnt.Buffer {
	return f.buffers.Get().(*sfnt.Buffer)
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
