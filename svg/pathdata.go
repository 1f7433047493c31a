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
	"errors"
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ParsePathData parses the value of a path element's d attribute.
// All commands of SVG 1.1 are supported; elliptical arcs are converted
// to cubic Bézier curves. Coordinates are returned in user space.
func ParsePathData(d string) (*path.Data, error) {
	p := &pathParser{s: d, out: &path.Data{}}
	if err := p.parse(); err != nil {
		return nil, fmt.Errorf("svg: path data at offset %d: %w", p.pos, err)
	}
	return p.out, nil
}

type pathParser struct {
	s   string
	pos int
	out *path.Data

	cur, start vec.Vec2
	// ctrl is the last control point of the previous segment, used by the
	// S/s and T/t shorthands; ctrlKind records which kind set it.
	ctrl     vec.Vec2
	ctrlKind byte
}

func (p *pathParser) parse() error {
	var prev byte
	p.skipSep()
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		cmd := c
		if isPathCommand(c) {
			p.pos++
		} else {
			switch prev {
			case 0, 'Z', 'z':
				return fmt.Errorf("unexpected %q", c)
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			default:
				cmd = prev
			}
		}
		if prev == 0 && cmd != 'M' && cmd != 'm' {
			return fmt.Errorf("path must start with a moveto, not %q", cmd)
		}
		if err := p.command(cmd); err != nil {
			return err
		}
		prev = cmd
		p.skipSep()
	}
	return nil
}

func (p *pathParser) command(cmd byte) error {
	rel := cmd >= 'a'

	// a segment after closepath starts a new subpath at the old start
	if n := len(p.out.Cmds); n > 0 && p.out.Cmds[n-1] == path.CmdClose {
		switch cmd {
		case 'M', 'm', 'Z', 'z':
		default:
			p.moveTo(p.start)
		}
	}

	origin := vec.Vec2{}
	if rel {
		origin = p.cur
	}

	switch cmd {
	case 'M', 'm':
		pt, err := p.point(origin)
		if err != nil {
			return err
		}
		p.moveTo(pt)
		p.ctrlKind = 0

	case 'L', 'l':
		pt, err := p.point(origin)
		if err != nil {
			return err
		}
		p.lineTo(pt)
		p.ctrlKind = 0

	case 'H', 'h':
		x, err := p.number()
		if err != nil {
			return err
		}
		p.lineTo(vec.Vec2{X: origin.X + x, Y: p.cur.Y})
		p.ctrlKind = 0

	case 'V', 'v':
		y, err := p.number()
		if err != nil {
			return err
		}
		p.lineTo(vec.Vec2{X: p.cur.X, Y: origin.Y + y})
		p.ctrlKind = 0

	case 'C', 'c':
		pts, err := p.points(origin, 3)
		if err != nil {
			return err
		}
		p.cubeTo(pts[0], pts[1], pts[2])

	case 'S', 's':
		pts, err := p.points(origin, 2)
		if err != nil {
			return err
		}
		c1 := p.cur
		if p.ctrlKind == 'C' {
			c1 = p.cur.Mul(2).Sub(p.ctrl)
		}
		p.cubeTo(c1, pts[0], pts[1])

	case 'Q', 'q':
		pts, err := p.points(origin, 2)
		if err != nil {
			return err
		}
		p.quadTo(pts[0], pts[1])

	case 'T', 't':
		pt, err := p.point(origin)
		if err != nil {
			return err
		}
		c := p.cur
		if p.ctrlKind == 'Q' {
			c = p.cur.Mul(2).Sub(p.ctrl)
		}
		p.quadTo(c, pt)

	case 'A', 'a':
		if err := p.arc(origin); err != nil {
			return err
		}
		p.ctrlKind = 0

	case 'Z', 'z':
		p.out.Cmds = append(p.out.Cmds, path.CmdClose)
		p.cur = p.start
		p.ctrlKind = 0

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (p *pathParser) moveTo(pt vec.Vec2) {
	p.out.Cmds = append(p.out.Cmds, path.CmdMoveTo)
	p.out.Coords = append(p.out.Coords, pt)
	p.cur = pt
	p.start = pt
}

func (p *pathParser) lineTo(pt vec.Vec2) {
	p.out.Cmds = append(p.out.Cmds, path.CmdLineTo)
	p.out.Coords = append(p.out.Coords, pt)
	p.cur = pt
}

func (p *pathParser) quadTo(c, pt vec.Vec2) {
	p.out.Cmds = append(p.out.Cmds, path.CmdQuadTo)
	p.out.Coords = append(p.out.Coords, c, pt)
	p.cur = pt
	p.ctrl = c
	p.ctrlKind = 'Q'
}

func (p *pathParser) cubeTo(c1, c2, pt vec.Vec2) {
	p.out.Cmds = append(p.out.Cmds, path.CmdCubeTo)
	p.out.Coords = append(p.out.Coords, c1, c2, pt)
	p.cur = pt
	p.ctrl = c2
	p.ctrlKind = 'C'
}

// arc reads the arguments of an elliptical arc command and appends the
// arc as a sequence of cubic Bézier curves, following the endpoint to
// center conversion in appendix F.6 of the SVG 1.1 specification.
func (p *pathParser) arc(origin vec.Vec2) error {
	rx, err := p.number()
	if err != nil {
		return err
	}
	ry, err := p.number()
	if err != nil {
		return err
	}
	phiDeg, err := p.number()
	if err != nil {
		return err
	}
	large, err := p.flag()
	if err != nil {
		return err
	}
	sweep, err := p.flag()
	if err != nil {
		return err
	}
	end, err := p.point(origin)
	if err != nil {
		return err
	}

	start := p.cur
	rx, ry = math.Abs(rx), math.Abs(ry)
	if start == end {
		return nil
	}
	if rx == 0 || ry == 0 {
		p.lineTo(end)
		return nil
	}

	phi := phiDeg * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// step 1: compute (x1', y1')
	dx, dy := (start.X-end.X)/2, (start.Y-end.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// scale up radii which are too small
	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// step 2: compute (cx', cy')
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx

	// step 3: compute (cx, cy)
	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2

	// step 4: start angle and sweep
	theta1 := math.Atan2((y1-cyp)/ry, (x1-cxp)/rx)
	theta2 := math.Atan2((-y1-cyp)/ry, (-x1-cxp)/rx)
	delta := theta2 - theta1
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	n = max(n, 1)
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	onEllipse := func(theta float64) (pt, deriv vec.Vec2) {
		sin, cos := math.Sincos(theta)
		pt = vec.Vec2{
			X: cx + rx*cos*cosPhi - ry*sin*sinPhi,
			Y: cy + rx*cos*sinPhi + ry*sin*cosPhi,
		}
		deriv = vec.Vec2{
			X: -rx*sin*cosPhi - ry*cos*sinPhi,
			Y: -rx*sin*sinPhi + ry*cos*cosPhi,
		}
		return pt, deriv
	}

	theta := theta1
	p0, d0 := onEllipse(theta)
	for i := range n {
		theta += step
		p3, d3 := onEllipse(theta)
		if i == n-1 {
			p3 = end
		}
		p.cubeTo(p0.Add(d0.Mul(k)), p3.Sub(d3.Mul(k)), p3)
		p0, d0 = p3, d3
	}
	p.ctrlKind = 0
	return nil
}

func (p *pathParser) point(origin vec.Vec2) (vec.Vec2, error) {
	x, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: origin.X + x, Y: origin.Y + y}, nil
}

func (p *pathParser) points(origin vec.Vec2, n int) ([]vec.Vec2, error) {
	res := make([]vec.Vec2, n)
	for i := range res {
		pt, err := p.point(origin)
		if err != nil {
			return nil, err
		}
		res[i] = pt
	}
	return res, nil
}

// number reads one number. A sign or a second decimal point ends the
// previous number, so "1-2" and "0.5.5" are two numbers each.
func (p *pathParser) number() (float64, error) {
	p.skipSep()
	start := p.pos
	if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
		p.pos++
	}
	digits := p.digits()
	if p.pos < len(p.s) && p.s[p.pos] == '.' {
		p.pos++
		digits += p.digits()
	}
	if digits == 0 {
		p.pos = start
		return 0, errExpectedNumber
	}
	if p.pos < len(p.s) && (p.s[p.pos] == 'e' || p.s[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
			p.pos++
		}
		if p.digits() == 0 {
			p.pos = mark
		}
	}
	return strconv.ParseFloat(p.s[start:p.pos], 64)
}

func (p *pathParser) digits() int {
	n := 0
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
		n++
	}
	return n
}

// flag reads an arc flag, which may be written without a separator.
func (p *pathParser) flag() (bool, error) {
	p.skipSep()
	if p.pos < len(p.s) {
		switch p.s[p.pos] {
		case '0':
			p.pos++
			return false, nil
		case '1':
			p.pos++
			return true, nil
		}
	}
	return false, errExpectedFlag
}

func (p *pathParser) skipSep() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			p.pos++
		default:
			return
		}
	}
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

var (
	errExpectedNumber = errors.New("expected number")
	errExpectedFlag   = errors.New("expected arc flag")
)
