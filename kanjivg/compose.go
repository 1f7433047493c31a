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
	"strconv"

	"seehuhn.de/go/strokeorder/svg"
)

// Unit is the width and height of one character cell, in the user units
// of the KanjiVG documents.
const Unit = 109

// Namespaces used in the composite document.
const (
	NamespaceSVG     = "http://www.w3.org/2000/svg"
	NamespaceKanjiVG = "http://kanjivg.tagaini.net"
)

// Composite is a diagram of several characters.
type Composite struct {
	Root *svg.Element

	// Width is the horizontal extent of the diagram in user units: Unit
	// times Count, or Unit if Count is zero.
	Width float64

	// Height is always Unit.
	Height float64

	// Count is the number of character cells.
	Count int
}

// Compose places the groups of each character in a cell of its own.
// Cell i is a new group translated by i*Unit horizontally, holding the
// elements of cells[i] in order. Cells are Unit wide, whatever their
// content, and a character without groups still takes up a cell.
//
// The elements of cells are referenced, not copied.
func Compose(cells [][]*svg.Element) *Composite {
	var extent float64
	wrappers := make([]svg.Node, 0, len(cells))
	for _, groups := range cells {
		w := svg.NewElement("g", "transform", "translate("+formatNumber(extent)+",0)")
		for _, g := range groups {
			w.Append(g)
		}
		wrappers = append(wrappers, w)
		extent += Unit
	}

	width := extent
	if width == 0 {
		width = Unit
	}

	root := svg.NewElement("svg",
		"xmlns", NamespaceSVG,
		"xmlns:kvg", NamespaceKanjiVG,
		"viewBox", "0 0 "+formatNumber(width)+" "+formatNumber(Unit),
	)
	root.Children = wrappers

	return &Composite{
		Root:   root,
		Width:  width,
		Height: Unit,
		Count:  len(cells),
	}
}

// Markup returns the serialized document.
func (c *Composite) Markup() []byte {
	return svg.Marshal(c.Root)
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
