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
	"bytes"
	"io"

	"github.com/beevik/etree"
)

// Marshal returns the markup for the tree rooted at e.
func Marshal(e *Element) []byte {
	buf := &bytes.Buffer{}
	// writes to a bytes.Buffer cannot fail
	_, _ = e.WriteTo(buf)
	return buf.Bytes()
}

// WriteTo writes the markup for the tree rooted at e to w. Elements
// without children are written as empty-element tags. No XML declaration
// is emitted.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	doc := etree.NewDocument()
	doc.SetRoot(toTree(e))
	return doc.WriteTo(w)
}

// toTree converts e and its descendants to an etree element.
func toTree(e *Element) *etree.Element {
	el := etree.NewElement(e.Name)
	for _, a := range e.Attrs {
		el.CreateAttr(a.Name, a.Value)
	}
	for _, c := range e.Children {
		switch c := c.(type) {
		case *Element:
			el.AddChild(toTree(c))
		case Text:
			el.CreateText(string(c))
		}
	}
	return el
}
