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
	"strings"

	"github.com/beevik/etree"
)

// ErrMalformed is returned (wrapped) when a document is not well-formed
// markup.
var ErrMalformed = errors.New("svg: malformed document")

// Parse reads a document and returns its root element.
//
// Comments, processing instructions and directives (including a DOCTYPE
// with an internal subset) are dropped, as is character data that
// consists only of white space. Adjacent runs of character data are
// merged. Namespace prefixes are not resolved: element and attribute
// names are stored as written.
func Parse(data []byte) (*Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var root *etree.Element
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if root != nil {
				return nil, fmt.Errorf("%w: more than one root element", ErrMalformed)
			}
			root = t
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return nil, fmt.Errorf("%w: text outside the root element", ErrMalformed)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return fromTree(root), nil
}

// fromTree converts an etree element and its descendants.
func fromTree(src *etree.Element) *Element {
	el := &Element{
		Name:  src.FullTag(),
		Attrs: make([]Attr, 0, len(src.Attr)),
	}
	for _, a := range src.Attr {
		el.Set(a.FullKey(), a.Value)
	}

	for _, tok := range src.Child {
		switch t := tok.(type) {
		case *etree.Element:
			el.Children = append(el.Children, fromTree(t))
		case *etree.CharData:
			if strings.TrimSpace(t.Data) == "" {
				continue
			}
			// merge with a preceding text run, e.g. text split by a comment
			if n := len(el.Children); n > 0 {
				if prev, ok := el.Children[n-1].(Text); ok {
					el.Children[n-1] = prev + Text(t.Data)
					continue
				}
			}
			el.Children = append(el.Children, Text(t.Data))
		}
	}
	return el
}
