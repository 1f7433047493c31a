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

import "slices"

// Node is an element or a run of character data in a document tree.
// The two implementations are *Element and Text.
type Node interface {
	isNode()
}

// Attr is a single attribute. Name is the qualified name as written in
// the source, for example "id" or "kvg:element".
type Attr struct {
	Name  string
	Value string
}

// Element is an element node. Attributes keep their source order and
// each name occurs at most once.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

// Text is a run of character data, with entities already decoded.
type Text string

func (*Element) isNode() {}
func (Text) isNode()     {}

// NewElement returns an element with the given name and attributes.
// Attributes are given as alternating name/value strings.
func NewElement(name string, attrs ...string) *Element {
	e := &Element{Name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		e.Set(attrs[i], attrs[i+1])
	}
	return e
}

// Get returns the value of the named attribute.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attr returns the value of the named attribute, or "" if it is absent.
func (e *Element) Attr(name string) string {
	v, _ := e.Get(name)
	return v
}

// Set sets the named attribute. An existing attribute keeps its position,
// a new one is appended.
func (e *Element) Set(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Append adds child nodes at the end of the child list.
func (e *Element) Append(children ...Node) {
	e.Children = append(e.Children, children...)
}

// ShallowCopy returns a new element with a private copy of the attribute
// list. The child slice is copied too, but the children themselves are
// shared with e.
func (e *Element) ShallowCopy() *Element {
	return &Element{
		Name:     e.Name,
		Attrs:    slices.Clone(e.Attrs),
		Children: slices.Clone(e.Children),
	}
}

// Elements returns the element children of e, in order.
func (e *Element) Elements() []*Element {
	var res []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			res = append(res, el)
		}
	}
	return res
}

// TextContent returns the concatenated character data of e and all its
// descendants.
func (e *Element) TextContent() string {
	var buf []byte
	var walk func(n Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case Text:
			buf = append(buf, n...)
		case *Element:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(e)
	return string(buf)
}

// LocalName returns the part of a qualified name after the prefix.
func LocalName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == ':' {
			return name[i+1:]
		}
	}
	return name
}
