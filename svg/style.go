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

import "strings"

// Style is an inline style declaration list, as found in a style
// attribute. Keys keep the position of their first occurrence.
//
// The zero value is an empty style, ready to use.
type Style struct {
	keys   []string
	values map[string]string
}

// ParseStyle parses a list of "key:value" declarations separated by
// semicolons. White space around declarations, keys and values is
// removed. Only the first colon of a declaration separates key from
// value. A later declaration for the same key replaces the value of the
// earlier one. Empty declarations, declarations without a colon and
// declarations with an empty key are ignored.
func ParseStyle(s string) *Style {
	st := &Style{}
	for decl := range strings.SplitSeq(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		st.Set(key, strings.TrimSpace(value))
	}
	return st
}

// Get returns the value for key.
func (s *Style) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set sets the value for key. A key which is already present keeps its
// position.
func (s *Style) Set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Keys returns the keys in declaration order.
func (s *Style) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of declarations.
func (s *Style) Len() int {
	return len(s.keys)
}

// String returns the declarations as "key:value" pairs joined by
// semicolons, without a trailing semicolon.
func (s *Style) String() string {
	var b strings.Builder
	for i, k := range s.keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(s.values[k])
	}
	return b.String()
}
