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

// Package svg implements the small subset of SVG handling needed to
// recombine KanjiVG artwork: a node tree with ordered attributes, a
// parser and serializer for it, the inline style mini-language, and
// parsers for path data, transforms and paints.
//
// The tree is untyped beyond the element/text distinction.
// Qualified names such as "kvg:element" are kept exactly as written in
// the source, so that a parsed document can be written back without
// namespace rewriting.
package svg
