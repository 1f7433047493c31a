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

// Package kanjivg turns KanjiVG stroke order documents into composite
// diagrams.
//
// A KanjiVG document contains, among other things, one group with the
// stroke outlines (id "kvg:StrokePaths_<hex>") and one group with the
// stroke numbers (id "kvg:StrokeNumbers_<hex>"). [Select] extracts these
// groups, [Recolor] adapts their styles to a color scheme and [Compose]
// places the groups of up to three characters side by side in a single
// document. [Fetcher] retrieves the documents over HTTP.
package kanjivg
