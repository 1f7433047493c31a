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

// Package strokeorder draws stroke order diagrams for CJK characters.
//
// For each of one to three characters, the KanjiVG document is fetched,
// its stroke and stroke number groups are recolored for a light or dark
// background, and the groups are placed side by side in one document.
// The document is then rasterized into a PNG image, with the stroke
// numbers drawn in an embedded font.
//
// An [Engine] holds the resources which are shared between requests:
//
//	e := strokeorder.New(strokeorder.Config{})
//	png, err := e.Render(ctx, strokeorder.Request{Chars: "一二三", Theme: strokeorder.Dark})
//
// Errors can be classified using [errors.Is] with [ErrInvalidRequest],
// [ErrGlyphNotFound], [ErrMalformedSource] and [ErrRender].
package strokeorder
