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

package strokeorder

import (
	"errors"

	"seehuhn.de/go/strokeorder/kanjivg"
	"seehuhn.de/go/strokeorder/svg"
)

var (
	// ErrInvalidRequest indicates that a request has the wrong number of
	// characters or an unknown theme.
	ErrInvalidRequest = errors.New("strokeorder: invalid request")

	// ErrGlyphNotFound indicates that no document exists for at least one
	// of the requested characters.
	ErrGlyphNotFound = kanjivg.ErrNotFound

	// ErrMalformedSource indicates that a fetched document could not be
	// parsed.
	ErrMalformedSource = svg.ErrMalformed

	// ErrRender indicates that a composite document could not be turned
	// into an image.
	ErrRender = errors.New("strokeorder: rendering failed")
)
