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
	"fmt"
	"image/color"

	"seehuhn.de/go/strokeorder/kanjivg"
)

// Theme selects the colors of a diagram.
type Theme int

// The supported themes. Light is the default.
const (
	Light Theme = iota
	Dark
)

// ParseTheme converts a theme name into a Theme. The empty string gives
// Light.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "", "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("%w: unknown theme %q", ErrInvalidRequest, s)
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Colors returns the colors for the stroke and stroke number groups.
func (t Theme) Colors() kanjivg.Colors {
	if t == Dark {
		return kanjivg.Colors{Strokes: "#ffffff", Numbers: "#c8c8c8"}
	}
	return kanjivg.Colors{Strokes: "#000000", Numbers: "#808080"}
}

// Background returns the opaque background color.
func (t Theme) Background() color.Gray {
	if t == Dark {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 0xff}
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Theme) UnmarshalText(text []byte) error {
	th, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = th
	return nil
}
