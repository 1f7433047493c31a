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

// Package logging holds the logger shared by the packages of this
// module. By default, all records are discarded.
package logging

import (
	"log/slog"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

var discard = slog.New(slog.DiscardHandler)

func init() {
	current.Store(discard)
}

// Set replaces the shared logger. Passing nil restores the default,
// which discards everything.
func Set(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	current.Store(l)
}

// Get returns the shared logger.
func Get() *slog.Logger {
	return current.Load()
}
