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

package testcases

import (
	"net/http"
	"path"
	"sync/atomic"
)

// Handler serves the documents in Glyphs, keyed by file name as returned
// by Key, from any directory. The document for Malformed is served with
// a success status. Everything else gets a 404 response.
type Handler struct {
	requests atomic.Int64
}

// Requests returns the number of requests served so far.
func (h *Handler) Requests() int64 {
	return h.requests.Load()
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.requests.Add(1)

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := path.Base(r.URL.Path)
	if name == Key(Malformed) {
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write([]byte(broken))
		return
	}
	for ch, src := range Glyphs {
		if Key(ch) == name {
			w.Header().Set("Content-Type", "image/svg+xml")
			_, _ = w.Write([]byte(src))
			return
		}
	}
	http.NotFound(w, r)
}
