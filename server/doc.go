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

// Package server provides the HTTP interface to the diagram engine.
//
// The service has a single endpoint. A POST request to "/" with a bearer
// token and a JSON body
//
//	{"chars": "一二", "theme": "dark"}
//
// is answered with a PNG image. Errors are reported as JSON objects with
// a single "error" field: 400 for invalid requests, 401 for a missing or
// wrong token, 404 if a character has no stroke order data and 500 for
// everything else.
package server
