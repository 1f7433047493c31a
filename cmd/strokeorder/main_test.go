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

package main

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/strokeorder/testcases"
)

func TestRun(t *testing.T) {
	srv := httptest.NewServer(&testcases.Handler{})
	defer srv.Close()
	dir := t.TempDir()

	magic := map[string][]byte{
		"png": []byte("\x89PNG"),
		"svg": []byte("<svg"),
		"pdf": []byte("%PDF-"),
	}
	for format, prefix := range magic {
		out := filepath.Join(dir, "out."+format)
		opt := &options{theme: "dark", format: format, out: out, baseURL: srv.URL}
		if err := run(context.Background(), "一二", opt); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, prefix) {
			t.Errorf("%s: unexpected output %q", format, data[:min(len(data), 16)])
		}
	}
}

func TestRunErrors(t *testing.T) {
	srv := httptest.NewServer(&testcases.Handler{})
	defer srv.Close()
	out := filepath.Join(t.TempDir(), "out.png")

	cases := []struct {
		chars string
		opt   options
	}{
		{"一二三四", options{theme: "light", format: "png"}},
		{"一", options{theme: "blue", format: "png"}},
		{"一", options{theme: "light", format: "gif"}},
		{string(testcases.Missing), options{theme: "light", format: "png"}},
	}
	for _, c := range cases {
		c.opt.out = out
		c.opt.baseURL = srv.URL
		if err := run(context.Background(), c.chars, &c.opt); err == nil {
			t.Errorf("%q %+v: no error", c.chars, c.opt)
		}
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("output written despite errors")
	}
}
