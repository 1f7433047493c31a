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

package kanjivg

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"seehuhn.de/go/strokeorder/internal/logging"
	"seehuhn.de/go/strokeorder/testcases"
)

func TestKey(t *testing.T) {
	cases := []struct {
		r    rune
		want string
	}{
		{'一', "04e00.svg"},
		{'二', "04e8c.svg"},
		{'𠀋', "2000b.svg"},
		{'a', "00061.svg"},
	}
	for _, tc := range cases {
		if got := Key(tc.r); got != tc.want {
			t.Errorf("Key(%q) = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestFetcherURL(t *testing.T) {
	f := &Fetcher{}
	if got, want := f.URL('一'), DefaultBaseURL+"/04e00.svg"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	f.BaseURL = "http://example.com/kanji/"
	if got, want := f.URL('一'), "http://example.com/kanji/04e00.svg"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFetch(t *testing.T) {
	h := &testcases.Handler{}
	srv := httptest.NewServer(h)
	defer srv.Close()

	f := &Fetcher{BaseURL: srv.URL + "/kanji", Client: srv.Client()}
	ctx := context.Background()

	body, err := f.Fetch(ctx, '一')
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != testcases.Glyphs['一'] {
		t.Error("wrong document")
	}

	_, err = f.Fetch(ctx, testcases.Missing)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing glyph: got %v, want ErrNotFound", err)
	}
}

func TestFetchAll(t *testing.T) {
	h := &testcases.Handler{}
	srv := httptest.NewServer(h)
	defer srv.Close()
	f := &Fetcher{BaseURL: srv.URL, Client: srv.Client()}
	ctx := context.Background()

	chars := []rune("三一𠀋")
	docs, err := f.FetchAll(ctx, chars)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents", len(docs))
	}
	for i, r := range chars {
		if string(docs[i]) != testcases.Glyphs[r] {
			t.Errorf("document %d is not the one for %c", i, r)
		}
	}
	if n := h.Requests(); n != 3 {
		t.Errorf("%d requests for 3 characters", n)
	}

	_, err = f.FetchAll(ctx, []rune{'一', testcases.Missing, '二'})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

// TestFetchAllWaits checks that a missing glyph does not cancel the other
// requests, and that results stay in input order when the responses
// arrive in reverse order.
func TestFetchAllWaits(t *testing.T) {
	var finished atomic.Int32
	delays := map[string]time.Duration{
		"/04e00.svg": 60 * time.Millisecond,
		"/04e8c.svg": 30 * time.Millisecond,
	}
	inner := &testcases.Handler{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delays[r.URL.Path])
		inner.ServeHTTP(w, r)
		finished.Add(1)
	}))
	defer srv.Close()
	f := &Fetcher{BaseURL: srv.URL, Client: srv.Client()}

	docs, err := f.FetchAll(context.Background(), []rune("一二三"))
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range []rune("一二三") {
		if string(docs[i]) != testcases.Glyphs[r] {
			t.Errorf("document %d is not the one for %c", i, r)
		}
	}

	finished.Store(0)
	_, err = f.FetchAll(context.Background(), []rune{testcases.Missing, '一'})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if n := finished.Load(); n != 2 {
		t.Errorf("FetchAll returned after %d of 2 requests", n)
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(&testcases.Handler{})
	url := srv.URL
	srv.Close()

	f := &Fetcher{BaseURL: url}
	_, err := f.FetchAll(context.Background(), []rune("一"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("transport failure reported as not found")
	}
}

func TestFetchSharedLogger(t *testing.T) {
	srv := httptest.NewServer(&testcases.Handler{})
	defer srv.Close()

	buf := &bytes.Buffer{}
	logging.Set(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer logging.Set(nil)

	f := &Fetcher{BaseURL: srv.URL, Client: srv.Client()}
	if _, err := f.Fetch(context.Background(), '一'); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("key=04e00.svg")) {
		t.Errorf("fetch not logged, got %q", buf.String())
	}
}
