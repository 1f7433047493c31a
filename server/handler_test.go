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

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seehuhn.de/go/strokeorder"
	"seehuhn.de/go/strokeorder/kanjivg"
	"seehuhn.de/go/strokeorder/testcases"
)

const testToken = "s3cret"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	glyphs := httptest.NewServer(&testcases.Handler{})
	t.Cleanup(glyphs.Close)

	e := strokeorder.New(strokeorder.Config{
		Source: &kanjivg.Fetcher{BaseURL: glyphs.URL, Client: glyphs.Client()},
	})
	return NewHandler(e, testToken, nil)
}

func post(h http.Handler, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body.Error
}

func TestUnauthorized(t *testing.T) {
	h := newTestHandler(t)

	for _, token := range []string{"", "wrong", testToken + "x"} {
		w := post(h, token, `{"chars":"一"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("token %q: status %d, want 401", token, w.Code)
			continue
		}
		if msg := errorMessage(t, w); msg != "Unauthorized" {
			t.Errorf("token %q: error %q", token, msg)
		}
		if w.Header().Get("WWW-Authenticate") != "Bearer" {
			t.Errorf("token %q: missing WWW-Authenticate header", token)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"chars":"一"}`))
	req.Header.Set("Authorization", "Basic "+testToken)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("basic auth: status %d, want 401", w.Code)
	}
}

func TestBadRequest(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"not json", `chars=一`},
		{"truncated", `{"chars":"一"`},
		{"missing chars", `{"theme":"dark"}`},
		{"empty chars", `{"chars":""}`},
		{"four chars", `{"chars":"一二三四"}`},
		{"wrong type", `{"chars":42}`},
		{"bad theme", `{"chars":"一","theme":"sepia"}`},
		{"too large", `{"chars":"一","pad":"` + strings.Repeat("x", MaxBodySize) + `"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := post(h, testToken, c.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status %d, want 400", w.Code)
			}
			if msg := errorMessage(t, w); msg == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	h := newTestHandler(t)

	body := `{"chars":"一` + string(testcases.Missing) + `"}`
	w := post(h, testToken, body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Not Found" {
		t.Errorf("error %q", msg)
	}
}

func TestInternalError(t *testing.T) {
	h := newTestHandler(t)

	w := post(h, testToken, `{"chars":"`+string(testcases.Malformed)+`"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Internal Server Error" {
		t.Errorf("error %q", msg)
	}
}

func TestPanic(t *testing.T) {
	h := NewHandler(panicRenderer{}, testToken, nil)

	w := post(h, testToken, `{"chars":"一"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", w.Code)
	}
}

func TestSuccess(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		body string
		w, h int
	}{
		{`{"chars":"一"}`, 512, 512},
		{`{"chars":"一二","theme":"dark"}`, 654, 327},
		{`{"chars":"𠀋","theme":"light","extra":true}`, 512, 512},
	}
	for _, c := range cases {
		w := post(h, testToken, c.body)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status %d, body %q", c.body, w.Code, w.Body.String())
			continue
		}
		if ct := w.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("%s: Content-Type = %q", c.body, ct)
		}
		img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
		if err != nil {
			t.Errorf("%s: %v", c.body, err)
			continue
		}
		if b := img.Bounds(); b.Dx() != c.w || b.Dy() != c.h {
			t.Errorf("%s: got %dx%d, want %dx%d", c.body, b.Dx(), b.Dy(), c.w, c.h)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status %d, want 405", w.Code)
	}
}

func TestRendererErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{strokeorder.ErrGlyphNotFound, http.StatusNotFound},
		{strokeorder.ErrInvalidRequest, http.StatusBadRequest},
		{strokeorder.ErrRender, http.StatusInternalServerError},
		{strokeorder.ErrMalformedSource, http.StatusInternalServerError},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		h := NewHandler(errorRenderer{c.err}, testToken, nil)
		w := post(h, testToken, `{"chars":"一"}`)
		if w.Code != c.code {
			t.Errorf("%v: status %d, want %d", c.err, w.Code, c.code)
		}
	}
}

type errorRenderer struct{ err error }

func (r errorRenderer) Render(context.Context, strokeorder.Request) ([]byte, error) {
	return nil, r.err
}

type panicRenderer struct{}

func (panicRenderer) Render(context.Context, strokeorder.Request) ([]byte, error) {
	panic("boom")
}
