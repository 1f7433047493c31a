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
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"seehuhn.de/go/strokeorder"
)

// MaxBodySize is the largest accepted request body, in bytes.
const MaxBodySize = 64 << 10

// Renderer produces the PNG image for a request.
type Renderer interface {
	Render(ctx context.Context, req strokeorder.Request) ([]byte, error)
}

// request is the JSON body of a POST request.
type request struct {
	Chars *string `json:"chars"`
	Theme string  `json:"theme"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Handler serves diagram requests.
type Handler struct {
	renderer Renderer
	token    []byte
	log      *slog.Logger
	mux      *http.ServeMux
}

// NewHandler returns a handler which answers requests carrying the given
// bearer token using r. An empty token rejects every request.
func NewHandler(r Renderer, token string, log *slog.Logger) *Handler {
	if log == nil {
		log = strokeorder.Logger()
	}
	h := &Handler{
		renderer: r,
		token:    []byte(token),
		log:      log,
		mux:      http.NewServeMux(),
	}
	h.mux.HandleFunc("POST /{$}", h.serveDiagram)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if v := recover(); v != nil {
			if v == http.ErrAbortHandler {
				panic(v)
			}
			h.log.ErrorContext(r.Context(), "panic while serving request",
				slog.String("path", r.URL.Path),
				slog.Any("panic", v))
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
	}()
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) serveDiagram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	if !h.authorized(r) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, err := decodeRequest(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, err := h.renderer.Render(ctx, req)
	switch {
	case errors.Is(err, strokeorder.ErrGlyphNotFound):
		h.log.WarnContext(ctx, "glyph not found", slog.String("chars", req.Chars))
		writeError(w, http.StatusNotFound, "Not Found")
		return
	case errors.Is(err, strokeorder.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.log.ErrorContext(ctx, "rendering failed",
			slog.String("chars", req.Chars),
			slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", fmt.Sprint(len(img)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)

	h.log.DebugContext(ctx, "served diagram",
		slog.String("chars", req.Chars),
		slog.String("theme", req.Theme.String()),
		slog.Duration("elapsed", time.Since(start)))
}

// authorized reports whether r carries the configured bearer token.
func (h *Handler) authorized(r *http.Request) bool {
	if len(h.token) == 0 {
		return false
	}
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), h.token) == 1
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (strokeorder.Request, error) {
	var body request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err := dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return strokeorder.Request{}, errors.New("request body too large")
		}
		return strokeorder.Request{}, fmt.Errorf("invalid JSON: %v", err)
	}
	if body.Chars == nil {
		return strokeorder.Request{}, errors.New("missing field \"chars\"")
	}
	if _, err := strokeorder.ValidateChars(*body.Chars); err != nil {
		return strokeorder.Request{}, err
	}
	theme, err := strokeorder.ParseTheme(body.Theme)
	if err != nil {
		return strokeorder.Request{}, err
	}
	return strokeorder.Request{Chars: *body.Chars, Theme: theme}, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}
