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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"seehuhn.de/go/strokeorder/internal/logging"
)

// DefaultBaseURL is the location of the KanjiVG documents used when
// Fetcher.BaseURL is empty.
const DefaultBaseURL = "https://cdn.statically.io/gh/KanjiVG/kanjivg/master/kanji"

// MaxDocumentSize is the largest document Fetch accepts.
const MaxDocumentSize = 4 << 20

// ErrNotFound is returned (wrapped) when no document exists for a
// character.
var ErrNotFound = errors.New("kanjivg: glyph not found")

// Key returns the file name of the document for r: the code point as
// lowercase hexadecimal, zero-padded to five digits, with an ".svg"
// suffix.
func Key(r rune) string {
	return fmt.Sprintf("%05x.svg", r)
}

// Fetcher retrieves KanjiVG documents over HTTP.
//
// The zero value fetches from DefaultBaseURL using http.DefaultClient.
// A Fetcher is safe for concurrent use.
type Fetcher struct {
	// BaseURL is the directory containing the documents.
	BaseURL string

	// Client is used for all requests. If nil, http.DefaultClient is used.
	Client *http.Client

	// Logger receives debug output for every request. If nil, the
	// module's shared logger (see strokeorder.SetLogger) is used.
	Logger *slog.Logger
}

// URL returns the address of the document for r.
func (f *Fetcher) URL(r rune) string {
	base := f.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + Key(r)
}

// Fetch retrieves the document for r. A response with a status other
// than 2xx gives an error matching ErrNotFound. Transport failures are
// returned as they are. There are no retries.
func (f *Fetcher) Fetch(ctx context.Context, r rune) ([]byte, error) {
	url := f.URL(r)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("kanjivg: %w", err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kanjivg: fetching %s: %w", Key(r), err)
	}
	defer resp.Body.Close()

	f.logger().LogAttrs(ctx, slog.LevelDebug, "fetch",
		slog.String("key", Key(r)),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain a little, so that the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotFound, Key(r), resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("kanjivg: reading %s: %w", Key(r), err)
	}
	if len(body) > MaxDocumentSize {
		return nil, fmt.Errorf("kanjivg: %s exceeds %d bytes", Key(r), MaxDocumentSize)
	}
	return body, nil
}

// FetchAll retrieves the documents for all characters concurrently and
// waits until every request has finished. The result is indexed like
// chars.
//
// If any document was not found, the error matches ErrNotFound and does
// not say which one. Otherwise the first error, in the order of chars,
// is returned. No partial results are returned.
func (f *Fetcher) FetchAll(ctx context.Context, chars []rune) ([][]byte, error) {
	docs := make([][]byte, len(chars))
	errs := make([]error, len(chars))

	var wg sync.WaitGroup
	for i, r := range chars {
		wg.Add(1)
		go func() {
			defer wg.Done()
			docs[i], errs[i] = f.Fetch(ctx, r)
		}()
	}
	wg.Wait()

	var first error
	for _, err := range errs {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		if first == nil {
			first = err
		}
	}
	if first != nil {
		return nil, first
	}
	return docs, nil
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Logger == nil {
		return logging.Get()
	}
	return f.Logger
}
