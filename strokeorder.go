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
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"sync"
	"time"
	"unicode/utf8"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/strokeorder/fonts"
	"seehuhn.de/go/strokeorder/kanjivg"
	"seehuhn.de/go/strokeorder/raster"
	"seehuhn.de/go/strokeorder/svg"
	"seehuhn.de/go/strokeorder/svgdraw"
)

// MaxChars is the largest number of characters in one diagram.
const MaxChars = 3

// MinWidth is the smallest width of a rendered image, in pixels.
const MinWidth = 512

// pixelsPerUnit is the scale used for diagrams wider than MinWidth.
const pixelsPerUnit = 3

// GlyphSource retrieves the KanjiVG documents for a list of characters.
// The result is indexed like chars. If a document is missing, the error
// matches ErrGlyphNotFound.
type GlyphSource interface {
	FetchAll(ctx context.Context, chars []rune) ([][]byte, error)
}

// Config holds the resources of an Engine. The zero value is ready to
// use.
type Config struct {
	// Source provides the glyph documents. If nil, the documents are
	// fetched from kanjivg.DefaultBaseURL.
	Source GlyphSource

	// Font is used for the stroke numbers. If nil, fonts.Default() is used.
	Font *fonts.Face

	// Logger receives diagnostic messages. If nil, the logger set by
	// SetLogger is used.
	Logger *slog.Logger
}

// Engine turns requests into diagrams. An Engine is safe for concurrent
// use, and requests do not modify it.
type Engine struct {
	source GlyphSource
	font   *fonts.Face
	log    *slog.Logger

	rasterizers sync.Pool
}

// New returns an engine using the resources in cfg.
func New(cfg Config) *Engine {
	log := cfg.Logger
	if log == nil {
		log = Logger()
	}
	source := cfg.Source
	if source == nil {
		source = &kanjivg.Fetcher{Logger: log}
	}
	font := cfg.Font
	if font == nil {
		font = fonts.Default()
	}
	return &Engine{
		source: source,
		font:   font,
		log:    log,
		rasterizers: sync.Pool{
			New: func() any { return &raster.Rasterizer{} },
		},
	}
}

// Request describes one diagram.
type Request struct {
	// Chars holds one to MaxChars characters.
	Chars string

	Theme Theme
}

// ValidateChars splits s into characters. It returns an error matching
// ErrInvalidRequest unless s is valid UTF-8 with 1 to MaxChars code
// points.
func ValidateChars(s string) ([]rune, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: chars is not valid UTF-8", ErrInvalidRequest)
	}
	n := utf8.RuneCountInString(s)
	if n < 1 || n > MaxChars {
		return nil, fmt.Errorf("%w: chars must have 1 to %d characters, got %d",
			ErrInvalidRequest, MaxChars, n)
	}
	return []rune(s), nil
}

// Compose fetches the documents for req.Chars and combines their stroke
// and stroke number groups, recolored for req.Theme, into one document.
func (e *Engine) Compose(ctx context.Context, req Request) (*kanjivg.Composite, error) {
	chars, err := ValidateChars(req.Chars)
	if err != nil {
		return nil, err
	}
	if req.Theme != Light && req.Theme != Dark {
		return nil, fmt.Errorf("%w: unknown theme %d", ErrInvalidRequest, int(req.Theme))
	}

	start := time.Now()
	docs, err := e.source.FetchAll(ctx, chars)
	if err != nil {
		return nil, err
	}
	e.log.DebugContext(ctx, "fetched glyphs",
		slog.String("chars", req.Chars),
		slog.Duration("elapsed", time.Since(start)))

	colors := req.Theme.Colors()
	cells := make([][]*svg.Element, len(docs))
	for i, doc := range docs {
		root, err := svg.Parse(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kanjivg.Key(chars[i]), err)
		}
		groups := kanjivg.Select(root)
		for j, g := range groups {
			groups[j] = kanjivg.Recolor(g, colors)
		}
		cells[i] = groups
	}
	return kanjivg.Compose(cells), nil
}

// Render produces the PNG image for req.
func (e *Engine) Render(ctx context.Context, req Request) ([]byte, error) {
	c, err := e.Compose(ctx, req)
	if err != nil {
		return nil, err
	}
	markup := c.Markup()
	out, err := e.Rasterize(markup, c.Width, req.Theme)
	if err != nil {
		return nil, err
	}
	e.log.DebugContext(ctx, "rendered diagram",
		slog.String("chars", req.Chars),
		slog.String("theme", req.Theme.String()),
		slog.Int("svg", len(markup)),
		slog.Int("png", len(out)))
	return out, nil
}

// Rasterize renders the document markup as a PNG image. The width of the
// image is determined by extent, see TargetSize.
func (e *Engine) Rasterize(markup []byte, extent float64, theme Theme) ([]byte, error) {
	img, err := e.RenderImage(markup, extent, theme)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// RenderImage renders the document markup onto an opaque image filled
// with the background color of theme. The viewBox of the root element is
// scaled uniformly to the width given by TargetSize(extent).
func (e *Engine) RenderImage(markup []byte, extent float64, theme Theme) (*image.RGBA, error) {
	root, err := svg.Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	ctm, width, height, err := Layout(root, extent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	r := e.rasterizers.Get().(*raster.Rasterizer)
	defer e.rasterizers.Put(r)
	canvas := raster.NewCanvas(img, r)
	canvas.Clear(theme.Background())

	err = svgdraw.Draw(root, canvas, &svgdraw.Options{Font: e.font, CTM: ctm})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return img, nil
}

// Layout returns the device size for the document rooted at root, and
// the matrix which maps its user space to device space. The viewBox of
// root is scaled uniformly to the width given by TargetSize(extent); the
// height follows from the aspect ratio of the viewBox.
func Layout(root *svg.Element, extent float64) (ctm matrix.Matrix, width, height int, err error) {
	minX, minY, vbW, vbH, err := svg.ParseViewBox(root.Attr("viewBox"))
	if err != nil {
		return matrix.Matrix{}, 0, 0, err
	}

	width, _ = TargetSize(extent)
	height = int(math.Ceil(float64(width) * vbH / vbW))

	s := float64(width) / vbW
	ctm = matrix.Matrix{s, 0, 0, s, -minX * s, -minY * s}
	return ctm, width, height, nil
}

// TargetSize returns the pixel size of the image for a diagram of the
// given width in user units. The width is pixelsPerUnit pixels per
// unit, but at least MinWidth. The height keeps the aspect ratio of a
// diagram of height kanjivg.Unit. An extent of 0 is treated like one
// character cell.
func TargetSize(extent float64) (width, height int) {
	if extent <= 0 {
		extent = kanjivg.Unit
	}
	width = max(MinWidth, int(math.Ceil(extent*pixelsPerUnit)))
	height = int(math.Ceil(float64(width) * kanjivg.Unit / extent))
	return width, height
}
