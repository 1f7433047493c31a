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

// Command strokeorder writes a stroke order diagram for one to three
// characters.
//
// Usage:
//
//	strokeorder [-theme light|dark] [-format png|svg|pdf] [-o file] chars
//
// Without -o, the output is written to a file named after the
// characters' KanjiVG keys, for example "04e00-04e8c.png".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"seehuhn.de/go/strokeorder"
	"seehuhn.de/go/strokeorder/fonts"
	"seehuhn.de/go/strokeorder/kanjivg"
	"seehuhn.de/go/strokeorder/pdfexport"
)

type options struct {
	theme    string
	format   string
	out      string
	baseURL  string
	fontFile string
	verbose  bool
}

func main() {
	opt := &options{}
	flag.StringVar(&opt.theme, "theme", "light", "color theme (light or dark)")
	flag.StringVar(&opt.format, "format", "png", "output format (png, svg or pdf)")
	flag.StringVar(&opt.out, "o", "", "output `file`")
	flag.StringVar(&opt.baseURL, "base-url", kanjivg.DefaultBaseURL, "location of the KanjiVG files")
	flag.StringVar(&opt.fontFile, "font", "", "TrueType or OpenType `file` for the stroke numbers")
	flag.BoolVar(&opt.verbose, "v", false, "log the pipeline steps")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] chars\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), flag.Arg(0), opt); err != nil {
		fmt.Fprintln(os.Stderr, "strokeorder:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, chars string, opt *options) error {
	level := slog.LevelWarn
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	switch opt.format {
	case "png", "svg", "pdf":
	default:
		return fmt.Errorf("unknown format %q", opt.format)
	}
	theme, err := strokeorder.ParseTheme(opt.theme)
	if err != nil {
		return err
	}
	runes, err := strokeorder.ValidateChars(chars)
	if err != nil {
		return err
	}

	var font *fonts.Face
	if opt.fontFile != "" {
		data, err := os.ReadFile(opt.fontFile)
		if err != nil {
			return err
		}
		font, err = fonts.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", opt.fontFile, err)
		}
	}

	out := opt.out
	if out == "" {
		keys := make([]string, len(runes))
		for i, r := range runes {
			keys[i] = strings.TrimSuffix(kanjivg.Key(r), ".svg")
		}
		out = strings.Join(keys, "-") + "." + opt.format
	}

	e := strokeorder.New(strokeorder.Config{
		Source: &kanjivg.Fetcher{BaseURL: opt.baseURL, Logger: logger},
		Font:   font,
		Logger: logger,
	})
	req := strokeorder.Request{Chars: chars, Theme: theme}

	c, err := e.Compose(ctx, req)
	if errors.Is(err, strokeorder.ErrGlyphNotFound) {
		return fmt.Errorf("no stroke order data for %q", chars)
	} else if err != nil {
		return err
	}

	switch opt.format {
	case "svg":
		return os.WriteFile(out, c.Markup(), 0o644)
	case "png":
		data, err := e.Rasterize(c.Markup(), c.Width, theme)
		if err != nil {
			return err
		}
		return os.WriteFile(out, data, 0o644)
	default:
		return pdfexport.WriteFile(out, c, &pdfexport.Options{Theme: theme, Font: font})
	}
}
