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

// Command strokeorderd serves stroke order diagrams over HTTP.
//
// The bearer token clients must present is read from the AUTH_TOKEN
// environment variable. The listen address and the location of the
// KanjiVG files can be set by flags, or by the environment variables
// STROKEORDER_ADDR and STROKEORDER_BASE_URL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seehuhn.de/go/strokeorder"
	"seehuhn.de/go/strokeorder/fonts"
	"seehuhn.de/go/strokeorder/kanjivg"
	"seehuhn.de/go/strokeorder/server"
)

func main() {
	addr := flag.String("addr", envOr("STROKEORDER_ADDR", server.DefaultAddr), "listen address")
	baseURL := flag.String("base-url", envOr("STROKEORDER_BASE_URL", kanjivg.DefaultBaseURL), "location of the KanjiVG files")
	fontFile := flag.String("font", "", "TrueType or OpenType `file` for the stroke numbers")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	if err := run(*addr, *baseURL, *fontFile, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "strokeorderd:", err)
		os.Exit(1)
	}
}

func run(addr, baseURL, fontFile, logLevel string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	strokeorder.SetLogger(logger)

	token := os.Getenv("AUTH_TOKEN")
	if token == "" {
		return errors.New("AUTH_TOKEN is not set")
	}

	font := fonts.Default()
	if fontFile != "" {
		data, err := os.ReadFile(fontFile)
		if err != nil {
			return err
		}
		font, err = fonts.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", fontFile, err)
		}
	}
	logger.Info("font loaded", slog.String("name", font.Name()))

	engine := strokeorder.New(strokeorder.Config{
		Source: &kanjivg.Fetcher{
			BaseURL: baseURL,
			Client:  &http.Client{Timeout: 30 * time.Second},
			Logger:  logger,
		},
		Font:   font,
		Logger: logger,
	})

	srv, err := server.New(server.Config{
		Addr:     addr,
		Token:    token,
		Renderer: engine,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
