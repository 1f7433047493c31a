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
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"seehuhn.de/go/strokeorder"
)

// DefaultAddr is the listen address used if Config.Addr is empty.
const DefaultAddr = ":3000"

// Config holds the server configuration.
type Config struct {
	// Addr is the TCP address to listen on.
	Addr string

	// Token is the bearer token clients must present. It is required.
	Token string

	// Renderer produces the images. It is required.
	Renderer Renderer

	Logger *slog.Logger

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server is the diagram HTTP server.
type Server struct {
	server *http.Server
	log    *slog.Logger

	mu      sync.Mutex
	started bool
}

// New creates a server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Token == "" {
		return nil, errors.New("server: no authentication token")
	}
	if cfg.Renderer == nil {
		return nil, errors.New("server: no renderer")
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = strokeorder.Logger()
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 60 * time.Second
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 120 * time.Second
	}

	s := &Server{log: cfg.Logger}
	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      NewHandler(cfg.Renderer, cfg.Token, cfg.Logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(cfg.Logger.Handler(), slog.LevelWarn),
	}
	return s, nil
}

// ListenAndServe listens on the configured address and serves requests
// until the server is shut down. After Shutdown, http.ErrServerClosed is
// returned.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Serve accepts connections on l.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		l.Close()
		return errors.New("server: already started")
	}
	s.started = true
	s.mu.Unlock()

	s.log.Info("listening", slog.String("addr", l.Addr().String()))
	return s.server.Serve(l)
}

// Shutdown stops the server, waiting for active requests to finish until
// ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return nil
	}

	s.log.Info("shutting down")
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
