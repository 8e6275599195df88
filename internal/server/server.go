// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package server implements the brolly HTTP API. It serves the normalized forecast for a
// coordinate together with its plain-English summary.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"

	"github.com/wneessen/brolly/internal/config"
	"github.com/wneessen/brolly/internal/logger"
	"github.com/wneessen/brolly/internal/weather"
)

type Server struct {
	clock           clockwork.Clock
	config          *config.Config
	location        *time.Location
	logger          *logger.Logger
	provider        weather.Provider
	router          *chi.Mux
	validate        *validator.Validate
	cacheControlTTL time.Duration
}

// New returns a Server that answers forecast requests from the given provider.
func New(conf *config.Config, provider weather.Provider, log *logger.Logger, clock clockwork.Clock) (*Server, error) {
	if provider == nil {
		return nil, errors.New("weather provider is required")
	}
	if log == nil {
		return nil, errors.New("logger is required")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	srv := &Server{
		clock:           clock,
		config:          conf,
		location:        conf.TimeLocation(),
		logger:          log,
		provider:        provider,
		router:          chi.NewRouter(),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		cacheControlTTL: conf.Server.CacheControlTTL,
	}
	srv.routes()
	return srv, nil
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/api/weather/{lat}/{lon}", s.handleWeather)
	s.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves the API on the configured address until the context is canceled and
// then shuts the server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Server.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.Listen, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves the API on the given listener until the context is canceled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.config.Server.ReadTimeout,
		ReadHeaderTimeout: s.config.Server.ReadTimeout,
		WriteTimeout:      s.config.Server.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("brolly API listening", slog.String("address", listener.Addr().String()))
		errChan <- httpServer.Serve(listener)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve HTTP: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	s.logger.Info("brolly API stopped")
	return nil
}
