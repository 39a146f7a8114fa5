// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/server"
	"github.com/paksentiment/paksentiment/internal/validators"
)

// Application is a configured HTTP application: the router built from a
// [Module], the global validation pipe and, once [Application.Listen]
// succeeds, the running transport servers.
type Application struct {
	mux *chi.Mux
	cfg config.Server

	mu     sync.RWMutex
	routes map[string]Route

	pipe atomic.Pointer[validators.ValidationPipe]

	server server.Server

	logger *logger.Logger
}

// New creates an application and lets module register its routes on it.
// A nil module, a failing Register, or a panic during registration yields an
// error wrapping [ErrModuleResolution].
func New(module Module, cfg config.Server, logger *logger.Logger) (a *Application, err error) {
	if module == nil {
		return nil, fmt.Errorf("%w: module is nil", ErrModuleResolution)
	}

	a = &Application{
		mux:    chi.NewRouter(),
		cfg:    cfg,
		routes: make(map[string]Route),
		logger: logger,
	}

	defer func() {
		if r := recover(); r != nil {
			a, err = nil, fmt.Errorf("%w: %v", ErrModuleResolution, r)
		}
	}()

	if err = module.Register(a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModuleResolution, err)
	}

	logger.Debug().Int("routes", len(a.routes)).Msg("application module registered")
	return a, nil
}

// UseGlobalPipes installs pipe for every payload bound through the
// application. A later call replaces the previous pipe.
func (a *Application) UseGlobalPipes(pipe *validators.ValidationPipe) {
	a.pipe.Store(pipe)
}

// GlobalPipe returns the pipe installed with UseGlobalPipes, or nil.
func (a *Application) GlobalPipe() *validators.ValidationPipe {
	return a.pipe.Load()
}

// Use appends middlewares to the router. Middlewares must be added before
// the first route.
func (a *Application) Use(middlewares ...func(http.Handler) http.Handler) {
	a.mux.Use(middlewares...)
}

// MethodNotAllowed sets the handler for a known path requested with an
// unregistered method.
func (a *Application) MethodNotAllowed(h http.HandlerFunc) {
	a.mux.MethodNotAllowed(h)
}

// NotFound sets the handler for paths no route matches.
func (a *Application) NotFound(h http.HandlerFunc) {
	a.mux.NotFound(h)
}

// Handle registers route on the router and records its metadata.
func (a *Application) Handle(route Route) {
	a.mux.Method(route.Method, route.Pattern, route.Handler)

	a.mu.Lock()
	a.routes[routeKey(route.Method, route.Pattern)] = route
	a.mu.Unlock()
}

// Route returns the metadata of the route registered for method and pattern.
func (a *Application) Route(method, pattern string) (Route, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	route, ok := a.routes[routeKey(method, pattern)]
	return route, ok
}

// Routes exposes the router tree for inspection (chi.Walk).
func (a *Application) Routes() chi.Routes {
	return a.mux
}

// ServeHTTP implements [http.Handler].
func (a *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Listen binds the configured address and starts serving in the background.
// It returns once the listeners are bound; bind failures wrap
// [server.ErrListen].
func (a *Application) Listen() error {
	if a.server != nil {
		return ErrAlreadyListening
	}

	srv, err := server.NewServer(a, a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	if err = srv.Start(); err != nil {
		return err
	}

	a.server = srv
	a.logger.Info().Str("address", srv.HTTPAddr()).Msg("application is listening")
	return nil
}

// Addr returns the bound HTTP address, or "" before Listen.
func (a *Application) Addr() string {
	if a.server == nil {
		return ""
	}
	return a.server.HTTPAddr()
}

// Run blocks until the process receives a stop signal, then shuts every
// transport down gracefully.
func (a *Application) Run() error {
	if a.server == nil {
		return ErrNotListening
	}

	a.server.RunServer()
	return nil
}

// Close shuts the servers down. It is safe to call more than once.
func (a *Application) Close() {
	if a.server != nil {
		a.server.Shutdown()
	}
}

func routeKey(method, pattern string) string {
	return method + " " + pattern
}
