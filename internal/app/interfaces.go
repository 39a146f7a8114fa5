// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Module is an application module: a unit that contributes routes, and the
// middlewares around them, to an [Application].
type Module interface {
	// Register adds the module's routes to r. It is called exactly once,
	// by [New].
	Register(r Router) error
}

// ModuleFunc adapts a plain function to [Module].
type ModuleFunc func(r Router) error

// Register calls f(r).
func (f ModuleFunc) Register(r Router) error {
	return f(r)
}

// Router is the registration surface an [Application] hands to its module.
type Router interface {
	http.Handler

	// Routes exposes the route tree registered so far.
	Routes() chi.Routes

	// Use appends middlewares; they must be added before the first route.
	Use(middlewares ...func(http.Handler) http.Handler)

	// MethodNotAllowed sets the handler for known paths requested with an
	// unregistered method.
	MethodNotAllowed(h http.HandlerFunc)

	// NotFound sets the handler for paths no route matches.
	NotFound(h http.HandlerFunc)

	// Handle registers a route together with its documentation metadata.
	Handle(route Route)

	// Bind decodes the JSON body of r and runs it through the global pipe
	// against dst, a pointer to the declared body struct.
	Bind(r *http.Request, dst any) (any, error)

	// BindQuery does the same as Bind for the query string of r.
	BindQuery(r *http.Request, dst any) (any, error)
}

// Route describes one registered operation.
type Route struct {
	Method  string
	Pattern string

	Summary     string
	Description string
	Tags        []string
	OperationID string

	// Body, Query and Response are zero values of the declared types, used
	// to render schemas. Nil means the operation has none.
	Body     any
	Query    any
	Response any

	// Status is the success status code; 0 means 200.
	Status int

	// Hidden routes are served but left out of the API document.
	Hidden bool

	Handler http.HandlerFunc
}

// SuccessStatus returns Status, or 200 when it is unset.
func (r Route) SuccessStatus() int {
	if r.Status == 0 {
		return http.StatusOK
	}
	return r.Status
}
